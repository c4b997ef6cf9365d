package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBrand = lipgloss.Color("#724e99")
	colorGray  = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorBrand)
	hintStyle  = lipgloss.NewStyle().Foreground(colorGray)
	frameStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cfg.Title))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(m.state.Label))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.state.Progress))
	b.WriteString("\n\n")
	if m.state.Active {
		b.WriteString(hintStyle.Render("press any key to skip"))
	}

	return frameStyle.Render(b.String()) + "\n"
}
