package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"launchpad/config"
	"launchpad/logger"

	tea "github.com/charmbracelet/bubbletea"
)

// Result reports how a preview run ended.
type Result struct {
	Completed bool
	Skipped   bool
	LastStep  int
}

// Run plays cfg in the terminal until the sequence completes, a key is
// pressed or ctx is cancelled.
func Run(ctx context.Context, cfg config.SplashConfig, in io.Reader, out io.Writer) (Result, error) {
	m := NewModel(cfg, nil)
	defer m.Stop()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{}, fmt.Errorf("preview failed: %w", err)
	}

	fm, ok := final.(*Model)
	if !ok {
		fm = m
	}
	res := Result{
		Completed: fm.Completed(),
		Skipped:   fm.Skipped(),
		LastStep:  fm.State().Step,
	}
	logger.Debug("tui", "preview finished: completed=%t skipped=%t step=%d", res.Completed, res.Skipped, res.LastStep)

	if errors.Is(err, tea.ErrProgramKilled) {
		return res, ctx.Err()
	}
	return res, nil
}
