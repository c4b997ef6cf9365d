package tui

import (
	"launchpad/config"
	"launchpad/logger"
	"launchpad/sequencer"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/utils/clock"
)

const maxBarWidth = 60

// Message types fed back into Update from the sequencer.
type (
	stateMsg    sequencer.State
	completeMsg struct{}
)

// Model plays a splash sequence in the terminal. Any key skips it.
type Model struct {
	cfg config.SplashConfig
	seq *sequencer.Sequencer

	states    chan sequencer.State
	completed chan struct{}

	bar   progress.Model
	state sequencer.State

	done    bool
	skipped bool
}

// NewModel builds a model around a fresh sequencer. clk may be nil.
func NewModel(cfg config.SplashConfig, clk clock.WithDelayedExecution) *Model {
	m := &Model{
		cfg: cfg,
		// One state per step plus the terminal one; the rest is slack.
		states:    make(chan sequencer.State, len(cfg.Steps)+4),
		completed: make(chan struct{}, 1),
		bar: progress.New(
			progress.WithGradient("#b794d9", "#724e99"),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
	}
	m.seq = sequencer.New(sequencer.Config{
		Steps:        cfg.Steps,
		TickInterval: cfg.TickInterval,
		SettleDelay:  cfg.SettleDelay,
		Clock:        clk,
		OnComplete:   func() { m.completed <- struct{}{} },
	})
	m.seq.Subscribe(func(st sequencer.State) {
		select {
		case m.states <- st:
		default:
			logger.Warn("tui", "dropped state for step %d", st.Step)
		}
	})
	m.state = m.seq.Snapshot()
	return m
}

func (m *Model) Init() tea.Cmd {
	m.seq.Start()
	return tea.Batch(m.waitForState(), m.waitForCompletion())
}

func (m *Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-m.states)
	}
}

func (m *Model) waitForCompletion() tea.Cmd {
	return func() tea.Msg {
		<-m.completed
		return completeMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = sequencer.State(msg)
		if m.state.Phase == sequencer.Stopped {
			return m, tea.Quit
		}
		if m.state.Phase.Terminal() {
			return m, nil
		}
		return m, m.waitForState()

	case completeMsg:
		m.done = true
		m.state = m.seq.Snapshot()
		return m, tea.Quit

	case tea.KeyMsg:
		m.seq.Stop()
		m.skipped = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > maxBarWidth {
			w = maxBarWidth
		}
		if w > 0 {
			m.bar.Width = w
		}
	}

	return m, nil
}

// Stop releases the sequencer; safe after the program has exited.
func (m *Model) Stop() { m.seq.Stop() }

func (m *Model) Completed() bool { return m.done }
func (m *Model) Skipped() bool { return m.skipped }
func (m *Model) State() sequencer.State { return m.state }
