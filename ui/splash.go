package ui

import (
	"fmt"

	"launchpad/config"
	"launchpad/sequencer"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"k8s.io/utils/clock"
)

// Splash shows the logo, the current status label and a progress bar while
// its sequencer runs. OnComplete is dispatched once, unless the splash is
// dismounted first.
type Splash struct {
	app.Compo
	Config     config.SplashConfig // zero value reads the go-app environment
	OnComplete func(app.Context)

	cfg         config.SplashConfig
	clock       clock.WithDelayedExecution // nil uses the real clock
	state       sequencer.State
	seq         *sequencer.Sequencer
	unsubscribe func()
	dismounted  bool
}

// OnInit seeds the first frame with the idle step-0 state.
func (s *Splash) OnInit() {
	s.state = sequencer.New(sequencer.Config{Steps: s.settings().Steps}).Snapshot()
}

func (s *Splash) OnMount(ctx app.Context) {
	cfg := s.settings()
	s.dismounted = false

	s.seq = sequencer.New(sequencer.Config{
		Steps:        cfg.Steps,
		TickInterval: cfg.TickInterval,
		SettleDelay:  cfg.SettleDelay,
		Clock:        s.clock,
		OnComplete: func() {
			ctx.Dispatch(func(ctx app.Context) {
				if s.dismounted || s.OnComplete == nil {
					return
				}
				s.OnComplete(ctx)
			})
		},
	})

	// Timer goroutines never touch the component; every change goes through
	// Dispatch onto the UI goroutine.
	s.unsubscribe = s.seq.Subscribe(func(st sequencer.State) {
		ctx.Dispatch(func(ctx app.Context) {
			if s.dismounted {
				return
			}
			s.state = st
			s.Update()
		})
	})

	s.state = s.seq.Snapshot()
	s.seq.Start()
}

func (s *Splash) OnDismount() {
	s.dismounted = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.seq != nil {
		s.seq.Stop()
	}
}

func (s *Splash) settings() config.SplashConfig {
	if len(s.cfg.Steps) > 0 {
		return s.cfg
	}
	if len(s.Config.Steps) > 0 {
		s.cfg = s.Config
	} else {
		s.cfg = config.FromEnv(app.Getenv)
	}
	return s.cfg
}

func (s *Splash) Render() app.UI {
	cfg := s.settings()
	st := s.state

	return app.Div().Class("splash-container").
		DataSet("loading-screen", "true").
		DataSet("active", fmt.Sprint(st.Active)).
		Body(
			app.If(cfg.Logo != "",
				app.Div().Class("splash-logo").Body(
					app.Img().Src(cfg.Logo).Alt(cfg.Title+" Logo"),
				),
			),
			app.H1().Class("splash-title").Text(cfg.Title),
			app.Div().Class("splash-text-wrapper").Body(
				// A new ID per step makes the label a fresh element, so the
				// fade-in animation replays on every change.
				app.P().ID(stepID(st.Step)).Class("splash-text").Text(st.Label),
			),
			app.Div().Class("splash-progress").Body(
				app.Div().Class("splash-progress-bar").Style("width", progressWidth(st.Progress)),
			),
		)
}

func stepID(step int) string {
	return fmt.Sprintf("splash-step-%d", step)
}

// progressWidth formats a 0..1 fraction as a CSS width, clamped.
func progressWidth(progress float64) string {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	return fmt.Sprintf("%.1f%%", progress*100)
}
