package ui

import (
	"launchpad/config"
	"launchpad/logger"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Landing hosts the splash and moves on when it completes: to the
// configured next route, or to its own content.
type Landing struct {
	app.Compo
	Ready bool

	cfg config.SplashConfig
}

// OnInit reads the environment once, before the first render; the splash
// gets the same config.
func (l *Landing) OnInit() {
	if len(l.cfg.Steps) == 0 {
		l.cfg = config.FromEnv(app.Getenv)
	}
}

func (l *Landing) onSplashComplete(ctx app.Context) {
	logger.Info("ui", "splash complete")
	if l.cfg.Next != "" {
		ctx.Navigate(l.cfg.Next)
		return
	}
	l.Ready = true
	l.Update()
}

func (l *Landing) Render() app.UI {
	return app.Div().Class("landing").Body(
		app.If(!l.Ready,
			&Splash{Config: l.cfg, OnComplete: l.onSplashComplete},
		).Else(
			app.Div().Class("landing-content").Body(
				app.H1().Class("landing-title").Text(welcomeTitle(l.cfg.Title)),
				app.P().Class("landing-subtitle").Text("Everything is loaded."),
			),
		),
	)
}

func welcomeTitle(title string) string {
	if title == "" {
		return "Welcome"
	}
	return "Welcome to " + title
}
