package main

import (
	"net/http"

	"launchpad/config"
	"launchpad/health"
	"launchpad/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func newAppHandler(cfg config.Config) *app.Handler {
	return &app.Handler{
		Name:         cfg.Server.Name,
		Title:        cfg.Splash.Title,
		Description:  cfg.Server.Description,
		Version:      cfg.Server.Version,
		LoadingLabel: "",
		Styles: []string{
			"/web/app.css",
		},
		Env: app.Environment(cfg.Splash.ToEnv()),
	}
}

func newServer(cfg config.Config) http.Handler {
	// Register the components on the server side too for correct routing generation
	app.Route("/", &ui.Landing{})
	app.Route("/splash", &ui.Splash{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", health.Handler(cfg.Server.Version))
	mux.Handle("/", newAppHandler(cfg))
	return mux
}
