package main

import (
	"launchpad/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func main() {
	app.Route("/", &ui.Landing{})
	app.Route("/splash", &ui.Splash{})

	app.RunWhenOnBrowser()
}
