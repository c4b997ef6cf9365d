package ui

import (
	"testing"
	"time"

	"launchpad/config"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickConfig() config.SplashConfig {
	return config.SplashConfig{
		Title:        "Acme",
		Steps:        []string{"Ready"},
		TickInterval: time.Millisecond,
		SettleDelay:  10 * time.Millisecond,
	}
}

func TestLanding_InitReadsEnvironmentBeforeFirstRender(t *testing.T) {
	t.Setenv(config.EnvTitle, "Acme")
	t.Setenv(config.EnvSteps, `["one","two"]`)

	l := &Landing{}
	d := app.NewServerTester(l)
	defer d.Close()

	assert.Equal(t, "Acme", l.cfg.Title)
	assert.Equal(t, []string{"one", "two"}, l.cfg.Steps)

	// landing > splash > container > title
	require.NoError(t, app.TestMatch(l, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0, 0, 0, 0),
		Expected: app.Text("Acme"),
	}))
	require.NoError(t, app.TestMatch(l, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0, 0, 1, 0, 0),
		Expected: app.Text("one"),
	}))
}

func TestLanding_CompletionRevealsContent(t *testing.T) {
	l := &Landing{cfg: quickConfig()}
	d := app.NewClientTester(l)
	defer d.Close()

	consumeUntil(t, d, func() bool { return l.Ready })

	require.NoError(t, app.TestMatch(l, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0),
		Expected: app.Div().Class("landing-content"),
	}))
	require.NoError(t, app.TestMatch(l, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0, 0, 0),
		Expected: app.Text("Welcome to Acme"),
	}))
}

func TestLanding_CompletionWithNextRouteNavigates(t *testing.T) {
	cfg := quickConfig()
	cfg.Next = "/home"
	l := &Landing{cfg: cfg}
	d := app.NewClientTester(l)
	defer d.Close()

	// Navigation replaces the page, so the landing content never shows.
	assert.Never(t, func() bool {
		d.Consume()
		return l.Ready
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestWelcomeTitle(t *testing.T) {
	assert.Equal(t, "Welcome", welcomeTitle(""))
	assert.Equal(t, "Welcome to HiDevs", welcomeTitle("HiDevs"))
}
