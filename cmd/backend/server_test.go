package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"launchpad/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppHandler_CarriesSplashConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Splash.Title = "Acme"
	cfg.Splash.Next = "/home"

	h := newAppHandler(cfg)

	assert.Equal(t, "Launchpad", h.Name)
	assert.Equal(t, "Acme", h.Title)
	assert.Contains(t, h.Styles, "/web/app.css")

	got := config.FromEnv(func(k string) string { return h.Env[k] })
	assert.Equal(t, cfg.Splash, got)
}

func TestNewServer_HealthRoute(t *testing.T) {
	srv := newServer(config.Default())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	// the host probe may be unavailable in a sandbox; either way the route exists
	assert.Contains(t, []int{http.StatusOK, http.StatusInternalServerError}, rec.Code)
	assert.NotEqual(t, http.StatusNotFound, rec.Code)
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "launchpad-backend version dev\n", out.String())
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-level", "loud"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
