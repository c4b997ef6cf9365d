package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// withUserConfig points the user config lookup at path for the test.
func withUserConfig(t *testing.T, path string) {
	t.Helper()
	original := getUserConfigPath
	t.Cleanup(func() { getUserConfigPath = original })
	getUserConfigPath = func() (string, error) { return path, nil }
}

func TestLoad_DefaultOnly(t *testing.T) {
	withUserConfig(t, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Len(t, cfg.Splash.Steps, 10)
	assert.Equal(t, 200*time.Millisecond, cfg.Splash.TickInterval)
	assert.Equal(t, 800*time.Millisecond, cfg.Splash.SettleDelay)
	assert.Equal(t, 2600*time.Millisecond, cfg.Splash.TotalDuration())
	assert.Empty(t, cfg.Splash.Logo, "no logo ships by default")
}

func TestLoad_UserThenFileOverride(t *testing.T) {
	dir := t.TempDir()
	userPath := writeFile(t, dir, "user/config.yaml", `
splash:
  title: Acme
  logo: /web/acme.svg
  tickInterval: 100ms
server:
  addr: ":9000"
`)
	withUserConfig(t, userPath)

	filePath := writeFile(t, dir, "project.yaml", `
splash:
  steps:
    - Warming up...
    - Done
  settleDelay: 1s
  next: /home
`)

	cfg, err := Load(filePath)
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.Splash.Title)
	assert.Equal(t, "/web/acme.svg", cfg.Splash.Logo)
	assert.Equal(t, []string{"Warming up...", "Done"}, cfg.Splash.Steps)
	assert.Equal(t, 100*time.Millisecond, cfg.Splash.TickInterval)
	assert.Equal(t, time.Second, cfg.Splash.SettleDelay)
	assert.Equal(t, "/home", cfg.Splash.Next)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "Launchpad", cfg.Server.Name)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	withUserConfig(t, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	withUserConfig(t, filepath.Join(dir, "missing.yaml"))
	path := writeFile(t, dir, "bad.yaml", "splash: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UserHomeUnavailable(t *testing.T) {
	original := osUserHomeDir
	t.Cleanup(func() { osUserHomeDir = original })
	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidDurations(t *testing.T) {
	dir := t.TempDir()
	withUserConfig(t, filepath.Join(dir, "missing.yaml"))
	path := writeFile(t, dir, "neg.yaml", "splash:\n  tickInterval: -5ms\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}

func TestSplashConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SplashConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*SplashConfig) {}},
		{name: "no steps", mutate: func(c *SplashConfig) { c.Steps = nil }, wantErr: ErrNoSteps},
		{name: "zero tick", mutate: func(c *SplashConfig) { c.TickInterval = 0 }, wantErr: ErrInvalidInterval},
		{name: "zero settle", mutate: func(c *SplashConfig) { c.SettleDelay = 0 }, wantErr: ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultSplash()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultSteps_ReturnsCopy(t *testing.T) {
	steps := DefaultSteps()
	steps[0] = "mutated"
	assert.Equal(t, "Initializing AI House...", DefaultSteps()[0])
}
