package config

import (
	"encoding/json"
	"time"

	"launchpad/logger"
)

const (
	EnvTitle  = "LAUNCHPAD_TITLE"
	EnvLogo   = "LAUNCHPAD_LOGO"
	EnvSteps  = "LAUNCHPAD_STEPS"
	EnvTick   = "LAUNCHPAD_TICK"
	EnvSettle = "LAUNCHPAD_SETTLE"
	EnvNext   = "LAUNCHPAD_NEXT"
)

// ToEnv encodes c for app.Handler.Env.
func (c SplashConfig) ToEnv() map[string]string {
	env := map[string]string{
		EnvTitle: c.Title,
		EnvLogo:  c.Logo,
		EnvNext:  c.Next,
	}
	if len(c.Steps) > 0 {
		steps, _ := json.Marshal(c.Steps)
		env[EnvSteps] = string(steps)
	}
	if c.TickInterval > 0 {
		env[EnvTick] = c.TickInterval.String()
	}
	if c.SettleDelay > 0 {
		env[EnvSettle] = c.SettleDelay.String()
	}
	return env
}

// FromEnv decodes what ToEnv produced, starting from DefaultSplash. Unset
// or malformed variables keep their default. getenv is usually app.Getenv.
func FromEnv(getenv func(string) string) SplashConfig {
	c := DefaultSplash()

	if v := getenv(EnvTitle); v != "" {
		c.Title = v
	}
	if v := getenv(EnvLogo); v != "" {
		c.Logo = v
	}
	if v := getenv(EnvNext); v != "" {
		c.Next = v
	}
	if v := getenv(EnvSteps); v != "" {
		var steps []string
		if err := json.Unmarshal([]byte(v), &steps); err != nil {
			logger.Warn("config", "ignoring %s: %v", EnvSteps, err)
		} else if len(steps) > 0 {
			c.Steps = steps
		}
	}
	c.TickInterval = durationFromEnv(getenv, EnvTick, c.TickInterval)
	c.SettleDelay = durationFromEnv(getenv, EnvSettle, c.SettleDelay)

	return c
}

func durationFromEnv(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v := getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logger.Warn("config", "ignoring %s=%q", key, v)
		return fallback
	}
	return d
}
