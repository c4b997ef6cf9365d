package config

import (
	"errors"
	"time"
)

var (
	ErrNoSteps         = errors.New("splash needs at least one step")
	ErrInvalidInterval = errors.New("splash durations must be positive")
)

type Config struct {
	Splash SplashConfig `yaml:"splash"`
	Server ServerConfig `yaml:"server"`
}

// SplashConfig is everything the splash component needs to run.
type SplashConfig struct {
	Title        string        `yaml:"title,omitempty"`
	Logo         string        `yaml:"logo,omitempty"`
	Steps        []string      `yaml:"steps,omitempty"`
	TickInterval time.Duration `yaml:"tickInterval,omitempty"`
	SettleDelay  time.Duration `yaml:"settleDelay,omitempty"`
	// Next is the route the landing page navigates to once the splash
	// completes. Empty keeps the landing page in place.
	Next string `yaml:"next,omitempty"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr,omitempty"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Version     string `yaml:"version,omitempty"`
}

func (c SplashConfig) Validate() error {
	if len(c.Steps) == 0 {
		return ErrNoSteps
	}
	if c.TickInterval <= 0 || c.SettleDelay <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

func (c Config) Validate() error {
	return c.Splash.Validate()
}

// TotalDuration is how long a full run takes from Start to completion.
func (c SplashConfig) TotalDuration() time.Duration {
	if len(c.Steps) == 0 {
		return 0
	}
	return time.Duration(len(c.Steps)-1)*c.TickInterval + c.SettleDelay
}
