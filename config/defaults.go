package config

import "time"

var defaultSteps = []string{
	"Initializing AI House...",
	"Loading Hero Experience...",
	"Preparing Community Hub...",
	"Fetching Partners & Collaborators...",
	"Setting up Learning Platform...",
	"Loading Core Offerings...",
	"Retrieving Gallery Images...",
	"Calibrating World Map...",
	"Finalizing Workshops...",
	"Ready to Launch 🚀",
}

func DefaultSteps() []string {
	return append([]string(nil), defaultSteps...)
}

func DefaultSplash() SplashConfig {
	return SplashConfig{
		Title:        "HiDevs",
		Steps:        DefaultSteps(),
		TickInterval: 200 * time.Millisecond,
		SettleDelay:  800 * time.Millisecond,
	}
}

func Default() Config {
	return Config{
		Splash: DefaultSplash(),
		Server: ServerConfig{
			Addr:        ":8000",
			Name:        "Launchpad",
			Description: "Loading screen",
			Version:     "v1",
		},
	}
}
