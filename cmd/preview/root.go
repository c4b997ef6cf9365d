package main

import (
	"fmt"
	"os"
	"time"

	"launchpad/config"
	"launchpad/logger"
	"launchpad/tui"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	configPath string
	tick       time.Duration
	settle     time.Duration
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "launchpad-preview",
		Short: "Play the splash sequence in the terminal",
		Long: `launchpad-preview runs the same step sequence the web splash screen shows,
rendered in the terminal. Press any key to skip.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().DurationVar(&opts.tick, "tick", 0, "override the tick interval")
	cmd.Flags().DurationVar(&opts.settle, "settle", 0, "override the settle delay")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	return cmd
}

// splashConfig loads the file config and applies flag overrides.
func splashConfig(opts *previewOptions) (config.SplashConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.SplashConfig{}, err
	}
	splash := cfg.Splash
	if opts.tick != 0 {
		splash.TickInterval = opts.tick
	}
	if opts.settle != 0 {
		splash.SettleDelay = opts.settle
	}
	if err := splash.Validate(); err != nil {
		return config.SplashConfig{}, fmt.Errorf("invalid flags: %w", err)
	}
	return splash, nil
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	// stdout belongs to the TUI
	logger.Init(os.Stderr, level)

	splash, err := splashConfig(opts)
	if err != nil {
		return err
	}

	res, err := tui.Run(cmd.Context(), splash, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	switch {
	case res.Completed:
		logger.Info("preview", "splash completed after %s", splash.TotalDuration())
	case res.Skipped:
		logger.Info("preview", "skipped at step %d/%d", res.LastStep+1, len(splash.Steps))
	}
	return nil
}
