package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"launchpad/config"
	"launchpad/logger"

	"github.com/spf13/cobra"
)

type serveOptions struct {
	configPath string
	addr       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "launchpad-backend",
		Short: "Serve the launchpad web app and its splash screen",
		Long: `launchpad-backend hosts the WebAssembly front-end, hands it the splash
screen configuration and exposes a small health endpoint.`,
		Version: version,
		// errors are ours to report, not usage mistakes
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(`{{printf "launchpad-backend version %s\n" .Version}}`)

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of launchpad-backend",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "launchpad-backend version %s\n", version)
		},
	}
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger.Init(os.Stderr, level)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if version != "dev" {
		cfg.Server.Version = version
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newServer(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("backend", "starting %s on %s (%d steps, %s total)",
			cfg.Server.Name, cfg.Server.Addr, len(cfg.Splash.Steps), cfg.Splash.TotalDuration())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-cmd.Context().Done():
		logger.Info("backend", "shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
