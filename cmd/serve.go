package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postpipe/internal/logging"
	"github.com/gaurav-prasanna/postpipe/internal/server"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the render and OpenGraph API over HTTP",
	Long: `Serve starts an HTTP server with:

  POST /api/render   {"markdown": "...", "resolve": false} -> {"html": "...", "code": {...}}
  GET  /api/og?url=  OpenGraph metadata of a page
  GET  /healthz      liveness check`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	addr := flagServeAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	engine, err := newEngine(cfg, "", newHighlighter(cfg, cfg.Highlight.Enabled))
	if err != nil {
		return err
	}

	srv := server.New(
		server.Config{Addr: addr, AllowedOrigins: cfg.Server.AllowedOrigins},
		engine,
		newPreviewer(cfg),
		logger,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
