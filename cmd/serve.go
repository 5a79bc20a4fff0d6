// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/heart-risk/cliparse"
	"github.com/danielhkuo/heart-risk/middleware"
	"github.com/danielhkuo/heart-risk/observability"
	"github.com/danielhkuo/heart-risk/predictor"
	"github.com/danielhkuo/heart-risk/router"
)

const shutdownGrace = 10 * time.Second

func newServeCommand() *cobra.Command {
	var cfg *cliparse.Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the questionnaire page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfg); err != nil {
				return err
			}
			return serve(cmd.Context(), *cfg)
		},
	}
	cfg = bindConfig(cmd)
	return cmd
}

func serve(ctx context.Context, cfg cliparse.Config) error {
	if cfg.TraceStdout {
		shutdown, err := observability.InitTracing("heartrisk", os.Stdout)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				slog.Warn("trace flush failed", "error", err)
			}
		}()
	}

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	client := predictor.NewClient(cfg.PredictURL, cfg.PredictTimeout, predictor.WithMetrics(metrics))

	// Create router
	mux := router.NewRouter(cfg, client, metrics, reg)

	// Create server
	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	// Start server
	slog.Info("Listening", "port", cfg.Port, "predict_url", cfg.PredictURL)
	return runServer(ctx, server, ln)
}

// runServer serves on ln until ctx is cancelled, then drains in-progress
// requests for up to shutdownGrace before returning.
func runServer(ctx context.Context, server *http.Server, ln net.Listener) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return err
	}
	<-drained
	slog.Info("Server closed")
	return nil
}
