package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/doclink/internal/api"
	"github.com/dgallion1/doclink/internal/config"
	"github.com/dgallion1/doclink/internal/filestore"
	"github.com/dgallion1/doclink/internal/resolver"
	"github.com/dgallion1/doclink/internal/session"
	"github.com/dgallion1/doclink/internal/wiki"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients.
	fs := filestore.NewClient(cfg.FilestoreURL, cfg.FilestoreAPIKey)
	stats := wiki.NewFetchStats(time.Hour)
	wk := wiki.NewClient(cfg.FetchTimeout, stats)

	// Resolution strategies.
	fileRes := &resolver.FileResolver{Store: fs, Limit: cfg.SearchLimit}
	refRes := &resolver.ReferenceResolver{Fetcher: wk, MaxPageBytes: cfg.PreviewMaxBytes}

	// Session registry with periodic eviction.
	sessions := session.NewStore(cfg.SessionTTL)
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sessions.Cleanup()
			}
		}
	}()

	// Initialize HTTP server.
	srv := api.NewServer(sessions, fileRes, refRes, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		wk.Close()
		fs.Close()
	}()

	log.Info("starting doclink", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
