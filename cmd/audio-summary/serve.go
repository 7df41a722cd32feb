package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/audio-summary/internal/filemanager"
	"github.com/nguyentantai21042004/audio-summary/internal/httpapi"
	"github.com/nguyentantai21042004/audio-summary/internal/watcher"
	"github.com/spf13/cobra"
)

// A single run downloads, transcribes and summarizes, so in-flight requests
// get a generous window to finish on shutdown.
const shutdownTimeout = 2 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the HTTP API with a background sweeper for the scratch directory.

Routes:
  GET  /health
  POST /api/summarize-audio        {"url": "..."} -> JSON summary
  POST /api/summarize-audio/docx   {"url": "..."} -> .docx attachment`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	sweeper := filemanager.NewSweeper(a.files, log, cfg.Paths.Temp, cfg.Sweep.Interval, cfg.Sweep.MaxAge)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	if a.promptFile != nil {
		w, err := watcher.New(a.promptFile.Path(), a.promptFile.Reload, log)
		if err != nil {
			log.Warn(ctx, "Prompt file will not be reloaded: %v", err)
		} else {
			defer w.Stop()
			go func() {
				if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error(ctx, "Prompt watcher error: %v", err)
				}
			}()
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           httpapi.NewRouter(cfg, a.pipeline, a.files, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "%s is ready!", cfg.Server.ServiceName)
	log.Info(ctx, "Listening on: %s", srv.Addr)
	log.Info(ctx, "Scratch dir: %s", cfg.Paths.Temp)
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("http server: %w", err)
	}

	log.Info(context.Background(), "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info(context.Background(), "%s stopped", cfg.Server.ServiceName)
	return nil
}
