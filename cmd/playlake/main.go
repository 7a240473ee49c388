package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/playlake-lab/playlake/internal/config"
	"github.com/playlake-lab/playlake/internal/generator"
	"github.com/playlake-lab/playlake/internal/ingest"
	"github.com/playlake-lab/playlake/internal/core/validate"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "sink", cfg.Sink.Type, "count", cfg.Generator.Count)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Sink
	var sink ingest.Sink
	switch cfg.Sink.Type {
	case "memory":
		sink = ingest.NewMemorySink()
	case "file":
		fileSink, err := ingest.NewFileSink(cfg.Sink.Path)
		if err != nil {
			slog.Error("Failed to initialize file sink", "error", err)
			os.Exit(1)
		}
		sink = fileSink
	}

	// 3. Metrics exposition (optional)
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				slog.Error("Metrics server stopped", "error", err)
			}
		}()
		slog.Info("Metrics exposition enabled", "addr", cfg.Metrics.Addr)
	}

	// 4. Run the pipeline: generate, admit, sink.
	svc := ingest.NewService(sink)
	gen := generator.New()

	admitted, rejected := 0, 0
	for _, e := range gen.Stream(cfg.Generator.Count) {
		if ctx.Err() != nil {
			slog.Info("Interrupted", "admitted", admitted, "rejected", rejected)
			return
		}
		if _, err := svc.Admit(ctx, e); err != nil {
			var failure *validate.Failure
			if errors.As(err, &failure) {
				rejected++
				slog.Warn("Entity rejected",
					"kind", failure.Kind,
					"violations", failure.Messages(),
				)
				continue
			}
			slog.Error("Pipeline failure", "kind", e.Kind(), "error", err)
			os.Exit(1)
		}
		admitted++
	}

	slog.Info("Pipeline complete",
		"admitted", admitted,
		"rejected", rejected,
		"sink", cfg.Sink.Type,
	)
}
