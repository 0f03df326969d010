package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/wareguard/hazardhunt/internal/catalog"
	"github.com/wareguard/hazardhunt/internal/config"
	"github.com/wareguard/hazardhunt/internal/geometry"
	"github.com/wareguard/hazardhunt/internal/safety"
	"github.com/wareguard/hazardhunt/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	cat, err := catalog.Demo()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"scenes", len(cat.Scenes()),
		"quizzes", len(cat.Quizzes()),
		"users", len(cat.Users()),
	)

	store := server.NewMemStore(cat)
	broker := server.NewBroker()
	registry := server.NewRegistry(broker)

	// Same seed, same room. Each request gets a fresh generator so the
	// layout never drifts between clients of the same deployment.
	seed := cfg.GeometrySeed
	buildGeometry := func(archetype safety.Archetype) ([]geometry.Primitive, error) {
		return geometry.Build(archetype, rand.New(rand.NewSource(seed)))
	}

	srv := server.New(cfg.HTTPAddr, server.Deps{
		Logger:   logger,
		Catalog:  cat,
		Store:    store,
		Registry: registry,
		Broker:   broker,
		Geometry: buildGeometry,
		SPADir:   cfg.SPADir,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		return registry.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
