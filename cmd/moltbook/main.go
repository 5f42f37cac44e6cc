package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/jwebster45206/moltbook/internal/config"
	"github.com/jwebster45206/moltbook/internal/logger"
	"github.com/jwebster45206/moltbook/internal/repl"
	"github.com/jwebster45206/moltbook/internal/storage"
	"github.com/jwebster45206/moltbook/pkg/game"
	"github.com/jwebster45206/moltbook/pkg/world"
)

func main() {
	cfg := config.Load()
	log := logger.WithSession(logger.Setup(cfg), uuid.New())

	log.Info("Starting Moltbook",
		"environment", cfg.Environment,
		"world_file", cfg.WorldFile,
		"storage", cfg.Storage)

	g := game.New(world.Default(),
		game.WithLogger(log),
		game.WithRenderer(game.NewRenderer(os.Stdout, cfg.WrapWidth)))

	// Wait for interrupt signal to leave the loop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.WorldFile != "" {
		if err := g.Load(ctx, storage.NewFileStorage(cfg.WorldFile, log)); err != nil {
			log.Warn("Falling back to the default world", "error", err)
			fmt.Printf("Could not load world: %v\n", err)
		}
	}

	if err := repl.New(g, os.Stdin, os.Stdout, log).Run(ctx); err != nil {
		log.Error("Session ended with error", "error", err)
		os.Exit(1)
	}

	if cfg.SaveOnQuit {
		saveWorld(cfg, g, log)
	}
}

func saveWorld(cfg *config.Config, g *game.Game, log *slog.Logger) {
	store, err := storage.New(cfg, log)
	if err != nil {
		log.Error("Failed to create storage", "error", err)
		return
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	// The interrupt context is already done here; saving gets its own.
	if err := g.Save(context.Background(), store); err != nil {
		log.Error("Failed to save world", "error", err)
		fmt.Fprintf(os.Stderr, "Could not save world: %v\n", err)
	}
}
