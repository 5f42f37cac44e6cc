package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jwebster45206/moltbook/internal/config"
	"github.com/jwebster45206/moltbook/internal/logger"
	"github.com/jwebster45206/moltbook/internal/storage"
	"github.com/jwebster45206/moltbook/pkg/game"
	"github.com/jwebster45206/moltbook/pkg/world"
)

func main() {
	cfg := config.Load()
	log := logger.WithSession(logger.Setup(cfg), uuid.New())

	// The viewport wraps text itself, so the game renders unwrapped.
	g := game.New(world.Default(),
		game.WithLogger(log),
		game.WithRenderer(game.NewRenderer(os.Stdout, 0)))

	ctx := context.Background()
	if cfg.WorldFile != "" {
		if err := g.Load(ctx, storage.NewFileStorage(cfg.WorldFile, log)); err != nil {
			log.Warn("Falling back to the default world", "error", err)
			fmt.Fprintf(os.Stderr, "Could not load world: %v\n", err)
		}
	}

	p := tea.NewProgram(NewConsoleUI(g),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if ui, ok := final.(ConsoleUI); ok {
		fmt.Println(ui.Farewell())
	}

	if cfg.SaveOnQuit {
		store, err := storage.New(cfg, log)
		if err != nil {
			log.Error("Failed to create storage", "error", err)
			os.Exit(1)
		}
		defer func() {
			_ = store.Close() // Ignore error in defer
		}()
		if err := g.Save(ctx, store); err != nil {
			fmt.Fprintf(os.Stderr, "Could not save world: %v\n", err)
		}
	}
}
