package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/moltbook/internal/config"
)

// Storage persists a single serialized world document.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Load returns nil data and a nil error when no document exists.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces any existing document.
	Save(ctx context.Context, data []byte) error
}

// New builds the save backend selected by cfg.
func New(cfg *config.Config, logger *slog.Logger) (Storage, error) {
	switch cfg.Storage {
	case config.StorageFile, "":
		return NewFileStorage(cfg.SaveFile, logger), nil
	case config.StorageRedis:
		return NewRedisStorage(cfg.RedisURL, cfg.RedisKey, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
