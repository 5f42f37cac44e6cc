package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// FileStorage keeps the world document in one file on disk.
type FileStorage struct {
	path   string
	logger *slog.Logger
}

// Ensure FileStorage implements Storage interface
var _ Storage = (*FileStorage)(nil)

// NewFileStorage returns storage for path. An empty path never loads anything.
func NewFileStorage(path string, logger *slog.Logger) *FileStorage {
	return &FileStorage{
		path:   path,
		logger: logger,
	}
}

func (f *FileStorage) Path() string {
	return f.path
}

func (f *FileStorage) Ping(ctx context.Context) error {
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) Load(ctx context.Context) ([]byte, error) {
	if f.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Debug("World file not found", "path", f.path)
			return nil, nil
		}
		f.logger.Error("Failed to read world file", "path", f.path, "error", err)
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	f.logger.Debug("World file read", "path", f.path, "bytes", len(data))
	return data, nil
}

func (f *FileStorage) Save(ctx context.Context, data []byte) error {
	if f.path == "" {
		return fmt.Errorf("no save path configured")
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		f.logger.Error("Failed to write world file", "path", f.path, "error", err)
		return fmt.Errorf("failed to write world file: %w", err)
	}
	return nil
}
