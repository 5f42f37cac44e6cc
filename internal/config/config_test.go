package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "LOG_LEVEL", "WORLD_FILE", "SAVE_FILE", "STORAGE", "REDIS_URL", "REDIS_KEY", "WRAP_WIDTH", "SAVE_ON_QUIT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "", cfg.WorldFile)
	assert.Equal(t, "world.yaml", cfg.SaveFile)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "moltbook:world", cfg.RedisKey)
	assert.Equal(t, 80, cfg.WrapWidth)
	assert.False(t, cfg.SaveOnQuit)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORLD_FILE", "custom.yaml")
	t.Setenv("STORAGE", "REDIS")
	t.Setenv("WRAP_WIDTH", "60")
	t.Setenv("SAVE_ON_QUIT", "true")

	cfg := Load()
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "custom.yaml", cfg.WorldFile)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, 60, cfg.WrapWidth)
	assert.True(t, cfg.SaveOnQuit)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("chatty"))

	assert.Equal(t, 80, parseInt("wide", 80))
	assert.Equal(t, 80, parseInt("-3", 80))
	assert.Equal(t, 100, parseInt(" 100 ", 80))

	assert.False(t, parseBool("nope"))
	assert.True(t, parseBool("1"))
}
