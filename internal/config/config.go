package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	WorldFile  string // Optional override document merged over the default world
	SaveFile   string // Target for the save operation when Storage is "file"
	Storage    string // "file" or "redis"
	RedisURL   string
	RedisKey   string
	WrapWidth  int
	SaveOnQuit bool
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		WorldFile:   getEnv("WORLD_FILE", ""),
		SaveFile:    getEnv("SAVE_FILE", "world.yaml"),
		Storage:     strings.ToLower(getEnv("STORAGE", StorageFile)),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisKey:    getEnv("REDIS_KEY", "moltbook:world"),
		WrapWidth:   parseInt(getEnv("WRAP_WIDTH", "80"), 80),
		SaveOnQuit:  parseBool(getEnv("SAVE_ON_QUIT", "false")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
