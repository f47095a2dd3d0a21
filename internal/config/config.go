package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mindsgn-studio/page-watcher/internal/model"
)

const (
	DefaultBackend     = "sqlite"
	DefaultSQLitePath  = "watcher_state.db"
	DefaultMongoDB     = "watcher"
	DefaultUserAgent   = "page-watcher/1.0 (+https://example.com)"
	DefaultHTTPTimeout = 15 * time.Second
)

func LoadConfig() (model.Config, error) {
	// load .env if present but don't error if not present
	_ = godotenv.Load()

	backend := os.Getenv("STATE_BACKEND")
	if backend == "" {
		backend = DefaultBackend
	}

	cfg := model.Config{
		Backend:     backend,
		SQLitePath:  os.Getenv("STATE_PATH"),
		PostgresURI: os.Getenv("POSTGRES_URI"),
		MongoURI:    os.Getenv("MONGODB_URI"),
		MongoDB:     os.Getenv("MONGO_DB_NAME"),
		UserAgent:   os.Getenv("USER_AGENT"),
		HTTPTimeout: DefaultHTTPTimeout,
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = DefaultMongoDB
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return model.Config{}, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %q", raw)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	switch cfg.Backend {
	case "sqlite":
	case "postgres":
		if cfg.PostgresURI == "" {
			return model.Config{}, fmt.Errorf("POSTGRES_URI not set")
		}
	case "mongo":
		if cfg.MongoURI == "" {
			return model.Config{}, fmt.Errorf("MONGODB_URI not set")
		}
	default:
		return model.Config{}, fmt.Errorf("unknown STATE_BACKEND %q", cfg.Backend)
	}

	return cfg, nil
}
