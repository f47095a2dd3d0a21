package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mindsgn-studio/page-watcher/internal/model"
)

// Store persists the most recent snapshot per URL. Implementations are safe
// for sequential single-caller use only; concurrent callers need their own
// store or external serialization.
type Store interface {
	// Get returns the stored snapshot for url, or nil when the URL has never
	// been checked or the stored payload cannot be parsed.
	Get(ctx context.Context, url string) (*model.Snapshot, error)
	// Put overwrites any existing row for url with snap and the current UTC
	// timestamp.
	Put(ctx context.Context, url string, snap model.Snapshot) error
	Close(ctx context.Context) error
}

// Open selects a backend from the configuration.
func Open(ctx context.Context, cfg model.Config) (Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	case "postgres":
		return OpenPostgres(cfg.PostgresURI)
	case "mongo":
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.Backend)
	}
}

// decodeSnapshot maps corrupt payloads to "no previous state" instead of an
// error.
func decodeSnapshot(raw string) *model.Snapshot {
	var snap model.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil
	}
	return &snap
}
