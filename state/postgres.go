package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/mindsgn-studio/page-watcher/internal/model"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS page_state (
	url TEXT PRIMARY KEY,
	snapshot TEXT,
	checked_at TIMESTAMPTZ
)`

type postgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to the state database at uri and ensures the
// page_state table exists.
func OpenPostgres(uri string) (Store, error) {
	db, err := sql.Open("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create page_state table: %w", err)
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, url string) (*model.Snapshot, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM page_state WHERE url = $1`, url).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeSnapshot(raw), nil
}

func (s *postgresStore) Put(ctx context.Context, url string, snap model.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO page_state (url, snapshot, checked_at) VALUES ($1, $2, $3)
		ON CONFLICT (url) DO UPDATE
		SET snapshot = excluded.snapshot,
			checked_at = excluded.checked_at`,
		url, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *postgresStore) Close(context.Context) error {
	return s.db.Close()
}
