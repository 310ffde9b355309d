package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	_ "github.com/lib/pq"

	"chronos/internal/models"
)

// PostgresStore keeps the snapshot as a single-row JSON blob. The state
// is still one opaque document; Postgres only replaces the local file
// when several dashboard hosts need to share the snapshot location.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS app_state (
			id         int PRIMARY KEY,
			blob       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Load() (*models.AppState, error) {
	var data []byte
	err := p.db.QueryRow(`SELECT blob FROM app_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var st models.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("[storage][load] malformed snapshot row, falling back to defaults: %v", err)
		return nil, nil
	}
	return &st, nil
}

func (p *PostgresStore) Save(st *models.AppState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = p.db.Exec(`
		INSERT INTO app_state (id, blob, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET blob = $1, updated_at = now()`, data)
	return err
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
