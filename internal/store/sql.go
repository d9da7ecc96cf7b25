package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/templui/studytracker/internal/db"
)

// SQL keeps values in the kv_store table (see internal/db/migrations).
// Works on sqlite and postgres.
type SQL struct {
	db     *sqlx.DB
	driver Driver
}

func NewSQL(conn *sqlx.DB, driver Driver) *SQL {
	return &SQL{db: conn, driver: driver}
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := `SELECT value FROM kv_store WHERE name = $1`

	err := s.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return []byte(value), nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	query := `INSERT INTO kv_store (name, value, updated_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	return err
}

func (s *SQL) Driver() Driver { return s.driver }

func (s *SQL) Close() error {
	return db.Close(s.db)
}
