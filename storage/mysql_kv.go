package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLKV backs the state manager with a single key/value table. Set is
// an upsert; the table holds one row per state slice.
type MySQLKV struct {
	db *sql.DB
}

func NewMySQLKV(db *sql.DB) *MySQLKV {
	return &MySQLKV{db: db}
}

// InitSchema creates the backing table when it does not exist yet.
func (m *MySQLKV) InitSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS store_state (
			k VARCHAR(64) PRIMARY KEY,
			v LONGTEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create store_state: %w", err)
	}
	return nil
}

func (m *MySQLKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.db.QueryRowContext(ctx,
		`SELECT v FROM store_state WHERE k = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query %s: %w", key, err)
	}
	return value, true, nil
}

func (m *MySQLKV) Set(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO store_state (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
