package store

import (
	"context"
	"database/sql"
)

// MySQL keeps each collection document in a single key/value table.
// The schema is created on first use so the application can point at
// an empty database.
type MySQL struct {
	db *sql.DB
}

// NewMySQL returns a MySQL store bound to the given database and
// ensures the backing table exists.
func NewMySQL(ctx context.Context, db *sql.DB) (*MySQL, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS app_state (
		k VARCHAR(64) NOT NULL PRIMARY KEY,
		v LONGTEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, err
	}
	return &MySQL{db: db}, nil
}

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT v FROM app_state WHERE k = ?`
	var v []byte
	err := m.db.QueryRowContext(ctx, q, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (m *MySQL) Set(ctx context.Context, key string, value []byte) error {
	const q = `INSERT INTO app_state (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`
	_, err := m.db.ExecContext(ctx, q, key, value)
	return err
}
