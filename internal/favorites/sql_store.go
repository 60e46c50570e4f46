package favorites

import (
	"CurrencyConverter/internal/db"
	"context"
	"database/sql"
	"errors"
)

type SQLStore struct {
	GetStmt *sql.Stmt
	PutStmt *sql.Stmt
}

func NewSQLStore(database *sql.DB, driver string) (*SQLStore, error) {
	getStmt, err := database.Prepare(db.Rebind(driver, `SELECT value FROM preferences WHERE name = $1`))
	if err != nil {
		return nil, err
	}
	putStmt, err := database.Prepare(db.Rebind(driver, `INSERT INTO preferences (name, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP) ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`))
	if err != nil {
		getStmt.Close()
		return nil, err
	}
	return &SQLStore{
		GetStmt: getStmt,
		PutStmt: putStmt,
	}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.GetStmt.QueryRowContext(ctx, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.PutStmt.ExecContext(ctx, key, string(value))
	return err
}

func (s *SQLStore) Close() error {
	return errors.Join(s.GetStmt.Close(), s.PutStmt.Close())
}
