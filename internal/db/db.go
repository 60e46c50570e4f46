package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed schema.sql
var schema string

var (
	connectAttempts = 20
	retryDelay      = 1 * time.Second
)

// Open connects to the database and creates the preferences table.
// Postgres connections are retried while the server comes up.
func Open(driver, dsn string) (*sql.DB, error) {
	attempts := 1
	switch driver {
	case DriverPostgres:
		attempts = connectAttempts
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", driver)
	}

	var (
		db  *sql.DB
		err error
	)
	for i := 0; i < attempts; i++ {
		db, err = sql.Open(driver, dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
			db.Close()
		}
		if i+1 < attempts {
			log.Printf("[DB] Waiting for database... (%d/%d)", i+1, attempts)
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}

	if driver == DriverSQLite {
		// a single connection keeps ":memory:" databases shared and serialises writers
		db.SetMaxOpenConns(1)
	}
	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("db: create schema: %w", err)
	}
	return nil
}

// Rebind rewrites $N placeholders into the form the driver expects.
func Rebind(driver, query string) string {
	if driver == DriverSQLite {
		return strings.ReplaceAll(query, "$", "?")
	}
	return query
}
