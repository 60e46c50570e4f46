package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	conn, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var count int
	err = conn.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// schema creation is idempotent
	require.NoError(t, InitSchema(conn))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "")
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := `SELECT value FROM preferences WHERE name = $1`
	assert.Equal(t, `SELECT value FROM preferences WHERE name = ?1`, Rebind(DriverSQLite, q))
	assert.Equal(t, q, Rebind(DriverPostgres, q))
}
