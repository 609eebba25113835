package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE queries (query TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	return conn
}

func countQueries(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM queries`).Scan(&n))
	return n
}

func TestWithTx_Commits(t *testing.T) {
	conn := setupTestDB(t)

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO queries VALUES (?)`, "lakers"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO queries VALUES (?)`, "celtics")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countQueries(t, conn))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	conn := setupTestDB(t)
	errBoom := errors.New("boom")

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO queries VALUES (?)`, "lakers"); err != nil {
			return err
		}
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, countQueries(t, conn))
}

func TestWithTx_RollsBackOnStatementError(t *testing.T) {
	conn := setupTestDB(t)

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO queries VALUES (?)`, "lakers"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO queries VALUES (?)`, "lakers")
		return err
	})

	require.Error(t, err)
	assert.Equal(t, 0, countQueries(t, conn))
}
