package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/config"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: In memory", func(t *testing.T) {
		db, err := OpenSQLite(ctx, "")
		require.NoError(t, err)
		defer db.Close()

		var one int
		require.NoError(t, db.GetContext(ctx, &one, "SELECT 1"))
		assert.Equal(t, 1, one)
	})

	t.Run("Success: Creates nested directory and uses WAL", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "kanso.db")

		db, err := OpenSQLite(ctx, path)
		require.NoError(t, err)
		defer db.Close()

		var mode string
		require.NoError(t, db.GetContext(ctx, &mode, "PRAGMA journal_mode"))
		assert.Equal(t, "wal", mode)
		assert.FileExists(t, path)
	})
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Name: "kanso", SSLMode: "disable",
	})
	assert.Equal(t, "postgres://u:p@db:5433/kanso?sslmode=disable", dsn)
}
