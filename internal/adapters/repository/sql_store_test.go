package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/adapters/database"
	"github.com/comitanigiacomo/kanso-wellness/internal/config"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

func newMockStore(t *testing.T) (*SQLPreferenceStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLPreferenceStore(sqlx.NewDb(db, "sqlmock"), ""), mock
}

func TestSQLPreferenceStore_Mock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Get returns stored value", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT pref_value FROM "preferences" WHERE pref_key = \?`).
			WithArgs(KeyHabits).
			WillReturnRows(sqlmock.NewRows([]string{"pref_value"}).AddRow("[]"))

		val, err := store.Get(ctx, KeyHabits)
		require.NoError(t, err)
		assert.Equal(t, "[]", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error: Get maps no rows to not found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT pref_value FROM "preferences"`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)
	})

	t.Run("Error: Get wraps driver failures", func(t *testing.T) {
		store, mock := newMockStore(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery(`SELECT pref_value`).WillReturnError(boom)

		_, err := store.Get(ctx, KeyMoods)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, domain.ErrPreferenceNotFound)
	})

	t.Run("Success: Set upserts", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(`INSERT INTO "preferences" \(pref_key, pref_value, updated_at\)\s+VALUES \(\?, \?, \?\)\s+ON CONFLICT \(pref_key\) DO UPDATE`).
			WithArgs(KeyWaterGoal, "10", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Set(ctx, KeyWaterGoal, "10"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success: Delete", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(`DELETE FROM "preferences" WHERE pref_key = \?`).
			WithArgs(KeyPINHash).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Delete(ctx, KeyPINHash))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success: Custom table is quoted", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()
		store := NewSQLPreferenceStore(sqlx.NewDb(db, "sqlmock"), `odd"name`)

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "odd""name"`).WillReturnResult(sqlmock.NewResult(0, 0))
		require.NoError(t, store.EnsureSchema(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLPreferenceStore_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, "")
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLPreferenceStore(db, "")
	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.EnsureSchema(ctx), "schema creation must be idempotent")

	_, err = store.Get(ctx, KeyHabits)
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	require.NoError(t, store.Set(ctx, KeyHabits, `[{"name":"a"}]`))
	require.NoError(t, store.Set(ctx, KeyHabits, `[{"name":"b"}]`))
	require.NoError(t, store.Set(ctx, KeyWaterGoal, "8"))

	val, err := store.Get(ctx, KeyHabits)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"b"}]`, val)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyHabits, KeyWaterGoal}, keys)

	require.NoError(t, store.Delete(ctx, KeyHabits))
	require.NoError(t, store.Delete(ctx, KeyHabits), "deleting a missing key is not an error")
	_, err = store.Get(ctx, KeyHabits)
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestSQLPreferenceStore_PostgresIntegration(t *testing.T) {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	cfg := config.DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "kanso_user"),
		Password: getEnv("DB_PASSWORD", "secret"),
		Name:     getEnv("DB_NAME", "kanso_db"),
		SSLMode:  "disable",
	}

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	defer db.Close()

	store := NewSQLPreferenceStore(db, "preferences_test")
	require.NoError(t, store.EnsureSchema(ctx))
	defer db.Exec(`DROP TABLE IF EXISTS "preferences_test"`)

	require.NoError(t, store.Set(ctx, KeyMoods, "[]"))
	require.NoError(t, store.Set(ctx, KeyMoods, `[{"emoji":"😊"}]`))

	val, err := store.Get(ctx, KeyMoods)
	require.NoError(t, err)
	assert.Equal(t, `[{"emoji":"😊"}]`, val)
}
