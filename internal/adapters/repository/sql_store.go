package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const DefaultPreferencesTable = "preferences"

var _ domain.PreferenceStore = (*SQLPreferenceStore)(nil)

// SQLPreferenceStore keeps preferences in a two-column table. The same
// statements run on SQLite and PostgreSQL; placeholders are rebound per
// driver.
type SQLPreferenceStore struct {
	db    *sqlx.DB
	table string
}

func NewSQLPreferenceStore(db *sqlx.DB, table string) *SQLPreferenceStore {
	if table == "" {
		table = DefaultPreferencesTable
	}
	return &SQLPreferenceStore{
		db:    db,
		table: pq.QuoteIdentifier(table),
	}
}

func (r *SQLPreferenceStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            pref_key   TEXT PRIMARY KEY,
            pref_value TEXT NOT NULL,
            updated_at TIMESTAMP NOT NULL
        )`, r.table)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}
	return nil
}

func (r *SQLPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT pref_value FROM %s WHERE pref_key = ?`, r.table))

	var value string
	if err := r.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("database scan error: %w", err)
	}
	return value, nil
}

func (r *SQLPreferenceStore) Set(ctx context.Context, key, value string) error {
	query := r.db.Rebind(fmt.Sprintf(`
        INSERT INTO %s (pref_key, pref_value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT (pref_key) DO UPDATE
        SET pref_value = excluded.pref_value, updated_at = excluded.updated_at`, r.table))

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert preference %s: %w", key, err)
	}
	return nil
}

func (r *SQLPreferenceStore) Delete(ctx context.Context, key string) error {
	query := r.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE pref_key = ?`, r.table))

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", key, err)
	}
	return nil
}

func (r *SQLPreferenceStore) Keys(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT pref_key FROM %s ORDER BY pref_key ASC`, r.table)

	keys := []string{}
	if err := r.db.SelectContext(ctx, &keys, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return keys, nil
}
