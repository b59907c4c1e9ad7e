package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"browser-shell/internal/repository"
)

const (
	settingsTable     = "settings"
	localStorageTable = "local_storage"
)

type kvRepository struct {
	db    *DB
	table string
}

// NewSettingsRepository returns the browser settings store.
func NewSettingsRepository(db *DB) repository.KeyValueStore {
	return &kvRepository{db: db, table: settingsTable}
}

// NewLocalStorageRepository returns the local storage used by page scripts
// such as the bookmark bar.
func NewLocalStorageRepository(db *DB) repository.KeyValueStore {
	return &kvRepository{db: db, table: localStorageTable}
}

type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var row kvRow
	query := fmt.Sprintf(`SELECT key, value FROM %s WHERE key = ?`, r.table)

	err := r.db.GetContext(ctx, &row, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s %q: %w", r.table, key, err)
	}

	return row.Value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, r.table)

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %s %q: %w", r.table, key, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, r.table)

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", r.table, key, err)
	}

	return nil
}

func (r *kvRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	query := fmt.Sprintf(`SELECT key FROM %s ORDER BY key`, r.table)

	if err := r.db.SelectContext(ctx, &keys, query); err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", r.table, err)
	}

	return keys, nil
}
