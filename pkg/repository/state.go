package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// StateRepository is a key-value store of serialized application state.
// All keys live in the namespace given on creation.
type StateRepository struct {
	db        *sqlx.DB
	namespace string
}

// stateSQL represents a kv row
type stateSQL struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sqlx.DB, namespace string) *StateRepository {
	return &StateRepository{db: db, namespace: namespace}
}

// Namespace returns namespace of the repository
func (r *StateRepository) Namespace() string {
	return r.namespace
}

// Get retrieves a value, ok is false if the key is not set
func (r *StateRepository) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = r.db.GetContext(ctx, &value, "SELECT value FROM kv WHERE namespace = ? AND key = ?", r.namespace, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// List returns all key/value pairs with keys starting with prefix
func (r *StateRepository) List(ctx context.Context, prefix string) (map[string]string, error) {
	var rows []stateSQL
	query := "SELECT key, value FROM kv WHERE namespace = ? AND substr(key, 1, ?) = ? ORDER BY key"
	if err := r.db.SelectContext(ctx, &rows, query, r.namespace, len(prefix), prefix); err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}

	res := make(map[string]string, len(rows))
	for _, row := range rows {
		res[row.Key] = row.Value
	}
	return res, nil
}

// Set stores a value, replacing the existing one
func (r *StateRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return r.exec(ctx, "set "+key, query, r.namespace, key, value)
}

// Delete removes a key, missing key is not an error
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	return r.exec(ctx, "delete "+key, "DELETE FROM kv WHERE namespace = ? AND key = ?", r.namespace, key)
}

// DeletePrefix removes all keys starting with prefix and returns number of removed keys
func (r *StateRepository) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	var deleted int64
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM kv WHERE namespace = ? AND substr(key, 1, ?) = ?",
			r.namespace, len(prefix), prefix)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete prefix %s: %w", prefix, err)}
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		return nil
	}, errCritical)
	if err != nil {
		return 0, unwrapCritical(err)
	}
	return deleted, nil
}

// exec runs a write query, retrying on sqlite lock errors
func (r *StateRepository) exec(ctx context.Context, op, query string, args ...any) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("%s: %w", op, err)}
		}
		return nil
	}, errCritical)
	return unwrapCritical(err)
}
