// Package store keeps process-wide application state: per-section article cache and user preferences.
// State lives in memory and is written through to a durable key-value Persister on every mutation.
package store

import "context"

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister

// Persister is a durable key-value storage of serialized state
type Persister interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) (map[string]string, error)
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}
