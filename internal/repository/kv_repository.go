package repository

import "context"

// KeyValueStore is a flat string store. The settings store and the bookmark
// bar's local storage are both backed by one.
type KeyValueStore interface {
	// Get returns found=false when key has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error

	Keys(ctx context.Context) ([]string, error)
}
