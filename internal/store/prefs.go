package store

import "context"

// PrefStore is the scalar key-value persistence interface consumed by the
// learning engines. Getters return the supplied default when the key is
// absent; they return the default together with a non-nil error when the
// backend fails or the stored type does not match, so callers can log and
// carry on with documented initial state.
//
// Writes accumulate until Commit is called. Implementations must be safe for
// concurrent use, but each key namespace is owned by exactly one engine and
// no other component may write it.
type PrefStore interface {
	// GetInt retrieves an integer value, or def when the key is missing.
	GetInt(ctx context.Context, key string, def int) (int, error)

	// SetInt stores an integer value.
	SetInt(ctx context.Context, key string, value int) error

	// GetInt64 retrieves a 64-bit integer value, or def when the key is missing.
	GetInt64(ctx context.Context, key string, def int64) (int64, error)

	// SetInt64 stores a 64-bit integer value.
	SetInt64(ctx context.Context, key string, value int64) error

	// GetFloat64 retrieves a float value, or def when the key is missing.
	GetFloat64(ctx context.Context, key string, def float64) (float64, error)

	// SetFloat64 stores a float value.
	SetFloat64(ctx context.Context, key string, value float64) error

	// GetString retrieves a string value, or def when the key is missing.
	GetString(ctx context.Context, key string, def string) (string, error)

	// SetString stores a string value.
	SetString(ctx context.Context, key string, value string) error

	// GetStringSet retrieves a string set, or def when the key is missing.
	// The returned slice is a copy; mutating it does not affect the store.
	GetStringSet(ctx context.Context, key string, def []string) ([]string, error)

	// SetStringSet stores a string set. Duplicates are collapsed and order
	// is not preserved.
	SetStringSet(ctx context.Context, key string, value []string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Commit flushes pending writes to the backend. Engines call this once
	// per mutation after writing all keys of a transition.
	Commit(ctx context.Context) error
}
