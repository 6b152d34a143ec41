package port

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// KVStore persists small user-owned values such as notes and checkbox
// flags that the dashboard used to keep in browser storage. Keys are
// namespaced strings; values are opaque.
type KVStore interface {
	// Get returns the value of key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put creates or replaces key.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns every entry whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string]string, error)
}

// ErrInvalidArgument is returned for malformed scopes, ids or queries.
var ErrInvalidArgument = errors.New("invalid argument")
