// Package ports defines the driven-side interfaces of the abacus service and
// the reusable contract suites their adapters must pass.
package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is not present.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores conversion results keyed by their input. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns the cached value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous entry.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
