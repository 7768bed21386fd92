// Package metadata implements the durable key/value storage the client keeps
// between runs: session tokens, the serialized user record and the dark-mode
// preference. Nothing else is persisted.
package metadata

import "context"

// Repository is a small key/value store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
