// Package kv is the process-wide persistent key/value store the cakeshop
// stores are layered on. Values are opaque bytes; absence is reported as
// (nil, nil), never as an error.
package kv

import (
	"context"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// Update runs fn against a view of the store whose writes become
	// visible together when fn returns nil and are discarded otherwise.
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
