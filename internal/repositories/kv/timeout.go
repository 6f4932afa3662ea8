package kv

import (
	"context"
	"time"
)

// timeoutStore bounds every call on the wrapped store.
type timeoutStore struct {
	next    Store
	timeout time.Duration
}

// WithTimeout returns s with each operation limited to d. A non-positive d
// returns s unchanged. Inside Update the bound covers the whole callback.
func WithTimeout(s Store, d time.Duration) Store {
	if d <= 0 {
		return s
	}
	return &timeoutStore{next: s, timeout: d}
}

func (t *timeoutStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Get(ctx, key)
}

func (t *timeoutStore) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Put(ctx, key, value)
}

func (t *timeoutStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Delete(ctx, key)
}

func (t *timeoutStore) List(ctx context.Context) (map[string][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.List(ctx)
}

func (t *timeoutStore) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Clear(ctx)
}

func (t *timeoutStore) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Update(ctx, fn)
}
