package config

import "context"

type storeKey struct{}

// WithStore returns a new context carrying the Store.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// StoreFromContext returns the Store from context, or nil.
func StoreFromContext(ctx context.Context) *Store {
	if s, ok := ctx.Value(storeKey{}).(*Store); ok {
		return s
	}
	return nil
}
