package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by every storage adapter when no record matches.
var ErrNotFound = errors.New("record not found")

// Transactor runs fn as one atomic unit. Repositories called with the ctx
// passed to fn take part in the same unit.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Direct runs fn without any transactional guarantee.
type Direct struct{}

func (Direct) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
