package memory

import (
	"context"
	"sync"
)

type journalKey struct{}

// journal collects undo steps for the writes done inside one transaction.
type journal struct {
	undo []func()
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

// Transactor gives the in-memory store all-or-nothing writes by replaying
// undo steps in reverse when fn fails or panics. Transactions run one at a time.
type Transactor struct {
	mu sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested calls join the outer transaction.
	if _, ok := ctx.Value(journalKey{}).(*journal); ok {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	j := &journal{}
	committed := false
	defer func() {
		if !committed {
			j.rollback()
		}
	}()

	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		return err
	}
	committed = true
	return nil
}

// onRollback registers undo when ctx carries a transaction; otherwise it is a no-op.
func onRollback(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}
