package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"genefit/internal/ports/store"
)

var (
	errIDRequired    = errors.New("id required")
	errAlreadyExists = errors.New("record already exists")
)

type entry[T any] struct {
	row T
	seq uint64 // insertion order, breaks ties when sorting
}

// table is the map-backed row store shared by every repository in this package.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[string]entry[T]
	next uint64
	id   func(T) string
}

func newTable[T any](id func(T) string) *table[T] {
	return &table[T]{
		rows: make(map[string]entry[T]),
		id:   id,
	}
}

func (t *table[T]) insert(ctx context.Context, row T) error {
	id := t.id(row)
	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return errAlreadyExists
	}
	t.next++
	t.rows[id] = entry[T]{row: row, seq: t.next}

	onRollback(ctx, func() {
		t.mu.Lock()
		delete(t.rows, id)
		t.mu.Unlock()
	})
	return nil
}

// update overwrites the row with the same id; last write wins.
func (t *table[T]) update(ctx context.Context, row T) error {
	id := t.id(row)
	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	prev, exists := t.rows[id]
	if !exists {
		return store.ErrNotFound
	}
	t.rows[id] = entry[T]{row: row, seq: prev.seq}

	onRollback(ctx, func() {
		t.mu.Lock()
		t.rows[id] = prev
		t.mu.Unlock()
	})
	return nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return e.row, nil
}

// selectRows returns the rows accepted by keep, sorted with less.
// Rows less considers equal come out newest insert first.
func (t *table[T]) selectRows(keep func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	matched := make([]entry[T], 0)
	for _, e := range t.rows {
		if keep == nil || keep(e.row) {
			matched = append(matched, e)
		}
	}
	t.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if less != nil {
			if less(a.row, b.row) {
				return true
			}
			if less(b.row, a.row) {
				return false
			}
		}
		return a.seq > b.seq
	})

	out := make([]T, len(matched))
	for i, e := range matched {
		out[i] = e.row
	}
	return out
}

// first returns the first row of selectRows, or store.ErrNotFound.
func (t *table[T]) first(keep func(T) bool, less func(a, b T) bool) (T, error) {
	rows := t.selectRows(keep, less)
	if len(rows) == 0 {
		var zero T
		return zero, store.ErrNotFound
	}
	return rows[0], nil
}

func newestFirst(a, b time.Time) bool { return a.After(b) }
