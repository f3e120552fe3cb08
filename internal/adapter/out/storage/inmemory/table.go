package inmemory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"learnql/internal/service"
	"learnql/pkg/pagination"
)

// table keeps rows by monotonically assigned ids. ids is sorted ascending.
type table[T any] struct {
	mu     sync.RWMutex
	ids    []int64
	rows   map[int64]T
	lastID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

// insert assigns the next id through setID. It fails with ErrConflict when
// conflicts reports a clash with an existing row.
func (t *table[T]) insert(row T, setID func(*T, int64), conflicts func(existing T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conflicts != nil {
		for _, id := range t.ids {
			if conflicts(t.rows[id]) {
				var zero T
				return zero, fmt.Errorf("%w: duplicate row", service.ErrConflict)
			}
		}
	}

	t.lastID++
	setID(&row, t.lastID)
	t.ids = append(t.ids, t.lastID)
	t.rows[t.lastID] = row
	return row, nil
}

func (t *table[T]) get(id int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return row, service.ErrNotFound
	}
	return row, nil
}

func (t *table[T]) update(id int64, apply func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, service.ErrNotFound
	}
	apply(&row)
	t.rows[id] = row
	return row, nil
}

// updateWhere applies apply to every row match accepts and returns how many
// rows changed.
func (t *table[T]) updateWhere(match func(T) bool, apply func(*T)) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for id, row := range t.rows {
		if !match(row) {
			continue
		}
		apply(&row)
		t.rows[id] = row
		n++
	}
	return n
}

func (t *table[T]) delete(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return service.ErrNotFound
	}
	delete(t.rows, id)
	if i, found := slices.BinarySearch(t.ids, id); found {
		t.ids = slices.Delete(t.ids, i, i+1)
	}
	return nil
}

// list walks the rows in w.Order and returns up to w.Limit rows inside the
// window that keep accepts.
func (t *table[T]) list(w pagination.Window, keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, min(max(w.Limit, 0), len(t.ids)))
	visit := func(id int64) bool {
		if len(out) >= w.Limit {
			return false
		}
		row := t.rows[id]
		if w.Matches(id) && (keep == nil || keep(row)) {
			out = append(out, row)
		}
		return true
	}

	if w.Order == pagination.OrderDesc {
		for i := len(t.ids) - 1; i >= 0; i-- {
			if !visit(t.ids[i]) {
				break
			}
		}
		return out
	}
	for _, id := range t.ids {
		if !visit(id) {
			break
		}
	}
	return out
}

// TxManager runs callbacks directly; the in-memory tables have no
// transactions.
type TxManager struct{}

var _ service.TxManager = TxManager{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
