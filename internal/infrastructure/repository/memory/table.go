package memory

import "sync"

// table keeps rows by id in insertion order.
type table[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	orders []string
}

func newTable[T any](rows []T, idOf func(T) string) *table[T] {
	t := &table[T]{
		items:  make(map[string]T, len(rows)),
		orders: make([]string, 0, len(rows)),
	}
	for _, row := range rows {
		t.put(idOf(row), row)
	}
	return t
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.items[id]
	return row, ok
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.orders))
	for _, id := range t.orders {
		row := t.items[id]
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) upsert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.put(id, row)
}

func (t *table[T]) put(id string, row T) {
	if _, ok := t.items[id]; !ok {
		t.orders = append(t.orders, id)
	}
	t.items[id] = row
}

func (t *table[T]) remove(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := t.items[id]; ok {
			delete(t.items, id)
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}

	kept := t.orders[:0]
	for _, id := range t.orders {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	t.orders = kept
}
