// Package trackers implements the list-CRUD trackers: habits, moods, todos,
// reminders, journal entries and quotes. Every tracker is a thin service
// over one storage.Collection, mutating by whole-collection replacement.
package trackers

import (
	"context"
	"sync"

	"dayboard/internal/storage"
)

// List is the shared add/update/delete machinery. A mutex serializes
// read-modify-write cycles so concurrent handlers cannot lose updates.
type List[T any] struct {
	mu      sync.Mutex
	col     *storage.Collection[T]
	id      func(T) string
	prepend bool
}

func NewList[T any](col *storage.Collection[T], id func(T) string, prepend bool) *List[T] {
	return &List[T]{col: col, id: id, prepend: prepend}
}

// All returns the stored records.
func (l *List[T]) All(ctx context.Context) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.col.Load(ctx)
}

// Add appends (or prepends) the record and persists the collection.
func (l *List[T]) Add(ctx context.Context, item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.col.Load(ctx)
	if err != nil {
		return err
	}
	if l.prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}
	return l.col.Save(ctx, items)
}

// Update applies the mutation to the record with the given id and persists.
// A missing id is a no-op reported through found=false.
func (l *List[T]) Update(ctx context.Context, id string, apply func(*T)) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.col.Load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if l.id(items[i]) == id {
			apply(&items[i])
			return true, l.col.Save(ctx, items)
		}
	}
	return false, nil
}

// Remove deletes the record with the given id and persists.
func (l *List[T]) Remove(ctx context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.col.Load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if l.id(items[i]) == id {
			items = append(items[:i], items[i+1:]...)
			return true, l.col.Save(ctx, items)
		}
	}
	return false, nil
}

// Replace swaps the whole collection. Used by callers that recompute
// derived fields across several records at once.
func (l *List[T]) Replace(ctx context.Context, items []T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.col.Save(ctx, items)
}
