package trackers

import (
	"context"
	"strings"
	"time"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

// Todos manages the to-do list. New items are prepended, matching the
// newest-first presentation order.
type Todos struct {
	list *List[core.Todo]
}

func NewTodos(kv storage.KV) *Todos {
	col := storage.NewCollection[core.Todo](kv, storage.KeyTodos, nil)
	return &Todos{list: NewList(col, func(t core.Todo) string { return t.ID }, true)}
}

func (s *Todos) List(ctx context.Context) ([]core.Todo, error) {
	return s.list.All(ctx)
}

func (s *Todos) Add(ctx context.Context, text string) (core.Todo, error) {
	todo := core.Todo{
		ID:        core.NewID(),
		Text:      strings.TrimSpace(text),
		Completed: false,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := todo.Validate(); err != nil {
		return core.Todo{}, err
	}
	if err := s.list.Add(ctx, todo); err != nil {
		return core.Todo{}, err
	}
	return todo, nil
}

// Toggle flips the completed flag.
func (s *Todos) Toggle(ctx context.Context, id string) (bool, error) {
	return s.list.Update(ctx, id, func(t *core.Todo) {
		t.Completed = !t.Completed
	})
}

// UpdateText replaces the item text; blank text is rejected before any
// state changes.
func (s *Todos) UpdateText(ctx context.Context, id, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, core.ErrEmptyText
	}
	return s.list.Update(ctx, id, func(t *core.Todo) {
		t.Text = text
	})
}

func (s *Todos) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}
