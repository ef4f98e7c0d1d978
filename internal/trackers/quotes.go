package trackers

import (
	"context"
	"strings"
	"time"

	"dayboard/internal/core"
	"dayboard/internal/storage"
)

// Quotes manages the quote rotation. An empty store is seeded with the
// default quote.
type Quotes struct {
	list *List[core.Quote]
}

func NewQuotes(kv storage.KV) *Quotes {
	col := storage.NewCollection(kv, storage.KeyQuotes, seedQuotes)
	return &Quotes{list: NewList(col, func(q core.Quote) string { return q.ID }, false)}
}

func (s *Quotes) List(ctx context.Context) ([]core.Quote, error) {
	return s.list.All(ctx)
}

func (s *Quotes) Add(ctx context.Context, text string) (core.Quote, error) {
	q := core.Quote{
		ID:        core.NewID(),
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := q.Validate(); err != nil {
		return core.Quote{}, err
	}
	if err := s.list.Add(ctx, q); err != nil {
		return core.Quote{}, err
	}
	return q, nil
}

func (s *Quotes) UpdateText(ctx context.Context, id, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return false, core.ErrEmptyText
	}
	return s.list.Update(ctx, id, func(q *core.Quote) {
		q.Text = text
	})
}

func (s *Quotes) Delete(ctx context.Context, id string) (bool, error) {
	return s.list.Remove(ctx, id)
}
