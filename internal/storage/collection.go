package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Collection is a typed view over one KV key holding a JSON array. Load
// parses-or-defaults, Save serializes the whole slice back; there is no
// partial update, matching the per-tracker replacement contract.
type Collection[T any] struct {
	kv   KV
	key  string
	seed func() []T
}

// NewCollection creates a collection over the given key. seed may be nil;
// it provides the default record set for a key that has never been written.
func NewCollection[T any](kv KV, key string, seed func() []T) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, seed: seed}
}

func (c *Collection[T]) Key() string { return c.key }

// Load returns the stored records. A missing key yields the seed set (and
// persists it, so later loads are stable); malformed JSON falls back to the
// seed set rather than surfacing an error.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", c.key, err)
	}
	if !found {
		items := c.defaults()
		if len(items) > 0 {
			if err := c.Save(ctx, items); err != nil {
				return nil, err
			}
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.WarnContext(ctx, "Discarding malformed stored collection",
			"key", c.key, "error", err)
		return c.defaults(), nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the stored collection with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %q: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) defaults() []T {
	if c.seed != nil {
		return c.seed()
	}
	return []T{}
}

// Document is the single-object counterpart of Collection, used for
// composite tracker state (the reading tracker persists one object).
type Document[T any] struct {
	kv       KV
	key      string
	defaults func() T
}

func NewDocument[T any](kv KV, key string, defaults func() T) *Document[T] {
	return &Document[T]{kv: kv, key: key, defaults: defaults}
}

// Load unmarshals the stored document over the default value, so fields
// missing from older stored shapes keep their defaults.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	doc := d.defaults()
	raw, found, err := d.kv.Get(ctx, d.key)
	if err != nil {
		return doc, fmt.Errorf("load %q: %w", d.key, err)
	}
	if !found {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.WarnContext(ctx, "Discarding malformed stored document",
			"key", d.key, "error", err)
		return d.defaults(), nil
	}
	return doc, nil
}

func (d *Document[T]) Save(ctx context.Context, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", d.key, err)
	}
	if err := d.kv.Put(ctx, d.key, raw); err != nil {
		return fmt.Errorf("save %q: %w", d.key, err)
	}
	return nil
}
