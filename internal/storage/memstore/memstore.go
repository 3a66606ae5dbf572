// Package memstore is an in-memory implementation of the storage
// capability. It backs the "memory" database backend for local development
// and gives tests a store with the same contract as the MongoDB adapter,
// including sort-field errors and idempotent deletes.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// Options wires entity-specific behavior into a generic Collection.
type Options[T any] struct {
	// Entity is the entity name used in not-found errors.
	Entity string

	// GetID and SetID access the entity's opaque string id.
	GetID func(*T) string
	SetID func(*T, string)

	// SortFields maps a sortable document field to its comparator.
	// Requesting any other sort field is a storage error.
	SortFields map[string]func(a, b *T) int

	// MatchFields maps a filterable document field to its equality (or
	// containment) predicate. Requesting any other field is a storage error.
	MatchFields map[string]func(*T, any) bool
}

// Collection is an in-memory document collection. Documents are stored by
// value; reads and writes copy at the boundary so callers never share
// memory with the store.
type Collection[T any] struct {
	mu   sync.RWMutex
	docs map[string]T
	opts Options[T]
}

// Compile-time interface verification.
var _ storage.Store[domain.User] = (*Collection[domain.User])(nil)

// NewCollection creates an empty in-memory collection.
func NewCollection[T any](opts Options[T]) *Collection[T] {
	return &Collection[T]{
		docs: make(map[string]T),
		opts: opts,
	}
}

// FindByID retrieves a single document by id.
func (c *Collection[T]) FindByID(_ context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, domain.NewNotFoundError(c.opts.Entity, id)
	}
	return &doc, nil
}

// FindAll retrieves one page of documents and the total collection count.
func (c *Collection[T]) FindAll(_ context.Context, page storage.PageRequest) ([]*T, int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.page(c.snapshot(), page)
}

// FindByField retrieves one page of documents whose field matches value.
func (c *Collection[T]) FindByField(_ context.Context, field string, value any, page storage.PageRequest) ([]*T, int64, error) {
	match, ok := c.opts.MatchFields[field]
	if !ok {
		return nil, 0, fmt.Errorf("%s store: unknown filter field %q", c.opts.Entity, field)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []T
	for _, doc := range c.snapshot() {
		if match(&doc, value) {
			matched = append(matched, doc)
		}
	}
	return c.page(matched, page)
}

// Save persists the document, assigning an id on first save.
func (c *Collection[T]) Save(_ context.Context, entity *T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.opts.GetID(entity)
	if id == "" {
		id = strings.ReplaceAll(uuid.NewString(), "-", "")
		c.opts.SetID(entity, id)
	}

	c.docs[id] = *entity
	saved := c.docs[id]
	return &saved, nil
}

// DeleteByID removes the document. Absent ids are ignored.
func (c *Collection[T]) DeleteByID(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.docs, id)
	return nil
}

// snapshot copies all documents in id order so paging without an explicit
// sort stays deterministic. Callers must hold at least the read lock.
func (c *Collection[T]) snapshot() []T {
	ids := make([]string, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	docs := make([]T, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, c.docs[id])
	}
	return docs
}

// page sorts and windows the matched documents per the request.
func (c *Collection[T]) page(docs []T, page storage.PageRequest) ([]*T, int64, error) {
	if page.Sort != "" {
		cmp, ok := c.opts.SortFields[page.Sort]
		if !ok {
			return nil, 0, fmt.Errorf("%s store: unknown sort field %q", c.opts.Entity, page.Sort)
		}
		slices.SortStableFunc(docs, func(a, b T) int {
			return cmp(&a, &b)
		})
	}

	total := int64(len(docs))
	start := page.Offset * page.Size
	if start >= len(docs) {
		return nil, total, nil
	}
	end := min(start+page.Size, len(docs))

	out := make([]*T, 0, end-start)
	for i := start; i < end; i++ {
		doc := docs[i]
		out = append(out, &doc)
	}
	return out, total, nil
}
