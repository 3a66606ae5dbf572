// Package storage defines the document-store capability consumed by the
// service layer.
//
// The store is schemaless: there is no native join operator and no
// referential integrity. Each entity type lives in its own collection and
// is addressed by an opaque string identifier assigned on first save.
// Implementations live in the memstore and mongostore subpackages; the
// factory package selects one from configuration.
//
// All implementations are safe for concurrent use. Methods return domain
// errors: FindByID wraps domain.ErrNotFound when the id is absent, and an
// unknown sort or filter field surfaces as a plain storage error,
// propagated unchanged to the caller.
package storage

import (
	"context"

	"github.com/opensocial/social-data-service/internal/domain"
)

// Document field names used for equality-filtered queries.
const (
	FieldOwnerID = "ownerId"
	FieldPostID  = "postId"
	FieldTags    = "tags"
)

// PageRequest is the storage-layer paging window. Offset is a zero-based
// page index, not an item offset: implementations skip Offset*Size items.
// Sort names a document field to order by ascending; empty means the
// implementation's natural order.
type PageRequest struct {
	Offset int
	Size   int
	Sort   string
}

// Store is the per-entity capability surface of the document store.
type Store[T any] interface {
	// FindByID retrieves a single document by id.
	// Returns an error wrapping domain.ErrNotFound if the id is absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindAll retrieves one page of documents and the total count of the
	// collection. The total reflects all documents regardless of the window.
	FindAll(ctx context.Context, page PageRequest) ([]*T, int64, error)

	// FindByField retrieves one page of documents whose field equals value,
	// with the total count of all matches. For sequence-valued fields the
	// match is containment.
	FindByField(ctx context.Context, field string, value any, page PageRequest) ([]*T, int64, error)

	// Save persists the document, assigning an id on first save. An entity
	// that already carries an id is replaced wholesale.
	Save(ctx context.Context, entity *T) (*T, error)

	// DeleteByID removes the document. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id string) error
}

// Stores bundles the per-entity stores handed to the service layer.
type Stores struct {
	Users     Store[domain.User]
	Posts     Store[domain.Post]
	Comments  Store[domain.Comment]
	Tags      Store[domain.Tag]
	Locations Store[domain.Location]
}

// Backend is the lifecycle handle for a configured store backend.
type Backend interface {
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
