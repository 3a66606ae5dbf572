// Package mongostore is the MongoDB implementation of the storage
// capability. Each entity type maps to one collection of bson documents
// keyed by an ObjectID-hex string stored as _id, so identifiers stay
// opaque strings end to end.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// Collection adapts one mongo.Collection to the generic store contract.
type Collection[T any] struct {
	coll   *mongo.Collection
	entity string
	getID  func(*T) string
	setID  func(*T, string)
}

// Compile-time interface verification.
var _ storage.Store[domain.User] = (*Collection[domain.User])(nil)

// NewCollection wraps a mongo collection for one entity type.
func NewCollection[T any](coll *mongo.Collection, entity string, getID func(*T) string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{
		coll:   coll,
		entity: entity,
		getID:  getID,
		setID:  setID,
	}
}

// FindByID retrieves a single document by id.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewNotFoundError(c.entity, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s store: find by id: %w", c.entity, err)
	}
	return &doc, nil
}

// FindAll retrieves one page of documents and the total collection count.
func (c *Collection[T]) FindAll(ctx context.Context, page storage.PageRequest) ([]*T, int64, error) {
	return c.find(ctx, bson.M{}, page)
}

// FindByField retrieves one page of documents whose field equals value.
// Mongo's equality filter already treats array fields as containment, which
// covers tag membership on posts.
func (c *Collection[T]) FindByField(ctx context.Context, field string, value any, page storage.PageRequest) ([]*T, int64, error) {
	return c.find(ctx, bson.M{field: value}, page)
}

func (c *Collection[T]) find(ctx context.Context, filter bson.M, page storage.PageRequest) ([]*T, int64, error) {
	total, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%s store: count: %w", c.entity, err)
	}

	opts := options.Find().
		SetSkip(int64(page.Offset) * int64(page.Size)).
		SetLimit(int64(page.Size))
	if page.Sort != "" {
		// Ties are broken by _id to keep page windows stable.
		opts = opts.SetSort(bson.D{{Key: page.Sort, Value: 1}, {Key: "_id", Value: 1}})
	}

	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%s store: find: %w", c.entity, err)
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("%s store: decode: %w", c.entity, err)
	}
	return docs, total, nil
}

// Save persists the document, assigning an ObjectID-hex id on first save.
func (c *Collection[T]) Save(ctx context.Context, entity *T) (*T, error) {
	id := c.getID(entity)
	if id == "" {
		id = primitive.NewObjectID().Hex()
		c.setID(entity, id)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, entity, opts); err != nil {
		return nil, fmt.Errorf("%s store: save: %w", c.entity, err)
	}
	return entity, nil
}

// DeleteByID removes the document. Absent ids are ignored.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	if _, err := c.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s store: delete: %w", c.entity, err)
	}
	return nil
}
