package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// Collection names, one per entity type.
const (
	collUsers     = "users"
	collPosts     = "posts"
	collComments  = "comments"
	collTags      = "tags"
	collLocations = "locations"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// NewStores creates the per-entity store bundle over one database.
func NewStores(db *mongo.Database) *storage.Stores {
	return &storage.Stores{
		Users: NewCollection(db.Collection(collUsers), domain.EntityUser,
			func(u *domain.User) string { return u.ID },
			func(u *domain.User, id string) { u.ID = id }),
		Posts: NewCollection(db.Collection(collPosts), domain.EntityPost,
			func(p *domain.Post) string { return p.ID },
			func(p *domain.Post, id string) { p.ID = id }),
		Comments: NewCollection(db.Collection(collComments), domain.EntityComment,
			func(c *domain.Comment) string { return c.ID },
			func(c *domain.Comment, id string) { c.ID = id }),
		Tags: NewCollection(db.Collection(collTags), domain.EntityTag,
			func(t *domain.Tag) string { return t.ID },
			func(t *domain.Tag, id string) { t.ID = id }),
		Locations: NewCollection(db.Collection(collLocations), domain.EntityLocation,
			func(l *domain.Location) string { return l.ID },
			func(l *domain.Location, id string) { l.ID = id }),
	}
}

// Backend is the lifecycle handle for the MongoDB backend.
type Backend struct {
	client *mongo.Client
}

// NewBackend wraps a connected client.
func NewBackend(client *mongo.Client) *Backend {
	return &Backend{client: client}
}

// Ping verifies the primary is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (b *Backend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
