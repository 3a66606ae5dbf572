// Package factory selects the storage backend from configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/opensocial/social-data-service/internal/config"
	"github.com/opensocial/social-data-service/internal/storage"
	"github.com/opensocial/social-data-service/internal/storage/memstore"
	"github.com/opensocial/social-data-service/internal/storage/mongostore"
)

// NewStores creates the store bundle and its lifecycle handle for the
// configured backend.
func NewStores(ctx context.Context, cfg *config.DatabaseConfig) (*storage.Stores, storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		client, err := mongostore.Connect(ctx, cfg.URI, cfg.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		return mongostore.NewStores(client.Database(cfg.Name)), mongostore.NewBackend(client), nil
	case config.BackendMemory:
		return memstore.NewStores(), memstore.Backend{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown database backend: %q", cfg.Backend)
	}
}
