// Package main loads a small demo dataset into the configured document
// store. Entities are created through the service layer so seeded data
// passes the same validation as API traffic.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/opensocial/social-data-service/internal/config"
	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/observability"
	"github.com/opensocial/social-data-service/internal/service"
	"github.com/opensocial/social-data-service/internal/storage/factory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	logger = logger.With().Str("component", "seed").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stores, backend, err := factory.NewStores(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to storage: %w", err)
	}
	defer func() {
		if closeErr := backend.Close(context.Background()); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close storage backend")
		}
	}()

	users := service.NewUserService(stores.Users, logger)
	posts := service.NewPostService(stores.Posts, stores.Users, logger)
	comments := service.NewCommentService(stores.Comments, logger)
	tags := service.NewTagService(stores.Tags, logger)
	locations := service.NewLocationService(stores.Locations, logger)

	office, err := locations.Create(ctx, domain.LocationCreate{
		Street:   "9 Rue du Progres",
		City:     "Lyon",
		State:    "Auvergne-Rhone-Alpes",
		Country:  "France",
		Timezone: "+01:00",
	})
	if err != nil {
		return fmt.Errorf("seed location: %w", err)
	}

	seedUsers := []domain.UserCreate{
		{
			Title:      "ms",
			FirstName:  "Ann",
			LastName:   "Lee",
			Gender:     "female",
			Email:      "ann.lee@example.com",
			Password:   "changeme1",
			LocationID: office.ID,
		},
		{
			Title:     "mr",
			FirstName: "Ravi",
			LastName:  "Patel",
			Gender:    "male",
			Email:     "ravi.patel@example.com",
			Password:  "changeme2",
		},
		{
			FirstName:   "Mia",
			LastName:    "Novak",
			Email:       "mia.novak@example.com",
			Password:    "changeme3",
			DateOfBirth: "1993-04-17",
		},
	}

	created := make([]*domain.User, 0, len(seedUsers))
	for _, in := range seedUsers {
		u, err := users.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", in.Email, err)
		}
		created = append(created, u)
	}

	for _, name := range []string{"travel", "food", "photography"} {
		if _, err := tags.Create(ctx, domain.TagCreate{Name: name}); err != nil {
			return fmt.Errorf("seed tag %s: %w", name, err)
		}
	}

	seedPosts := []domain.PostCreate{
		{Text: "Sunset over the old harbor", Tags: []string{"travel", "photography"}, OwnerID: created[0].ID},
		{Text: "Street food tour, day two", Tags: []string{"food", "travel"}, OwnerID: created[1].ID},
		{Text: "First roll of film developed", Tags: []string{"photography"}, OwnerID: created[2].ID},
	}

	var firstPost *domain.Post
	for _, in := range seedPosts {
		p, err := posts.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		if firstPost == nil {
			firstPost = p
		}
	}

	seedComments := []domain.CommentCreate{
		{Message: "Stunning colors!", OwnerID: created[1].ID, PostID: firstPost.ID},
		{Message: "Where was this taken?", OwnerID: created[2].ID, PostID: firstPost.ID},
	}
	for _, in := range seedComments {
		if _, err := comments.Create(ctx, in); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
	}

	logger.Info().
		Int("users", len(seedUsers)).
		Int("posts", len(seedPosts)).
		Int("comments", len(seedComments)).
		Msg("demo dataset loaded")
	return nil
}
