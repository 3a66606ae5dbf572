package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// defaultPostSort orders post listings when the client names no sort field.
const defaultPostSort = "publishDate"

// PostService is the entity resolver for posts. Creating a post is the one
// write path that enforces referential integrity: the owning user must
// exist at creation time.
type PostService struct {
	posts  storage.Store[domain.Post]
	users  storage.Store[domain.User]
	logger zerolog.Logger
}

// NewPostService creates a post service over the given stores.
func NewPostService(posts storage.Store[domain.Post], users storage.Store[domain.User], logger zerolog.Logger) *PostService {
	return &PostService{
		posts:  posts,
		users:  users,
		logger: logger.With().Str("component", "post-service").Logger(),
	}
}

// List returns one page of posts in the standard envelope.
func (s *PostService) List(ctx context.Context, p PageParams) (*domain.Page[*domain.Post], error) {
	req, page := Normalize(p, defaultPostSort)
	posts, total, err := s.posts.FindAll(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return domain.NewPage(posts, total, page, req.Size), nil
}

// ListByOwner returns one page of the posts owned by a user.
func (s *PostService) ListByOwner(ctx context.Context, ownerID string, p PageParams) (*domain.Page[*domain.Post], error) {
	req, page := Normalize(p, defaultPostSort)
	posts, total, err := s.posts.FindByField(ctx, storage.FieldOwnerID, ownerID, req)
	if err != nil {
		return nil, fmt.Errorf("list posts by owner %s: %w", ownerID, err)
	}
	return domain.NewPage(posts, total, page, req.Size), nil
}

// ListByTag returns one page of the posts carrying a tag.
func (s *PostService) ListByTag(ctx context.Context, tag string, p PageParams) (*domain.Page[*domain.Post], error) {
	req, page := Normalize(p, defaultPostSort)
	posts, total, err := s.posts.FindByField(ctx, storage.FieldTags, tag, req)
	if err != nil {
		return nil, fmt.Errorf("list posts by tag %s: %w", tag, err)
	}
	return domain.NewPage(posts, total, page, req.Size), nil
}

// Get retrieves a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Create validates the input, verifies the owning user exists, and
// persists a new post. The publish date is stamped server-side and likes
// always start at zero regardless of client input.
func (s *PostService) Create(ctx context.Context, in domain.PostCreate) (*domain.Post, error) {
	in.Text = strings.TrimSpace(in.Text)
	in.OwnerID = strings.TrimSpace(in.OwnerID)

	if err := checkInput(in); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("ownerId", "must reference an existing user")
		}
		return nil, fmt.Errorf("verify post owner %s: %w", in.OwnerID, err)
	}

	post := &domain.Post{
		Text:        in.Text,
		Image:       in.Image,
		Tags:        in.Tags,
		OwnerID:     in.OwnerID,
		PublishDate: nowTimestamp(),
		Likes:       0,
	}

	saved, err := s.posts.Save(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Debug().Str("post_id", saved.ID).Str("owner_id", saved.OwnerID).Msg("post created")
	return saved, nil
}

// Update applies a merge patch to an existing post. The publish date and
// like counter are never touched by update, and a patched ownerId is not
// re-verified against the user collection.
func (s *PostService) Update(ctx context.Context, id string, patch domain.PostPatch) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Text != nil {
		post.Text = *patch.Text
	}
	if patch.Image != nil {
		post.Image = *patch.Image
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
	}
	if patch.OwnerID != nil {
		post.OwnerID = *patch.OwnerID
	}

	saved, err := s.posts.Save(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes a post by id. Deleting an absent id is not an error, and
// comments referencing the post are left in place.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}
