package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// ReferenceResolver follows stored id references across entities: post and
// comment owners, comment posts, and user locations. Mandatory references
// that are blank, dangling, or point at incomplete entities resolve to a
// ResolutionError; optional references resolve to nil instead.
type ReferenceResolver struct {
	users     storage.Store[domain.User]
	posts     storage.Store[domain.Post]
	locations storage.Store[domain.Location]
	logger    zerolog.Logger
}

// NewReferenceResolver creates a resolver over the given stores.
func NewReferenceResolver(stores *storage.Stores, logger zerolog.Logger) *ReferenceResolver {
	return &ReferenceResolver{
		users:     stores.Users,
		posts:     stores.Posts,
		locations: stores.Locations,
		logger:    logger.With().Str("component", "reference-resolver").Logger(),
	}
}

// userComplete reports whether a user carries the minimum identity needed
// to stand in as an owner.
func userComplete(u *domain.User) bool {
	return u.FirstName != "" && u.LastName != ""
}

// resolveUser fetches an owner reference. The field name only feeds the
// error detail.
func (r *ReferenceResolver) resolveUser(ctx context.Context, entity, field, refID string) (*domain.User, error) {
	if refID == "" {
		return nil, domain.NewResolutionError(entity, field, refID, domain.ReasonMissingReference)
	}
	user, err := r.users.FindByID(ctx, refID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Warn().Str("entity", entity).Str("field", field).Str("ref_id", refID).Msg("dangling owner reference")
			return nil, domain.NewResolutionError(entity, field, refID, domain.ReasonDanglingReference)
		}
		return nil, err
	}
	if !userComplete(user) {
		return nil, domain.NewResolutionError(entity, field, refID, domain.ReasonIncompleteReference)
	}
	return user, nil
}

// PostOwner resolves the owning user of a post. The reference is mandatory.
func (r *ReferenceResolver) PostOwner(ctx context.Context, post *domain.Post) (*domain.User, error) {
	return r.resolveUser(ctx, domain.EntityPost, "ownerId", post.OwnerID)
}

// CommentOwner resolves the user who wrote a comment. The reference is
// mandatory.
func (r *ReferenceResolver) CommentOwner(ctx context.Context, comment *domain.Comment) (*domain.User, error) {
	return r.resolveUser(ctx, domain.EntityComment, "ownerId", comment.OwnerID)
}

// CommentPost resolves the post a comment is attached to. The reference is
// mandatory.
func (r *ReferenceResolver) CommentPost(ctx context.Context, comment *domain.Comment) (*domain.Post, error) {
	if comment.PostID == "" {
		return nil, domain.NewResolutionError(domain.EntityComment, "postId", "", domain.ReasonMissingReference)
	}
	post, err := r.posts.FindByID(ctx, comment.PostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Warn().Str("comment_id", comment.ID).Str("post_id", comment.PostID).Msg("dangling post reference")
			return nil, domain.NewResolutionError(domain.EntityComment, "postId", comment.PostID, domain.ReasonDanglingReference)
		}
		return nil, err
	}
	return post, nil
}

// UserLocation resolves a user's home location. The reference is optional:
// a blank location id resolves to nil, and a dangling one resolves to nil
// with a warning rather than an error.
func (r *ReferenceResolver) UserLocation(ctx context.Context, user *domain.User) (*domain.Location, error) {
	if user.LocationID == "" {
		return nil, nil
	}
	loc, err := r.locations.FindByID(ctx, user.LocationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.Warn().Str("user_id", user.ID).Str("location_id", user.LocationID).Msg("dangling location reference")
			return nil, nil
		}
		return nil, err
	}
	return loc, nil
}
