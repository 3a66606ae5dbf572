package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

const defaultCommentSort = "publishDate"

// CommentService is the entity resolver for comments. Owner and post
// references are required on the input but not verified against storage;
// broken references surface at resolution time.
type CommentService struct {
	comments storage.Store[domain.Comment]
	logger   zerolog.Logger
}

// NewCommentService creates a comment service over the given store.
func NewCommentService(comments storage.Store[domain.Comment], logger zerolog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		logger:   logger.With().Str("component", "comment-service").Logger(),
	}
}

// List returns one page of comments in the standard envelope.
func (s *CommentService) List(ctx context.Context, p PageParams) (*domain.Page[*domain.Comment], error) {
	req, page := Normalize(p, defaultCommentSort)
	comments, total, err := s.comments.FindAll(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return domain.NewPage(comments, total, page, req.Size), nil
}

// ListByPost returns one page of the comments attached to a post.
func (s *CommentService) ListByPost(ctx context.Context, postID string, p PageParams) (*domain.Page[*domain.Comment], error) {
	req, page := Normalize(p, defaultCommentSort)
	comments, total, err := s.comments.FindByField(ctx, storage.FieldPostID, postID, req)
	if err != nil {
		return nil, fmt.Errorf("list comments by post %s: %w", postID, err)
	}
	return domain.NewPage(comments, total, page, req.Size), nil
}

// ListByOwner returns one page of the comments written by a user.
func (s *CommentService) ListByOwner(ctx context.Context, ownerID string, p PageParams) (*domain.Page[*domain.Comment], error) {
	req, page := Normalize(p, defaultCommentSort)
	comments, total, err := s.comments.FindByField(ctx, storage.FieldOwnerID, ownerID, req)
	if err != nil {
		return nil, fmt.Errorf("list comments by owner %s: %w", ownerID, err)
	}
	return domain.NewPage(comments, total, page, req.Size), nil
}

// Get retrieves a single comment by id.
func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.comments.FindByID(ctx, id)
}

// Create validates the input and persists a new comment with a
// server-assigned publish date.
func (s *CommentService) Create(ctx context.Context, in domain.CommentCreate) (*domain.Comment, error) {
	in.Message = strings.TrimSpace(in.Message)
	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.PostID = strings.TrimSpace(in.PostID)

	if err := checkInput(in); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Message:     in.Message,
		OwnerID:     in.OwnerID,
		PostID:      in.PostID,
		PublishDate: nowTimestamp(),
	}

	saved, err := s.comments.Save(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.Debug().Str("comment_id", saved.ID).Str("post_id", saved.PostID).Msg("comment created")
	return saved, nil
}

// Update applies a merge patch to an existing comment. The publish date is
// never touched by update.
func (s *CommentService) Update(ctx context.Context, id string, patch domain.CommentPatch) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Message != nil {
		comment.Message = *patch.Message
	}
	if patch.OwnerID != nil {
		comment.OwnerID = *patch.OwnerID
	}
	if patch.PostID != nil {
		comment.PostID = *patch.PostID
	}

	saved, err := s.comments.Save(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("update comment %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes a comment by id. Deleting an absent id is not an error.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.comments.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete comment %s: %w", id, err)
	}
	return nil
}
