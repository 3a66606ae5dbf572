package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

const defaultTagSort = "name"

// TagService is the entity resolver for tags.
type TagService struct {
	tags   storage.Store[domain.Tag]
	logger zerolog.Logger
}

// NewTagService creates a tag service over the given store.
func NewTagService(tags storage.Store[domain.Tag], logger zerolog.Logger) *TagService {
	return &TagService{
		tags:   tags,
		logger: logger.With().Str("component", "tag-service").Logger(),
	}
}

// List returns one page of tags in the standard envelope.
func (s *TagService) List(ctx context.Context, p PageParams) (*domain.Page[*domain.Tag], error) {
	req, page := Normalize(p, defaultTagSort)
	tags, total, err := s.tags.FindAll(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return domain.NewPage(tags, total, page, req.Size), nil
}

// Get retrieves a single tag by id.
func (s *TagService) Get(ctx context.Context, id string) (*domain.Tag, error) {
	return s.tags.FindByID(ctx, id)
}

// Create validates the input and persists a new tag.
func (s *TagService) Create(ctx context.Context, in domain.TagCreate) (*domain.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)

	if err := checkInput(in); err != nil {
		return nil, err
	}

	saved, err := s.tags.Save(ctx, &domain.Tag{Name: in.Name})
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.logger.Debug().Str("tag_id", saved.ID).Str("name", saved.Name).Msg("tag created")
	return saved, nil
}

// Update applies a merge patch to an existing tag.
func (s *TagService) Update(ctx context.Context, id string, patch domain.TagPatch) (*domain.Tag, error) {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		tag.Name = *patch.Name
	}

	saved, err := s.tags.Save(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("update tag %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes a tag by id. Deleting an absent id is not an error.
func (s *TagService) Delete(ctx context.Context, id string) error {
	if err := s.tags.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete tag %s: %w", id, err)
	}
	return nil
}
