package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage/memstore"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memstore.NewStores().Comments, zerolog.Nop())

	t.Run("stamps publish date", func(t *testing.T) {
		comment, err := svc.Create(ctx, domain.CommentCreate{
			Message: "nice shot",
			OwnerID: "u1",
			PostID:  "p1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
		assert.NotEmpty(t, comment.PublishDate)
	})

	t.Run("references are accepted without existence checks", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CommentCreate{
			Message: "orphaned",
			OwnerID: "no-such-user",
			PostID:  "no-such-post",
		})
		assert.NoError(t, err)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		tests := []struct {
			name      string
			in        domain.CommentCreate
			wantField string
		}{
			{"missing message", domain.CommentCreate{OwnerID: "u1", PostID: "p1"}, "message"},
			{"missing owner", domain.CommentCreate{Message: "hi", PostID: "p1"}, "ownerId"},
			{"missing post", domain.CommentCreate{Message: "hi", OwnerID: "u1"}, "postId"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tt.in)
				require.ErrorIs(t, err, domain.ErrInvalidInput)

				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
			})
		}
	})
}

func TestCommentService_ListByPost(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memstore.NewStores().Comments, zerolog.Nop())

	for _, in := range []domain.CommentCreate{
		{Message: "first", OwnerID: "u1", PostID: "p1"},
		{Message: "second", OwnerID: "u2", PostID: "p1"},
		{Message: "elsewhere", OwnerID: "u1", PostID: "p2"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := svc.ListByPost(ctx, "p1", PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Data, 2)

	page, err = svc.ListByOwner(ctx, "u1", PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

func TestCommentService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(memstore.NewStores().Comments, zerolog.Nop())

	created, err := svc.Create(ctx, domain.CommentCreate{Message: "hi", OwnerID: "u1", PostID: "p1"})
	require.NoError(t, err)

	msg := "edited"
	updated, err := svc.Update(ctx, created.ID, domain.CommentPatch{Message: &msg})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Message)
	assert.Equal(t, created.PublishDate, updated.PublishDate)
	assert.Equal(t, created.OwnerID, updated.OwnerID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, svc.Delete(ctx, created.ID))
}
