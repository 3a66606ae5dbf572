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

func TestReferenceResolver_PostOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves an existing owner", func(t *testing.T) {
		stores := memstore.NewStores()
		resolver := NewReferenceResolver(stores, zerolog.Nop())

		owner, err := stores.Users.Save(ctx, &domain.User{FirstName: "Ann", LastName: "Lee", Email: "a@example.com"})
		require.NoError(t, err)

		got, err := resolver.PostOwner(ctx, &domain.Post{OwnerID: owner.ID})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.ID)
	})

	t.Run("missing reference", func(t *testing.T) {
		resolver := NewReferenceResolver(memstore.NewStores(), zerolog.Nop())

		_, err := resolver.PostOwner(ctx, &domain.Post{})
		require.ErrorIs(t, err, domain.ErrResolutionFailed)

		var re *domain.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.ReasonMissingReference, re.Reason)
		assert.Equal(t, domain.EntityPost, re.Entity)
		assert.Equal(t, "ownerId", re.Field)
	})

	t.Run("dangling reference after owner deletion", func(t *testing.T) {
		stores := memstore.NewStores()
		resolver := NewReferenceResolver(stores, zerolog.Nop())

		owner, err := stores.Users.Save(ctx, &domain.User{FirstName: "Ann", LastName: "Lee"})
		require.NoError(t, err)
		require.NoError(t, stores.Users.DeleteByID(ctx, owner.ID))

		_, err = resolver.PostOwner(ctx, &domain.Post{OwnerID: owner.ID})
		var re *domain.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.ReasonDanglingReference, re.Reason)
		assert.Equal(t, owner.ID, re.RefID)
	})

	t.Run("incomplete owner", func(t *testing.T) {
		stores := memstore.NewStores()
		resolver := NewReferenceResolver(stores, zerolog.Nop())

		owner, err := stores.Users.Save(ctx, &domain.User{FirstName: "Ann"})
		require.NoError(t, err)

		_, err = resolver.PostOwner(ctx, &domain.Post{OwnerID: owner.ID})
		var re *domain.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.ReasonIncompleteReference, re.Reason)
	})
}

func TestReferenceResolver_CommentReferences(t *testing.T) {
	ctx := context.Background()
	stores := memstore.NewStores()
	resolver := NewReferenceResolver(stores, zerolog.Nop())

	owner, err := stores.Users.Save(ctx, &domain.User{FirstName: "Ravi", LastName: "Patel"})
	require.NoError(t, err)
	post, err := stores.Posts.Save(ctx, &domain.Post{Text: "hello", OwnerID: owner.ID})
	require.NoError(t, err)

	comment := &domain.Comment{Message: "hi", OwnerID: owner.ID, PostID: post.ID}

	t.Run("resolves both references", func(t *testing.T) {
		gotOwner, err := resolver.CommentOwner(ctx, comment)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, gotOwner.ID)

		gotPost, err := resolver.CommentPost(ctx, comment)
		require.NoError(t, err)
		assert.Equal(t, post.ID, gotPost.ID)
	})

	t.Run("dangling post reference", func(t *testing.T) {
		require.NoError(t, stores.Posts.DeleteByID(ctx, post.ID))

		_, err := resolver.CommentPost(ctx, comment)
		var re *domain.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.ReasonDanglingReference, re.Reason)
		assert.Equal(t, domain.EntityComment, re.Entity)
		assert.Equal(t, "postId", re.Field)
	})

	t.Run("missing post reference", func(t *testing.T) {
		_, err := resolver.CommentPost(ctx, &domain.Comment{Message: "hi", OwnerID: owner.ID})
		var re *domain.ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.ReasonMissingReference, re.Reason)
	})
}

func TestReferenceResolver_UserLocation(t *testing.T) {
	ctx := context.Background()
	stores := memstore.NewStores()
	resolver := NewReferenceResolver(stores, zerolog.Nop())

	t.Run("absent reference resolves to nil", func(t *testing.T) {
		loc, err := resolver.UserLocation(ctx, &domain.User{FirstName: "Mia"})
		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("dangling optional reference resolves to nil", func(t *testing.T) {
		loc, err := resolver.UserLocation(ctx, &domain.User{FirstName: "Mia", LocationID: "gone"})
		require.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("resolves an existing location", func(t *testing.T) {
		saved, err := stores.Locations.Save(ctx, &domain.Location{City: "Lyon", Country: "France"})
		require.NoError(t, err)

		loc, err := resolver.UserLocation(ctx, &domain.User{LocationID: saved.ID})
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, "Lyon", loc.City)
	})
}

// TestReferenceResolver_OwnerDeletionScenario walks the full lifecycle: a
// user publishes a post, the post lists and resolves normally, then the
// user is deleted and the post's owner reference dangles.
func TestReferenceResolver_OwnerDeletionScenario(t *testing.T) {
	ctx := context.Background()
	stores := memstore.NewStores()
	users := NewUserService(stores.Users, zerolog.Nop())
	posts := NewPostService(stores.Posts, stores.Users, zerolog.Nop())
	resolver := NewReferenceResolver(stores, zerolog.Nop())

	ann, err := users.Create(ctx, domain.UserCreate{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann.lee@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)

	post, err := posts.Create(ctx, domain.PostCreate{Text: "hello", OwnerID: ann.ID})
	require.NoError(t, err)

	page, err := posts.List(ctx, PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	require.Len(t, page.Data, 1)
	assert.Equal(t, post.ID, page.Data[0].ID)

	owner, err := resolver.PostOwner(ctx, page.Data[0])
	require.NoError(t, err)
	assert.Equal(t, "Ann", owner.FirstName)

	require.NoError(t, users.Delete(ctx, ann.ID))

	_, err = resolver.PostOwner(ctx, page.Data[0])
	require.ErrorIs(t, err, domain.ErrResolutionFailed)

	var re *domain.ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, domain.ReasonDanglingReference, re.Reason)
	assert.Equal(t, ann.ID, re.RefID)
}
