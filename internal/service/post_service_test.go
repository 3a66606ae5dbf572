package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
	"github.com/opensocial/social-data-service/internal/storage/memstore"
)

// postFixture bundles the services post tests need.
type postFixture struct {
	stores *storage.Stores
	users  *UserService
	posts  *PostService
}

func newPostFixture() *postFixture {
	stores := memstore.NewStores()
	return &postFixture{
		stores: stores,
		users:  NewUserService(stores.Users, zerolog.Nop()),
		posts:  NewPostService(stores.Posts, stores.Users, zerolog.Nop()),
	}
}

func (f *postFixture) createUser(t *testing.T, firstName string) *domain.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), domain.UserCreate{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     firstName + "@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps publish date and zeroes likes", func(t *testing.T) {
		f := newPostFixture()
		owner := f.createUser(t, "ann")

		post, err := f.posts.Create(ctx, domain.PostCreate{
			Text:    "hello",
			OwnerID: owner.ID,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, post.ID)
		assert.NotEmpty(t, post.PublishDate)
		assert.Zero(t, post.Likes)
		assert.Equal(t, owner.ID, post.OwnerID)
	})

	t.Run("rejects missing text", func(t *testing.T) {
		f := newPostFixture()
		owner := f.createUser(t, "ann")

		_, err := f.posts.Create(ctx, domain.PostCreate{Text: "   ", OwnerID: owner.ID})
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "text", ve.Field)
	})

	t.Run("rejects a nonexistent owner", func(t *testing.T) {
		f := newPostFixture()

		_, err := f.posts.Create(ctx, domain.PostCreate{Text: "hello", OwnerID: "ghost"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "ownerId", ve.Field)

		page, listErr := f.posts.List(ctx, PageParams{})
		require.NoError(t, listErr)
		assert.Zero(t, page.Total)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	owner := f.createUser(t, "ann")

	created, err := f.posts.Create(ctx, domain.PostCreate{
		Text:    "original",
		Tags:    []string{"travel"},
		OwnerID: owner.ID,
	})
	require.NoError(t, err)

	t.Run("merge patch preserves publish date and likes", func(t *testing.T) {
		text := "edited"
		updated, err := f.posts.Update(ctx, created.ID, domain.PostPatch{Text: &text})
		require.NoError(t, err)

		assert.Equal(t, "edited", updated.Text)
		assert.Equal(t, created.PublishDate, updated.PublishDate)
		assert.Equal(t, created.Likes, updated.Likes)
		assert.Equal(t, created.Tags, updated.Tags)
	})

	t.Run("tags replace wholesale when present", func(t *testing.T) {
		tags := []string{"food"}
		updated, err := f.posts.Update(ctx, created.ID, domain.PostPatch{Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, []string{"food"}, updated.Tags)
	})

	t.Run("patched owner is not re-verified", func(t *testing.T) {
		ghost := "ghost"
		updated, err := f.posts.Update(ctx, created.ID, domain.PostPatch{OwnerID: &ghost})
		require.NoError(t, err)
		assert.Equal(t, "ghost", updated.OwnerID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		text := "nope"
		_, err := f.posts.Update(ctx, "missing", domain.PostPatch{Text: &text})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostService_Listings(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	ann := f.createUser(t, "ann")
	ravi := f.createUser(t, "ravi")

	for i := 0; i < 3; i++ {
		_, err := f.posts.Create(ctx, domain.PostCreate{
			Text:    fmt.Sprintf("ann post %d", i),
			Tags:    []string{"travel"},
			OwnerID: ann.ID,
		})
		require.NoError(t, err)
	}
	_, err := f.posts.Create(ctx, domain.PostCreate{
		Text:    "ravi post",
		Tags:    []string{"food"},
		OwnerID: ravi.ID,
	})
	require.NoError(t, err)

	t.Run("by owner", func(t *testing.T) {
		page, err := f.posts.ListByOwner(ctx, ann.ID, PageParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Len(t, page.Data, 3)
	})

	t.Run("by tag", func(t *testing.T) {
		page, err := f.posts.ListByTag(ctx, "food", PageParams{})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "ravi post", page.Data[0].Text)
	})

	t.Run("unknown owner matches nothing", func(t *testing.T) {
		page, err := f.posts.ListByOwner(ctx, "ghost", PageParams{})
		require.NoError(t, err)
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Data)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	owner := f.createUser(t, "ann")

	created, err := f.posts.Create(ctx, domain.PostCreate{Text: "hello", OwnerID: owner.ID})
	require.NoError(t, err)

	require.NoError(t, f.posts.Delete(ctx, created.ID))
	_, err = f.posts.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, f.posts.Delete(ctx, created.ID))
}
