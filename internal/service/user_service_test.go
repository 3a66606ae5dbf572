package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage/memstore"
)

func newUserService() *UserService {
	return NewUserService(memstore.NewStores().Users, zerolog.Nop())
}

func validUserCreate() domain.UserCreate {
	return domain.UserCreate{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann.lee@example.com",
		Password:  "secret123",
	}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and server-side register date", func(t *testing.T) {
		svc := newUserService()

		before := time.Now().UTC()
		user, err := svc.Create(ctx, validUserCreate())
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		registered, parseErr := time.Parse(time.RFC3339, user.RegisterDate)
		require.NoError(t, parseErr)
		assert.False(t, registered.Before(before.Truncate(time.Second)))
	})

	t.Run("trims whitespace on identity fields", func(t *testing.T) {
		svc := newUserService()

		user, err := svc.Create(ctx, domain.UserCreate{
			FirstName: "  Ann ",
			LastName:  " Lee ",
			Email:     " ann.lee@example.com ",
			Password:  "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ann", user.FirstName)
		assert.Equal(t, "Lee", user.LastName)
		assert.Equal(t, "ann.lee@example.com", user.Email)
	})

	t.Run("rejects invalid input with the first violation", func(t *testing.T) {
		tests := []struct {
			name      string
			mutate    func(*domain.UserCreate)
			wantField string
		}{
			{
				name:      "missing first name",
				mutate:    func(in *domain.UserCreate) { in.FirstName = "" },
				wantField: "firstName",
			},
			{
				name:      "blank first name",
				mutate:    func(in *domain.UserCreate) { in.FirstName = "   " },
				wantField: "firstName",
			},
			{
				name:      "missing last name",
				mutate:    func(in *domain.UserCreate) { in.LastName = "" },
				wantField: "lastName",
			},
			{
				name:      "missing email",
				mutate:    func(in *domain.UserCreate) { in.Email = "" },
				wantField: "email",
			},
			{
				name:      "malformed email",
				mutate:    func(in *domain.UserCreate) { in.Email = "not-an-email" },
				wantField: "email",
			},
			{
				name:      "missing password",
				mutate:    func(in *domain.UserCreate) { in.Password = "" },
				wantField: "password",
			},
			{
				name: "first violation wins when several fields are blank",
				mutate: func(in *domain.UserCreate) {
					in.FirstName = ""
					in.LastName = ""
					in.Email = ""
				},
				wantField: "firstName",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := newUserService()

				in := validUserCreate()
				tt.mutate(&in)

				_, err := svc.Create(ctx, in)
				require.ErrorIs(t, err, domain.ErrInvalidInput)

				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)

				// A rejected input must leave the store untouched.
				page, listErr := svc.List(ctx, PageParams{})
				require.NoError(t, listErr)
				assert.Zero(t, page.Total)
			})
		}
	})

	t.Run("date of birth parsing", func(t *testing.T) {
		svc := newUserService()

		for i, ok := range []string{"", "1993-04-17", "1993-04-17T08:30:00", "1993-04-17T08:30:00Z"} {
			in := validUserCreate()
			in.Email = fmt.Sprintf("dob%d@example.com", i)
			in.DateOfBirth = ok
			_, err := svc.Create(ctx, in)
			assert.NoError(t, err, "dateOfBirth %q", ok)
		}

		in := validUserCreate()
		in.DateOfBirth = "17/04/1993"
		_, err := svc.Create(ctx, in)
		require.ErrorIs(t, err, domain.ErrMalformedInput)

		var me *domain.MalformedInputError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "dateOfBirth", me.Field)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Create(ctx, validUserCreate())
	require.NoError(t, err)

	t.Run("merge patch touches only present fields", func(t *testing.T) {
		phone := "+33 6 12 34 56 78"
		updated, err := svc.Update(ctx, created.ID, domain.UserPatch{Phone: &phone})
		require.NoError(t, err)

		assert.Equal(t, phone, updated.Phone)
		assert.Equal(t, created.FirstName, updated.FirstName)
		assert.Equal(t, created.Email, updated.Email)
		assert.Equal(t, created.RegisterDate, updated.RegisterDate)
	})

	t.Run("present blank string overwrites", func(t *testing.T) {
		blank := ""
		updated, err := svc.Update(ctx, created.ID, domain.UserPatch{Phone: &blank})
		require.NoError(t, err)
		assert.Empty(t, updated.Phone)
	})

	t.Run("rejects malformed date of birth", func(t *testing.T) {
		bad := "April 17th"
		_, err := svc.Update(ctx, created.ID, domain.UserPatch{DateOfBirth: &bad})
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		first := "Nobody"
		_, err := svc.Update(ctx, "missing", domain.UserPatch{FirstName: &first})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Create(ctx, validUserCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is idempotent.
	assert.NoError(t, svc.Delete(ctx, created.ID))
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	names := []string{"Ava", "Ben", "Cleo", "Dan", "Eve"}
	for i, name := range names {
		in := validUserCreate()
		in.FirstName = name
		in.Email = name + "@example.com"
		_, err := svc.Create(ctx, in)
		require.NoError(t, err, "user %d", i)
	}

	t.Run("defaults echo page one and limit ten", func(t *testing.T) {
		page, err := svc.List(ctx, PageParams{})
		require.NoError(t, err)

		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Len(t, page.Data, 5)
	})

	t.Run("windows by page and limit", func(t *testing.T) {
		page, err := svc.List(ctx, PageParams{Page: intPtr(2), Limit: intPtr(2), SortBy: "firstName"})
		require.NoError(t, err)

		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.Limit)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "Cleo", page.Data[0].FirstName)
		assert.Equal(t, "Dan", page.Data[1].FirstName)
	})

	t.Run("page past the end returns empty data with total", func(t *testing.T) {
		page, err := svc.List(ctx, PageParams{Page: intPtr(9)})
		require.NoError(t, err)

		assert.Equal(t, int64(5), page.Total)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
	})

	t.Run("unknown sort field is an error", func(t *testing.T) {
		_, err := svc.List(ctx, PageParams{SortBy: "shoeSize"})
		assert.Error(t, err)
	})
}
