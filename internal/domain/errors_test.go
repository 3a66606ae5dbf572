package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewNotFoundError(EntityUser, "u1"), ErrNotFound},
		{"validation", NewValidationError("firstName", "is required"), ErrInvalidInput},
		{"malformed", NewMalformedInputError("dateOfBirth", "must be an ISO-8601 date"), ErrMalformedInput},
		{"resolution", NewResolutionError(EntityPost, "ownerId", "u1", ReasonDanglingReference), ErrResolutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)

			// Wrapping must preserve the sentinel.
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestResolutionErrorMessage(t *testing.T) {
	withRef := NewResolutionError(EntityPost, "ownerId", "u1", ReasonDanglingReference)
	assert.Equal(t, "post.ownerId (u1): referenced entity not found", withRef.Error())

	missing := NewResolutionError(EntityComment, "postId", "", ReasonMissingReference)
	assert.Equal(t, "comment.postId: missing reference", missing.Error())
}

func TestErrorsAsRecoversTypedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewNotFoundError(EntityTag, "t1"))

	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, EntityTag, nfe.Entity)
	assert.Equal(t, "t1", nfe.ID)
}

func TestNewPageNormalizesNilData(t *testing.T) {
	page := NewPage[*Tag](nil, 0, 1, 10)
	require.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
}
