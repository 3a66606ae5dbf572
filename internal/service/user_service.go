package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// defaultUserSort orders user listings when the client names no sort field.
const defaultUserSort = "registerDate"

// UserService is the entity resolver for users. It is stateless: every
// invocation re-reads from the store.
type UserService struct {
	users  storage.Store[domain.User]
	logger zerolog.Logger
}

// NewUserService creates a user service over the given store.
func NewUserService(users storage.Store[domain.User], logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger.With().Str("component", "user-service").Logger(),
	}
}

// List returns one page of users in the standard envelope.
func (s *UserService) List(ctx context.Context, p PageParams) (*domain.Page[*domain.User], error) {
	req, page := Normalize(p, defaultUserSort)
	users, total, err := s.users.FindAll(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return domain.NewPage(users, total, page, req.Size), nil
}

// Get retrieves a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create validates the input and persists a new user. The register date is
// stamped server-side; a client-supplied value is never accepted. Validation
// fails fast on the first violated constraint, before any storage write.
func (s *UserService) Create(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	if err := checkInput(in); err != nil {
		return nil, err
	}
	if err := checkDateOfBirth(in.DateOfBirth); err != nil {
		return nil, err
	}

	user := &domain.User{
		Title:        in.Title,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Gender:       in.Gender,
		Email:        in.Email,
		Password:     in.Password,
		DateOfBirth:  in.DateOfBirth,
		RegisterDate: nowTimestamp(),
		Phone:        in.Phone,
		Picture:      in.Picture,
		LocationID:   in.LocationID,
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Debug().Str("user_id", saved.ID).Msg("user created")
	return saved, nil
}

// Update applies a merge patch to an existing user: only fields present in
// the patch overwrite stored values. The register date, email, and password
// are never touched by update.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.DateOfBirth != nil {
		if err := checkDateOfBirth(*patch.DateOfBirth); err != nil {
			return nil, err
		}
	}

	applyUserPatch(user, patch)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes a user by id. Deleting an absent id is not an error, and
// entities referencing the user are left in place.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func applyUserPatch(user *domain.User, patch domain.UserPatch) {
	if patch.Title != nil {
		user.Title = *patch.Title
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.DateOfBirth != nil {
		user.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Picture != nil {
		user.Picture = *patch.Picture
	}
	if patch.LocationID != nil {
		user.LocationID = *patch.LocationID
	}
}
