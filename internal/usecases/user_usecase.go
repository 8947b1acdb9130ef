package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/domain/repositories"
)

// SearchResultCap bounds the email substring search
const SearchResultCap = 10

// UserUsecase handles user directory logic
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// CreateUser upserts a user on first sign-in. An existing email only
// refreshes last_log_in and reports inserted=false.
func (u *UserUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.CreateUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, domainerrors.BadRequest("email is required")
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := u.userRepo.TouchLastLogIn(ctx, email); err != nil {
			return nil, err
		}
		return &entities.CreateUserResponse{Email: email, Role: existing.Role, Inserted: false}, nil
	}

	now := time.Now()
	user := &entities.User{
		Email:     email,
		Role:      entities.UserRoleUser,
		CreatedAt: now,
		LastLogIn: now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// A concurrent first sign-in beat us to the insert.
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			if touchErr := u.userRepo.TouchLastLogIn(ctx, email); touchErr != nil {
				return nil, touchErr
			}
			return &entities.CreateUserResponse{Email: email, Role: entities.UserRoleUser, Inserted: false}, nil
		}
		return nil, err
	}
	return &entities.CreateUserResponse{Email: email, Role: user.Role, Inserted: true}, nil
}

// SearchUsers matches emails case-insensitively by substring, capped at ten
func (u *UserUsecase) SearchUsers(ctx context.Context, query string) ([]*entities.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.BadRequest("search query is required")
	}
	return u.userRepo.Search(ctx, query, SearchResultCap)
}

// GetRole returns only the stored role for the email
func (u *UserUsecase) GetRole(ctx context.Context, email string) (*entities.RoleResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	return &entities.RoleResponse{Role: user.Role}, nil
}

// MakeAdmin grants the admin role
func (u *UserUsecase) MakeAdmin(ctx context.Context, email string) error {
	return u.userRepo.UpdateRole(ctx, strings.ToLower(email), entities.UserRoleAdmin)
}

// RemoveAdmin revokes the admin role back to plain user
func (u *UserUsecase) RemoveAdmin(ctx context.Context, email string) error {
	return u.userRepo.UpdateRole(ctx, strings.ToLower(email), entities.UserRoleUser)
}
