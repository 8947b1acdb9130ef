package repositories

import (
	"context"

	"swift-parcel.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	TouchLastLogIn(ctx context.Context, email string) error
	// UpdateRole sets the role, conditional on it actually changing; zero
	// rows (unknown email or already in the target role) is ErrNotFound.
	UpdateRole(ctx context.Context, email string, role entities.UserRole) error
	// Search matches email case-insensitively by substring, newest first,
	// capped at limit.
	Search(ctx context.Context, query string, limit int) ([]*entities.User, error)
}
