package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		LastLogIn: user.LastLogIn,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// TouchLastLogIn refreshes the last sign-in timestamp
func (r *UserRepository) TouchLastLogIn(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("last_log_in", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateRole sets the role, conditional on it actually changing
func (r *UserRepository) UpdateRole(ctx context.Context, email string, role entities.UserRole) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? AND role <> ?", email, string(role)).
		Update("role", string(role))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Search matches email case-insensitively by substring, newest first
func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]*entities.User, error) {
	var userModels []models.User
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(email) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserEntity(&userModels[i]))
	}
	return users, nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		Email:     m.Email,
		Role:      entities.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		LastLogIn: m.LastLogIn,
	}
}
