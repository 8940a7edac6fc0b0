package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotllink-backend/models"
)

// UserRepository is the persistence surface the auth service depends on.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials mirrors the upstream login query: a single lookup that
// matches email and password together.
func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
