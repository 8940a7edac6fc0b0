package services

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotllink-backend/models"
	"hotllink-backend/repositories"
	"hotllink-backend/utils"
)

type AuthService struct {
	users     repositories.UserRepository
	jwtSecret string
}

func NewAuthService(users repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Register creates a new account. The credential is stored as given; this
// mirrors the upstream system and is a recorded defect, not a design choice.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, Password: password}
	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can race past the lookup; the unique index on
		// email settles it.
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login matches email and password exactly and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
