package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrValidation   = errors.New("validation error")
)

// UserRepository is the slice of the user store the admin surface needs.
type UserRepository interface {
	DeleteByID(ctx context.Context, id int64) (*domain.User, error)
	DeleteByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service covers admin maintenance operations outside the reservation
// collection. Today that is only account removal.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// DeleteUser removes an admin account by id or, failing that, username.
func (s *Service) DeleteUser(ctx context.Context, id int64, username string) (*domain.User, error) {
	if id == 0 && username == "" {
		return nil, ErrValidation
	}

	var (
		user *domain.User
		err  error
	)
	if id != 0 {
		user, err = s.users.DeleteByID(ctx, id)
	} else {
		user, err = s.users.DeleteByUsername(ctx, username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
