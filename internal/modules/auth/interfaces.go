package auth

import (
	"context"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
