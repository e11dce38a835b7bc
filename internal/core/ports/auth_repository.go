package ports

import (
	"context"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// AuthRepository defines the credential lookups needed by registration and login.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
