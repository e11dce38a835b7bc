package ports

import (
	"context"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, id int64) (*domain.User, error)
}
