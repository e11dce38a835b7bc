package ports

import (
	"context"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// UserRepository serves public user profiles.
type UserRepository interface {
	// FindProfile returns the user with their products (each with bids) and
	// their bids (each with the product and that product's bids).
	FindProfile(ctx context.Context, id int64) (*domain.User, error)
}
