package ports

import (
	"context"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// List returns every product with its seller and bids.
	List(ctx context.Context) ([]domain.Product, error)
	// FindDetail returns a product with its seller and bids, each bid with its bidder.
	FindDetail(ctx context.Context, id int64) (*domain.Product, error)
	// FindByID returns the product's own attributes without associations.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// FindOwner returns only the seller id of the product.
	FindOwner(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p *domain.Product) error
	// Update applies patch to the product only while it is still owned by
	// sellerID. ErrProductNotFound is returned when no row matched.
	Update(ctx context.Context, id, sellerID int64, patch domain.ProductPatch) error
	// Delete removes the product only while it is still owned by sellerID.
	Delete(ctx context.Context, id, sellerID int64) error
}
