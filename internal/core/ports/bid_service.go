package ports

import (
	"context"
	"time"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// PlaceBidInput is the allow-listed set of fields a bidder supplies. The
// product id comes from the URL and the bidder id from the caller's identity.
type PlaceBidInput struct {
	ProductID      int64
	Price          float64
	Date           time.Time // zero means now
	IdempotencyKey string
}

type BidService interface {
	PlaceBid(ctx context.Context, who domain.Identity, input PlaceBidInput) (*domain.Bid, error)
	DeleteBid(ctx context.Context, who domain.Identity, id int64) error
	// EnsureProduct returns ErrProductNotFound unless the product can take bids.
	EnsureProduct(ctx context.Context, productID int64) error
}
