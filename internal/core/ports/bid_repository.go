package ports

import (
	"context"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// BidRepository defines persistence operations for bids.
type BidRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Bid, error)
	// FindOwner returns only the bidder id of the bid.
	FindOwner(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, b *domain.Bid) error
	// Delete removes the bid only while it is still owned by bidderID.
	Delete(ctx context.Context, id, bidderID int64) error
}
