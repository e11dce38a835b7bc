package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

const resourceBid = "bid"

type BidService struct {
	bids     ports.BidRepository
	products ports.ProductRepository
	idem     ports.IdempotencyStore
	activity ports.ActivityRecorder
	metrics  ports.MarketplaceMetrics
	logger   zerolog.Logger
}

func NewBidService(
	bids ports.BidRepository,
	products ports.ProductRepository,
	idem ports.IdempotencyStore,
	activity ports.ActivityRecorder,
	metrics ports.MarketplaceMetrics,
	logger zerolog.Logger,
) *BidService {
	return &BidService{
		bids:     bids,
		products: products,
		idem:     idem,
		activity: activity,
		metrics:  metricsOrNop(metrics),
		logger:   logger,
	}
}

// EnsureProduct returns domain.ErrProductNotFound when there is no product to bid on.
func (s *BidService) EnsureProduct(ctx context.Context, productID int64) error {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("place bid: %w", err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	return nil
}

// PlaceBid records a bid by the caller on an existing product.
func (s *BidService) PlaceBid(ctx context.Context, who domain.Identity, input ports.PlaceBidInput) (*domain.Bid, error) {
	if err := s.EnsureProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	// Keys are scoped per product so one key can't replay a bid onto another listing.
	scope := resourceBid + ":" + strconv.FormatInt(input.ProductID, 10)
	if existing := s.replay(ctx, who, scope, input.IdempotencyKey); existing != nil {
		return existing, nil
	}

	date := input.Date
	if date.IsZero() {
		date = now()
	}

	b := &domain.Bid{
		Price:     input.Price,
		Date:      date,
		ProductID: input.ProductID,
		BidderID:  who.UserID,
	}
	if err := s.bids.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("place bid: %w", err)
	}

	created, err := s.bids.FindByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("place bid: reload %d: %w", b.ID, err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, scope, who.UserID, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Int64("bid_id", created.ID).Msg("failed to store idempotency key")
		}
	}

	s.metrics.BidPlaced()
	s.activity.Record(activity(domain.ActionBidPlaced, resourceBid, created.ID, who, created.BidderID))
	s.logger.Info().
		Int64("bid_id", created.ID).
		Int64("product_id", created.ProductID).
		Int64("bidder_id", created.BidderID).
		Float64("price", created.Price).
		Msg("bid placed")

	return created, nil
}

func (s *BidService) replay(ctx context.Context, who domain.Identity, scope, key string) *domain.Bid {
	if key == "" || s.idem == nil {
		return nil
	}
	id, found, err := s.idem.Lookup(ctx, scope, who.UserID, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil
	}
	if !found {
		return nil
	}
	b, err := s.bids.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	s.metrics.IdempotentReplay(resourceBid)
	return b
}

// DeleteBid removes a bid when the caller placed it or is an admin.
func (s *BidService) DeleteBid(ctx context.Context, who domain.Identity, id int64) error {
	bidderID, err := s.bids.FindOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("delete bid %d: %w", id, err)
	}
	if err := authorize(s.metrics, who, bidderID, resourceBid, "delete"); err != nil {
		return err
	}

	if err := s.bids.Delete(ctx, id, bidderID); err != nil {
		return fmt.Errorf("delete bid %d: %w", id, err)
	}

	s.activity.Record(activity(domain.ActionBidDeleted, resourceBid, id, who, bidderID))
	s.logger.Info().Int64("bid_id", id).Int64("user_id", who.UserID).Msg("bid deleted")

	return nil
}
