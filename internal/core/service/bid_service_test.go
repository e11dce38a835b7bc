package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

func newBidSvc() (*BidService, *stubBidRepo, *stubProductRepo, *stubActivity) {
	bids := newStubBidRepo()
	products := newStubProductRepo()
	act := &stubActivity{}
	return NewBidService(bids, products, newStubIdempotency(), act, nil, discardLogger), bids, products, act
}

func TestBidService_PlaceBid_ForcesBidderAndProduct(t *testing.T) {
	svc, bids, products, act := newBidSvc()
	seededProduct(products, 3, 7)

	date := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	b, err := svc.PlaceBid(context.Background(), domain.Identity{UserID: 5}, ports.PlaceBidInput{ProductID: 3, Price: 12.5, Date: date})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.BidderID != 5 || b.ProductID != 3 {
		t.Errorf("expected bidder 5 on product 3, got %+v", b)
	}
	if !b.Date.Equal(date) {
		t.Errorf("date: want %v, got %v", date, b.Date)
	}
	if len(bids.byID) != 1 {
		t.Errorf("expected 1 stored bid, got %d", len(bids.byID))
	}
	if len(act.events) != 1 || act.events[0].Action != domain.ActionBidPlaced {
		t.Errorf("unexpected activity: %+v", act.events)
	}
}

func TestBidService_PlaceBid_DefaultsDateToNow(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	orig := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = orig })

	svc, _, products, _ := newBidSvc()
	seededProduct(products, 3, 7)

	b, err := svc.PlaceBid(context.Background(), domain.Identity{UserID: 5}, ports.PlaceBidInput{ProductID: 3, Price: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Date.Equal(fixed) {
		t.Errorf("date: want %v, got %v", fixed, b.Date)
	}
}

func TestBidService_PlaceBid_MissingProduct(t *testing.T) {
	svc, bids, _, _ := newBidSvc()

	_, err := svc.PlaceBid(context.Background(), domain.Identity{UserID: 5}, ports.PlaceBidInput{ProductID: 99, Price: 1})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(bids.byID) != 0 {
		t.Error("no bid may be stored")
	}
}

func TestBidService_PlaceBid_RepoValidationError(t *testing.T) {
	svc, bids, products, act := newBidSvc()
	seededProduct(products, 3, 7)
	bids.createErr = domain.NewValidationError("price", "must be greater than 0")

	_, err := svc.PlaceBid(context.Background(), domain.Identity{UserID: 5}, ports.PlaceBidInput{ProductID: 3, Price: -2})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Violations[0].Field != "price" {
		t.Fatalf("expected price violation, got %v", err)
	}
	if len(act.events) != 0 {
		t.Error("failed bid must not be recorded")
	}
}

func TestBidService_PlaceBid_IdempotencyIsScopedPerProduct(t *testing.T) {
	svc, bids, products, _ := newBidSvc()
	seededProduct(products, 3, 7)
	seededProduct(products, 4, 7)

	who := domain.Identity{UserID: 5}
	first, _ := svc.PlaceBid(context.Background(), who, ports.PlaceBidInput{ProductID: 3, Price: 10, IdempotencyKey: "k"})
	replay, _ := svc.PlaceBid(context.Background(), who, ports.PlaceBidInput{ProductID: 3, Price: 10, IdempotencyKey: "k"})
	other, _ := svc.PlaceBid(context.Background(), who, ports.PlaceBidInput{ProductID: 4, Price: 10, IdempotencyKey: "k"})

	if first.ID != replay.ID {
		t.Errorf("replay must return bid %d, got %d", first.ID, replay.ID)
	}
	if other.ID == first.ID || other.ProductID != 4 {
		t.Errorf("key must not replay across products: %+v", other)
	}
	if len(bids.byID) != 2 {
		t.Errorf("expected 2 stored bids, got %d", len(bids.byID))
	}
}

func TestBidService_DeleteBid(t *testing.T) {
	tests := []struct {
		name    string
		who     domain.Identity
		bidID   int64
		wantErr error
		deleted bool
		asAdmin bool
	}{
		{name: "owner", who: domain.Identity{UserID: 5}, bidID: 1, deleted: true},
		{name: "admin on foreign bid", who: domain.Identity{UserID: 1, Admin: true}, bidID: 1, deleted: true, asAdmin: true},
		{name: "foreign user", who: domain.Identity{UserID: 6}, bidID: 1, wantErr: domain.ErrForbidden},
		{name: "missing", who: domain.Identity{UserID: 5}, bidID: 2, wantErr: domain.ErrBidNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bids, _, act := newBidSvc()
			bids.byID[1] = &domain.Bid{ID: 1, Price: 3, ProductID: 3, BidderID: 5}

			err := svc.DeleteBid(context.Background(), tt.who, tt.bidID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			_, stillThere := bids.byID[1]
			if tt.deleted == stillThere {
				t.Fatalf("deleted=%v but bid present=%v", tt.deleted, stillThere)
			}
			if tt.deleted {
				if len(act.events) != 1 || act.events[0].AsAdmin != tt.asAdmin {
					t.Fatalf("unexpected activity: %+v", act.events)
				}
			} else if len(act.events) != 0 || bids.deletes != 0 {
				t.Fatalf("rejected delete must not mutate or record")
			}
		})
	}
}

func TestBidService_EnsureProduct(t *testing.T) {
	svc, _, products, _ := newBidSvc()
	seededProduct(products, 3, 7)

	if err := svc.EnsureProduct(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.EnsureProduct(context.Background(), 999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestBidService_CountsPlacedAndDenied(t *testing.T) {
	bids := newStubBidRepo()
	products := newStubProductRepo()
	seededProduct(products, 3, 7)
	m := &stubMetrics{}
	svc := NewBidService(bids, products, nil, &stubActivity{}, m, discardLogger)

	b, err := svc.PlaceBid(context.Background(), domain.Identity{UserID: 5}, ports.PlaceBidInput{ProductID: 3, Price: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteBid(context.Background(), domain.Identity{UserID: 6}, b.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if m.bids != 1 {
		t.Errorf("expected 1 placed bid counted, got %d", m.bids)
	}
	if len(m.denied) != 1 || m.denied[0] != "bid:delete" {
		t.Errorf("unexpected denied counters: %v", m.denied)
	}
}
