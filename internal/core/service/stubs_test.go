package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID      map[int64]*domain.Product
	nextID    int64
	createErr error
	updateErr error
	updates   int
	deletes   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[int64]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) seed(p domain.Product) *domain.Product {
	clone := p
	r.byID[p.ID] = &clone
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	return &clone
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindDetail(ctx context.Context, id int64) (*domain.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindOwner(_ context.Context, id int64) (int64, error) {
	p, ok := r.byID[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return p.SellerID, nil
}

func (r *stubProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

// Update mirrors the owner-guarded UPDATE of the real repository.
func (r *stubProductRepo) Update(_ context.Context, id, sellerID int64, patch domain.ProductPatch) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	p, ok := r.byID[id]
	if !ok || p.SellerID != sellerID {
		return domain.ErrProductNotFound
	}
	patch.Apply(p)
	r.updates++
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id, sellerID int64) error {
	p, ok := r.byID[id]
	if !ok || p.SellerID != sellerID {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	r.deletes++
	return nil
}

// ---------------------------------------------------------------------------
// Bids
// ---------------------------------------------------------------------------

type stubBidRepo struct {
	byID      map[int64]*domain.Bid
	nextID    int64
	createErr error
	deletes   int
}

func newStubBidRepo() *stubBidRepo {
	return &stubBidRepo{byID: make(map[int64]*domain.Bid), nextID: 1}
}

func (r *stubBidRepo) FindByID(_ context.Context, id int64) (*domain.Bid, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBidNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBidRepo) FindOwner(_ context.Context, id int64) (int64, error) {
	b, ok := r.byID[id]
	if !ok {
		return 0, domain.ErrBidNotFound
	}
	return b.BidderID, nil
}

func (r *stubBidRepo) Create(_ context.Context, b *domain.Bid) error {
	if r.createErr != nil {
		return r.createErr
	}
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.byID[b.ID] = &clone
	return nil
}

func (r *stubBidRepo) Delete(_ context.Context, id, bidderID int64) error {
	b, ok := r.byID[id]
	if !ok || b.BidderID != bidderID {
		return domain.ErrBidNotFound
	}
	delete(r.byID, id)
	r.deletes++
	return nil
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

type stubIdempotency struct {
	keys      map[string]int64
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) key(scope string, userID int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", scope, userID, key)
}

func (s *stubIdempotency) Lookup(_ context.Context, scope string, userID int64, key string) (int64, bool, error) {
	if s.lookupErr != nil {
		return 0, false, s.lookupErr
	}
	id, ok := s.keys[s.key(scope, userID, key)]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope string, userID int64, key string, entityID int64) error {
	s.keys[s.key(scope, userID, key)] = entityID
	return nil
}

type stubActivity struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (a *stubActivity) Record(e domain.ActivityEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

type stubPictures struct {
	putErr      error
	keys        []string
	removed     []string
	contentType string
	body        []byte
}

func (p *stubPictures) Remove(_ context.Context, key string) error {
	p.removed = append(p.removed, key)
	return nil
}

func (p *stubPictures) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) (string, error) {
	if p.putErr != nil {
		return "", p.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	p.keys = append(p.keys, key)
	p.contentType = contentType
	p.body = data
	return "https://cdn.example.com/pictures/" + key, nil
}

// stubMetrics records the counters the services bump.
type stubMetrics struct {
	created   int
	bids      int
	denied    []string
	overrides []string
	replays   []string
}

func (m *stubMetrics) ProductCreated() { m.created++ }
func (m *stubMetrics) BidPlaced()      { m.bids++ }
func (m *stubMetrics) AuthorizationDenied(resource, operation string) {
	m.denied = append(m.denied, resource+":"+operation)
}
func (m *stubMetrics) AdminOverride(resource, operation string) {
	m.overrides = append(m.overrides, resource+":"+operation)
}
func (m *stubMetrics) IdempotentReplay(resource string) { m.replays = append(m.replays, resource) }
