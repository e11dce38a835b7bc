package api

import (
	"context"
	"sort"
	"sync"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// memStore is an in-memory stand-in for the relational store, shared by the
// repository views below so that products, bids and users see each other.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*domain.User
	products map[int64]*domain.Product
	bids     map[int64]*domain.Bid
	events   []domain.ActivityEvent
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*domain.User),
		products: make(map[int64]*domain.Product),
		bids:     make(map[int64]*domain.Bid),
		nextID:   100,
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) product(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, false
	}
	return *p, true
}

func (s *memStore) bidsOf(productID int64) []domain.Bid {
	out := []domain.Bid{}
	for _, b := range s.bids {
		if b.ProductID == productID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- products ---

type memProductRepo struct{ s *memStore }

func (r memProductRepo) List(context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		clone := *p
		clone.Seller = r.s.users[p.SellerID]
		clone.Bids = r.s.bidsOf(p.ID)
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProductRepo) FindDetail(_ context.Context, id int64) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	clone.Seller = r.s.users[p.SellerID]
	clone.Bids = r.s.bidsOf(id)
	for i := range clone.Bids {
		clone.Bids[i].Bidder = r.s.users[clone.Bids[i].BidderID]
	}
	return &clone, nil
}

func (r memProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.s.product(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r memProductRepo) FindOwner(_ context.Context, id int64) (int64, error) {
	p, ok := r.s.product(id)
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return p.SellerID, nil
}

func (r memProductRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.product(id)
	return ok, nil
}

func (r memProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	clone := *p
	r.s.products[p.ID] = &clone
	return nil
}

func (r memProductRepo) Update(_ context.Context, id, sellerID int64, patch domain.ProductPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || p.SellerID != sellerID {
		return domain.ErrProductNotFound
	}
	patch.Apply(p)
	return nil
}

func (r memProductRepo) Delete(_ context.Context, id, sellerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || p.SellerID != sellerID {
		return domain.ErrProductNotFound
	}
	delete(r.s.products, id)
	for bidID, b := range r.s.bids {
		if b.ProductID == id {
			delete(r.s.bids, bidID)
		}
	}
	return nil
}

// --- bids ---

type memBidRepo struct{ s *memStore }

func (r memBidRepo) FindByID(_ context.Context, id int64) (*domain.Bid, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bids[id]
	if !ok {
		return nil, domain.ErrBidNotFound
	}
	clone := *b
	return &clone, nil
}

func (r memBidRepo) FindOwner(ctx context.Context, id int64) (int64, error) {
	b, err := r.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return b.BidderID, nil
}

func (r memBidRepo) Create(_ context.Context, b *domain.Bid) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID = r.s.id()
	clone := *b
	r.s.bids[b.ID] = &clone
	return nil
}

func (r memBidRepo) Delete(_ context.Context, id, bidderID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bids[id]
	if !ok || b.BidderID != bidderID {
		return domain.ErrBidNotFound
	}
	delete(r.s.bids, id)
	return nil
}

// --- users ---

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindProfile(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	clone.Products = []domain.Product{}
	for _, p := range r.s.products {
		if p.SellerID == id {
			withBids := *p
			withBids.Bids = r.s.bidsOf(p.ID)
			clone.Products = append(clone.Products, withBids)
		}
	}
	clone.Bids = []domain.Bid{}
	for _, b := range r.s.bids {
		if b.BidderID == id {
			withProduct := *b
			if p, ok := r.s.products[b.ProductID]; ok {
				product := *p
				product.Bids = r.s.bidsOf(p.ID)
				withProduct.Product = &product
			}
			clone.Bids = append(clone.Bids, withProduct)
		}
	}
	return &clone, nil
}

func (r memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	u.ID = r.s.id()
	clone := *u
	r.s.users[u.ID] = &clone
	return u, nil
}

// --- activity ---

// memActivity records synchronously so tests can assert on the trail.
type memActivity struct{ s *memStore }

func (a memActivity) Record(event domain.ActivityEvent) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	a.s.events = append(a.s.events, event)
}

func (a memActivity) Insert(_ context.Context, event domain.ActivityEvent) error {
	a.Record(event)
	return nil
}

func (a memActivity) ListRecent(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	out := []domain.ActivityEvent{}
	for i := len(a.s.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, a.s.events[i])
	}
	return out, nil
}
