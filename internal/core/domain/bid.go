package domain

import "time"

// Bid is an offer placed by a bidder on a product. Bids are never updated,
// only created and deleted.
type Bid struct {
	ID        int64
	Price     float64
	Date      time.Time
	ProductID int64
	BidderID  int64

	Bidder  *User
	Product *Product
}
