package domain

import "time"

// User models a marketplace participant. A user sells products and bids on
// products listed by others.
type User struct {
	ID           int64
	Username     string
	Admin        bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Associations, populated only by profile reads.
	Products []Product
	Bids     []Bid
}
