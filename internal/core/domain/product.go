package domain

import "time"

// Product is an item listed for auction by its seller.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	OriginalPrice float64
	PictureURL    string
	EndDate       time.Time
	SellerID      int64

	Seller *User
	Bids   []Bid
}

// ProductPatch carries the subset of product fields a caller may change.
// A nil field is left untouched. SellerID is deliberately absent.
type ProductPatch struct {
	Name          *string
	Description   *string
	Category      *string
	OriginalPrice *float64
	PictureURL    *string
	EndDate       *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.OriginalPrice == nil && p.PictureURL == nil && p.EndDate == nil
}

// Apply copies every non-nil field of the patch onto product.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.OriginalPrice != nil {
		product.OriginalPrice = *p.OriginalPrice
	}
	if p.PictureURL != nil {
		product.PictureURL = *p.PictureURL
	}
	if p.EndDate != nil {
		product.EndDate = *p.EndDate
	}
}
