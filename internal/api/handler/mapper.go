package handler

import (
	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

func toProductAttributes(p *domain.Product) productAttributes {
	attrs := productAttributes{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		OriginalPrice: p.OriginalPrice,
		EndDate:       p.EndDate,
	}
	if p.PictureURL != "" {
		url := p.PictureURL
		attrs.PictureURL = &url
	}
	return attrs
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{productAttributes: toProductAttributes(p), SellerID: p.SellerID}
}

func toUserSummary(u *domain.User) *userSummary {
	if u == nil {
		return nil
	}
	return &userSummary{ID: u.ID, Username: u.Username}
}

func toBidSummary(b *domain.Bid) bidSummary {
	return bidSummary{ID: b.ID, Price: b.Price, Date: b.Date}
}

func toBidSummaries(bids []domain.Bid) []bidSummary {
	out := make([]bidSummary, len(bids))
	for i := range bids {
		out[i] = toBidSummary(&bids[i])
	}
	return out
}

func toProductList(products []domain.Product) []productListItem {
	out := make([]productListItem, len(products))
	for i := range products {
		p := &products[i]
		out[i] = productListItem{
			productAttributes: toProductAttributes(p),
			Seller:            toUserSummary(p.Seller),
			Bids:              toBidSummaries(p.Bids),
		}
	}
	return out
}

func toProductDetail(p *domain.Product) productDetailResponse {
	bids := make([]bidWithBidder, len(p.Bids))
	for i := range p.Bids {
		b := &p.Bids[i]
		bids[i] = bidWithBidder{bidSummary: toBidSummary(b), Bidder: toUserSummary(b.Bidder)}
	}
	return productDetailResponse{
		productAttributes: toProductAttributes(p),
		SellerID:          p.SellerID,
		Seller:            toUserSummary(p.Seller),
		Bids:              bids,
	}
}

func toBidResponse(b *domain.Bid) bidResponse {
	return bidResponse{
		ID:        b.ID,
		ProductID: b.ProductID,
		Price:     b.Price,
		Date:      b.Date,
		BidderID:  b.BidderID,
	}
}

func toProductWithBids(p *domain.Product) productWithBids {
	return productWithBids{productAttributes: toProductAttributes(p), Bids: toBidSummaries(p.Bids)}
}

func toUserProfile(u *domain.User) userProfileResponse {
	products := make([]productWithBids, len(u.Products))
	for i := range u.Products {
		products[i] = toProductWithBids(&u.Products[i])
	}

	bids := make([]bidWithProduct, len(u.Bids))
	for i := range u.Bids {
		b := &u.Bids[i]
		bids[i] = bidWithProduct{bidSummary: toBidSummary(b)}
		if b.Product != nil {
			p := toProductWithBids(b.Product)
			bids[i].Product = &p
		}
	}

	return userProfileResponse{
		ID:       u.ID,
		Username: u.Username,
		Admin:    u.Admin,
		Products: products,
		Bids:     bids,
	}
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{ID: u.ID, Username: u.Username, Admin: u.Admin}
}
