package postgres

import (
	"time"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

type userModel struct {
	ID           int64 `gorm:"primaryKey"`
	Username     string
	Admin        bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []productModel `gorm:"foreignKey:SellerID"`
	Bids     []bidModel     `gorm:"foreignKey:BidderID"`
}

func (userModel) TableName() string { return "users" }

type productModel struct {
	ID            int64 `gorm:"primaryKey"`
	Name          string
	Description   string
	Category      string
	OriginalPrice float64
	PictureURL    *string `gorm:"column:picture_url"`
	EndDate       time.Time
	SellerID      int64

	Seller *userModel `gorm:"foreignKey:SellerID"`
	Bids   []bidModel `gorm:"foreignKey:ProductID"`
}

func (productModel) TableName() string { return "products" }

type bidModel struct {
	ID        int64 `gorm:"primaryKey"`
	Price     float64
	Date      time.Time
	ProductID int64
	BidderID  int64

	Bidder  *userModel    `gorm:"foreignKey:BidderID"`
	Product *productModel `gorm:"foreignKey:ProductID"`
}

func (bidModel) TableName() string { return "bids" }

func (m *userModel) toDomain() *domain.User {
	u := &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Admin:        m.Admin,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Products != nil {
		u.Products = make([]domain.Product, len(m.Products))
		for i := range m.Products {
			u.Products[i] = *m.Products[i].toDomain()
		}
	}
	if m.Bids != nil {
		u.Bids = make([]domain.Bid, len(m.Bids))
		for i := range m.Bids {
			u.Bids[i] = *m.Bids[i].toDomain()
		}
	}
	return u
}

func (m *productModel) toDomain() *domain.Product {
	p := &domain.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Category:      m.Category,
		OriginalPrice: m.OriginalPrice,
		EndDate:       m.EndDate.UTC(),
		SellerID:      m.SellerID,
	}
	if m.PictureURL != nil {
		p.PictureURL = *m.PictureURL
	}
	if m.Seller != nil {
		p.Seller = m.Seller.toDomain()
	}
	if m.Bids != nil {
		p.Bids = make([]domain.Bid, len(m.Bids))
		for i := range m.Bids {
			p.Bids[i] = *m.Bids[i].toDomain()
		}
	}
	return p
}

func (m *bidModel) toDomain() *domain.Bid {
	b := &domain.Bid{
		ID:        m.ID,
		Price:     m.Price,
		Date:      m.Date.UTC(),
		ProductID: m.ProductID,
		BidderID:  m.BidderID,
	}
	if m.Bidder != nil {
		b.Bidder = m.Bidder.toDomain()
	}
	if m.Product != nil {
		b.Product = m.Product.toDomain()
	}
	return b
}

func productFromDomain(p *domain.Product) productModel {
	return productModel{
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		OriginalPrice: p.OriginalPrice,
		PictureURL:    optionalString(p.PictureURL),
		EndDate:       p.EndDate,
		SellerID:      p.SellerID,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// patchColumns converts the fields present in patch into an update map.
func patchColumns(patch domain.ProductPatch) map[string]interface{} {
	cols := make(map[string]interface{})
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Category != nil {
		cols["category"] = *patch.Category
	}
	if patch.OriginalPrice != nil {
		cols["original_price"] = *patch.OriginalPrice
	}
	if patch.PictureURL != nil {
		cols["picture_url"] = optionalString(*patch.PictureURL)
	}
	if patch.EndDate != nil {
		cols["end_date"] = *patch.EndDate
	}
	return cols
}
