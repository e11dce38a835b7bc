package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

// BidRepository implements ports.BidRepository on PostgreSQL.
type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) ports.BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) FindByID(ctx context.Context, id int64) (*domain.Bid, error) {
	var row bidModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err, domain.ErrBidNotFound)
	}
	return row.toDomain(), nil
}

func (r *BidRepository) FindOwner(ctx context.Context, id int64) (int64, error) {
	var owner struct{ BidderID int64 }
	err := r.db.WithContext(ctx).
		Model(&bidModel{}).
		Select("bidder_id").
		Where("id = ?", id).
		Take(&owner).Error
	if err != nil {
		return 0, translate(err, domain.ErrBidNotFound)
	}
	return owner.BidderID, nil
}

func (r *BidRepository) Create(ctx context.Context, b *domain.Bid) error {
	row := bidModel{
		Price:     b.Price,
		Date:      b.Date,
		ProductID: b.ProductID,
		BidderID:  b.BidderID,
	}
	if err := r.db.WithContext(ctx).Omit("Bidder", "Product").Create(&row).Error; err != nil {
		return translate(err, domain.ErrBidNotFound)
	}
	b.ID = row.ID
	return nil
}

func (r *BidRepository) Delete(ctx context.Context, id, bidderID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND bidder_id = ?", id, bidderID).
		Delete(&bidModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}
