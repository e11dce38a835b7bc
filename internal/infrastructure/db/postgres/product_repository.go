package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

// ProductRepository implements ports.ProductRepository on PostgreSQL.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ports.ProductRepository {
	return &ProductRepository{db: db}
}

func sellerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var rows []productModel
	err := r.db.WithContext(ctx).
		Preload("Seller", sellerSummary).
		Preload("Bids", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "price", "date", "product_id").Order("id")
		}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].toDomain()
	}
	return products, nil
}

func (r *ProductRepository) FindDetail(ctx context.Context, id int64) (*domain.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).
		Preload("Seller", sellerSummary).
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Bids.Bidder", sellerSummary).
		First(&row, id).Error
	if err != nil {
		return nil, translate(err, domain.ErrProductNotFound)
	}
	return row.toDomain(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var row productModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err, domain.ErrProductNotFound)
	}
	return row.toDomain(), nil
}

func (r *ProductRepository) FindOwner(ctx context.Context, id int64) (int64, error) {
	var owner struct{ SellerID int64 }
	err := r.db.WithContext(ctx).
		Model(&productModel{}).
		Select("seller_id").
		Where("id = ?", id).
		Take(&owner).Error
	if err != nil {
		return 0, translate(err, domain.ErrProductNotFound)
	}
	return owner.SellerID, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	row := productFromDomain(p)
	if err := r.db.WithContext(ctx).Omit("Seller", "Bids").Create(&row).Error; err != nil {
		return translate(err, domain.ErrProductNotFound)
	}
	p.ID = row.ID
	return nil
}

// Update writes the patched columns only while the product is still owned by
// sellerID; zero affected rows means it vanished or changed hands.
func (r *ProductRepository) Update(ctx context.Context, id, sellerID int64, patch domain.ProductPatch) error {
	cols := patchColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(cols)
	if res.Error != nil {
		return translate(res.Error, domain.ErrProductNotFound)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete removes the product; its bids go with it through ON DELETE CASCADE.
func (r *ProductRepository) Delete(ctx context.Context, id, sellerID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Delete(&productModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
