package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// UserRepository serves public profiles and the credential lookups used by
// registration and login.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// FindProfile loads the user's public attributes with products (and their
// bids) and bids (with their product and that product's bids).
func (r *UserRepository) FindProfile(ctx context.Context, id int64) (*domain.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Select("id", "username", "admin").
		Preload("Products", byID).
		Preload("Products.Bids", byID).
		Preload("Bids", byID).
		Preload("Bids.Product").
		Preload("Bids.Product.Bids", byID).
		First(&row, id).Error
	if err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := userModel{
		Username:     user.Username,
		Admin:        user.Admin,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Omit("Products", "Bids").Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", translate(err, domain.ErrUserNotFound))
	}
	return row.toDomain(), nil
}
