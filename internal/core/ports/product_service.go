package ports

import (
	"context"
	"io"
	"time"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// CreateProductInput is the allow-listed set of fields a seller supplies.
// The seller id always comes from the caller's identity.
type CreateProductInput struct {
	Name           string
	Description    string
	Category       string
	OriginalPrice  float64
	PictureURL     string
	EndDate        time.Time
	IdempotencyKey string
}

// PictureInput is an uploaded product picture.
type PictureInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProductService defines use-case operations for products.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, who domain.Identity, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, who domain.Identity, id int64, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, who domain.Identity, id int64) error
	UploadPicture(ctx context.Context, who domain.Identity, id int64, input PictureInput) (*domain.Product, error)
	// AuthorizeProduct reports ErrProductNotFound or ErrForbidden for a
	// mutation of the given kind without performing it.
	AuthorizeProduct(ctx context.Context, who domain.Identity, id int64, operation string) error
}
