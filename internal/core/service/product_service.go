package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

const resourceProduct = "product"

var pictureTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type ProductService struct {
	repo     ports.ProductRepository
	idem     ports.IdempotencyStore
	pictures ports.PictureStore
	activity ports.ActivityRecorder
	metrics  ports.MarketplaceMetrics
	logger   zerolog.Logger
}

func NewProductService(
	repo ports.ProductRepository,
	idem ports.IdempotencyStore,
	pictures ports.PictureStore,
	activity ports.ActivityRecorder,
	metrics ports.MarketplaceMetrics,
	logger zerolog.Logger,
) *ProductService {
	return &ProductService{
		repo:     repo,
		idem:     idem,
		pictures: pictures,
		activity: activity,
		metrics:  metricsOrNop(metrics),
		logger:   logger,
	}
}

// ListProducts returns all products with their seller and bids.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one product with its seller and bids. Reads are public.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// CreateProduct lists a new product owned by the caller. When an idempotency
// key was already used by the same caller, the product created then is
// returned and nothing new is persisted.
func (s *ProductService) CreateProduct(ctx context.Context, who domain.Identity, input ports.CreateProductInput) (*domain.Product, error) {
	if existing := s.replay(ctx, who, input.IdempotencyKey); existing != nil {
		return existing, nil
	}

	p := &domain.Product{
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		OriginalPrice: input.OriginalPrice,
		PictureURL:    input.PictureURL,
		EndDate:       input.EndDate,
		SellerID:      who.UserID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("create product: reload %d: %w", p.ID, err)
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, resourceProduct, who.UserID, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Int64("product_id", created.ID).Msg("failed to store idempotency key")
		}
	}

	s.metrics.ProductCreated()
	s.activity.Record(activity(domain.ActionProductCreated, resourceProduct, created.ID, who, created.SellerID))
	s.logger.Info().Int64("product_id", created.ID).Int64("seller_id", created.SellerID).Msg("product created")

	return created, nil
}

func (s *ProductService) replay(ctx context.Context, who domain.Identity, key string) *domain.Product {
	if key == "" || s.idem == nil {
		return nil
	}
	id, found, err := s.idem.Lookup(ctx, resourceProduct, who.UserID, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil
	}
	if !found {
		return nil
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// The product may have been deleted since; fall through to a fresh create.
		return nil
	}
	s.metrics.IdempotentReplay(resourceProduct)
	s.logger.Info().Str("idempotency_key", key).Int64("product_id", id).Msg("idempotent replay")
	return p
}

// UpdateProduct applies patch to the product when the caller owns it or is an admin.
func (s *ProductService) UpdateProduct(ctx context.Context, who domain.Identity, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if err := authorize(s.metrics, who, current.SellerID, resourceProduct, "update"); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	if err := s.repo.Update(ctx, id, current.SellerID, patch); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product %d: reload: %w", id, err)
	}

	s.activity.Record(activity(domain.ActionProductUpdated, resourceProduct, id, who, current.SellerID))
	s.logger.Info().Int64("product_id", id).Int64("user_id", who.UserID).Msg("product updated")

	return updated, nil
}

// DeleteProduct removes the product and, through the foreign key, its bids.
func (s *ProductService) DeleteProduct(ctx context.Context, who domain.Identity, id int64) error {
	sellerID, err := s.repo.FindOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if err := authorize(s.metrics, who, sellerID, resourceProduct, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, sellerID); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	s.activity.Record(activity(domain.ActionProductDeleted, resourceProduct, id, who, sellerID))
	s.logger.Info().Int64("product_id", id).Int64("user_id", who.UserID).Msg("product deleted")

	return nil
}

// AuthorizeProduct runs the existence and ownership checks of a mutation
// without applying it, so callers can report 404 and 403 ahead of body errors.
func (s *ProductService) AuthorizeProduct(ctx context.Context, who domain.Identity, id int64, operation string) error {
	sellerID, err := s.repo.FindOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("%s product %d: %w", operation, id, err)
	}
	return authorize(s.metrics, who, sellerID, resourceProduct, operation)
}

// UploadPicture stores a new picture for the product and points pictureUrl at it.
func (s *ProductService) UploadPicture(ctx context.Context, who domain.Identity, id int64, input ports.PictureInput) (*domain.Product, error) {
	sellerID, err := s.repo.FindOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("upload picture %d: %w", id, err)
	}
	if err := authorize(s.metrics, who, sellerID, resourceProduct, "picture"); err != nil {
		return nil, err
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	ext, ok := pictureTypes[contentType]
	if !ok {
		return nil, domain.NewValidationError("picture", "must be a JPEG, PNG, GIF or WebP image")
	}

	key := fmt.Sprintf("products/%d/%s%s", id, uuid.NewString(), ext)
	url, err := s.pictures.Put(ctx, key, input.Body, input.Size, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload picture %d: %w", id, err)
	}

	if err := s.repo.Update(ctx, id, sellerID, domain.ProductPatch{PictureURL: &url}); err != nil {
		// Nothing points at the object any more; don't leave it in the bucket.
		if rmErr := s.pictures.Remove(context.WithoutCancel(ctx), key); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("key", key).Int64("product_id", id).Msg("failed to remove orphaned picture")
		}
		return nil, fmt.Errorf("upload picture %d: %w", id, err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("upload picture %d: reload: %w", id, err)
	}

	s.activity.Record(activity(domain.ActionPictureUploaded, resourceProduct, id, who, sellerID))
	s.logger.Info().Int64("product_id", id).Str("key", key).Str("filename", input.Filename).Msg("product picture uploaded")

	return updated, nil
}
