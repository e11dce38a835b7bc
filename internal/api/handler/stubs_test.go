package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auction-marketplace/internal/api/middleware"
	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

type stubProductService struct {
	listFn    func(ctx context.Context) ([]domain.Product, error)
	getFn     func(ctx context.Context, id int64) (*domain.Product, error)
	createFn  func(ctx context.Context, who domain.Identity, input ports.CreateProductInput) (*domain.Product, error)
	updateFn  func(ctx context.Context, who domain.Identity, id int64, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn  func(ctx context.Context, who domain.Identity, id int64) error
	pictureFn func(ctx context.Context, who domain.Identity, id int64, input ports.PictureInput) (*domain.Product, error)
	// authorizeFn nil means the caller may mutate the product.
	authorizeFn func(ctx context.Context, who domain.Identity, id int64, operation string) error
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) CreateProduct(ctx context.Context, who domain.Identity, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, who, input)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, who domain.Identity, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	return s.updateFn(ctx, who, id, patch)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, who domain.Identity, id int64) error {
	return s.deleteFn(ctx, who, id)
}

func (s *stubProductService) UploadPicture(ctx context.Context, who domain.Identity, id int64, input ports.PictureInput) (*domain.Product, error) {
	return s.pictureFn(ctx, who, id, input)
}

func (s *stubProductService) AuthorizeProduct(ctx context.Context, who domain.Identity, id int64, operation string) error {
	if s.authorizeFn == nil {
		return nil
	}
	return s.authorizeFn(ctx, who, id, operation)
}

type stubBidService struct {
	placeFn  func(ctx context.Context, who domain.Identity, input ports.PlaceBidInput) (*domain.Bid, error)
	deleteFn func(ctx context.Context, who domain.Identity, id int64) error
	// ensureFn nil means the product exists.
	ensureFn func(ctx context.Context, productID int64) error
}

func (s *stubBidService) EnsureProduct(ctx context.Context, productID int64) error {
	if s.ensureFn == nil {
		return nil
	}
	return s.ensureFn(ctx, productID)
}

func (s *stubBidService) PlaceBid(ctx context.Context, who domain.Identity, input ports.PlaceBidInput) (*domain.Bid, error) {
	return s.placeFn(ctx, who, input)
}

func (s *stubBidService) DeleteBid(ctx context.Context, who domain.Identity, id int64) error {
	return s.deleteFn(ctx, who, id)
}

type stubUserService struct {
	profileFn func(ctx context.Context, id int64) (*domain.User, error)
}

func (s *stubUserService) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	return s.profileFn(ctx, id)
}

type stubActivityService struct {
	listFn func(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}

func (s *stubActivityService) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	return s.listFn(ctx, limit)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

// newContext builds an echo context for a JSON request. who is set as the
// caller when its UserID is non-zero. params are name/value pairs.
func newContext(method, target, body string, who domain.Identity, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return newRawContext(method, target, reader, echo.MIMEApplicationJSON, who, params...)
}

func newRawContext(method, target string, body io.Reader, contentType string, who domain.Identity, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if who.UserID != 0 {
		middleware.SetIdentity(c, who)
	}
	return c, rec
}
