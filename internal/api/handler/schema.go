package handler

import (
	"time"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// errorResponse is the error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string             `json:"error"`
	Details []domain.Violation `json:"details,omitempty"`
}

// --- Requests ---
//
// Request types list every field a client may set. Owner ids, path ids and
// anything else in the body are ignored.

type createProductRequest struct {
	Name          string   `json:"name"          validate:"required"`
	Description   string   `json:"description"   validate:"required"`
	Category      string   `json:"category"      validate:"required"`
	OriginalPrice *float64 `json:"originalPrice" validate:"required,gte=0"`
	PictureURL    string   `json:"pictureUrl"    validate:"omitempty,url"`
	EndDate       string   `json:"endDate"       validate:"required"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"          validate:"omitempty,min=1"`
	Description   *string  `json:"description"   validate:"omitempty,min=1"`
	Category      *string  `json:"category"      validate:"omitempty,min=1"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	PictureURL    *string  `json:"pictureUrl"    validate:"omitempty,url"`
	EndDate       *string  `json:"endDate"`
}

type placeBidRequest struct {
	Price *float64 `json:"price" validate:"required,gt=0"`
	Date  string   `json:"date"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

type userSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type bidSummary struct {
	ID    int64     `json:"id"`
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
}

// productAttributes is the public attribute set of a product, without owner.
type productAttributes struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	OriginalPrice float64   `json:"originalPrice"`
	PictureURL    *string   `json:"pictureUrl"`
	EndDate       time.Time `json:"endDate"`
}

// productResponse is returned by create, update and picture upload.
type productResponse struct {
	productAttributes
	SellerID int64 `json:"sellerId"`
}

type productListItem struct {
	productAttributes
	Seller *userSummary `json:"seller"`
	Bids   []bidSummary `json:"bids"`
}

type bidWithBidder struct {
	bidSummary
	Bidder *userSummary `json:"bidder"`
}

type productDetailResponse struct {
	productAttributes
	SellerID int64           `json:"sellerId"`
	Seller   *userSummary    `json:"seller"`
	Bids     []bidWithBidder `json:"bids"`
}

type bidResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
	BidderID  int64     `json:"bidderId"`
}

type productWithBids struct {
	productAttributes
	Bids []bidSummary `json:"bids"`
}

type bidWithProduct struct {
	bidSummary
	Product *productWithBids `json:"product"`
}

type userProfileResponse struct {
	ID       int64             `json:"id"`
	Username string            `json:"username"`
	Admin    bool              `json:"admin"`
	Products []productWithBids `json:"products"`
	Bids     []bidWithProduct  `json:"bids"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type activityListResponse struct {
	Events []domain.ActivityEvent `json:"events"`
	Count  int                    `json:"count"`
}
