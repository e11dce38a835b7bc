package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

const idempotencyHeader = "Idempotency-Key"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service        ports.ProductService
	maxPictureSize int64
}

func NewProductHandler(service ports.ProductService, maxPictureSize int64) *ProductHandler {
	return &ProductHandler{service: service, maxPictureSize: maxPictureSize}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productListItem
// @Failure      500  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductList(products))
}

// Get handles GET /api/products/:productId.
//
// @Summary      Get a product with its seller and bids
// @Tags         products
// @Produce      json
// @Param        productId  path      int  true  "Product ID"
// @Success      200        {object}  productDetailResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/products/{productId} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "productId", domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductDetail(product))
}

// Create handles POST /api/products. The seller is always the caller.
//
// @Summary      List a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replays return the product created by the first request"
// @Param        body             body      createProductRequest  true   "Product"
// @Success      201              {object}  productResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	var extra []domain.Violation
	err = bindAndValidate(c, &req)
	endDate, ok := parseTimestamp(req.EndDate)
	if req.EndDate != "" && !ok {
		extra = append(extra, domain.Violation{Field: "endDate", Message: "must be a valid date"})
	}
	if err := merge(err, extra...); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.Request().Context(), who, ports.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		OriginalPrice:  *req.OriginalPrice,
		PictureURL:     req.PictureURL,
		EndDate:        endDate,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update handles PUT /api/products/:productId. Only fields present in the body change.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      int                   true  "Product ID"
// @Param        body       body      updateProductRequest  true  "Fields to change"
// @Success      200        {object}  productResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/products/{productId} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "productId", domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	var req updateProductRequest
	var extra []domain.Violation
	err = bindAndValidate(c, &req)
	patch := domain.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		PictureURL:    req.PictureURL,
	}
	if req.EndDate != nil {
		endDate, ok := parseTimestamp(*req.EndDate)
		if !ok {
			extra = append(extra, domain.Violation{Field: "endDate", Message: "must be a valid date"})
		}
		patch.EndDate = &endDate
	}
	if err := merge(err, extra...); err != nil {
		// A missing product or a foreign one is reported before body errors.
		if gateErr := h.service.AuthorizeProduct(c.Request().Context(), who, id, "update"); gateErr != nil {
			return gateErr
		}
		return err
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), who, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:productId.
//
// @Summary      Delete a product and its bids
// @Tags         products
// @Security     BearerAuth
// @Param        productId  path  int  true  "Product ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{productId} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "productId", domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(c.Request().Context(), who, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadPicture handles PUT /api/products/:productId/picture.
//
// @Summary      Upload a product picture
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      int   true  "Product ID"
// @Param        picture    formData  file  true  "JPEG, PNG, GIF or WebP image"
// @Success      200        {object}  productResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/products/{productId}/picture [put]
func (h *ProductHandler) UploadPicture(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "productId", domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("picture")
	if err != nil {
		return h.rejectPicture(c, who, id, "is required")
	}
	if h.maxPictureSize > 0 && fh.Size > h.maxPictureSize {
		return h.rejectPicture(c, who, id, fmt.Sprintf("must be at most %d bytes", h.maxPictureSize))
	}

	file, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	// The declared Content-Type is client controlled; sniff the bytes instead.
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("detect picture type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind upload: %w", err)
	}

	product, err := h.service.UploadPicture(c.Request().Context(), who, id, ports.PictureInput{
		Filename:    fh.Filename,
		ContentType: mtype.String(),
		Size:        fh.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) rejectPicture(c echo.Context, who domain.Identity, id int64, message string) error {
	if err := h.service.AuthorizeProduct(c.Request().Context(), who, id, "picture"); err != nil {
		return err
	}
	return domain.NewValidationError("picture", message)
}
