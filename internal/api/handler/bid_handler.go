package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

type BidHandler struct {
	service ports.BidService
}

func NewBidHandler(service ports.BidService) *BidHandler {
	return &BidHandler{service: service}
}

// Place handles POST /api/products/:productId/bids. The bidder is the caller
// and the product comes from the path, whatever the body says.
//
// @Summary      Bid on a product
// @Tags         bids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId        path      int              true   "Product ID"
// @Param        Idempotency-Key  header    string           false  "Replays return the bid created by the first request"
// @Param        body             body      placeBidRequest  true   "Bid"
// @Success      201              {object}  bidResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /api/products/{productId}/bids [post]
func (h *BidHandler) Place(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId", domain.ErrProductNotFound)
	if err != nil {
		return err
	}

	var req placeBidRequest
	var extra []domain.Violation
	err = bindAndValidate(c, &req)
	var date time.Time
	if req.Date != "" {
		parsed, ok := parseTimestamp(req.Date)
		if !ok {
			extra = append(extra, domain.Violation{Field: "date", Message: "must be a valid date"})
		}
		date = parsed
	}
	if err := merge(err, extra...); err != nil {
		if gateErr := h.service.EnsureProduct(c.Request().Context(), productID); gateErr != nil {
			return gateErr
		}
		return err
	}

	bid, err := h.service.PlaceBid(c.Request().Context(), who, ports.PlaceBidInput{
		ProductID:      productID,
		Price:          *req.Price,
		Date:           date,
		IdempotencyKey: c.Request().Header.Get(idempotencyHeader),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBidResponse(bid))
}

// Delete handles DELETE /api/bids/:bidId.
//
// @Summary      Withdraw a bid
// @Tags         bids
// @Security     BearerAuth
// @Param        bidId  path  int  true  "Bid ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/bids/{bidId} [delete]
func (h *BidHandler) Delete(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "bidId", domain.ErrBidNotFound)
	if err != nil {
		return err
	}

	if err := h.service.DeleteBid(c.Request().Context(), who, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
