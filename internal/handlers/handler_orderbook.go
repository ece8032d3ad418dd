package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/SscSPs/order_book_app/internal/middleware"
	"github.com/SscSPs/order_book_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// orderBookHandler handles order placement and order book listing.
type orderBookHandler struct {
	orderBookService portssvc.OrderBookSvcFacade
}

func newOrderBookHandler(svc portssvc.OrderBookSvcFacade) *orderBookHandler {
	return &orderBookHandler{orderBookService: svc}
}

// registerOrderBookRoutes registers order placement and listing routes.
func registerOrderBookRoutes(rg *gin.RouterGroup, svc portssvc.OrderBookSvcFacade) {
	h := newOrderBookHandler(svc)

	rg.POST("/orders/limit", h.placeLimitOrder)
	rg.GET("/pairs/:pair/orderbook", h.getOrderBook)
}

// placeLimitOrder godoc
// @Summary Place a limit order
// @Description Matches a limit order against resting orders and rests any remainder.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.PlaceOrderRequest true "Limit order"
// @Success 200 {object} dto.PlaceOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BasicAuth
// @Security BearerAuth
// @Router /orders/limit [post]
func (h *orderBookHandler) placeLimitOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind limit order", slog.String("error", err.Error()))
		respondWithError(c, apperrors.NewInvalidOrderFormat())
		return
	}

	outcome, err := h.orderBookService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		logger.Info("Limit order rejected", slog.String("pair", req.Pair), slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapping.ToPlaceOrderResponse(*outcome))
}

// getOrderBook godoc
// @Summary Get an order book
// @Description Lists resting bids and asks for a currency pair.
// @Tags orders
// @Produce json
// @Param pair path string true "Currency pair, e.g. BTCZAR"
// @Success 200 {object} dto.OrderBookResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BasicAuth
// @Security BearerAuth
// @Router /pairs/{pair}/orderbook [get]
func (h *orderBookHandler) getOrderBook(c *gin.Context) {
	view, err := h.orderBookService.ListOrders(c.Request.Context(), c.Param("pair"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToOrderBookResponse(*view))
}
