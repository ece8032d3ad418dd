package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/SscSPs/order_book_app/internal/utils/mapping"
	"github.com/SscSPs/order_book_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// NextPageTokenHeader carries the token of the following trade history page.
const NextPageTokenHeader = "X-Next-Page-Token"

type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

func registerTradeRoutes(rg *gin.RouterGroup, svc portssvc.TradeSvcFacade) {
	h := &tradeHandler{tradeService: svc}
	rg.GET("/pairs/:pair/tradehistory", h.getTradeHistory)
}

// getTradeHistory godoc
// @Summary Get trade history
// @Description Lists trades executed for a pair followed by those executed for its reverse.
// @Tags trades
// @Produce json
// @Param pair path string true "Currency pair, e.g. BTCZAR"
// @Param offset query int false "Offset of the first trade" default(0)
// @Param limit query int false "Maximum number of trades" default(10)
// @Param pageToken query string false "Token from a previous X-Next-Page-Token header"
// @Success 200 {array} dto.TradeResponse
// @Header 200 {string} X-Next-Page-Token "Present when more trades exist"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BasicAuth
// @Security BearerAuth
// @Router /pairs/{pair}/tradehistory [get]
func (h *tradeHandler) getTradeHistory(c *gin.Context) {
	var params dto.TradeHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, fmt.Errorf("%w: invalid pagination parameters: %s", apperrors.ErrValidation, err.Error()))
		return
	}

	pairCode := c.Param("pair")
	page, err := h.tradeService.GetTradeHistory(c.Request.Context(), pairCode, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if page.HasMore() {
		c.Header(NextPageTokenHeader, pagination.EncodeOffsetToken(pairCode, page.NextOffset()))
	}
	c.JSON(http.StatusOK, mapping.ToTradeResponses(page.Trades))
}
