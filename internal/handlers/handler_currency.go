package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := &currencyHandler{currencyService: currencyService}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists every currency that may appear in a pair.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BasicAuth
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToCurrencyResponses(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code, e.g. BTC"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BasicAuth
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToCurrencyResponse(currency))
}
