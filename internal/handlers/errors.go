package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/SscSPs/order_book_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError writes the status and body matching err.
func respondWithError(c *gin.Context, err error) {
	if obErr, ok := apperrors.AsOrderBookError(err); ok {
		status := http.StatusBadRequest
		if errors.Is(err, apperrors.ErrCurrencyNotRecognized) {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{Code: obErr.Code, Message: obErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
