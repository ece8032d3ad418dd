package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/SscSPs/order_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
)

type currencyService struct {
	BaseService
}

// NewCurrencyService creates a service over the recognized currency set.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (domain.Currency, error) {
	currency, err := domain.ParseCurrency(currencyCode)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.SupportedCurrencies(), nil
}
