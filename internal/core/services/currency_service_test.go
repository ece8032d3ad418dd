package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyService_GetCurrencyByCode(t *testing.T) {
	svc := services.NewCurrencyService()

	currency, err := svc.GetCurrencyByCode(context.Background(), "ZAR")
	require.NoError(t, err)
	assert.Equal(t, domain.ZAR, currency)

	_, err = svc.GetCurrencyByCode(context.Background(), "DOG")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyNotRecognized)
}

func TestCurrencyService_ListCurrencies(t *testing.T) {
	currencies, err := services.NewCurrencyService().ListCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SupportedCurrencies(), currencies)
}
