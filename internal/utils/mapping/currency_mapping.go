package mapping

import (
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/dto"
)

// ToCurrencyResponse converts a domain Currency to a CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) dto.CurrencyResponse {
	return dto.CurrencyResponse{
		CurrencyCode: c.Code(),
		Symbol:       c.Symbol(),
		Name:         c.Name(),
	}
}

// ToCurrencyResponses converts a slice of currencies
func ToCurrencyResponses(cs []domain.Currency) []dto.CurrencyResponse {
	out := make([]dto.CurrencyResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCurrencyResponse(c)
	}
	return out
}
