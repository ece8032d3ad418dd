package mapping

import (
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/dto"
)

// ToTradeResponse converts a domain Trade to a TradeResponse DTO
func ToTradeResponse(t domain.Trade) dto.TradeResponse {
	return dto.TradeResponse{
		Price:        t.Price,
		Quantity:     t.Quantity,
		CurrencyPair: t.CurrencyPair.String(),
		TradedAt:     t.TradedAt,
		TakerSide:    string(t.TakerSide),
		SequenceID:   t.SequenceID,
		ID:           t.ID.String(),
		QuoteVolume:  t.QuoteVolume,
	}
}

// ToTradeResponses converts a slice of trades. Never returns nil.
func ToTradeResponses(ts []domain.Trade) []dto.TradeResponse {
	out := make([]dto.TradeResponse, len(ts))
	for i, t := range ts {
		out[i] = ToTradeResponse(t)
	}
	return out
}
