package services

import (
	"context"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/dto"
)

// TradeHistorySvc defines read operations for executed trades
type TradeHistorySvc interface {
	// GetTradeHistory returns one page of trades for a pair and its reverse.
	GetTradeHistory(ctx context.Context, pairCode string, params dto.TradeHistoryParams) (*domain.TradePage, error)
}

// TradeSvcFacade combines all trade-related service interfaces
type TradeSvcFacade interface {
	TradeHistorySvc
}
