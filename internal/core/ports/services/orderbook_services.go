package services

import (
	"context"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/dto"
)

// OrderPlacementSvc defines the write side of the matching engine
type OrderPlacementSvc interface {
	// PlaceOrder matches a limit order against resting liquidity and rests
	// whatever quantity remains.
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*domain.PlacementOutcome, error)
}

// OrderBookReaderSvc defines read operations for order books
type OrderBookReaderSvc interface {
	// ListOrders returns bids and asks for a pair code such as "BTCZAR".
	ListOrders(ctx context.Context, pairCode string) (*domain.OrderBookView, error)
}

// OrderBookResetter clears books, trades and counters. Test support only.
type OrderBookResetter interface {
	Reset(ctx context.Context)
}

// OrderBookSvcFacade combines all order book service interfaces
type OrderBookSvcFacade interface {
	OrderPlacementSvc
	OrderBookReaderSvc
	OrderBookResetter
}
