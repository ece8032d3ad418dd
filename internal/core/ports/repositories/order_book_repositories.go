package repositories

import (
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBookReader defines read operations over resting orders.
type OrderBookReader interface {
	// Best returns the highest-priced (earliest at equal price) order of a book.
	Best(pair domain.CurrencyPair) (domain.Order, bool)

	// Snapshot returns a copy of a book in priority order. Never nil.
	Snapshot(pair domain.CurrencyPair) []domain.Order
}

// OrderBookWriter defines mutations of resting orders. Callers serialize
// writes per pair family.
type OrderBookWriter interface {
	// Insert places an order after every order priced at or above it.
	Insert(pair domain.CurrencyPair, order domain.Order)

	// ReduceOrRemove subtracts filled from a resting order, removing it once
	// nothing remains. It panics if the order is not in the book.
	ReduceOrRemove(pair domain.CurrencyPair, orderID uuid.UUID, filled decimal.Decimal)

	// Clear drops every book.
	Clear()
}

// OrderBookRepositoryFacade combines all order book repository interfaces
type OrderBookRepositoryFacade interface {
	OrderBookReader
	OrderBookWriter
}
