package domain

import (
	"time"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is the direction of an order as submitted.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide validates a submitted side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy, SideSell:
		return Side(s), nil
	default:
		return "", apperrors.NewInvalidOrderFormat()
	}
}

// Order is a resting limit order. Stored orders always carry BUY semantics in
// their EffectiveCurrencyPair; SELL orders are kept as BUY orders of the
// reversed pair at the reciprocal price.
type Order struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Side      Side      `json:"side"`
	// Quantity is the remaining quantity and is always positive while the
	// order rests in a book.
	Quantity              decimal.Decimal `json:"quantity"`
	OriginalPrice         decimal.Decimal `json:"originalPrice"`
	OriginalCurrencyPair  CurrencyPair    `json:"originalCurrencyPair"`
	EffectivePrice        decimal.Decimal `json:"effectivePrice"`
	EffectiveCurrencyPair CurrencyPair    `json:"effectiveCurrencyPair"`
	CurrencyPairReversed  bool            `json:"currencyPairReversed"`
}

// DisplayPrice is the price shown when the order is listed on the ask side of
// its reversed pair: the submitter's own quoting if it was canonicalized.
func (o Order) DisplayPrice() decimal.Decimal {
	if o.CurrencyPairReversed {
		return o.OriginalPrice
	}
	return o.EffectivePrice
}

// PlacementStatus summarizes what happened to an incoming order.
type PlacementStatus string

const (
	PlacementMatched          PlacementStatus = "MATCHED"
	PlacementPartiallyMatched PlacementStatus = "PARTIALLY_MATCHED"
	PlacementResting          PlacementStatus = "RESTING"
)

// PlacementOutcome is the result of placing a limit order.
type PlacementOutcome struct {
	Status            PlacementStatus
	Trades            []Trade
	RestingOrder      *Order
	RemainingQuantity decimal.Decimal
	// OrderSequence is the order sequence counter after the placement.
	OrderSequence int64
}

// FullyMatched reports whether no quantity was left to rest.
func (o PlacementOutcome) FullyMatched() bool {
	return o.Status == PlacementMatched
}

// OrderBookLine is one resting order as displayed in an order book listing.
type OrderBookLine struct {
	Side         Side
	Quantity     decimal.Decimal
	Price        decimal.Decimal
	CurrencyPair CurrencyPair
	OrderCount   int
}

// OrderBookView is a consistent snapshot of both sides of a pair.
type OrderBookView struct {
	Pair           CurrencyPair
	Bids           []OrderBookLine
	Asks           []OrderBookLine
	LastChange     time.Time
	SequenceNumber int64
}
