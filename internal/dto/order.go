package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest defines the data needed to place a limit order.
// Quantity and price accept JSON numbers or strings.
type PlaceOrderRequest struct {
	Side     string          `json:"side" binding:"required,oneof=BUY SELL"`
	Quantity decimal.Decimal `json:"quantity" binding:"positive_decimal"`
	Price    decimal.Decimal `json:"price"`
	Pair     string          `json:"pair" binding:"required"`
}

// PlaceOrderResponse is returned after a limit order has been processed.
type PlaceOrderResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Outcome PlacementOutcome `json:"outcome"`
}

// PlacementOutcome describes the trades and resting remainder of a placement.
type PlacementOutcome struct {
	Result            string          `json:"result"`
	RemainingQuantity decimal.Decimal `json:"remainingQuantity"`
	RestingOrderID    string          `json:"restingOrderId,omitempty"`
	Trades            []TradeResponse `json:"trades"`
	SequenceNumber    int64           `json:"sequenceNumber"`
}

// OrderResponse is one line of an order book listing.
type OrderResponse struct {
	Side         string          `json:"side"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CurrencyPair string          `json:"currencyPair"`
	OrderCount   int             `json:"orderCount"`
}

// OrderBookResponse lists both sides of a pair.
type OrderBookResponse struct {
	Asks           []OrderResponse `json:"Asks"`
	Bids           []OrderResponse `json:"Bids"`
	LastChange     time.Time       `json:"LastChange"`
	SequenceNumber int64           `json:"SequenceNumber"`
}
