package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is an execution between an incoming (taker) order and a resting
// (maker) order. Price and CurrencyPair are the taker's as submitted.
type Trade struct {
	ID           uuid.UUID       `json:"id"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	CurrencyPair CurrencyPair    `json:"currencyPair"`
	TradedAt     time.Time       `json:"tradedAt"`
	TakerSide    Side            `json:"takerSide"`
	SequenceID   int64           `json:"sequenceId"`
	QuoteVolume  decimal.Decimal `json:"quoteVolume"`
	MakerOrderID uuid.UUID       `json:"makerOrderId"`
}

// TradePage is one page of a pair's trade history.
type TradePage struct {
	Trades []Trade
	Offset int
	Limit  int
	Total  int
}

// HasMore reports whether entries exist past this page.
func (p TradePage) HasMore() bool {
	return p.Offset+len(p.Trades) < p.Total
}

// NextOffset is the offset of the page following this one.
func (p TradePage) NextOffset() int {
	return p.Offset + len(p.Trades)
}
