package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeHistoryParams holds the query parameters for trade history pagination.
type TradeHistoryParams struct {
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	PageToken string `form:"pageToken"`
}

// TradeResponse defines the data returned for an executed trade.
type TradeResponse struct {
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	CurrencyPair string          `json:"currencyPair"`
	TradedAt     time.Time       `json:"tradedAt"`
	TakerSide    string          `json:"takerSide"`
	SequenceID   int64           `json:"sequenceId"`
	ID           string          `json:"id"`
	QuoteVolume  decimal.Decimal `json:"quoteVolume"`
}
