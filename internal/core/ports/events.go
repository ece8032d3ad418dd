package ports

import (
	"context"

	"github.com/SscSPs/order_book_app/internal/core/domain"
)

// EventPublisher receives order book activity once a placement has been
// applied. Implementations must not block the caller for long; the matching
// engine calls them after releasing its locks.
type EventPublisher interface {
	// PublishTrades announces trades executed by one placement.
	PublishTrades(ctx context.Context, pair domain.CurrencyPair, trades []domain.Trade)

	// PublishBookChange announces that the books of pair and its reverse changed.
	PublishBookChange(ctx context.Context, pair domain.CurrencyPair, sequenceNumber int64)
}
