package stream

import (
	"context"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/core/ports"
)

// Publishers fans events out to several publishers in order.
type Publishers []ports.EventPublisher

func (ps Publishers) PublishTrades(ctx context.Context, pair domain.CurrencyPair, trades []domain.Trade) {
	for _, p := range ps {
		p.PublishTrades(ctx, pair, trades)
	}
}

func (ps Publishers) PublishBookChange(ctx context.Context, pair domain.CurrencyPair, sequenceNumber int64) {
	for _, p := range ps {
		p.PublishBookChange(ctx, pair, sequenceNumber)
	}
}

var (
	_ ports.EventPublisher = Publishers(nil)
	_ ports.EventPublisher = (*Hub)(nil)
	_ ports.EventPublisher = (*TradeProducer)(nil)
)
