package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/utils/mapping"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TradeProducer exports executed trades to a Kafka topic, keyed by the
// taker's requested pair so one pair's trades stay ordered in a partition.
type TradeProducer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewTradeProducer creates an asynchronous producer for topic.
func NewTradeProducer(brokers []string, topic string, logger *slog.Logger) *TradeProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		BatchTimeout: 10 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to export trades", slog.Int("messages", len(messages)), slog.String("error", err.Error()))
			}
		},
	}
	return newTradeProducer(writer, logger)
}

func newTradeProducer(writer messageWriter, logger *slog.Logger) *TradeProducer {
	return &TradeProducer{writer: writer, logger: logger}
}

// PublishTrades writes one message per trade.
func (p *TradeProducer) PublishTrades(ctx context.Context, pair domain.CurrencyPair, trades []domain.Trade) {
	messages := make([]kafka.Message, 0, len(trades))
	for _, trade := range trades {
		value, err := json.Marshal(mapping.ToTradeResponse(trade))
		if err != nil {
			p.logger.Error("Failed to marshal trade", slog.String("trade_id", trade.ID.String()), slog.String("error", err.Error()))
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(pair.String()),
			Value: value,
			Time:  trade.TradedAt,
		})
	}
	if len(messages) == 0 {
		return
	}

	if err := p.writer.WriteMessages(context.WithoutCancel(ctx), messages...); err != nil {
		p.logger.Error("Failed to queue trades for export", slog.String("pair", pair.String()), slog.String("error", err.Error()))
	}
}

// PublishBookChange is a no-op; only trades are exported.
func (p *TradeProducer) PublishBookChange(context.Context, domain.CurrencyPair, int64) {}

// Close flushes pending messages.
func (p *TradeProducer) Close() error {
	return p.writer.Close()
}
