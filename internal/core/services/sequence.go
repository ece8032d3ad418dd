package services

import "sync/atomic"

// SequenceCounters holds the two process-wide counters. The order sequence
// counts resting insertions; the trade sequence hands out trade ids starting
// at 0. Neither is scoped to a pair.
type SequenceCounters struct {
	orders atomic.Int64
	trades atomic.Int64
}

// NewSequenceCounters creates counters starting at zero.
func NewSequenceCounters() *SequenceCounters {
	return &SequenceCounters{}
}

// NextTradeID returns the id for the next trade.
func (c *SequenceCounters) NextTradeID() int64 {
	return c.trades.Add(1) - 1
}

// AdvanceOrders records one resting insertion and returns the new value.
func (c *SequenceCounters) AdvanceOrders() int64 {
	return c.orders.Add(1)
}

// OrderSequence is the current order sequence value.
func (c *SequenceCounters) OrderSequence() int64 {
	return c.orders.Load()
}

// TradeSequence is the id the next trade will receive.
func (c *SequenceCounters) TradeSequence() int64 {
	return c.trades.Load()
}

// Reset sets both counters back to zero.
func (c *SequenceCounters) Reset() {
	c.orders.Store(0)
	c.trades.Store(0)
}
