package memory_test

import (
	"testing"

	"github.com/SscSPs/order_book_app/internal/adapters/memory"
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrade(pair domain.CurrencyPair, seq int64) domain.Trade {
	return domain.Trade{
		ID:           uuid.New(),
		Price:        decimal.NewFromInt(2000),
		Quantity:     decimal.NewFromInt(1),
		CurrencyPair: pair,
		TakerSide:    domain.SideBuy,
		SequenceID:   seq,
		QuoteVolume:  decimal.NewFromInt(2000),
	}
}

func TestTradeLedger_RecordKeepsExecutionOrderPerPair(t *testing.T) {
	ledger := memory.NewTradeLedger()
	ledger.Record(newTrade(btcZar, 0))
	ledger.Record(newTrade(btcZar.Reverse(), 1))
	ledger.Record(newTrade(btcZar, 2))

	direct := ledger.Trades(btcZar)
	require.Len(t, direct, 2)
	assert.Equal(t, int64(0), direct[0].SequenceID)
	assert.Equal(t, int64(2), direct[1].SequenceID)

	reversed := ledger.Trades(btcZar.Reverse())
	require.Len(t, reversed, 1)
	assert.Equal(t, int64(1), reversed[0].SequenceID)
}

func TestTradeLedger_DoesNotDeduplicate(t *testing.T) {
	ledger := memory.NewTradeLedger()
	trade := newTrade(btcZar, 0)
	ledger.Record(trade)
	ledger.Record(trade)

	assert.Len(t, ledger.Trades(btcZar), 2)
}

func TestTradeLedger_EmptyAndClear(t *testing.T) {
	ledger := memory.NewTradeLedger()
	assert.NotNil(t, ledger.Trades(btcZar))
	assert.Empty(t, ledger.Trades(btcZar))

	ledger.Record(newTrade(btcZar, 0))
	ledger.Clear()
	assert.Empty(t, ledger.Trades(btcZar))
}
