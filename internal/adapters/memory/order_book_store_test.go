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

var btcZar = domain.NewCurrencyPair(domain.BTC, domain.ZAR)

func newOrder(price, qty string) domain.Order {
	return domain.Order{
		ID:                    uuid.New(),
		Side:                  domain.SideBuy,
		Quantity:              decimal.RequireFromString(qty),
		OriginalPrice:         decimal.RequireFromString(price),
		OriginalCurrencyPair:  btcZar,
		EffectivePrice:        decimal.RequireFromString(price),
		EffectiveCurrencyPair: btcZar,
	}
}

func prices(orders []domain.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.EffectivePrice.String()
	}
	return out
}

func TestOrderBookStore_InsertKeepsDescendingPrice(t *testing.T) {
	store := memory.NewOrderBookStore()
	for _, p := range []string{"1071", "1922", "1040", "1923", "1920", "1517", "1453", "1974", "1025", "2000"} {
		store.Insert(btcZar, newOrder(p, "1"))
	}

	got := prices(store.Snapshot(btcZar))
	assert.Equal(t, []string{"2000", "1974", "1923", "1922", "1920", "1517", "1453", "1071", "1040", "1025"}, got)
}

func TestOrderBookStore_InsertKeepsFIFOAtEqualPrice(t *testing.T) {
	store := memory.NewOrderBookStore()
	first := newOrder("100", "1")
	second := newOrder("100", "2")
	higher := newOrder("101", "3")
	third := newOrder("100", "4")

	store.Insert(btcZar, first)
	store.Insert(btcZar, second)
	store.Insert(btcZar, higher)
	store.Insert(btcZar, third)

	snapshot := store.Snapshot(btcZar)
	require.Len(t, snapshot, 4)
	assert.Equal(t, higher.ID, snapshot[0].ID)
	assert.Equal(t, first.ID, snapshot[1].ID)
	assert.Equal(t, second.ID, snapshot[2].ID)
	assert.Equal(t, third.ID, snapshot[3].ID)

	best, ok := store.Best(btcZar)
	require.True(t, ok)
	assert.Equal(t, higher.ID, best.ID)
}

func TestOrderBookStore_PairsAreSeparateBooks(t *testing.T) {
	store := memory.NewOrderBookStore()
	store.Insert(btcZar, newOrder("10", "1"))

	assert.Len(t, store.Snapshot(btcZar), 1)
	assert.Empty(t, store.Snapshot(btcZar.Reverse()))
	assert.NotNil(t, store.Snapshot(btcZar.Reverse()))

	_, ok := store.Best(btcZar.Reverse())
	assert.False(t, ok)
}

func TestOrderBookStore_ReduceOrRemove(t *testing.T) {
	store := memory.NewOrderBookStore()
	order := newOrder("2000", "1905")
	store.Insert(btcZar, order)

	store.ReduceOrRemove(btcZar, order.ID, decimal.RequireFromString("17.05"))
	snapshot := store.Snapshot(btcZar)
	require.Len(t, snapshot, 1)
	assert.True(t, decimal.RequireFromString("1887.95").Equal(snapshot[0].Quantity))

	store.ReduceOrRemove(btcZar, order.ID, decimal.RequireFromString("1887.95"))
	assert.Empty(t, store.Snapshot(btcZar))
}

func TestOrderBookStore_ReduceOrRemoveOverfillRemoves(t *testing.T) {
	store := memory.NewOrderBookStore()
	keep := newOrder("10", "1")
	gone := newOrder("20", "1")
	store.Insert(btcZar, keep)
	store.Insert(btcZar, gone)

	store.ReduceOrRemove(btcZar, gone.ID, decimal.NewFromInt(5))

	snapshot := store.Snapshot(btcZar)
	require.Len(t, snapshot, 1)
	assert.Equal(t, keep.ID, snapshot[0].ID)
}

func TestOrderBookStore_ReduceOrRemoveUnknownOrderPanics(t *testing.T) {
	store := memory.NewOrderBookStore()
	store.Insert(btcZar, newOrder("10", "1"))

	assert.Panics(t, func() {
		store.ReduceOrRemove(btcZar, uuid.New(), decimal.NewFromInt(1))
	})
}

func TestOrderBookStore_SnapshotIsACopy(t *testing.T) {
	store := memory.NewOrderBookStore()
	store.Insert(btcZar, newOrder("10", "1"))

	snapshot := store.Snapshot(btcZar)
	snapshot[0].Quantity = decimal.NewFromInt(99)

	assert.True(t, decimal.NewFromInt(1).Equal(store.Snapshot(btcZar)[0].Quantity))
}

func TestOrderBookStore_Clear(t *testing.T) {
	store := memory.NewOrderBookStore()
	store.Insert(btcZar, newOrder("10", "1"))
	store.Insert(btcZar.Reverse(), newOrder("0.1", "1"))

	store.Clear()

	assert.Empty(t, store.Snapshot(btcZar))
	assert.Empty(t, store.Snapshot(btcZar.Reverse()))
}
