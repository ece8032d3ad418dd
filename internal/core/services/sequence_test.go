package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestSequenceCounters(t *testing.T) {
	counters := services.NewSequenceCounters()

	assert.Equal(t, int64(0), counters.NextTradeID())
	assert.Equal(t, int64(1), counters.NextTradeID())
	assert.Equal(t, int64(2), counters.TradeSequence())

	assert.Equal(t, int64(0), counters.OrderSequence())
	assert.Equal(t, int64(1), counters.AdvanceOrders())
	assert.Equal(t, int64(1), counters.OrderSequence())

	counters.Reset()
	assert.Equal(t, int64(0), counters.OrderSequence())
	assert.Equal(t, int64(0), counters.NextTradeID())
}

func TestSequenceCounters_ConcurrentTradeIDsAreUnique(t *testing.T) {
	counters := services.NewSequenceCounters()
	ids := make(chan int64, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ids <- counters.NextTradeID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, 1000)
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
	assert.Equal(t, int64(1000), counters.TradeSequence())
}

func TestPairLocks_PairAndReverseShareALock(t *testing.T) {
	locks := services.NewPairLocks()
	pair := domain.NewCurrencyPair(domain.BTC, domain.ZAR)

	unlock := locks.Lock(pair)
	acquired := make(chan struct{})
	go func() {
		release := locks.Lock(pair.Reverse())
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("reverse pair lock acquired while the pair was locked")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("reverse pair lock not acquired after unlock")
	}
}

func TestPairLocks_UnrelatedFamiliesDoNotBlock(t *testing.T) {
	locks := services.NewPairLocks()

	unlock := locks.Lock(domain.NewCurrencyPair(domain.BTC, domain.ZAR))
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := locks.Lock(domain.NewCurrencyPair(domain.ETH, domain.USD))
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("unrelated family blocked")
	}
}

func TestPairLocks_LockAllWaitsForReaders(t *testing.T) {
	locks := services.NewPairLocks()
	pair := domain.NewCurrencyPair(domain.BTC, domain.ZAR)

	runlock := locks.RLock(pair)
	second := locks.RLock(pair.Reverse())
	second()

	acquired := make(chan struct{})
	go func() {
		release := locks.LockAll()
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("LockAll acquired while a reader was active")
	case <-time.After(50 * time.Millisecond):
	}

	runlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("LockAll not acquired after readers finished")
	}
}
