package memory

import (
	"sync"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/order_book_app/internal/core/ports/repositories"
)

// TradeLedger is an append-only record of trades keyed by the pair the taker
// requested.
type TradeLedger struct {
	mu     sync.RWMutex
	trades map[domain.CurrencyPair][]domain.Trade
}

// NewTradeLedger creates an empty ledger.
func NewTradeLedger() portsrepo.TradeLedgerRepositoryFacade {
	return &TradeLedger{trades: make(map[domain.CurrencyPair][]domain.Trade)}
}

// Record appends trade under trade.CurrencyPair.
func (l *TradeLedger) Record(trade domain.Trade) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trades[trade.CurrencyPair] = append(l.trades[trade.CurrencyPair], trade)
}

// Trades copies the trades recorded under pair.
func (l *TradeLedger) Trades(pair domain.CurrencyPair) []domain.Trade {
	l.mu.RLock()
	defer l.mu.RUnlock()

	recorded := l.trades[pair]
	out := make([]domain.Trade, len(recorded))
	copy(out, recorded)
	return out
}

// Clear drops every trade.
func (l *TradeLedger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trades = make(map[domain.CurrencyPair][]domain.Trade)
}
