package repositories

import (
	"github.com/SscSPs/order_book_app/internal/core/domain"
)

// TradeLedgerReader defines read operations for executed trades
type TradeLedgerReader interface {
	// Trades returns a copy of the trades recorded under pair, in execution order.
	Trades(pair domain.CurrencyPair) []domain.Trade
}

// TradeLedgerWriter defines write operations for executed trades
type TradeLedgerWriter interface {
	// Record appends a trade under its own CurrencyPair.
	Record(trade domain.Trade)

	// Clear drops every recorded trade.
	Clear()
}

// TradeLedgerRepositoryFacade combines all trade ledger repository interfaces
type TradeLedgerRepositoryFacade interface {
	TradeLedgerReader
	TradeLedgerWriter
}
