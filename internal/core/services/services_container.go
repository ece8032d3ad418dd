package services

import (
	"github.com/SscSPs/order_book_app/internal/core/ports"
	portsrepo "github.com/SscSPs/order_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The matching engine and the trade service share one lock table so history
// reads are consistent with placements.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher ports.EventPublisher) *portssvc.ServiceContainer {
	locks := NewPairLocks()

	container := &portssvc.ServiceContainer{}
	container.OrderBook = NewOrderBookService(
		repos.OrderBookRepo,
		repos.TradeLedgerRepo,
		WithPairLocks(locks),
		WithEventPublisher(publisher),
	)
	container.Trade = NewTradeService(
		repos.TradeLedgerRepo,
		WithTradePairLocks(locks),
		WithDefaultHistoryLimit(cfg.DefaultHistoryLimit),
	)
	container.Currency = NewCurrencyService()

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.OrderBookSvcFacade = (*orderBookService)(nil)
	_ portssvc.TradeSvcFacade     = (*tradeService)(nil)
	_ portssvc.CurrencySvcFacade  = (*currencyService)(nil)
)
