package services

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/SscSPs/order_book_app/internal/core/domain"
	"github.com/SscSPs/order_book_app/internal/core/ports"
	portsrepo "github.com/SscSPs/order_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderBookService is the matching engine. It owns every mutation of the
// order books and the trade ledger.
type orderBookService struct {
	BaseService
	books     portsrepo.OrderBookRepositoryFacade
	ledger    portsrepo.TradeLedgerWriter
	locks     *PairLocks
	sequences *SequenceCounters
	publisher ports.EventPublisher
	now       func() time.Time

	// lastChange holds the UnixNano time of the last book mutation.
	lastChange atomic.Int64
}

// OrderBookOption is a functional option for configuring the matching engine
type OrderBookOption func(*orderBookService)

// WithEventPublisher sets where trades and book changes are announced.
func WithEventPublisher(publisher ports.EventPublisher) OrderBookOption {
	return func(s *orderBookService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithClock replaces time.Now for order and trade timestamps.
func WithClock(now func() time.Time) OrderBookOption {
	return func(s *orderBookService) {
		s.now = now
	}
}

// WithPairLocks shares a lock table with other services reading the books.
func WithPairLocks(locks *PairLocks) OrderBookOption {
	return func(s *orderBookService) {
		s.locks = locks
	}
}

// WithSequenceCounters shares the process-wide counters.
func WithSequenceCounters(sequences *SequenceCounters) OrderBookOption {
	return func(s *orderBookService) {
		s.sequences = sequences
	}
}

// NewOrderBookService creates the matching engine over the given stores.
func NewOrderBookService(books portsrepo.OrderBookRepositoryFacade, ledger portsrepo.TradeLedgerWriter, options ...OrderBookOption) portssvc.OrderBookSvcFacade {
	svc := &orderBookService{
		books:     books,
		ledger:    ledger,
		locks:     NewPairLocks(),
		sequences: NewSequenceCounters(),
		publisher: noopPublisher{},
		now:       time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	svc.lastChange.Store(svc.now().UnixNano())
	return svc
}

// PlaceOrder matches a limit order against the opposite canonical book and
// rests any remainder in the order's own canonical book.
func (s *orderBookService) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*domain.PlacementOutcome, error) {
	logger := s.GetLogger(ctx)

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewInvalidOrderFormat()
	}
	pair, err := domain.ParsePair(req.Pair)
	if err != nil {
		return nil, err
	}
	canonicalPair, canonicalPrice, err := domain.Canonicalize(side, pair, req.Price)
	if err != nil {
		return nil, err
	}
	threshold, err := domain.MatchThreshold(side, req.Price)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(pair)
	outcome := s.match(side, pair, req.Price, req.Quantity, canonicalPair, canonicalPrice, threshold)
	unlock()

	logger.Info("Order placed",
		slog.String("pair", pair.String()),
		slog.String("side", string(side)),
		slog.String("status", string(outcome.Status)),
		slog.Int("trades", len(outcome.Trades)),
		slog.String("remaining", outcome.RemainingQuantity.String()),
	)

	if len(outcome.Trades) > 0 {
		s.publisher.PublishTrades(ctx, pair, outcome.Trades)
	}
	s.publisher.PublishBookChange(ctx, pair, outcome.OrderSequence)

	return outcome, nil
}

// match runs with the pair family locked. Only the contiguous prefix of the
// opposite book priced at or above threshold is eligible.
func (s *orderBookService) match(side domain.Side, pair domain.CurrencyPair, price, quantity decimal.Decimal,
	canonicalPair domain.CurrencyPair, canonicalPrice, threshold decimal.Decimal) *domain.PlacementOutcome {
	now := s.now()
	oppositePair := canonicalPair.Reverse()
	remaining := quantity
	trades := []domain.Trade{}

	for remaining.IsPositive() {
		maker, ok := s.books.Best(oppositePair)
		if !ok || maker.EffectivePrice.LessThan(threshold) {
			break
		}

		fill := decimal.Min(remaining, maker.Quantity)
		trade := domain.Trade{
			ID:           uuid.New(),
			Price:        price,
			Quantity:     fill,
			CurrencyPair: pair,
			TradedAt:     now,
			TakerSide:    side,
			SequenceID:   s.sequences.NextTradeID(),
			QuoteVolume:  price.Mul(fill),
			MakerOrderID: maker.ID,
		}
		s.books.ReduceOrRemove(oppositePair, maker.ID, fill)
		s.ledger.Record(trade)
		trades = append(trades, trade)
		remaining = remaining.Sub(fill)
	}

	outcome := &domain.PlacementOutcome{
		Status:            domain.PlacementMatched,
		Trades:            trades,
		RemainingQuantity: decimal.Max(remaining, decimal.Zero),
	}

	if remaining.IsPositive() {
		order := domain.Order{
			ID:                    uuid.New(),
			CreatedAt:             now,
			Side:                  domain.SideBuy,
			Quantity:              remaining,
			OriginalPrice:         price,
			OriginalCurrencyPair:  pair,
			EffectivePrice:        canonicalPrice,
			EffectiveCurrencyPair: canonicalPair,
			CurrencyPairReversed:  canonicalPair != pair,
		}
		s.books.Insert(canonicalPair, order)
		s.sequences.AdvanceOrders()
		outcome.RestingOrder = &order
		outcome.Status = domain.PlacementResting
		if len(trades) > 0 {
			outcome.Status = domain.PlacementPartiallyMatched
		}
	}

	if outcome.RestingOrder != nil || len(trades) > 0 {
		s.lastChange.Store(now.UnixNano())
	}
	outcome.OrderSequence = s.sequences.OrderSequence()
	return outcome
}

// ListOrders returns the bids of pairCode and the asks held in its reverse
// book, read under the family lock.
func (s *orderBookService) ListOrders(ctx context.Context, pairCode string) (*domain.OrderBookView, error) {
	pair, err := domain.ParsePair(pairCode)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.RLock(pair)
	bids := s.books.Snapshot(pair)
	asks := s.books.Snapshot(pair.Reverse())
	view := &domain.OrderBookView{
		Pair:           pair,
		Bids:           make([]domain.OrderBookLine, 0, len(bids)),
		Asks:           make([]domain.OrderBookLine, 0, len(asks)),
		LastChange:     time.Unix(0, s.lastChange.Load()).UTC(),
		SequenceNumber: s.sequences.OrderSequence(),
	}
	unlock()

	for _, order := range bids {
		view.Bids = append(view.Bids, domain.OrderBookLine{
			Side:         domain.SideBuy,
			Quantity:     order.Quantity,
			Price:        order.EffectivePrice,
			CurrencyPair: pair,
			OrderCount:   1,
		})
	}
	for _, order := range asks {
		view.Asks = append(view.Asks, domain.OrderBookLine{
			Side:         domain.SideSell,
			Quantity:     order.Quantity,
			Price:        order.DisplayPrice(),
			CurrencyPair: pair,
			OrderCount:   1,
		})
	}

	s.LogDebug(ctx, "Order book listed",
		slog.String("pair", pair.String()),
		slog.Int("bids", len(view.Bids)),
		slog.Int("asks", len(view.Asks)),
	)
	return view, nil
}

// Reset clears books, trades and both counters.
func (s *orderBookService) Reset(ctx context.Context) {
	unlock := s.locks.LockAll()
	defer unlock()

	s.books.Clear()
	s.ledger.Clear()
	s.sequences.Reset()
	s.lastChange.Store(s.now().UnixNano())
	s.LogInfo(ctx, "Order books reset")
}

// noopPublisher is used when no event sink is configured.
type noopPublisher struct{}

func (noopPublisher) PublishTrades(context.Context, domain.CurrencyPair, []domain.Trade) {}

func (noopPublisher) PublishBookChange(context.Context, domain.CurrencyPair, int64) {}
