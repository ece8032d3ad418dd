package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/order_book_app/internal/apperrors"
	"github.com/SscSPs/order_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/order_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/order_book_app/internal/core/ports/services"
	"github.com/SscSPs/order_book_app/internal/dto"
	"github.com/SscSPs/order_book_app/internal/utils/pagination"
)

// DefaultHistoryLimit is the page size used when none is requested.
const DefaultHistoryLimit = 10

type tradeService struct {
	BaseService
	ledger       portsrepo.TradeLedgerReader
	locks        *PairLocks
	defaultLimit int
}

// TradeServiceOption is a functional option for configuring the trade service
type TradeServiceOption func(*tradeService)

// WithDefaultHistoryLimit overrides DefaultHistoryLimit.
func WithDefaultHistoryLimit(limit int) TradeServiceOption {
	return func(s *tradeService) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithTradePairLocks shares the matching engine's lock table so history
// reads never observe a half-applied placement.
func WithTradePairLocks(locks *PairLocks) TradeServiceOption {
	return func(s *tradeService) {
		s.locks = locks
	}
}

// NewTradeService creates a trade history service over ledger.
func NewTradeService(ledger portsrepo.TradeLedgerReader, options ...TradeServiceOption) portssvc.TradeSvcFacade {
	svc := &tradeService{
		ledger:       ledger,
		locks:        NewPairLocks(),
		defaultLimit: DefaultHistoryLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// GetTradeHistory pages through the trades recorded under pairCode followed
// by those recorded under its reverse. The concatenation is not re-sorted.
func (s *tradeService) GetTradeHistory(ctx context.Context, pairCode string, params dto.TradeHistoryParams) (*domain.TradePage, error) {
	pair, err := domain.ParsePair(pairCode)
	if err != nil {
		return nil, err
	}

	offset := params.Offset
	if params.PageToken != "" {
		offset, err = pagination.DecodeOffsetToken(params.PageToken, pair.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	unlock := s.locks.RLock(pair)
	trades := s.ledger.Trades(pair)
	if reverse := pair.Reverse(); reverse != pair {
		trades = append(trades, s.ledger.Trades(reverse)...)
	}
	unlock()

	total := len(trades)
	if offset < 0 || offset > total {
		s.LogDebug(ctx, "Trade history page out of range",
			slog.String("pair", pair.String()),
			slog.Int("offset", offset),
			slog.Int("total", total),
		)
		return nil, apperrors.NewInvalidPagination(total/limit + 1)
	}

	end := min(offset+limit, total)
	return &domain.TradePage{
		Trades: trades[offset:end],
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}, nil
}
