package memory

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/SscSPs/order_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/order_book_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBookStore keeps one price-ordered slice of resting orders per
// canonical currency pair. Each slice is sorted descending by EffectivePrice;
// orders at equal price keep their insertion order.
type OrderBookStore struct {
	mu    sync.RWMutex
	books map[domain.CurrencyPair][]domain.Order
}

// NewOrderBookStore creates an empty store.
func NewOrderBookStore() portsrepo.OrderBookRepositoryFacade {
	return &OrderBookStore{books: make(map[domain.CurrencyPair][]domain.Order)}
}

// Insert puts order at the first position whose occupant is priced strictly
// lower, creating the book if needed.
func (s *OrderBookStore) Insert(pair domain.CurrencyPair, order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.books[pair]
	idx := sort.Search(len(book), func(i int) bool {
		return book[i].EffectivePrice.LessThan(order.EffectivePrice)
	})
	s.books[pair] = slices.Insert(book, idx, order)
}

// ReduceOrRemove fills part or all of a resting order.
func (s *OrderBookStore) ReduceOrRemove(pair domain.CurrencyPair, orderID uuid.UUID, filled decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.books[pair]
	idx := slices.IndexFunc(book, func(o domain.Order) bool { return o.ID == orderID })
	if idx < 0 {
		panic(fmt.Sprintf("order book %s: order %s not found", pair, orderID))
	}

	if filled.LessThan(book[idx].Quantity) {
		book[idx].Quantity = book[idx].Quantity.Sub(filled)
		return
	}

	book = slices.Delete(book, idx, idx+1)
	if len(book) == 0 {
		delete(s.books, pair)
		return
	}
	s.books[pair] = book
}

// Best returns the order at the head of a book.
func (s *OrderBookStore) Best(pair domain.CurrencyPair) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book := s.books[pair]
	if len(book) == 0 {
		return domain.Order{}, false
	}
	return book[0], true
}

// Snapshot copies a book. A pair with no book yields an empty slice.
func (s *OrderBookStore) Snapshot(pair domain.CurrencyPair) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book := s.books[pair]
	out := make([]domain.Order, len(book))
	copy(out, book)
	return out
}

// Clear drops every book.
func (s *OrderBookStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = make(map[domain.CurrencyPair][]domain.Order)
}
