package services

import (
	"sync"

	"github.com/SscSPs/order_book_app/internal/core/domain"
)

// PairLocks serializes access per pair family: a pair and its reverse share
// one RWMutex. Families are independent. LockAll excludes every family at
// once and is used by Reset.
type PairLocks struct {
	all      sync.RWMutex
	mu       sync.Mutex
	families map[domain.CurrencyPair]*sync.RWMutex
}

// NewPairLocks creates an empty lock table.
func NewPairLocks() *PairLocks {
	return &PairLocks{families: make(map[domain.CurrencyPair]*sync.RWMutex)}
}

func (l *PairLocks) family(pair domain.CurrencyPair) *sync.RWMutex {
	key := pair.Family()

	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.families[key]
	if !ok {
		lock = &sync.RWMutex{}
		l.families[key] = lock
	}
	return lock
}

// Lock takes the exclusive lock of pair's family.
func (l *PairLocks) Lock(pair domain.CurrencyPair) (unlock func()) {
	l.all.RLock()
	lock := l.family(pair)
	lock.Lock()
	return func() {
		lock.Unlock()
		l.all.RUnlock()
	}
}

// RLock takes the shared lock of pair's family.
func (l *PairLocks) RLock(pair domain.CurrencyPair) (unlock func()) {
	l.all.RLock()
	lock := l.family(pair)
	lock.RLock()
	return func() {
		lock.RUnlock()
		l.all.RUnlock()
	}
}

// LockAll waits for every family operation to finish and blocks new ones.
func (l *PairLocks) LockAll() (unlock func()) {
	l.all.Lock()
	return l.all.Unlock
}
