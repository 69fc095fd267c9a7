// Package ledger contains the usecases that mutate a child's wallet.
package ledger

import (
	"sync"

	"github.com/google/uuid"
)

// WalletLocker serializes ledger operations per child. Every wallet is
// logically single-writer: each operation reads current fields before
// writing derived ones, so concurrent callers must hold the child's lock
// around the whole load-mutate-commit sequence.
type WalletLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewWalletLocker creates a new per-child lock registry.
func NewWalletLocker() *WalletLocker {
	return &WalletLocker{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Lock acquires the child's wallet lock and returns the unlock function.
func (l *WalletLocker) Lock(childID uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[childID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[childID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
