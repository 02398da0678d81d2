package commands

import (
	"sync"

	"dispatch/internal/core/domain/model/kernel"
)

// MarketLocks serializes mutating evaluations per market. Fallback
// evaluation and queue building both read a market-wide order snapshot
// and write back the changed orders, so two concurrent runs over the
// same market could overwrite each other's fallback transitions. The
// composition root creates one MarketLocks instance and shares it
// between the handlers that mutate market state.
type MarketLocks struct {
	locks sync.Map // kernel.UUID -> *sync.Mutex
}

func NewMarketLocks() *MarketLocks {
	return &MarketLocks{}
}

// Lock acquires the mutex for the given market and returns the unlock
// function. Locks are never removed; the number of markets is small
// and stable.
func (l *MarketLocks) Lock(marketID kernel.UUID) func() {
	mu, _ := l.locks.LoadOrStore(marketID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()

	return m.Unlock
}
