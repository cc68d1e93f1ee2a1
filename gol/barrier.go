package gol

import "sync"

// barrier is a reusable rendezvous for a fixed number of goroutines.
//
// Each round is tagged with a phase number. Waiters sleep until the phase moves
// on, so a spurious wakeup or a fast goroutine entering the next round can never
// release somebody from the wrong one. The last goroutine to arrive runs trip
// while holding the lock, with every other party blocked, and then opens the
// next phase.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	phase   uint64
	trip    func()
}

func newBarrier(parties int, trip func()) *barrier {
	if parties <= 0 {
		panic("barrier parties must be > 0")
	}
	b := &barrier{parties: parties, trip: trip}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// await blocks until every party has called it for the current phase.
// merge, if not nil, runs under the lock before the caller is counted.
// Anything written by merge or trip is visible to every caller once await returns.
func (b *barrier) await(merge func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if merge != nil {
		merge()
	}
	b.arrived++
	if b.arrived < b.parties {
		phase := b.phase
		for phase == b.phase {
			b.cond.Wait()
		}
		return
	}

	if b.trip != nil {
		b.trip()
	}
	b.arrived = 0
	b.phase++
	b.cond.Broadcast()
}
