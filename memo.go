package main

import "sync"

const memoStripes = 64

// MemoTable is the shared win/loss cache over solved states: a plain
// map per stripe, each guarded by its own RWMutex so concurrent search
// branches never contend on a global lock. A state's result is a pure
// function of the state, so entries are write-once and racing
// duplicate writes would only ever carry the same value.
type MemoTable struct {
	stripes [memoStripes]memoStripe
}

type memoStripe struct {
	mu      sync.RWMutex
	entries map[State]bool
}

func NewMemoTable() *MemoTable {
	t := &MemoTable{}
	for i := range t.stripes {
		t.stripes[i].entries = make(map[State]bool)
	}
	return t
}

// mixState spreads state keys across stripes (splitmix64 finalizer).
func mixState(s State) uint64 {
	h := s.Lo ^ (s.Hi * 0x9e3779b97f4a7c15)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

func (t *MemoTable) stripeFor(s State) *memoStripe {
	return &t.stripes[mixState(s)&(memoStripes-1)]
}

func (t *MemoTable) Lookup(s State) (win bool, ok bool) {
	stripe := t.stripeFor(s)
	stripe.mu.RLock()
	win, ok = stripe.entries[s]
	stripe.mu.RUnlock()
	return win, ok
}

// Store records the result for s. The first write wins; later writes
// for the same state are dropped.
func (t *MemoTable) Store(s State, win bool) {
	stripe := t.stripeFor(s)
	stripe.mu.Lock()
	if _, ok := stripe.entries[s]; !ok {
		stripe.entries[s] = win
	}
	stripe.mu.Unlock()
}

// Count returns the number of solved states.
func (t *MemoTable) Count() int {
	total := 0
	for i := range t.stripes {
		t.stripes[i].mu.RLock()
		total += len(t.stripes[i].entries)
		t.stripes[i].mu.RUnlock()
	}
	return total
}
