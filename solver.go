package main

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const progressInterval = 1 << 20

// Solver decides win/loss for the player to move under normal play:
// a state is winning iff some legal move leads to a losing state for
// the opponent. All goroutines share one memo table. Sibling subtrees
// run in parallel while spawn tokens are available and inline
// otherwise, so the goroutine count stays bounded by the worker count
// with no blocking acquisition anywhere in the recursion.
type Solver struct {
	geo     *Geometry
	memo    *MemoTable
	workers int

	tokens   atomic.Int64
	nodes    atomic.Uint64
	memoHits atomic.Uint64
}

func NewSolver(geo *Geometry, memo *MemoTable, workers int) *Solver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s := &Solver{geo: geo, memo: memo, workers: workers}
	s.tokens.Store(int64(workers - 1))
	return s
}

// IsWinning reports whether the player to move wins from state.
func (s *Solver) IsWinning(state State) bool {
	// Terminal: only the poison block remains. Decided by definition,
	// never memoized.
	if state == PoisonState {
		return false
	}
	if win, ok := s.memo.Lookup(state); ok {
		s.memoHits.Add(1)
		return win
	}
	if n := s.nodes.Add(1); n%progressInterval == 0 {
		log.Info().
			Uint64("nodes", n).
			Uint64("memo_hits", s.memoHits.Load()).
			Int("memo_states", s.memo.Count()).
			Msg("search progress")
	}

	moves := s.geo.LegalMoves(state)
	if len(moves) == 0 {
		// Unreachable from legal play (the terminal is handled above),
		// but a moveless state is a loss all the same.
		s.memo.Store(state, false)
		return false
	}

	var foundLosing atomic.Bool
	var wg sync.WaitGroup
	for _, mv := range moves {
		if foundLosing.Load() {
			break
		}
		child := mv.Next
		if s.acquireToken() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer s.releaseToken()
				if foundLosing.Load() {
					return
				}
				if !s.IsWinning(child) {
					foundLosing.Store(true)
				}
			}()
		} else if !s.IsWinning(child) {
			foundLosing.Store(true)
			break
		}
	}
	wg.Wait()

	win := foundLosing.Load()
	s.memo.Store(state, win)
	return win
}

// WinningMoves returns the picks whose resulting state is a loss for
// the opponent, in move-generation order. Each child is solved on
// demand, so the call is correct even against a cold memo table.
func (s *Solver) WinningMoves(state State) []Coord {
	moves := s.geo.LegalMoves(state)
	childWins := make([]bool, len(moves))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			childWins[i] = s.IsWinning(mv.Next)
			return nil
		})
	}
	g.Wait()

	picks := make([]Coord, 0, len(moves))
	for i, mv := range moves {
		if !childWins[i] {
			picks = append(picks, mv.Pick)
		}
	}
	return picks
}

func (s *Solver) Nodes() uint64    { return s.nodes.Load() }
func (s *Solver) MemoHits() uint64 { return s.memoHits.Load() }

func (s *Solver) acquireToken() bool {
	if s.tokens.Add(-1) >= 0 {
		return true
	}
	s.tokens.Add(1)
	return false
}

func (s *Solver) releaseToken() {
	s.tokens.Add(1)
}
