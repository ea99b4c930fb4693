package main

import "math/bits"

// Move is a legal transition: pick a present block, clear its removal
// cone from the state.
type Move struct {
	Pick Coord
	Next State
}

// LegalMoves enumerates every legal move from state in increasing
// block-index order. The poison block is never a legal pick, and a
// pick whose removal cone covers the poison block is rejected; the
// second check cannot trigger for a well-formed lattice (no coordinate
// other than the origin is dominated by the origin) and stays as a
// guard on the invariant.
func (g *Geometry) LegalMoves(state State) []Move {
	var moves []Move
	if n := state.Count(); n > 1 {
		moves = make([]Move, 0, n-1)
	}
	emit := func(word uint64, base int) {
		for word != 0 {
			i := base + bits.TrailingZeros64(word)
			word &= word - 1
			if i >= g.Total {
				return
			}
			if i == 0 {
				continue
			}
			mask := g.removal[i]
			if mask.Has(0) {
				continue
			}
			moves = append(moves, Move{Pick: g.CoordAt(i), Next: state.AndNot(mask)})
		}
	}
	emit(state.Lo, 0)
	emit(state.Hi, 64)
	return moves
}
