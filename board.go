package main

import (
	"fmt"
	"math/bits"
)

// StateBits is the widest lattice the state encoding can hold.
const StateBits = 128

// Coord identifies a lattice cell.
type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// dominates reports whether every component of c is >= the matching
// component of o. Picking a block removes every block dominating it.
func (c Coord) dominates(o Coord) bool {
	return c.X >= o.X && c.Y >= o.Y && c.Z >= o.Z
}

// State is the set of present blocks, a 128-bit bitset split across
// two words. It is comparable, so it keys the memo table directly.
type State struct {
	Lo, Hi uint64
}

// PoisonState is the terminal state: only the poison block at (0,0,0)
// remains, and the player to move has lost.
var PoisonState = State{Lo: 1}

func stateBit(i int) State {
	if i < 64 {
		return State{Lo: 1 << uint(i)}
	}
	return State{Hi: 1 << uint(i-64)}
}

func (s State) Has(i int) bool {
	if i < 64 {
		return s.Lo&(1<<uint(i)) != 0
	}
	return s.Hi&(1<<uint(i-64)) != 0
}

func (s State) Or(o State) State {
	return State{Lo: s.Lo | o.Lo, Hi: s.Hi | o.Hi}
}

// AndNot clears every bit of o from s.
func (s State) AndNot(o State) State {
	return State{Lo: s.Lo &^ o.Lo, Hi: s.Hi &^ o.Hi}
}

func (s State) IsZero() bool {
	return s.Lo == 0 && s.Hi == 0
}

// Count returns the number of present blocks.
func (s State) Count() int {
	return bits.OnesCount64(s.Lo) + bits.OnesCount64(s.Hi)
}

func (s State) String() string {
	return fmt.Sprintf("0x%016x%016x", s.Hi, s.Lo)
}

// Geometry fixes the board shape and precomputes, for every block
// index, the removal cone cleared by picking that block. Move
// generation is then pure table lookups.
type Geometry struct {
	XDim, YDim, ZDim int
	Total            int

	removal []State
}

// NewGeometry validates the board shape against the state width. A
// lattice that does not fit in StateBits bits is a configuration
// error, never a silent truncation.
func NewGeometry(xDim, yDim, zDim int) (*Geometry, error) {
	if xDim < 1 || yDim < 1 || zDim < 1 {
		return nil, fmt.Errorf("board dimensions must be at least 1, got %dx%dx%d", xDim, yDim, zDim)
	}
	total := xDim * yDim * zDim
	if total > StateBits {
		return nil, fmt.Errorf("board has %d blocks, state encoding holds at most %d", total, StateBits)
	}
	g := &Geometry{
		XDim:    xDim,
		YDim:    yDim,
		ZDim:    zDim,
		Total:   total,
		removal: make([]State, total),
	}
	for i := 0; i < total; i++ {
		pick := g.CoordAt(i)
		var mask State
		for j := 0; j < total; j++ {
			if g.CoordAt(j).dominates(pick) {
				mask = mask.Or(stateBit(j))
			}
		}
		g.removal[i] = mask
	}
	return g, nil
}

// CoordAt maps a block index to its lattice coordinate by mixed-radix
// decomposition: x varies fastest, then y, then z.
func (g *Geometry) CoordAt(i int) Coord {
	return Coord{
		X: i % g.XDim,
		Y: (i / g.XDim) % g.YDim,
		Z: i / (g.XDim * g.YDim),
	}
}

// IndexOf is the inverse of CoordAt.
func (g *Geometry) IndexOf(c Coord) int {
	return c.X + g.XDim*(c.Y+g.YDim*c.Z)
}

// FullState returns the initial state with every block present.
func (g *Geometry) FullState() State {
	if g.Total >= 64 {
		return State{
			Lo: ^uint64(0),
			Hi: (uint64(1) << uint(g.Total-64)) - 1,
		}
	}
	return State{Lo: (uint64(1) << uint(g.Total)) - 1}
}
