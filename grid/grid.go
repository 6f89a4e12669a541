// Package grid defines the bounded rectangular grid the search runs over:
// width/height, a wall set, and a distinguished start and goal cell.
//
// A Grid is immutable after construction (see gridbuilder for the only
// supported way to build one) and is shared, read-only, across the search
// goroutine and any consumer goroutine that inspects it while the search is
// in flight — accessors are guarded by a read-write lock for that reason,
// mirroring core.Graph's per-accessor RLock pattern even though nothing
// ever takes the write side after construction.
package grid

import (
	"sync"

	"github.com/katalvlaran/jpsmaze/position"
)

// Grid is a bounded rectangular grid with impassable wall cells and a
// distinguished start and goal. The zero value is not usable; construct via
// gridbuilder.Builder.Build.
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	walls  map[position.Position]struct{}
	start  position.Position
	goal   position.Position
}

// New constructs a Grid from already-validated fields: width/height/start/goal
// invariants (start and goal in bounds, not walls, not equal; every wall in
// bounds) are the caller's responsibility. gridbuilder.Builder is the
// supported entry point for callers that want those invariants checked and
// reported as a combined diagnostic; New itself trusts its arguments the way
// core.NewGraph trusts its GraphOptions.
func New(width, height int, walls map[position.Position]struct{}, start, goal position.Position) *Grid {
	if walls == nil {
		walls = make(map[position.Position]struct{})
	}

	return &Grid{
		width:  width,
		height: height,
		walls:  walls,
		start:  start,
		goal:   goal,
	}
}

// Width returns the grid's width in cells (W >= 1).
func (g *Grid) Width() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.width
}

// Height returns the grid's height in cells (H >= 1).
func (g *Grid) Height() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.height
}

// Start returns the start cell.
func (g *Grid) Start() position.Position {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// Goal returns the goal cell.
func (g *Grid) Goal() position.Position {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.goal
}

// Walls returns a snapshot slice of every wall position. The returned slice
// is a fresh copy; mutating it does not affect the grid.
func (g *Grid) Walls() []position.Position {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]position.Position, 0, len(g.walls))
	for w := range g.walls {
		out = append(out, w)
	}

	return out
}

// WallCount returns the number of wall cells, without allocating a snapshot.
func (g *Grid) WallCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.walls)
}

// Valid reports whether p lies within the grid's rectangle [0,W)x[0,H).
func (g *Grid) Valid(p position.Position) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(p)
}

func (g *Grid) valid(p position.Position) bool {
	return p.X >= 0 && p.X < int32(g.width) && p.Y >= 0 && p.Y < int32(g.height)
}

// IsWall reports whether p is in bounds AND in the wall set.
//
// Queries outside the rectangle return false: the engine relies on this to
// terminate jumps at the boundary without a separate bounds check.
func (g *Grid) IsWall(p position.Position) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(p) {
		return false
	}
	_, isWall := g.walls[p]

	return isWall
}

// IsFree reports whether p is in bounds AND NOT in the wall set.
//
// Queries outside the rectangle return false, the mirror image of IsWall,
// so that code never needs a separate Valid check before calling IsFree.
func (g *Grid) IsFree(p position.Position) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(p) {
		return false
	}
	_, isWall := g.walls[p]

	return !isWall
}
