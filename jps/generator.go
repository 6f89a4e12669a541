// Package jps implements Jump Point Search: the pruned, jumped successor
// generator plugged into astar as its children generator.
//
// Given a node and the parent it was reached from, Generator prunes the
// eight natural neighbours down to the ones JPS proves cannot be reached
// more cheaply through a sibling, then "jumps" along each surviving
// direction until it finds the goal, a forced neighbour, or a diagonal
// turning point — skipping every uninteresting cell in between. This is
// the algorithmic heart of the engine: astar drives its search loop from
// the successors Generator produces here.
package jps

import (
	"github.com/katalvlaran/jpsmaze/grid"
	"github.com/katalvlaran/jpsmaze/position"
)

// Generator holds a back-reference to the grid it searches, and neither
// outlives nor mutates it during a search.
type Generator struct {
	grid *grid.Grid
}

// NewGenerator constructs a Generator bound to g.
func NewGenerator(g *grid.Grid) *Generator {
	return &Generator{grid: g}
}

// GenerateChildren returns the JPS successors of current given the node it
// was reached from. If parent is nil (current is the start node), every
// free natural neighbour is returned directly, with weight 1 for
// axis-aligned steps and √2 for diagonals.
func (g *Generator) GenerateChildren(current position.Position, parent *position.Position) []Child {
	natural := g.naturalNeighbors(current)

	if parent == nil {
		return natural
	}

	pruned := g.pruneNeighbors(current, *parent, natural)

	return g.jumpAll(current, pruned)
}

// naturalNeighbors returns every free cell among the up-to-eight neighbours
// of current, weighted 1 for straight and √2 for diagonal moves.
func (g *Generator) naturalNeighbors(current position.Position) []Child {
	candidates := [8]struct {
		node   position.Position
		weight float64
	}{
		{current.Up(), 1},
		{current.Down(), 1},
		{current.Left(), 1},
		{current.Right(), 1},
		{current.UpLeft(), sqrt2},
		{current.UpRight(), sqrt2},
		{current.DownLeft(), sqrt2},
		{current.DownRight(), sqrt2},
	}

	out := make([]Child, 0, 8)
	for _, c := range candidates {
		if g.grid.IsFree(c.node) {
			out = append(out, Child{Node: c.node, Weight: c.weight})
		}
	}

	return out
}

// pruneNeighbors keeps only the neighbours JPS's pruning rules allow:
// the forward neighbour, any forced neighbours and, for a diagonal move,
// the two axis components.
func (g *Generator) pruneNeighbors(current, parent position.Position, neighbors []Child) []Child {
	mv := current.Sub(parent).Sign()

	var keep map[position.Position]struct{}
	if mv.IsDiagonal() {
		keep = g.diagonalPruneSet(current, mv)
	} else {
		keep = g.straightPruneSet(current, mv)
	}

	out := neighbors[:0:0]
	for _, n := range neighbors {
		if _, ok := keep[n.Node]; ok {
			out = append(out, n)
		}
	}

	return out
}

// straightPruneSet returns the forward neighbour plus any forced neighbours
// for an axis-aligned move direction mv.
func (g *Generator) straightPruneSet(current, mv position.Position) map[position.Position]struct{} {
	keep := map[position.Position]struct{}{current.Add(mv): {}}
	for _, f := range g.forcedStraight(current, mv) {
		keep[f] = struct{}{}
	}

	return keep
}

// diagonalPruneSet returns the forward neighbour, the two axis components,
// and any forced neighbours for a diagonal move direction mv. Forced
// neighbours are computed relative to the entering square current-mv; this
// deliberately differs from jump's forced-neighbour check, which uses the
// current square instead — see jump's comment for why the two diverge.
func (g *Generator) diagonalPruneSet(current, mv position.Position) map[position.Position]struct{} {
	keep := map[position.Position]struct{}{current.Add(mv): {}}
	for _, c := range mv.Components() {
		keep[current.Add(c)] = struct{}{}
	}
	for _, f := range g.forcedDiagonal(current.Sub(mv), mv) {
		keep[f] = struct{}{}
	}

	return keep
}

// forcedStraight returns the forced neighbours for a straight move
// direction mv, evaluated relative to current: for each perpendicular
// offset, a wall at current+d forces current+d+mv.
func (g *Generator) forcedStraight(current, mv position.Position) []position.Position {
	return g.computeForced(mv.Orthogonal(), current, &mv)
}

// forcedDiagonal returns the forced neighbours for a diagonal move
// direction mv, evaluated relative to current: for each axis component c,
// a wall at current+c forces current+2c.
func (g *Generator) forcedDiagonal(current, mv position.Position) []position.Position {
	return g.computeForced(mv.Components(), current, nil)
}

// computeForced checks each offset in offsets for a wall at current+offset;
// when found, it reports current+offset+add (or current+2*offset when add
// is nil, i.e. the offset is reused as the addend).
func (g *Generator) computeForced(offsets [2]position.Position, current position.Position, add *position.Position) []position.Position {
	var out []position.Position
	for _, dir := range offsets {
		n := current.Add(dir)
		if g.grid.IsWall(n) {
			addend := dir
			if add != nil {
				addend = *add
			}
			out = append(out, n.Add(addend))
		}
	}

	return out
}

// jumpAll runs jump from current toward each pruned candidate, collecting
// every jump point found.
func (g *Generator) jumpAll(current position.Position, candidates []Child) []Child {
	goal := g.grid.Goal()
	out := make([]Child, 0, len(candidates))
	for _, c := range candidates {
		dir := c.Node.Sub(current)
		if jp, ok := g.jump(current, dir, goal); ok {
			out = append(out, Child{Node: jp, Weight: jp.Sub(current).Norm()})
		}
	}

	return out
}

// jump walks from current in direction, skipping over uninteresting cells,
// until it finds the goal, a cell with a forced neighbour, or (for a
// diagonal direction) a straight jump point along one of its axis
// components — or falls off the grid / hits a wall, in which case it
// reports no jump point.
//
// The tail-recursive case of the original recursive formulation ("jump
// again from next in the same direction") is written as a loop here to
// avoid unbounded call-stack growth on long straight runs; the diagonal
// turning-point check still recurses, but that recursion is bounded by the
// two axis components it explores.
func (g *Generator) jump(current, direction, goal position.Position) (position.Position, bool) {
	for {
		next := current.Add(direction)
		if !g.grid.IsFree(next) {
			return position.Position{}, false
		}
		if next == goal {
			return next, true
		}

		var forced []position.Position
		if direction.IsDiagonal() {
			comps := direction.Components()
			blocked := true
			for _, c := range comps {
				if g.grid.IsFree(current.Add(c)) {
					blocked = false
				}
			}
			if blocked {
				return position.Position{}, false
			}
			// Forced neighbours here are relative to current, the square the
			// jump is walking from -- unlike diagonalPruneSet, which looks one
			// step further back at the entering square. The two checks answer
			// different questions (is current itself interesting vs. was the
			// step into current interesting), and both are needed for jump
			// points to match a full unpruned search.
			forced = g.forcedDiagonal(current, direction)
		} else {
			forced = g.forcedStraight(next, direction)
		}

		for _, f := range forced {
			if g.grid.IsFree(f) {
				return next, true
			}
		}

		if direction.IsDiagonal() {
			for _, c := range direction.Components() {
				if _, ok := g.jump(next, c, goal); ok {
					return next, true
				}
			}
		}

		current = next
	}
}

// ReconstructPath expands a jump-point path into the dense, unit-step path
// an external consumer renders, and returns its total cost (√2 per diagonal
// step, 1 per straight step). The empty input yields an empty path and
// cost 0.
func (g *Generator) ReconstructPath(jumpPoints []position.Position) ([]position.Position, float64) {
	if len(jumpPoints) == 0 {
		return nil, 0
	}

	dense := []position.Position{jumpPoints[0]}
	var cost float64

	for i := 0; i < len(jumpPoints)-1; i++ {
		a, b := jumpPoints[i], jumpPoints[i+1]

		cur := a
		for cur != b {
			// Re-derive the direction each step so a segment that is neither
			// straight nor 45° runs diagonally first, then straight, to b.
			dir := b.Sub(cur).Sign()
			unit := 1.0
			if dir.IsDiagonal() {
				unit = sqrt2
			}
			cur = cur.Add(dir)
			dense = append(dense, cur)
			cost += unit
		}
	}

	return dense, cost
}
