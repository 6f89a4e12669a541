// Package heuristic provides admissible cost-to-goal estimates consumed by
// the astar search loop.
//
// Heuristic is a one-method capability interface, so astar depends only on
// the capability it needs rather than a concrete estimator.
package heuristic

import "github.com/katalvlaran/jpsmaze/position"

// Heuristic estimates the remaining cost from node to a fixed goal.
type Heuristic interface {
	// Compute returns the estimated cost from node to the goal this
	// Heuristic was constructed with.
	Compute(node position.Position) float64
}

// weightFactor weights the diagonal heuristic slightly above the exact
// admissible estimate, trading strict A* optimality for faster,
// goal-directed exploration (bounded-suboptimal by ε = weightFactor-1).
// Named rather than inlined, the way builder/constants.go names its magic
// numbers instead of scattering them through the code.
const weightFactor = 1.001

// sqrt2MinusOne is √2 - 1, the marginal cost of a diagonal step over a
// single straight step along the longer axis.
const sqrt2MinusOne = 1.4142135623730951 - 1

// Diagonal is an admissible heuristic for an 8-connected grid with unit
// straight and √2 diagonal costs, weighted by weightFactor to break ties
// toward goal-directed exploration (making the search weighted-A*, not
// strict A*).
type Diagonal struct {
	goal position.Position
}

// NewDiagonal constructs a Diagonal heuristic bound to the given goal.
func NewDiagonal(goal position.Position) *Diagonal {
	return &Diagonal{goal: goal}
}

// Compute returns (min(dx,dy)*(√2-1) + max(dx,dy)) * weightFactor, where
// dx = |node.X - goal.X| and dy = |node.Y - goal.Y|.
func (d *Diagonal) Compute(node position.Position) float64 {
	dx := abs32(node.X - d.goal.X)
	dy := abs32(node.Y - d.goal.Y)

	min, max := float64(dx), float64(dy)
	if dx > dy {
		min, max = float64(dy), float64(dx)
	}

	return (min*sqrt2MinusOne + max) * weightFactor
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}

	return n
}
