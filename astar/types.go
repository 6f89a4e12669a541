package astar

import (
	"time"

	"github.com/katalvlaran/jpsmaze/position"
)

// Path is the dense, unit-step route from start to goal and its total cost.
type Path struct {
	Positions []position.Position
	Cost      float64
}

// Info is the statistics record returned by every Search call, win or lose.
type Info struct {
	// Time is wall-clock duration from search start to search end.
	Time time.Duration
	// MaxLength is the largest frontier size observed immediately before a pop.
	MaxLength int
	// Nodes is the number of nodes popped (expanded) during the search.
	Nodes int
	// Path is non-nil only when the goal was reached.
	Path *Path
}

// queueNode is one frontier entry: a candidate node, the heuristic estimate
// of its distance to the goal, and its best-known depth from start. Frontier
// entries are stored by value in a bump-allocated arena slice, and the heap
// holds indices into that arena rather than pointers, avoiding a per-push
// allocation.
type queueNode struct {
	node      position.Position
	heuristic float64
	depth     float64
}

// priority is the frontier's sort key: depth + heuristic, ascending.
func (q queueNode) priority() float64 {
	return q.depth + q.heuristic
}
