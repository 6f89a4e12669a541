package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNilGenerator indicates a nil *jps.Generator was passed to Search.
	ErrNilGenerator = errors.New("astar: generator is nil")

	// ErrNilHeuristic indicates a nil heuristic.Heuristic was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNilSender indicates a nil event.Sender was passed to Search.
	ErrNilSender = errors.New("astar: sender is nil")

	// ErrStartEqualsGoal indicates start and goal are the same position,
	// a degenerate search the caller should special-case.
	ErrStartEqualsGoal = errors.New("astar: start equals goal")
)
