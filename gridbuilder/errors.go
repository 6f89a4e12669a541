// Package gridbuilder provides a single-use, accumulating constructor for
// grid.Grid: width, height, start and goal may each be set at most once,
// walls accumulate into a set, and Build validates everything at once,
// surfacing every violation together rather than failing on the first one.
package gridbuilder

import "errors"

// Sentinel errors surfaced by Builder.Build. Use errors.Is to branch; the
// combined report returned by Build joins one line per violation, so a
// single failed build can match more than one of these.
var (
	// ErrFieldAlreadySet indicates a setter (SetWidth/SetHeight/SetStart/
	// SetGoal) was called more than once on the same Builder.
	ErrFieldAlreadySet = errors.New("gridbuilder: field already set")

	// ErrMissingField indicates Build was called without first calling one
	// of the required setters.
	ErrMissingField = errors.New("gridbuilder: required field not set")

	// ErrOutOfBounds indicates a wall, start, or goal position lies outside
	// the configured [0,W)x[0,H) rectangle.
	ErrOutOfBounds = errors.New("gridbuilder: position out of bounds")

	// ErrStartIsWall indicates the start position coincides with a wall.
	ErrStartIsWall = errors.New("gridbuilder: start position is a wall")

	// ErrGoalIsWall indicates the goal position coincides with a wall.
	ErrGoalIsWall = errors.New("gridbuilder: goal position is a wall")

	// ErrStartEqualsGoal indicates the start and goal positions are identical.
	ErrStartEqualsGoal = errors.New("gridbuilder: start equals goal")
)
