package gridbuilder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jpsmaze/grid"
	"github.com/katalvlaran/jpsmaze/position"
)

// Builder accumulates width, height, start, goal and walls, then emits a
// frozen grid.Grid on Build. A Builder is single-use: build it up with the
// setters, call Build once, and discard it.
//
// Each of width/height/start/goal may be set at most once; a second call
// records ErrFieldAlreadySet instead of overwriting the first value. Walls
// collapse duplicates silently into a set. Build never exposes a partially
// valid grid: on any validation failure it returns nil and a combined,
// human-readable report of every violation found.
type Builder struct {
	width     *int
	height    *int
	start     *position.Position
	goal      *position.Position
	walls     map[position.Position]struct{}
	fieldErrs []error
}

// New returns an empty Builder ready for configuration.
func New() *Builder {
	return &Builder{
		walls: make(map[position.Position]struct{}),
	}
}

// SetWidth sets the grid width. A second call is recorded as ErrFieldAlreadySet.
func (b *Builder) SetWidth(width int) *Builder {
	if b.width != nil {
		b.fieldErrs = append(b.fieldErrs, fmt.Errorf("%w: width", ErrFieldAlreadySet))
		return b
	}
	b.width = &width

	return b
}

// SetHeight sets the grid height. A second call is recorded as ErrFieldAlreadySet.
func (b *Builder) SetHeight(height int) *Builder {
	if b.height != nil {
		b.fieldErrs = append(b.fieldErrs, fmt.Errorf("%w: height", ErrFieldAlreadySet))
		return b
	}
	b.height = &height

	return b
}

// SetStart sets the start cell. A second call is recorded as ErrFieldAlreadySet.
func (b *Builder) SetStart(p position.Position) *Builder {
	if b.start != nil {
		b.fieldErrs = append(b.fieldErrs, fmt.Errorf("%w: start", ErrFieldAlreadySet))
		return b
	}
	b.start = &p

	return b
}

// SetGoal sets the goal cell. A second call is recorded as ErrFieldAlreadySet.
func (b *Builder) SetGoal(p position.Position) *Builder {
	if b.goal != nil {
		b.fieldErrs = append(b.fieldErrs, fmt.Errorf("%w: goal", ErrFieldAlreadySet))
		return b
	}
	b.goal = &p

	return b
}

// AddWall appends a wall position. Duplicates silently collapse into the set.
func (b *Builder) AddWall(p position.Position) *Builder {
	b.walls[p] = struct{}{}

	return b
}

// AddWalls appends every position in ps as a wall. Duplicates silently
// collapse into the set.
func (b *Builder) AddWalls(ps ...position.Position) *Builder {
	for _, p := range ps {
		b.walls[p] = struct{}{}
	}

	return b
}

// Build validates the accumulated configuration and, on success, returns a
// frozen grid.Grid. On failure it returns nil and a single error whose
// message joins every violation found, one per line; partial grids are
// never exposed.
//
// Validation order: each of width/height/start/goal must have been set;
// every wall must lie in bounds; start and goal must lie in bounds, must not
// be walls, and must differ from each other.
func (b *Builder) Build() (*grid.Grid, error) {
	var errs []error
	errs = append(errs, b.fieldErrs...)

	if b.width == nil {
		errs = append(errs, fmt.Errorf("%w: width", ErrMissingField))
	}
	if b.height == nil {
		errs = append(errs, fmt.Errorf("%w: height", ErrMissingField))
	}
	if b.start == nil {
		errs = append(errs, fmt.Errorf("%w: start", ErrMissingField))
	}
	if b.goal == nil {
		errs = append(errs, fmt.Errorf("%w: goal", ErrMissingField))
	}

	// Bounds checks require width/height; skip them if those are missing.
	if b.width != nil && b.height != nil {
		inBounds := func(p position.Position) bool {
			return p.X >= 0 && int(p.X) < *b.width && p.Y >= 0 && int(p.Y) < *b.height
		}

		for w := range b.walls {
			if !inBounds(w) {
				errs = append(errs, fmt.Errorf("%w: wall %s", ErrOutOfBounds, w))
			}
		}

		if b.start != nil && !inBounds(*b.start) {
			errs = append(errs, fmt.Errorf("%w: start %s", ErrOutOfBounds, *b.start))
		}
		if b.goal != nil && !inBounds(*b.goal) {
			errs = append(errs, fmt.Errorf("%w: goal %s", ErrOutOfBounds, *b.goal))
		}
	}

	if b.start != nil {
		if _, isWall := b.walls[*b.start]; isWall {
			errs = append(errs, fmt.Errorf("%w: %s", ErrStartIsWall, *b.start))
		}
	}
	if b.goal != nil {
		if _, isWall := b.walls[*b.goal]; isWall {
			errs = append(errs, fmt.Errorf("%w: %s", ErrGoalIsWall, *b.goal))
		}
	}
	if b.start != nil && b.goal != nil && *b.start == *b.goal {
		errs = append(errs, fmt.Errorf("%w: %s", ErrStartEqualsGoal, *b.start))
	}

	if len(errs) > 0 {
		return nil, joinErrors(errs)
	}

	walls := make(map[position.Position]struct{}, len(b.walls))
	for w := range b.walls {
		walls[w] = struct{}{}
	}

	return grid.New(*b.width, *b.height, walls, *b.start, *b.goal), nil
}

// buildError joins multiple validation failures into one human-readable,
// multi-line report while still supporting errors.Is against any of them.
type buildError struct {
	errs []error
}

func joinErrors(errs []error) error {
	return &buildError{errs: errs}
}

// Error renders one violation per line.
func (e *buildError) Error() string {
	lines := make([]string, len(e.errs))
	for i, err := range e.errs {
		lines[i] = err.Error()
	}

	return strings.Join(lines, "\n")
}

// Unwrap exposes every wrapped violation so errors.Is(err, ErrX) finds a
// match regardless of which violation triggered the failure.
func (e *buildError) Unwrap() []error {
	return e.errs
}
