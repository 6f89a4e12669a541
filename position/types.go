// Package position implements the 2D integer coordinate algebra shared by
// the grid, heuristic, jps and astar packages.
//
// A Position is a small value type: signed, copyable, comparable, suitable
// for use as a map key. Coordinates are int32, giving headroom far above any
// realistic grid dimension while keeping Position an 8-byte value — the same
// reasoning the core package applies when it widens Edge.Weight to int64
// even though most weights fit in a smaller type: pick a width you will
// never silently wrap in.
package position

import (
	"errors"
	"fmt"
	"math"
)

// ErrCoordinateOverflow indicates that a coordinate value supplied to
// TryConvert does not fit in the int32 range used internally by Position.
var ErrCoordinateOverflow = errors.New("position: coordinate overflows int32 range")

// Position is a signed 2D integer coordinate. The zero value is the origin.
type Position struct {
	X int32
	Y int32
}

// New constructs a Position from the given coordinates.
func New(x, y int32) Position {
	return Position{X: x, Y: y}
}

// TryConvert builds a Position from any integer coordinate pair, failing
// with ErrCoordinateOverflow if either value does not fit in int32.
func TryConvert(x, y int) (Position, error) {
	if x < math.MinInt32 || x > math.MaxInt32 {
		return Position{}, fmt.Errorf("%w: x=%d", ErrCoordinateOverflow, x)
	}
	if y < math.MinInt32 || y > math.MaxInt32 {
		return Position{}, fmt.Errorf("%w: y=%d", ErrCoordinateOverflow, y)
	}

	return Position{X: int32(x), Y: int32(y)}, nil
}

// String renders the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns the componentwise sum p + other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the componentwise difference p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Neg returns the componentwise negation of p.
func (p Position) Neg() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// IsDiagonal reports whether both axes of p are non-zero.
func (p Position) IsDiagonal() bool {
	return p.X != 0 && p.Y != 0
}

// IsStraight reports whether p is axis-aligned (the complement of IsDiagonal).
func (p Position) IsStraight() bool {
	return !p.IsDiagonal()
}

// Sign returns the componentwise signum of p, each component in {-1, 0, 1}.
func (p Position) Sign() Position {
	return Position{X: signum32(p.X), Y: signum32(p.Y)}
}

// Components returns the two axis projections of p: (x, 0) and (0, y).
// Order is not significant to callers; tests must accept either order.
func (p Position) Components() [2]Position {
	return [2]Position{{X: p.X, Y: 0}, {X: 0, Y: p.Y}}
}

// Orthogonal returns the two perpendicular vectors to p: (y, x) and (-y, -x).
func (p Position) Orthogonal() [2]Position {
	v := Position{X: p.Y, Y: p.X}

	return [2]Position{v, v.Neg()}
}

// Norm returns the Euclidean length of p as a 64-bit float.
func (p Position) Norm() float64 {
	return math.Sqrt(float64(p.X)*float64(p.X) + float64(p.Y)*float64(p.Y))
}

// Up returns p shifted one cell up (y decreases; screen coordinates).
func (p Position) Up() Position { return p.Add(Position{X: 0, Y: -1}) }

// Down returns p shifted one cell down (y increases).
func (p Position) Down() Position { return p.Add(Position{X: 0, Y: 1}) }

// Left returns p shifted one cell left (x decreases).
func (p Position) Left() Position { return p.Add(Position{X: -1, Y: 0}) }

// Right returns p shifted one cell right (x increases).
func (p Position) Right() Position { return p.Add(Position{X: 1, Y: 0}) }

// UpLeft returns p shifted diagonally up and left.
func (p Position) UpLeft() Position { return p.Up().Left() }

// UpRight returns p shifted diagonally up and right.
func (p Position) UpRight() Position { return p.Up().Right() }

// DownLeft returns p shifted diagonally down and left.
func (p Position) DownLeft() Position { return p.Down().Left() }

// DownRight returns p shifted diagonally down and right.
func (p Position) DownRight() Position { return p.Down().Right() }

// signum32 returns -1, 0 or 1 according to the sign of n.
func signum32(n int32) int32 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
