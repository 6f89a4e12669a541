package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/jpsmaze/heuristic"
	"github.com/katalvlaran/jpsmaze/position"
)

func TestDiagonal_GoalIsZero(t *testing.T) {
	h := heuristic.NewDiagonal(position.New(5, 5))
	assert.Equal(t, 0.0, h.Compute(position.New(5, 5)))
}

func TestDiagonal_StraightLine(t *testing.T) {
	h := heuristic.NewDiagonal(position.New(0, 0))
	got := h.Compute(position.New(10, 0))
	want := 10.0 * 1.001
	assert.InDelta(t, want, got, 1e-9)
}

func TestDiagonal_PureDiagonal(t *testing.T) {
	h := heuristic.NewDiagonal(position.New(0, 0))
	got := h.Compute(position.New(4, 4))
	want := 4.0 * math.Sqrt2 * 1.001
	assert.InDelta(t, want, got, 1e-9)
}

func TestDiagonal_Mixed(t *testing.T) {
	h := heuristic.NewDiagonal(position.New(0, 0))
	got := h.Compute(position.New(3, 7))
	// min=3, max=7: (3*(sqrt2-1) + 7) * 1.001
	want := (3*(math.Sqrt2-1) + 7) * 1.001
	assert.InDelta(t, want, got, 1e-9)
}

func TestDiagonal_Admissible(t *testing.T) {
	// On a wall-free grid, h(node) must be >= actual optimal cost is false —
	// admissibility requires h <= (1+eps)*optimal. Compare against the exact
	// diagonal-distance formula without the weight factor (the true optimal
	// cost on an open 8-connected grid).
	h := heuristic.NewDiagonal(position.New(20, 3))
	node := position.New(0, 0)
	dx, dy := 20.0, 3.0
	min, max := dy, dx
	optimal := min*(math.Sqrt2-1) + max
	got := h.Compute(node)
	assert.LessOrEqual(t, got, optimal*1.001+1e-9)
}
