package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/jpsmaze/grid"
	"github.com/katalvlaran/jpsmaze/position"
)

func testGrid() *grid.Grid {
	walls := map[position.Position]struct{}{
		position.New(2, 0): {},
		position.New(2, 1): {},
	}

	return grid.New(5, 5, walls, position.New(0, 0), position.New(4, 4))
}

func TestGrid_Accessors(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, position.New(0, 0), g.Start())
	assert.Equal(t, position.New(4, 4), g.Goal())
	assert.Equal(t, 2, g.WallCount())
	assert.ElementsMatch(t, []position.Position{position.New(2, 0), position.New(2, 1)}, g.Walls())
}

func TestGrid_ValidBoundary(t *testing.T) {
	g := testGrid()
	assert.True(t, g.Valid(position.New(0, 0)))
	assert.True(t, g.Valid(position.New(4, 4)))
	assert.False(t, g.Valid(position.New(5, 0)))
	assert.False(t, g.Valid(position.New(-1, 0)))
}

func TestGrid_WallAndFreeOutOfBounds(t *testing.T) {
	g := testGrid()

	// Out-of-bounds queries are neither wall nor free: the JPS jump relies
	// on this to terminate at the boundary without a separate bounds check.
	assert.False(t, g.IsWall(position.New(-1, -1)))
	assert.False(t, g.IsFree(position.New(-1, -1)))
	assert.False(t, g.IsWall(position.New(100, 100)))
	assert.False(t, g.IsFree(position.New(100, 100)))
}

func TestGrid_WallVsFree(t *testing.T) {
	g := testGrid()
	assert.True(t, g.IsWall(position.New(2, 0)))
	assert.False(t, g.IsFree(position.New(2, 0)))
	assert.True(t, g.IsFree(position.New(0, 0)))
	assert.False(t, g.IsWall(position.New(0, 0)))
}
