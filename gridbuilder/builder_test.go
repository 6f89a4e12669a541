package gridbuilder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jpsmaze/gridbuilder"
	"github.com/katalvlaran/jpsmaze/position"
)

func TestBuilder_HappyPath(t *testing.T) {
	g, err := gridbuilder.New().
		SetWidth(7).
		SetHeight(5).
		SetStart(position.New(0, 0)).
		SetGoal(position.New(6, 4)).
		AddWall(position.New(1, 1)).
		AddWall(position.New(1, 1)). // duplicate collapses silently
		AddWall(position.New(5, 3)).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, 2, g.WallCount())
	assert.True(t, g.IsWall(position.New(1, 1)))
}

func TestBuilder_MissingFields(t *testing.T) {
	_, err := gridbuilder.New().Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrMissingField)
}

func TestBuilder_FieldSetTwice(t *testing.T) {
	_, err := gridbuilder.New().
		SetWidth(3).
		SetWidth(4).
		SetHeight(3).
		SetStart(position.New(0, 0)).
		SetGoal(position.New(1, 1)).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrFieldAlreadySet)
}

func TestBuilder_WallOutOfBounds(t *testing.T) {
	_, err := gridbuilder.New().
		SetWidth(3).
		SetHeight(3).
		SetStart(position.New(0, 0)).
		SetGoal(position.New(2, 2)).
		AddWall(position.New(5, 5)).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrOutOfBounds)
}

func TestBuilder_StartIsWall(t *testing.T) {
	_, err := gridbuilder.New().
		SetWidth(3).
		SetHeight(3).
		SetStart(position.New(0, 0)).
		SetGoal(position.New(2, 2)).
		AddWall(position.New(0, 0)).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrStartIsWall)
}

func TestBuilder_GoalIsWall(t *testing.T) {
	_, err := gridbuilder.New().
		SetWidth(3).
		SetHeight(3).
		SetStart(position.New(0, 0)).
		SetGoal(position.New(2, 2)).
		AddWall(position.New(2, 2)).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrGoalIsWall)
}

func TestBuilder_StartEqualsGoal(t *testing.T) {
	_, err := gridbuilder.New().
		SetWidth(3).
		SetHeight(3).
		SetStart(position.New(1, 1)).
		SetGoal(position.New(1, 1)).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrStartEqualsGoal)
}

func TestBuilder_CombinedReport(t *testing.T) {
	// Several violations at once must all surface together in one report.
	_, err := gridbuilder.New().
		SetWidth(2).
		SetHeight(2).
		SetStart(position.New(0, 0)).
		SetGoal(position.New(0, 0)).
		AddWall(position.New(9, 9)).
		Build()

	require.Error(t, err)
	assert.ErrorIs(t, err, gridbuilder.ErrOutOfBounds)
	assert.ErrorIs(t, err, gridbuilder.ErrStartEqualsGoal)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.GreaterOrEqual(t, len(joined.Unwrap()), 2)
}
