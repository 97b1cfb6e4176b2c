// Package costs_test validates the cost-table DP: the level-0 identity,
// the level-1 geometry, purity of the step function, and lookup failures.
package costs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keyrelay/costs"
	"github.com/katalvlaran/keyrelay/keypad"
	"github.com/katalvlaran/keyrelay/paths"
)

// dirButtons is the directional-pad button set used by table tests.
var dirButtons = []keypad.Button{
	keypad.Activate, keypad.BtnUp, keypad.BtnRight, keypad.BtnDown, keypad.BtnLeft,
}

// TestBase_AllOnes: level 0 is the human's own hand — every transition is
// one keystroke, regardless of the pair.
func TestBase_AllOnes(t *testing.T) {
	base := costs.Base()
	require.Equal(t, 0, base.Level())
	for _, from := range dirButtons {
		for _, to := range dirButtons {
			c, err := base.Cost(from, to)
			require.NoError(t, err)
			require.Equal(t, int64(1), c, "level-0 cost of %s→%s", from, to)
		}
	}
}

// TestNext_LevelOneGeometry: at level 1 each transition costs one press per
// move plus the confirm, i.e. Manhattan distance + 1.
func TestNext_LevelOneGeometry(t *testing.T) {
	lvl1, err := costs.Base().Next()
	require.NoError(t, err)
	require.Equal(t, 1, lvl1.Level())

	for _, from := range dirButtons {
		for _, to := range dirButtons {
			fp, perr := keypad.Directional.PositionOf(from)
			require.NoError(t, perr)
			tp, perr := keypad.Directional.PositionOf(to)
			require.NoError(t, perr)

			c, cerr := lvl1.Cost(from, to)
			require.NoError(t, cerr)
			require.Equal(t, int64(fp.ManhattanTo(tp)+1), c, "level-1 cost of %s→%s", from, to)
		}
	}
}

// TestNext_Pure: rebuilding a level twice from the same predecessor yields
// identical matrices.
func TestNext_Pure(t *testing.T) {
	lvl3, err := costs.Build(3)
	require.NoError(t, err)

	a, err := lvl3.Next()
	require.NoError(t, err)
	b, err := lvl3.Next()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestBuild_Depths: Build(0) is Base; negative depths are rejected.
func TestBuild_Depths(t *testing.T) {
	lvl0, err := costs.Build(0)
	require.NoError(t, err)
	require.Equal(t, costs.Base(), lvl0)

	_, err = costs.Build(-1)
	require.ErrorIs(t, err, costs.ErrNegativeDepth)
}

// TestCost_NotDirectional: numeric digits have no row in the matrix.
func TestCost_NotDirectional(t *testing.T) {
	base := costs.Base()
	_, err := base.Cost('5', keypad.Activate)
	require.ErrorIs(t, err, costs.ErrNotDirectional)
	_, err = base.Cost(keypad.Activate, '0')
	require.ErrorIs(t, err, costs.ErrNotDirectional)
}

// TestSequenceCost_Base: against the level-0 table a sequence costs its
// length (one keystroke per press, the implicit leading Activate is a
// resting state, not a press).
func TestSequenceCost_Base(t *testing.T) {
	base := costs.Base()
	seq := paths.Sequence{keypad.BtnDown, keypad.BtnLeft, keypad.BtnLeft, keypad.Activate}
	c, err := base.SequenceCost(seq)
	require.NoError(t, err)
	require.Equal(t, int64(len(seq)), c)
}

// TestTransitionCost_PicksCheaperOrdering: at level 2 the two orderings of
// the same pair usually price differently; the table must hold the minimum.
func TestTransitionCost_PicksCheaperOrdering(t *testing.T) {
	lvl1, err := costs.Build(1)
	require.NoError(t, err)

	seqs, err := paths.Enumerate(keypad.Directional, keypad.BtnDown, keypad.Activate)
	require.NoError(t, err)
	require.Len(t, seqs, 2)

	want := int64(1<<62 - 1)
	for _, seq := range seqs {
		c, serr := lvl1.SequenceCost(seq)
		require.NoError(t, serr)
		if c < want {
			want = c
		}
	}

	got, err := lvl1.TransitionCost(keypad.Directional, keypad.BtnDown, keypad.Activate)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
