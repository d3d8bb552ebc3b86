package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboard_Commit(t *testing.T) {
	sb := NewScoreboard()

	// First commit succeeds.
	require.NoError(t, sb.Commit(Yahtzee, 50))
	score, set := sb.Score(Yahtzee)
	require.True(t, set)
	require.Equal(t, 50, score)

	// A committed category is immutable.
	err := sb.Commit(Yahtzee, 0)
	require.ErrorIs(t, err, ErrCategoryTaken)
	score, _ = sb.Score(Yahtzee)
	require.Equal(t, 50, score)
}

func TestScoreboard_Totals(t *testing.T) {
	t.Run("unset categories contribute zero", func(t *testing.T) {
		sb := NewScoreboard()
		require.NoError(t, sb.Commit(Threes, 9))
		require.NoError(t, sb.Commit(Chance, 18))

		upper, bonus, lower, total := sb.Totals()
		assert.Equal(t, 9, upper)
		assert.Equal(t, 0, bonus)
		assert.Equal(t, 18, lower)
		assert.Equal(t, 27, total)
	})

	t.Run("bonus applies at exactly 63", func(t *testing.T) {
		// Three of each face: 3+6+9+12+15+18 = 63.
		sb := NewScoreboard()
		for _, cat := range UpperCategories {
			require.NoError(t, sb.Commit(cat, 3*faceValues[cat]))
		}

		upper, bonus, _, total := sb.Totals()
		assert.Equal(t, 63, upper)
		assert.Equal(t, 35, bonus)
		assert.Equal(t, 98, total)
	})

	t.Run("no bonus below 63", func(t *testing.T) {
		sb := NewScoreboard()
		require.NoError(t, sb.Commit(Ones, 2))
		require.NoError(t, sb.Commit(Twos, 6))
		require.NoError(t, sb.Commit(Threes, 9))
		require.NoError(t, sb.Commit(Fours, 12))
		require.NoError(t, sb.Commit(Fives, 15))
		require.NoError(t, sb.Commit(Sixes, 18))

		upper, bonus, _, _ := sb.Totals()
		assert.Equal(t, 62, upper)
		assert.Equal(t, 0, bonus)
	})
}

func TestScoreboard_Complete(t *testing.T) {
	sb := NewScoreboard()
	require.False(t, sb.Complete())
	for _, cat := range Categories {
		require.NoError(t, sb.Commit(cat, 0))
	}
	require.True(t, sb.Complete())
}
