package engine

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yahtzee/internal/anim"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(zerolog.Nop(), rand.New(rand.NewSource(42)))
}

// runShake requests a reroll and ticks the game until the cup sequence has
// run to completion.
func runShake(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.RequestReroll())
	for i := 0; i < anim.TotalFrames; i++ {
		g.Tick()
	}
	require.Nil(t, g.Shake(), "sequence should be finished")
}

func TestGame_Start(t *testing.T) {
	t.Run("valid player count", func(t *testing.T) {
		g := newTestGame(t)
		require.NoError(t, g.Start(3))

		assert.Equal(t, PhaseRolling, g.Phase())
		assert.Equal(t, 3, g.PlayerCount())
		assert.Equal(t, 0, g.Player())
		assert.Equal(t, 1, g.Round())
		assert.Equal(t, MaxRerolls, g.RollsLeft())

		// The initial roll is free and has already happened.
		for i, v := range g.Dice().Values {
			assert.GreaterOrEqual(t, v, 1, "die %d", i)
			assert.LessOrEqual(t, v, 6, "die %d", i)
		}
	})

	t.Run("invalid player count", func(t *testing.T) {
		g := newTestGame(t)
		require.ErrorIs(t, g.Start(0), ErrPlayerCount)
		require.ErrorIs(t, g.Start(10), ErrPlayerCount)
		assert.Equal(t, PhaseAwaitingPlayers, g.Phase())
	})

	t.Run("only from the prompt phase", func(t *testing.T) {
		g := newTestGame(t)
		require.NoError(t, g.Start(1))
		require.ErrorIs(t, g.Start(2), ErrWrongPhase)
	})
}

func TestGame_RequestReroll(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(1))

	// Each accepted reroll consumes exactly one roll.
	runShake(t, g)
	assert.Equal(t, 1, g.RollsLeft())
	runShake(t, g)
	assert.Equal(t, 0, g.RollsLeft())

	// Out of rolls: rejected, nothing changes.
	require.ErrorIs(t, g.RequestReroll(), ErrNoRollsLeft)
	assert.Equal(t, 0, g.RollsLeft())
	assert.Equal(t, PhaseRolling, g.Phase())
}

func TestGame_ShakeIsExclusive(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(1))
	require.NoError(t, g.RequestReroll())

	// While the sequence is in flight every exit is rejected.
	require.ErrorIs(t, g.RequestReroll(), ErrRollInProgress)
	require.ErrorIs(t, g.EndTurn(), ErrRollInProgress)
	require.ErrorIs(t, g.ToggleKeep(0), ErrRollInProgress)

	for i := 0; i < anim.TotalFrames; i++ {
		g.Tick()
	}
	require.Nil(t, g.Shake())
	require.NoError(t, g.EndTurn())
}

func TestGame_DiceResolveAtSingleInstant(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(1))

	before := g.Dice().Values
	require.NoError(t, g.RequestReroll())

	// Values stay frozen through move-in and all but the last shake frame.
	for i := 0; i < anim.MoveInFrames+anim.ShakeFrames-1; i++ {
		g.Tick()
		require.Equal(t, before, g.Dice().Values, "tick %d", i)
	}
}

func TestGame_KeptDiceSurviveReroll(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(1))

	require.NoError(t, g.ToggleKeep(0))
	require.NoError(t, g.ToggleKeep(3))
	before := g.Dice().Values

	runShake(t, g)

	after := g.Dice().Values
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[3], after[3])
}

func TestGame_ToggleKeep(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(1))

	require.NoError(t, g.ToggleKeep(2))
	assert.True(t, g.Dice().Kept[2])
	require.NoError(t, g.ToggleKeep(2))
	assert.False(t, g.Dice().Kept[2])

	require.ErrorIs(t, g.ToggleKeep(-1), ErrInvalidDie)
	require.ErrorIs(t, g.ToggleKeep(NumDice), ErrInvalidDie)

	require.NoError(t, g.EndTurn())
	require.ErrorIs(t, g.ToggleKeep(0), ErrWrongPhase)
}

func TestGame_SelectCategory(t *testing.T) {
	t.Run("rejects taken categories", func(t *testing.T) {
		g := newTestGame(t)
		require.NoError(t, g.Start(1))

		require.NoError(t, g.EndTurn())
		require.NoError(t, g.SelectCategory(Chance, false))

		// Same player, next round: chance is now immutable.
		require.NoError(t, g.EndTurn())
		require.ErrorIs(t, g.SelectCategory(Chance, false), ErrCategoryTaken)
		assert.Equal(t, PhaseSelectingCategory, g.Phase())
	})

	t.Run("combination categories need a qualifying roll", func(t *testing.T) {
		g := newTestGame(t)
		require.NoError(t, g.Start(1))
		require.NoError(t, g.EndTurn())

		// A full house and a large straight can never coexist, so at least
		// one of them is worth 0 for any roll.
		cat := FullHouse
		if g.PossibleScores()[cat] != 0 {
			cat = LargeStraight
		}
		require.Equal(t, 0, g.PossibleScores()[cat])

		require.ErrorIs(t, g.SelectCategory(cat, false), ErrNotEligible)

		// Zeroing it out is always allowed.
		require.NoError(t, g.SelectCategory(cat, true))
		score, set := g.Board(0).Score(cat)
		require.True(t, set)
		assert.Equal(t, 0, score)
	})

	t.Run("advances player and round", func(t *testing.T) {
		g := newTestGame(t)
		require.NoError(t, g.Start(2))

		require.NoError(t, g.EndTurn())
		require.NoError(t, g.SelectCategory(Chance, false))
		assert.Equal(t, 1, g.Player())
		assert.Equal(t, 1, g.Round())
		assert.Equal(t, PhaseRolling, g.Phase())
		assert.Equal(t, MaxRerolls, g.RollsLeft())

		require.NoError(t, g.EndTurn())
		require.NoError(t, g.SelectCategory(Chance, false))
		assert.Equal(t, 0, g.Player())
		assert.Equal(t, 2, g.Round())
	})
}

// A two-player game reaches GameOver after exactly 26 committed turns and
// never earlier.
func TestGame_FullGame(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(2))

	for turn := 0; turn < 2*MaxRounds; turn++ {
		require.Equal(t, PhaseRolling, g.Phase(), "turn %d", turn)

		// Occasionally burn a reroll to exercise the full tick path.
		if turn%5 == 0 {
			runShake(t, g)
		}

		round := g.Round()
		require.NoError(t, g.EndTurn())
		require.NoError(t, g.SelectCategory(Categories[round-1], true))
	}

	require.Equal(t, PhaseGameOver, g.Phase())
	for i := 0; i < g.PlayerCount(); i++ {
		require.True(t, g.Board(i).Complete(), "player %d", i)
	}
}

func TestGame_Restart(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Start(1))
	require.ErrorIs(t, g.Restart(), ErrWrongPhase)

	for round := 1; round <= MaxRounds; round++ {
		require.NoError(t, g.EndTurn())
		require.NoError(t, g.SelectCategory(Categories[round-1], true))
	}
	require.Equal(t, PhaseGameOver, g.Phase())

	require.NoError(t, g.Restart())
	assert.Equal(t, PhaseAwaitingPlayers, g.Phase())
	assert.Equal(t, 0, g.PlayerCount())
}
