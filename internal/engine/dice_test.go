package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDice_Roll(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var d Dice
	d.Roll(rng)
	for i, v := range d.Values {
		require.GreaterOrEqual(t, v, 1, "die %d", i)
		require.LessOrEqual(t, v, 6, "die %d", i)
	}
}

func TestDice_Roll_RespectsKept(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var d Dice
	d.Roll(rng)
	d.Kept = [NumDice]bool{true, false, true, false, true}
	before := d.Values

	for i := 0; i < 20; i++ {
		d.Roll(rng)
		require.Equal(t, before[0], d.Values[0])
		require.Equal(t, before[2], d.Values[2])
		require.Equal(t, before[4], d.Values[4])
	}
}

func TestDice_Reset(t *testing.T) {
	d := Dice{
		Values: [NumDice]int{1, 2, 3, 4, 5},
		Kept:   [NumDice]bool{true, true, false, false, true},
	}
	d.Reset()
	require.Equal(t, Dice{}, d)
}
