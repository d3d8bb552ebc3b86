package engine

import "math/rand"

// NumDice is the number of dice on the table.
const NumDice = 5

// Dice holds the five die values and their keep flags. A kept die is
// excluded from the next roll.
type Dice struct {
	Values [NumDice]int
	Kept   [NumDice]bool
}

// Roll assigns a fresh uniform value in [1,6] to every die that is not kept.
func (d *Dice) Roll(rng *rand.Rand) {
	for i := range d.Values {
		if !d.Kept[i] {
			d.Values[i] = rng.Intn(6) + 1
		}
	}
}

// Reset clears values and keep flags for a new turn.
func (d *Dice) Reset() {
	*d = Dice{}
}
