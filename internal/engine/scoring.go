package engine

// PossibleScores calculates the achievable score in every category for the
// given dice. The map always contains all 13 categories; combinations that
// the dice do not form score 0.
func PossibleScores(dice [NumDice]int) map[Category]int {
	counts := make(map[int]int, 6)
	sum := 0
	for _, d := range dice {
		counts[d]++
		sum += d
	}

	scores := make(map[Category]int, len(Categories))

	for _, cat := range UpperCategories {
		face := faceValues[cat]
		scores[cat] = counts[face] * face
	}

	scores[ThreeOfAKind] = 0
	scores[FourOfAKind] = 0
	for _, n := range counts {
		if n >= 3 {
			scores[ThreeOfAKind] = sum
		}
		if n >= 4 {
			scores[FourOfAKind] = sum
		}
	}

	// Exactly a pair plus a triple. Five of a kind does not qualify.
	scores[FullHouse] = 0
	if len(counts) == 2 {
		for _, n := range counts {
			if n == 2 || n == 3 {
				scores[FullHouse] = 25
			}
		}
	}

	scores[SmallStraight] = 0
	for _, run := range [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}} {
		if containsRun(counts, run) {
			scores[SmallStraight] = 30
			break
		}
	}

	// Large straight is an exact five-value match, not a subset.
	scores[LargeStraight] = 0
	if len(counts) == NumDice {
		if containsRun(counts, []int{1, 2, 3, 4, 5}) || containsRun(counts, []int{2, 3, 4, 5, 6}) {
			scores[LargeStraight] = 40
		}
	}

	scores[Yahtzee] = 0
	for _, n := range counts {
		if n == NumDice {
			scores[Yahtzee] = 50
		}
	}

	scores[Chance] = sum

	return scores
}

func containsRun(counts map[int]int, run []int) bool {
	for _, v := range run {
		if counts[v] == 0 {
			return false
		}
	}
	return true
}
