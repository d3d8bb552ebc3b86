package engine

// Category is one of the 13 fixed scoring slots on a scorecard.
type Category string

const (
	Ones   Category = "ones"
	Twos   Category = "twos"
	Threes Category = "threes"
	Fours  Category = "fours"
	Fives  Category = "fives"
	Sixes  Category = "sixes"

	ThreeOfAKind  Category = "three_of_a_kind"
	FourOfAKind   Category = "four_of_a_kind"
	FullHouse     Category = "full_house"
	SmallStraight Category = "small_straight"
	LargeStraight Category = "large_straight"
	Yahtzee       Category = "yahtzee"
	Chance        Category = "chance"
)

// UpperCategories count toward the 35-point bonus threshold.
var UpperCategories = []Category{Ones, Twos, Threes, Fours, Fives, Sixes}

// LowerCategories are the seven combination slots.
var LowerCategories = []Category{
	ThreeOfAKind, FourOfAKind, FullHouse,
	SmallStraight, LargeStraight, Yahtzee, Chance,
}

// Categories lists all 13 slots in scorecard order.
var Categories = append(append([]Category{}, UpperCategories...), LowerCategories...)

// faceValues maps each upper category to the die face it counts.
var faceValues = map[Category]int{
	Ones: 1, Twos: 2, Threes: 3, Fours: 4, Fives: 5, Sixes: 6,
}

// combinationCategories are the lower slots that require a qualifying roll:
// they cannot be taken for a computed score of 0, only zeroed out.
var combinationCategories = map[Category]bool{
	ThreeOfAKind:  true,
	FourOfAKind:   true,
	FullHouse:     true,
	SmallStraight: true,
	LargeStraight: true,
	Yahtzee:       true,
}

var categoryLabels = map[Category]string{
	Ones:          "Ones",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	ThreeOfAKind:  "3 of a Kind",
	FourOfAKind:   "4 of a Kind",
	FullHouse:     "Full House",
	SmallStraight: "Small Straight",
	LargeStraight: "Large Straight",
	Yahtzee:       "Yahtzee",
	Chance:        "Chance",
}

// Label returns the display name for the category.
func (c Category) Label() string {
	if s, ok := categoryLabels[c]; ok {
		return s
	}
	return string(c)
}

// NeedsQualifyingRoll reports whether the category is only takeable for
// points when the dice actually form the combination.
func (c Category) NeedsQualifyingRoll() bool {
	return combinationCategories[c]
}
