package engine

// Scoreboard records one player's committed category scores. Entries are
// write-once: a committed category stays fixed for the rest of the game.
type Scoreboard struct {
	scores map[Category]int
}

// NewScoreboard returns an empty scoreboard with no categories set.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{scores: make(map[Category]int, len(Categories))}
}

// Score returns the committed score for the category and whether it is set.
func (sb *Scoreboard) Score(cat Category) (int, bool) {
	s, ok := sb.scores[cat]
	return s, ok
}

// Commit records a score for the category. Committing to an already-set
// category is rejected with ErrCategoryTaken and changes nothing.
func (sb *Scoreboard) Commit(cat Category, score int) error {
	if _, taken := sb.scores[cat]; taken {
		return ErrCategoryTaken
	}
	sb.scores[cat] = score
	return nil
}

// Complete reports whether all 13 categories have been committed.
func (sb *Scoreboard) Complete() bool {
	return len(sb.scores) == len(Categories)
}

// Totals derives the final score breakdown: the upper-section subtotal, the
// bonus (35 when the upper subtotal reaches 63), the lower-section subtotal
// and the grand total. Unset categories contribute 0.
func (sb *Scoreboard) Totals() (upper, bonus, lower, total int) {
	for _, cat := range UpperCategories {
		upper += sb.scores[cat]
	}
	for _, cat := range LowerCategories {
		lower += sb.scores[cat]
	}
	if upper >= upperBonusThreshold {
		bonus = upperBonus
	}
	return upper, bonus, lower, upper + bonus + lower
}

const (
	upperBonusThreshold = 63
	upperBonus          = 35
)
