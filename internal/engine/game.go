// Package engine implements the Yahtzee rules: dice, scoring, scoreboards
// and the turn/round state machine. It knows nothing about rendering; the
// host polls its state every tick and feeds it input events.
package engine

import (
	"errors"
	"math/rand"

	"github.com/rs/zerolog"

	"yahtzee/internal/anim"
)

const (
	// MaxPlayers bounds the player-count prompt to a single digit.
	MaxPlayers = 9
	// MaxRounds is one scoring opportunity per category.
	MaxRounds = 13
	// MaxRerolls is the number of explicit rerolls after the free initial
	// roll of each turn.
	MaxRerolls = 2
)

var (
	ErrPlayerCount    = errors.New("player count must be between 1 and 9")
	ErrWrongPhase     = errors.New("action not allowed in current phase")
	ErrNoRollsLeft    = errors.New("no rolls left this turn")
	ErrRollInProgress = errors.New("a reroll is already in progress")
	ErrCategoryTaken  = errors.New("category already scored")
	ErrNotEligible    = errors.New("category requires a qualifying roll")
	ErrInvalidDie     = errors.New("invalid die index")
)

// Phase is the game's top-level state. Exactly one phase is active at a time.
type Phase int

const (
	PhaseAwaitingPlayers Phase = iota // waiting for the player-count choice
	PhaseRolling                      // current player rolling and keeping dice
	PhaseSelectingCategory            // current player picking a category
	PhaseGameOver                     // all rounds played; terminal until restart
)

var phaseNames = map[Phase]string{
	PhaseAwaitingPlayers:   "AwaitingPlayers",
	PhaseRolling:           "Rolling",
	PhaseSelectingCategory: "SelectingCategory",
	PhaseGameOver:          "GameOver",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Game is the single controller owning all mutable game state. Every
// mutation goes through its methods; rejected operations return an error
// and change nothing.
type Game struct {
	log zerolog.Logger
	rng *rand.Rand

	phase     Phase
	dice      Dice
	boards    []*Scoreboard
	player    int
	round     int
	rollsLeft int

	// shake doubles as the animation-in-progress guard: while non-nil,
	// rerolls, keep toggles and the end-turn exit are all rejected.
	shake *anim.CupShake
}

// New returns a game in the AwaitingPlayers phase.
func New(log zerolog.Logger, rng *rand.Rand) *Game {
	return &Game{log: log, rng: rng, phase: PhaseAwaitingPlayers}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Dice returns a copy of the current dice values and keep flags.
func (g *Game) Dice() Dice { return g.dice }

// Player returns the current player index.
func (g *Game) Player() int { return g.player }

// Round returns the current round, 1-based.
func (g *Game) Round() int { return g.round }

// RollsLeft returns how many explicit rerolls remain this turn.
func (g *Game) RollsLeft() int { return g.rollsLeft }

// PlayerCount returns the number of players in the running game.
func (g *Game) PlayerCount() int { return len(g.boards) }

// Board returns player i's scoreboard.
func (g *Game) Board(i int) *Scoreboard { return g.boards[i] }

// Shake returns the in-flight cup sequence, or nil when idle.
func (g *Game) Shake() *anim.CupShake { return g.shake }

// PossibleScores returns the achievable score per category for the current dice.
func (g *Game) PossibleScores() map[Category]int {
	return PossibleScores(g.dice.Values)
}

// Start begins a game with the given number of players and rolls the first
// turn's dice.
func (g *Game) Start(players int) error {
	if g.phase != PhaseAwaitingPlayers {
		return ErrWrongPhase
	}
	if players < 1 || players > MaxPlayers {
		return ErrPlayerCount
	}

	g.boards = make([]*Scoreboard, players)
	for i := range g.boards {
		g.boards[i] = NewScoreboard()
	}
	g.player = 0
	g.round = 1
	g.beginTurn()

	g.log.Info().Int("players", players).Msg("game started")
	return nil
}

// beginTurn sets up the current player's turn: fresh unkept dice, a free
// initial roll, and the full reroll allowance.
func (g *Game) beginTurn() {
	g.dice.Reset()
	g.dice.Roll(g.rng)
	g.rollsLeft = MaxRerolls
	g.phase = PhaseRolling
}

// RequestReroll consumes one roll and starts the cup-shake sequence. The
// non-kept dice get their new values mid-sequence, via Tick.
func (g *Game) RequestReroll() error {
	if g.phase != PhaseRolling {
		return ErrWrongPhase
	}
	if g.shake != nil {
		return ErrRollInProgress
	}
	if g.rollsLeft <= 0 {
		return ErrNoRollsLeft
	}

	g.rollsLeft--
	g.shake = anim.NewCupShake(g.dice.Kept)

	g.log.Debug().Int("player", g.player).Int("rolls_left", g.rollsLeft).Msg("reroll started")
	return nil
}

// ToggleKeep flips die i's keep flag. Allowed only while rolling and no
// sequence is in flight.
func (g *Game) ToggleKeep(i int) error {
	if i < 0 || i >= NumDice {
		return ErrInvalidDie
	}
	if g.phase != PhaseRolling {
		return ErrWrongPhase
	}
	if g.shake != nil {
		return ErrRollInProgress
	}
	g.dice.Kept[i] = !g.dice.Kept[i]
	return nil
}

// EndTurn moves to category selection. Always available while rolling,
// regardless of rolls left, but not while a sequence is in flight.
func (g *Game) EndTurn() error {
	if g.phase != PhaseRolling {
		return ErrWrongPhase
	}
	if g.shake != nil {
		return ErrRollInProgress
	}
	g.phase = PhaseSelectingCategory
	return nil
}

// SelectCategory commits the current dice to a category for the current
// player and advances to the next turn. With forceZero the category is
// zeroed instead; without it, combination categories the dice do not form
// are rejected.
func (g *Game) SelectCategory(cat Category, forceZero bool) error {
	if g.phase != PhaseSelectingCategory {
		return ErrWrongPhase
	}

	board := g.boards[g.player]
	if _, taken := board.Score(cat); taken {
		return ErrCategoryTaken
	}

	score := 0
	if !forceZero {
		score = g.PossibleScores()[cat]
		if score == 0 && cat.NeedsQualifyingRoll() {
			return ErrNotEligible
		}
	}
	if err := board.Commit(cat, score); err != nil {
		return err
	}

	g.log.Info().
		Int("player", g.player).
		Int("round", g.round).
		Str("category", string(cat)).
		Int("score", score).
		Bool("zeroed", forceZero).
		Msg("category scored")

	g.advance()
	return nil
}

// advance moves to the next player, wrapping into the next round, and ends
// the game after the final round.
func (g *Game) advance() {
	g.player++
	if g.player >= len(g.boards) {
		g.player = 0
		g.round++
	}
	if g.round > MaxRounds {
		g.phase = PhaseGameOver
		for i, board := range g.boards {
			upper, bonus, lower, total := board.Totals()
			g.log.Info().
				Int("player", i).
				Int("upper", upper).
				Int("bonus", bonus).
				Int("lower", lower).
				Int("total", total).
				Msg("final score")
		}
		return
	}
	g.beginTurn()
}

// Restart discards all scoreboards and returns to the player-count prompt.
// Only valid once the game is over.
func (g *Game) Restart() error {
	if g.phase != PhaseGameOver {
		return ErrWrongPhase
	}
	g.boards = nil
	g.dice.Reset()
	g.player = 0
	g.round = 0
	g.rollsLeft = 0
	g.phase = PhaseAwaitingPlayers

	g.log.Info().Msg("game restarted")
	return nil
}

// Tick advances an in-flight cup sequence by one frame. At the sequence's
// resolution instant the non-kept dice take their new values; when the
// sequence finishes the guard clears and control returns to the player.
func (g *Game) Tick() {
	if g.shake == nil {
		return
	}
	if g.shake.Step() {
		g.dice.Roll(g.rng)
		g.log.Debug().Ints("values", g.dice.Values[:]).Msg("dice resolved")
	}
	if g.shake.Done() {
		g.shake = nil
	}
}
