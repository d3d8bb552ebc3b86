package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"yahtzee/internal/anim"
	"yahtzee/internal/engine"
	"yahtzee/internal/ui"
)

// Game is the Ebiten shell around the engine: it feeds input events in and
// draws whatever state the engine exposes. Screen-only state (the pending
// player-count choice and the scorecard's zero mode) lives here, not in the
// engine.
type Game struct {
	engine *engine.Game

	selectedPlayers int
	zeroMode        bool
}

func NewGame(eng *engine.Game) *Game {
	return &Game{engine: eng}
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Update: logic (60 TPS). One engine tick, then input for the active phase.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.engine.Tick()

	switch g.engine.Phase() {
	case engine.PhaseAwaitingPlayers:
		g.updatePrompt()
	case engine.PhaseRolling:
		g.updateRolling()
	case engine.PhaseSelectingCategory:
		g.updateScorecard()
	case engine.PhaseGameOver:
		g.updateGameOver()
	}
	return nil
}

func (g *Game) updatePrompt() {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectedPlayers = i + 1
		}
	}
	if g.selectedPlayers > 0 && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if g.engine.Start(g.selectedPlayers) == nil {
			g.selectedPlayers = 0
		}
	}
}

func (g *Game) updateRolling() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// Rejections (no rolls left, shake in flight) are silent no-ops.
		_ = g.engine.RequestReroll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if g.engine.EndTurn() == nil {
			g.zeroMode = false
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i := 0; i < engine.NumDice; i++ {
			if image.Pt(x, y).In(ui.DieRect(i)) {
				_ = g.engine.ToggleKeep(i)
			}
		}
	}
}

func (g *Game) updateScorecard() {
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.zeroMode = true
	}
	for _, row := range ui.CategoryKeys {
		if inpututil.IsKeyJustPressed(row.Key) {
			if g.engine.SelectCategory(row.Cat, g.zeroMode) == nil {
				g.zeroMode = false
			}
		}
	}
}

func (g *Game) updateGameOver() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(ui.PlayAgainRect()) {
			_ = g.engine.Restart()
		}
	}
}

// Draw: rendering (VSync). Routes to the screen for the active phase.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.engine.Phase() {
	case engine.PhaseAwaitingPlayers:
		ui.DrawPrompt(screen, g.selectedPlayers)
	case engine.PhaseRolling:
		ui.DrawRolling(screen, g.engine)
	case engine.PhaseSelectingCategory:
		ui.DrawScorecard(screen, g.engine, g.zeroMode)
	case engine.PhaseGameOver:
		ui.DrawGameOver(screen, g.engine)
	}
}

// Layout: always render at the fixed table resolution, let Ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return anim.ScreenWidth, anim.ScreenHeight
}
