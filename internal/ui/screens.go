package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"yahtzee/internal/anim"
	"yahtzee/internal/engine"
)

// CategoryKey binds a scorecard row to its keyboard key.
type CategoryKey struct {
	Cat    engine.Category
	Prompt string
	Key    ebiten.Key
}

// CategoryKeys lists the 13 rows in scorecard order with their bindings.
var CategoryKeys = []CategoryKey{
	{engine.Ones, "Press [1] for Ones", ebiten.Key1},
	{engine.Twos, "Press [2] for Twos", ebiten.Key2},
	{engine.Threes, "Press [3] for Threes", ebiten.Key3},
	{engine.Fours, "Press [4] for Fours", ebiten.Key4},
	{engine.Fives, "Press [5] for Fives", ebiten.Key5},
	{engine.Sixes, "Press [6] for Sixes", ebiten.Key6},
	{engine.ThreeOfAKind, "Press [A] for 3 of a Kind", ebiten.KeyA},
	{engine.FourOfAKind, "Press [B] for 4 of a Kind", ebiten.KeyB},
	{engine.FullHouse, "Press [C] for Full House", ebiten.KeyC},
	{engine.SmallStraight, "Press [D] for Small Straight", ebiten.KeyD},
	{engine.LargeStraight, "Press [E] for Large Straight", ebiten.KeyE},
	{engine.Yahtzee, "Press [F] for Yahtzee", ebiten.KeyF},
	{engine.Chance, "Press [G] for Chance", ebiten.KeyG},
}

// DieRect is the clickable area of die i at its resting position.
func DieRect(i int) image.Rectangle {
	cx := int(anim.DiePositions[i][0])
	cy := int(anim.DiePositions[i][1])
	half := anim.DieSize / 2
	return image.Rect(cx-half, cy-half, cx+half, cy+half)
}

// PlayAgainRect is the clickable area of the game-over button.
func PlayAgainRect() image.Rectangle {
	const w, h = 200, 50
	x := (anim.ScreenWidth - w) / 2
	y := gameOverBoxY + gameOverBoxH + 20
	return image.Rect(x, y, x+w, y+h)
}

const (
	gameOverBoxY = 50
	gameOverBoxH = 300
)

// the debug font glyph is 6px wide; good enough for centering
func drawTextCentered(screen *ebiten.Image, msg string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, msg, cx-len(msg)*3, y)
}

func drawBox(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, ColWhite, false)
	vector.StrokeRect(screen, x, y, w, h, 2, ColBlack, false)
}

func drawDashedLine(screen *ebiten.Image, x1, x2, y float32) {
	const dash = 10
	for x := x1; x < x2; x += dash * 2 {
		end := x + dash
		if end > x2 {
			end = x2
		}
		vector.StrokeLine(screen, x, y, end, y, 2, ColBlack, false)
	}
}

// DrawPrompt renders the player-count screen. chosen is 0 until a digit has
// been pressed.
func DrawPrompt(screen *ebiten.Image, chosen int) {
	screen.Fill(ColBoard)

	const boxW, boxH = 700, 150
	x := float32(anim.ScreenWidth-boxW) / 2
	y := float32(anim.ScreenHeight-boxH) / 2
	drawBox(screen, x, y, boxW, boxH)

	msg := "Select Number of Players: Press [1]-[9]"
	if chosen > 0 {
		plural := ""
		if chosen > 1 {
			plural = "s"
		}
		msg = fmt.Sprintf("You selected %d player%s. Press Enter to start.", chosen, plural)
	}
	drawTextCentered(screen, msg, anim.ScreenWidth/2, anim.ScreenHeight/2-8)
}

// DrawRolling renders the rolling screen: status box, the five dice (driven
// by the in-flight cup sequence when there is one) and the cup.
func DrawRolling(screen *ebiten.Image, g *engine.Game) {
	screen.Fill(ColTable)

	const boxW, boxH = 600, 150
	bx := float32(anim.ScreenWidth-boxW) / 2
	drawBox(screen, bx, 20, boxW, boxH)

	tx, ty := int(bx)+20, 40
	shake := g.Shake()
	if shake != nil {
		ebitenutil.DebugPrintAt(screen, "Rolling Dice...", tx, ty)
	} else {
		header := fmt.Sprintf("Player %d - Round %d of %d", g.Player()+1, g.Round(), engine.MaxRounds)
		ebitenutil.DebugPrintAt(screen, header, tx, ty)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Rolls Left: %d", g.RollsLeft()), tx, ty+30)
		ebitenutil.DebugPrintAt(screen, "Press R to roll, E to end turn.", tx, ty+60)
		ebitenutil.DebugPrintAt(screen, "Click a die to keep/unkeep it.", tx, ty+90)
	}

	dice := g.Dice()
	for i := 0; i < engine.NumDice; i++ {
		x, y := anim.DiePositions[i][0], anim.DiePositions[i][1]
		scale := 1.0
		if shake != nil {
			if shake.DieHidden(i) {
				continue
			}
			x, y = shake.DiePos(i)
			scale = shake.DieScale(i)
		}
		DrawDie(screen, dice.Values[i], x, y, scale, dice.Kept[i])
	}

	frame := 0
	if shake != nil {
		frame = shake.CupFrame()
	}
	DrawCup(screen, frame)
}

// DrawScorecard renders the category-selection screen for the current player.
func DrawScorecard(screen *ebiten.Image, g *engine.Game, zeroMode bool) {
	screen.Fill(ColBoard)

	header := fmt.Sprintf("Player %d Scorecard - Round %d of %d", g.Player()+1, g.Round(), engine.MaxRounds)
	drawTextCentered(screen, header, anim.ScreenWidth/2, 22)
	drawDashedLine(screen, 50, anim.ScreenWidth-50, 48)

	if zeroMode {
		drawTextCentered(screen, "ZERO MODE ACTIVE: Choose category to assign 0", anim.ScreenWidth/2, 58)
	} else {
		drawTextCentered(screen, "Press [0] to take a 0 on a category", anim.ScreenWidth/2, 58)
	}

	possible := g.PossibleScores()
	board := g.Board(g.Player())

	const (
		xPrompt    = 50
		xScore     = 600
		lineHeight = 38
	)
	y := 90
	for _, row := range CategoryKeys {
		var status string
		if committed, taken := board.Score(row.Cat); taken {
			status = fmt.Sprintf("USED (Score: %d)", committed)
		} else if possible[row.Cat] == 0 && row.Cat.NeedsQualifyingRoll() {
			status = "Not eligible"
		} else {
			status = fmt.Sprintf("Possible Score = %d", possible[row.Cat])
		}
		ebitenutil.DebugPrintAt(screen, row.Prompt, xPrompt, y)
		ebitenutil.DebugPrintAt(screen, status, xScore, y)
		y += lineHeight
	}

	// Dice at half scale along the bottom
	dice := g.Dice()
	const gap = 20
	totalW := engine.NumDice*anim.DieSize/2 + (engine.NumDice-1)*gap
	startX := (anim.ScreenWidth - totalW) / 2
	dy := float64(anim.ScreenHeight - anim.DieSize/4 - 20)
	for i := 0; i < engine.NumDice; i++ {
		dx := float64(startX + anim.DieSize/4 + i*(anim.DieSize/2+gap))
		DrawDie(screen, dice.Values[i], dx, dy, 0.5, false)
	}
}

// DrawGameOver renders the final totals for every player and the Play Again
// button.
func DrawGameOver(screen *ebiten.Image, g *engine.Game) {
	screen.Fill(ColBoard)

	const boxW = 600
	bx := float32(anim.ScreenWidth-boxW) / 2
	drawBox(screen, bx, gameOverBoxY, boxW, gameOverBoxH)

	drawTextCentered(screen, "Game Over!", anim.ScreenWidth/2, gameOverBoxY+22)
	drawTextCentered(screen, "Player   Upper   Bonus   Lower   Total", anim.ScreenWidth/2, gameOverBoxY+62)

	y := gameOverBoxY + 92
	for i := 0; i < g.PlayerCount(); i++ {
		upper, bonus, lower, total := g.Board(i).Totals()
		line := fmt.Sprintf("P%d:      %3d     %3d     %3d     %3d", i+1, upper, bonus, lower, total)
		ebitenutil.DebugPrintAt(screen, line, int(bx)+40, y)
		y += 26
	}

	btn := PlayAgainRect()
	drawBox(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()))
	drawTextCentered(screen, "Play Again", (btn.Min.X+btn.Max.X)/2, (btn.Min.Y+btn.Max.Y)/2-8)
}
