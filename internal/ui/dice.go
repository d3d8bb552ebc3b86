// Package ui renders the game with vector primitives and the debug font.
// It only reads engine/anim state; nothing in here mutates the game.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"yahtzee/internal/anim"
)

// --- Palette ---
var (
	ColWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColBlack  = color.RGBA{0x10, 0x10, 0x10, 0xff}
	ColRed    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColTable  = color.RGBA{0x22, 0x8b, 0x22, 0xff} // rolling screen felt
	ColBoard  = color.RGBA{0xde, 0xb8, 0x87, 0xff} // scorecard / menus
	ColCup    = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	ColCupRim = color.RGBA{0x6b, 0x42, 0x1e, 0xff}
)

// pip offsets per face value, as fractions of the die size from its center
var pipLayouts = map[int][][2]float64{
	1: {{0, 0}},
	2: {{-0.25, -0.25}, {0.25, 0.25}},
	3: {{-0.25, -0.25}, {0, 0}, {0.25, 0.25}},
	4: {{-0.25, -0.25}, {0.25, -0.25}, {-0.25, 0.25}, {0.25, 0.25}},
	5: {{-0.25, -0.25}, {0.25, -0.25}, {0, 0}, {-0.25, 0.25}, {0.25, 0.25}},
	6: {{-0.25, -0.25}, {0.25, -0.25}, {-0.25, 0}, {0.25, 0}, {-0.25, 0.25}, {0.25, 0.25}},
}

// DrawDie draws one die centered at (x, y). Kept dice get a red outline.
func DrawDie(screen *ebiten.Image, value int, x, y, scale float64, kept bool) {
	size := float32(anim.DieSize * scale)
	px := float32(x) - size/2
	py := float32(y) - size/2

	// 1. Face
	vector.DrawFilledRect(screen, px, py, size, size, ColWhite, true)
	vector.StrokeRect(screen, px, py, size, size, 2, ColBlack, true)

	// 2. Pips
	r := size * 0.09
	for _, off := range pipLayouts[value] {
		cx := float32(x) + float32(off[0])*size
		cy := float32(y) + float32(off[1])*size
		vector.DrawFilledCircle(screen, cx, cy, r, ColBlack, true)
	}

	// 3. Keep marker
	if kept {
		vector.StrokeRect(screen, px-2, py-2, size+4, size+4, 3, ColRed, true)
	}
}

// frame-indexed wobble of the cup while it shakes
var cupWobble = [anim.CupFrameCount]float64{0, -8, 0, 8}

// DrawCup draws the dice cup at its fixed table position in the given
// sprite frame (0 = idle).
func DrawCup(screen *ebiten.Image, frame int) {
	x := float32(anim.CupX + cupWobble[frame%anim.CupFrameCount])
	y := float32(anim.CupY)
	w := float32(anim.CupWidth)
	h := float32(anim.CupHeight)

	// 1. Body
	vector.DrawFilledRect(screen, x+w*0.1, y+h*0.15, w*0.8, h*0.85, ColCup, true)
	// 2. Mouth
	vector.DrawFilledRect(screen, x, y, w, h*0.15, ColCupRim, true)
	// 3. Base band
	vector.DrawFilledRect(screen, x+w*0.05, y+h*0.85, w*0.9, h*0.15, ColCupRim, true)
}
