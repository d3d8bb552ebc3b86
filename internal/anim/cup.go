// Package anim drives the cup-shake reroll sequence. The whole sequence is
// a fixed number of discrete frames advanced one Step per game tick; dice
// values are not interpolated, they change at a single resolution instant
// between the shake and move-out stages.
package anim

// Table layout. The sequencer owns these so the interpolation targets and
// the renderer's resting positions always agree.
const (
	ScreenWidth  = 1000
	ScreenHeight = 700

	DieSize   = 80
	CupWidth  = 150
	CupHeight = 180
	CupX      = (ScreenWidth - CupWidth) / 2
	CupY      = 400
)

// DiePositions are the resting centers of the five dice on the rolling screen.
var DiePositions = [5][2]float64{
	{150, 290},
	{300, 290},
	{450, 290},
	{600, 290},
	{750, 290},
}

// Frame counts per stage, plus the number of cup sprite frames cycled
// while shaking.
const (
	MoveInFrames  = 15
	ShakeFrames   = 36
	MoveOutFrames = 15
	CupFrameCount = 4

	// TotalFrames is the length of a full sequence in ticks.
	TotalFrames = MoveInFrames + ShakeFrames + MoveOutFrames
)

type stage int

const (
	stageMoveIn stage = iota
	stageShake
	stageMoveOut
	stageDone
)

// CupShake is one reroll sequence. Only dice that were not kept when the
// sequence started take part; kept dice never move. A sequence cannot be
// cancelled; Step it until Done.
type CupShake struct {
	stage stage
	frame int

	moving [5]bool
	pos    [5][2]float64
	scale  [5]float64
}

// NewCupShake starts a sequence for the dice whose kept flag is false.
func NewCupShake(kept [5]bool) *CupShake {
	c := &CupShake{}
	for i := range kept {
		c.moving[i] = !kept[i]
		c.pos[i] = DiePositions[i]
		c.scale[i] = 1.0
	}
	return c
}

// cup mouth, where moving dice converge
func cupTarget() (x, y float64) {
	return CupX + CupWidth/2, CupY + CupHeight/4
}

// Step advances the sequence by one frame. It returns true exactly once per
// sequence, at the resolution instant: the caller must assign new values to
// the non-kept dice at that moment and at no other.
func (c *CupShake) Step() (resolve bool) {
	tx, ty := cupTarget()

	switch c.stage {
	case stageMoveIn:
		c.frame++
		frac := float64(c.frame) / MoveInFrames
		for i := range c.pos {
			if !c.moving[i] {
				continue
			}
			c.pos[i][0] = lerp(DiePositions[i][0], tx, frac)
			c.pos[i][1] = lerp(DiePositions[i][1], ty, frac)
			c.scale[i] = 1.0 - 0.5*frac
		}
		if c.frame >= MoveInFrames {
			c.stage = stageShake
			c.frame = 0
		}

	case stageShake:
		c.frame++
		if c.frame >= ShakeFrames {
			c.stage = stageMoveOut
			c.frame = 0
			return true
		}

	case stageMoveOut:
		c.frame++
		frac := float64(c.frame) / MoveOutFrames
		for i := range c.pos {
			if !c.moving[i] {
				continue
			}
			c.pos[i][0] = lerp(tx, DiePositions[i][0], frac)
			c.pos[i][1] = lerp(ty, DiePositions[i][1], frac)
			c.scale[i] = 0.5 + 0.5*frac
		}
		if c.frame >= MoveOutFrames {
			c.stage = stageDone
		}
	}
	return false
}

// Done reports whether the sequence has run to completion.
func (c *CupShake) Done() bool {
	return c.stage == stageDone
}

// CupFrame returns the cup sprite frame to draw: cycling during the shake
// stage, the idle frame otherwise.
func (c *CupShake) CupFrame() int {
	if c.stage == stageShake {
		return c.frame % CupFrameCount
	}
	return 0
}

// DieHidden reports whether die i is inside the cup and must not be drawn.
func (c *CupShake) DieHidden(i int) bool {
	return c.stage == stageShake && c.moving[i]
}

// DiePos returns the current center of die i.
func (c *CupShake) DiePos(i int) (x, y float64) {
	return c.pos[i][0], c.pos[i][1]
}

// DieScale returns the current scale of die i (1.0 at rest, 0.5 at the cup).
func (c *CupShake) DieScale(i int) float64 {
	return c.scale[i]
}

func lerp(from, to, frac float64) float64 {
	return from + (to-from)*frac
}
