package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameGrid cuts a sheet into equally sized frames, left to right, top to bottom.
type FrameGrid struct {
	FrameW  int
	FrameH  int
	Columns int
}

// Rect returns the source rectangle of frame index.
func (g FrameGrid) Rect(index int) image.Rectangle {
	cols := g.Columns
	if cols <= 0 {
		cols = 1
	}
	x := (index % cols) * g.FrameW
	y := (index / cols) * g.FrameH
	return image.Rect(x, y, x+g.FrameW, y+g.FrameH)
}

// Sprite is what the renderer draws. Grid is nil for single-image sprites.
type Sprite struct {
	Image *ebiten.Image
	Grid  *FrameGrid
	Frame int
	FlipX bool
	// Tint multiplies the RGB channels; 1 is neutral.
	Tint  float64
	Layer int
}

// Clip binds a sheet to the frame range played from it.
type Clip struct {
	Image  *ebiten.Image
	Grid   *FrameGrid
	First  int
	Last   int
	FPS    float64
	Loop   bool
	Policy FramePolicy
}

// Animation returns a fresh animation for the clip, inactive for single frames.
func (c *Clip) Animation() Animation {
	anim := NewAnimation(c.First, c.Last, c.FPS, c.Policy)
	anim.Loop = c.Loop
	anim.Active = c.First != c.Last && c.FPS > 0
	// A one-shot clip with nothing to advance is over as soon as it starts.
	anim.Finished = !c.Loop && !anim.Active
	return anim
}
