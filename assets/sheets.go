package assets

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SheetLayout describes how a generated sheet is cut into frames.
type SheetLayout struct {
	FrameW  int
	FrameH  int
	Columns int
	Frames  int
}

// Size returns the pixel size of the whole sheet.
func (l SheetLayout) Size() (int, int) {
	rows := (l.Frames + l.Columns - 1) / l.Columns
	return l.FrameW * l.Columns, l.FrameH * rows
}

// Origin returns the top-left pixel of frame index.
func (l SheetLayout) Origin(index int) (float32, float32) {
	return float32((index % l.Columns) * l.FrameW), float32((index / l.Columns) * l.FrameH)
}

type frameFunc func(dst *ebiten.Image, x, y float32, index int)

type sheet struct {
	layout SheetLayout
	draw   frameFunc
}

var sheets = map[string]sheet{
	"player":     {SheetLayout{FrameW: 32, FrameH: 32, Columns: 10, Frames: 10}, drawMan},
	"player_act": {SheetLayout{FrameW: 32, FrameH: 32, Columns: 6, Frames: 6}, drawManActing},
	"fireplace":  {SheetLayout{FrameW: 20, FrameH: 16, Columns: 6, Frames: 6}, drawFireplace},
	"stereo":     {SheetLayout{FrameW: 20, FrameH: 16, Columns: 6, Frames: 6}, drawStereo},
	"house":      {SheetLayout{FrameW: 240, FrameH: 140, Columns: 1, Frames: 1}, drawHouse},
}

// SheetNames lists every generated sheet in name order.
func SheetNames() []string {
	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout returns the frame layout of a named sheet.
func Layout(name string) (SheetLayout, bool) {
	s, ok := sheets[name]
	return s.layout, ok
}

// DrawSheet renders the named sheet into a new image.
func DrawSheet(name string) (*ebiten.Image, error) {
	s, ok := sheets[name]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q", name)
	}
	w, h := s.layout.Size()
	img := ebiten.NewImage(w, h)
	for i := 0; i < s.layout.Frames; i++ {
		x, y := s.layout.Origin(i)
		s.draw(img, x, y, i)
	}
	return img, nil
}

var (
	skin    = color.RGBA{R: 0xe8, G: 0xb8, B: 0x90, A: 0xff}
	coat    = color.RGBA{R: 0x3a, G: 0x5a, B: 0x8c, A: 0xff}
	trouser = color.RGBA{R: 0x2b, G: 0x2b, B: 0x33, A: 0xff}
	brick   = color.RGBA{R: 0x8a, G: 0x3b, B: 0x2a, A: 0xff}
	soot    = color.RGBA{R: 0x1c, G: 0x14, B: 0x12, A: 0xff}
	flame   = color.RGBA{R: 0xff, G: 0x9a, B: 0x1f, A: 0xff}
	ember   = color.RGBA{R: 0xff, G: 0xe0, B: 0x6a, A: 0xff}
	wood    = color.RGBA{R: 0x5b, G: 0x3a, B: 0x22, A: 0xff}
	metal   = color.RGBA{R: 0x44, G: 0x46, B: 0x4d, A: 0xff}
	cone    = color.RGBA{R: 0x15, G: 0x15, B: 0x18, A: 0xff}
	light   = color.RGBA{R: 0x5c, G: 0xe0, B: 0x7a, A: 0xff}
	wall    = color.RGBA{R: 0x6b, G: 0x5a, B: 0x4e, A: 0xff}
	floor   = color.RGBA{R: 0x4a, G: 0x36, B: 0x28, A: 0xff}
	night   = color.RGBA{R: 0x1b, G: 0x24, B: 0x45, A: 0xff}
	frameC  = color.RGBA{R: 0xd8, G: 0xd0, B: 0xc0, A: 0xff}
)

// drawMan draws the standing pose on frame 0 and a nine step walk cycle after it.
func drawMan(dst *ebiten.Image, x, y float32, index int) {
	swing := float32(0)
	bob := float32(0)
	if index > 0 {
		phase := float64(index-1) / 9 * 2 * math.Pi
		swing = float32(3 * math.Sin(phase))
		bob = float32(math.Abs(math.Sin(phase)))
	}
	drawFigure(dst, x, y-bob, swing, 0)
}

func drawManActing(dst *ebiten.Image, x, y float32, index int) {
	// arm goes up and comes back down
	reach := float32(math.Sin(float64(index) / 5 * math.Pi))
	drawFigure(dst, x, y, 0, reach)
}

func drawFigure(dst *ebiten.Image, x, y, swing, reach float32) {
	vector.FillRect(dst, x+13+swing, y+22, 3, 9, trouser, false)
	vector.FillRect(dst, x+16-swing, y+22, 3, 9, trouser, false)
	vector.FillRect(dst, x+11, y+11, 10, 12, coat, false)
	vector.FillCircle(dst, x+16, y+7, 4.5, skin, false)
	// front arm, raised by reach
	vector.FillRect(dst, x+20, y+12-6*reach, 3, 8, coat, false)
	vector.FillRect(dst, x+20, y+19-6*reach, 3, 2, skin, false)
}

func drawFireplace(dst *ebiten.Image, x, y float32, index int) {
	vector.FillRect(dst, x, y, 20, 16, brick, false)
	vector.FillRect(dst, x, y, 20, 2, soot, false)
	vector.FillRect(dst, x+4, y+5, 12, 11, soot, false)
	vector.FillRect(dst, x+5, y+13, 10, 2, wood, false)
	if index == 0 {
		return
	}
	heights := [...]float32{5, 7, 4, 6, 8}
	h := heights[(index-1)%len(heights)]
	vector.FillRect(dst, x+6, y+13-h, 8, h, flame, false)
	vector.FillRect(dst, x+8, y+13-h*0.6, 4, h*0.6, ember, false)
}

func drawStereo(dst *ebiten.Image, x, y float32, index int) {
	vector.FillRect(dst, x+1, y+3, 18, 13, metal, false)
	radius := float32(3)
	if index > 0 {
		radius += float32(index%2) + float32(index%3)*0.5
		vector.FillRect(dst, x+9, y+5, 2, 2, light, false)
	}
	vector.FillCircle(dst, x+5, y+10, radius, cone, false)
	vector.FillCircle(dst, x+15, y+10, radius, cone, false)
}

func drawHouse(dst *ebiten.Image, x, y float32, _ int) {
	vector.FillRect(dst, x, y, 240, 140, wall, false)
	vector.FillRect(dst, x, y+110, 240, 30, floor, false)
	vector.FillRect(dst, x+150, y+22, 56, 44, frameC, false)
	vector.FillRect(dst, x+154, y+26, 48, 36, night, false)
	vector.FillRect(dst, x+177, y+26, 2, 36, frameC, false)
}
