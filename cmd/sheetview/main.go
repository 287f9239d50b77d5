package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/thescene/assets"
	"github.com/milk9111/thescene/ecs/component"
)

const viewSize = 512

// viewer plays a frame range of a generated sheet with the same timing the
// scene uses. Left/Right cycles sheets, Space toggles the frame policy.
type viewer struct {
	names  []string
	index  int
	first  int
	last   int
	fps    float64
	policy component.FramePolicy

	sheet *ebiten.Image
	grid  component.FrameGrid
	anim  component.Animation
	frame int
}

func (v *viewer) load() {
	name := v.names[v.index]
	layout, _ := assets.Layout(name)
	img, err := assets.DrawSheet(name)
	if err != nil {
		log.Printf("sheetview: %v", err)
		return
	}
	v.sheet = img
	v.grid = component.FrameGrid{FrameW: layout.FrameW, FrameH: layout.FrameH, Columns: layout.Columns}

	first, last := v.first, v.last
	if last < 0 || last >= layout.Frames {
		last = layout.Frames - 1
	}
	if first < 0 || first > last {
		first = 0
	}
	v.anim = component.NewAnimation(first, last, v.fps, v.policy)
	v.anim.Active = first != last && v.fps > 0
	v.frame = first
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.index = (v.index + 1) % len(v.names)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.index = (v.index + len(v.names) - 1) % len(v.names)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if v.policy == component.FrameCyclic {
			v.policy = component.FrameRandom
		} else {
			v.policy = component.FrameCyclic
		}
		v.load()
	}

	if !v.anim.Active {
		return nil
	}
	v.anim.Timer.Tick(1 / float64(ebiten.TPS()))
	if v.anim.Timer.JustFinished() {
		v.frame = v.anim.Next(v.frame, nil)
		v.anim.Timer = component.FrameTimer(v.anim.FPS)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if v.sheet == nil {
		return
	}

	src := v.sheet.SubImage(v.grid.Rect(v.frame)).(*ebiten.Image)
	scale := float64(viewSize/2) / float64(max(v.grid.FrameW, v.grid.FrameH))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((viewSize-float64(v.grid.FrameW)*scale)/2, (viewSize-float64(v.grid.FrameH)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(src, op)

	policy := "cyclic"
	if v.policy == component.FrameRandom {
		policy = "random"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d (%d..%d)  %s", v.names[v.index], v.frame, v.anim.First, v.anim.Last, policy))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	sheet := flag.String("sheet", "player", "sheet to start on")
	first := flag.Int("first", 0, "first frame")
	last := flag.Int("last", -1, "last frame, -1 for the whole sheet")
	fps := flag.Float64("fps", 10, "frames per second")
	random := flag.Bool("random", false, "pick frames at random instead of in order")
	flag.Parse()

	v := &viewer{
		names: assets.SheetNames(),
		first: *first,
		last:  *last,
		fps:   *fps,
	}
	for i, name := range v.names {
		if name == *sheet {
			v.index = i
		}
	}
	if *random {
		v.policy = component.FrameRandom
	}
	v.load()

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sheet viewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
