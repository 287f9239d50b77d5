package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// RenderSystem draws sprites with the world origin at the centre of the screen.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	bounds := screen.Bounds()
	originX := float64(bounds.Dx()) / 2
	originY := float64(bounds.Dy()) / 2

	entities := make([]ecs.Entity, 0, w.Sprites().Len())
	ecs.ForEach2(w, w.Sprites(), w.Transforms(), func(e ecs.Entity, _ *component.Sprite, _ *component.Transform) {
		entities = append(entities, e)
	})
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := w.Sprites().Get(entities[i])
		sj, _ := w.Sprites().Get(entities[j])
		if si.Layer != sj.Layer {
			return si.Layer < sj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, _ := w.Sprites().Get(e)
		t, _ := w.Transforms().Get(e)
		if s.Image == nil {
			continue
		}

		img := s.Image
		if s.Grid != nil {
			if sub, ok := s.Image.SubImage(s.Grid.Rect(s.Frame)).(*ebiten.Image); ok {
				img = sub
			}
		}
		iw := float64(img.Bounds().Dx())
		ih := float64(img.Bounds().Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-iw/2, -ih/2)

		scale := t.Scale
		if scale == 0 {
			scale = 1
		}
		sx := scale
		if s.FlipX {
			sx = -sx
		}
		op.GeoM.Scale(sx, scale)
		op.GeoM.Translate(originX+t.Position.X, originY+t.Position.Y)

		if s.Tint > 0 && s.Tint != 1 {
			tint := float32(s.Tint)
			op.ColorScale.Scale(tint, tint, tint, 1)
		}

		screen.DrawImage(img, op)
	}
}
