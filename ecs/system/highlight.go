package system

import (
	"math"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/tanema/gween/ease"
)

const (
	defaultPulseAmplitude = 0.1
	// defaultPulseFrequency is in radians per second.
	defaultPulseFrequency = 4.0
)

// HighlightSystem pulses the tint and scale of highlighted furnishings that
// are off and unused, and holds every other furnishing at neutral.
type HighlightSystem struct {
	Amplitude float64
	Frequency float64
}

func NewHighlightSystem() *HighlightSystem {
	return &HighlightSystem{Amplitude: defaultPulseAmplitude, Frequency: defaultPulseFrequency}
}

// Pulse returns the intensity t seconds after highlighting began. It starts
// at 1, peaks at 1+2*amplitude and repeats every 2*pi/frequency seconds.
func (h *HighlightSystem) Pulse(t float64) float64 {
	if t < 0 {
		t = 0
	}
	// InOutSine covers half a period over its duration and keeps going as a
	// cosine past it.
	half := math.Pi / h.Frequency
	return float64(ease.InOutSine(float32(t), 1, float32(2*h.Amplitude), float32(half)))
}

func (h *HighlightSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}
	now := w.Clock().Elapsed()

	ecs.ForEach3(w, w.Furnishings(), w.Sprites(), w.Transforms(), func(e ecs.Entity, furn *component.Furnishing, sprite *component.Sprite, t *component.Transform) {
		hl, highlighted := w.Highlights().Get(e)
		ia, interactable := w.Interactables().Get(e)

		if highlighted && interactable && ia.First && furn.State == component.FurnishingOff {
			pulse := h.Pulse(now - hl.Offset)
			sprite.Tint = pulse
			t.Scale = furn.BaseScale * ((pulse-1)/4 + 1)
			return
		}

		sprite.Tint = 1
		t.Scale = furn.BaseScale
	})
}
