package system

import (
	"github.com/milk9111/thescene/common"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// minSpatialGain is the quietest a looping sink gets at or beyond its range.
const minSpatialGain = 0.15

// AudioSystem attenuates looping sinks by their distance to the listener.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

// Falloff returns the gain for a sink heard from distance away.
func Falloff(distance, rng float64) float64 {
	if rng <= 0 {
		return 1
	}
	return float64(common.Lerp(1, minSpatialGain, float32(common.Clamp(distance/rng, 0, 1))))
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	listener, ok := ecs.First(w, w.Listeners())
	if !ok {
		return
	}
	lt, ok := w.Transforms().Get(listener)
	if !ok {
		return
	}

	ecs.ForEach2(w, w.LoopAudio(), w.Transforms(), func(_ ecs.Entity, audio *component.LoopAudio, t *component.Transform) {
		if audio.Sink == nil {
			return
		}
		audio.Sink.SetVolume(audio.Volume * Falloff(t.Position.Distance(lt.Position), audio.Range))
	})
}
