package assets

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSynthPCM(t *testing.T) {
	for _, name := range SoundNames() {
		t.Run(name, func(t *testing.T) {
			pcm, err := SynthPCM(name)
			if err != nil {
				t.Fatalf("SynthPCM: %v", err)
			}
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("len = %d, want a positive multiple of 4", len(pcm))
			}
			if silent(pcm) {
				t.Fatal("sound is silent")
			}
		})
	}
}

func TestSynthPCMUnknown(t *testing.T) {
	if _, err := SynthPCM("tuba"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRenderPCMLength(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	n := rate.N(100 * time.Millisecond)
	pcm, err := RenderPCM(beep.Take(n, NewThumpGenerator(rate, 100, 1)))
	if err != nil {
		t.Fatalf("RenderPCM: %v", err)
	}
	if got := len(pcm) / 4; got != n {
		t.Fatalf("frames = %d, want %d", got, n)
	}
}

func TestToInt16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{2, 32767},
		{-3, -32767},
	}
	for _, tc := range tests {
		if got := toInt16(tc.in); got != tc.want {
			t.Errorf("toInt16(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMelodyGeneratorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	g := NewMelodyGenerator(rate, []float64{440, 0}, 0.1)
	pcm, err := RenderPCM(g)
	if err != nil {
		t.Fatalf("RenderPCM: %v", err)
	}
	if got := len(pcm) / 4; got != 200 {
		t.Fatalf("frames = %d, want 200", got)
	}
}

func silent(pcm []byte) bool {
	for i := 0; i+1 < len(pcm); i += 2 {
		if binary.LittleEndian.Uint16(pcm[i:]) != 0 {
			return false
		}
	}
	return true
}
