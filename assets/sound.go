package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

const SampleRate = 44100

var sampleRate = beep.SampleRate(SampleRate)

// soundBuilders produce finite streamers; looping is the player's job.
var soundBuilders = map[string]func() beep.Streamer{
	"fire_crackle": func() beep.Streamer {
		return beep.Take(sampleRate.N(4*time.Second), NewCrackleGenerator(sampleRate, 7))
	},
	"stereo_music": func() beep.Streamer {
		return beep.Take(sampleRate.N(4800*time.Millisecond), beep.Mix(
			NewMelodyGenerator(sampleRate, melody, 0.3),
			NewMelodyGenerator(sampleRate, bassline, 1.2),
		))
	},
	"step_left_1":  func() beep.Streamer { return stepSound(90, 1) },
	"step_left_2":  func() beep.Streamer { return stepSound(100, 2) },
	"step_right_1": func() beep.Streamer { return stepSound(110, 3) },
	"step_right_2": func() beep.Streamer { return stepSound(120, 4) },
}

// SoundNames lists every sound SynthPCM knows.
func SoundNames() []string {
	names := make([]string, 0, len(soundBuilders))
	for name := range soundBuilders {
		names = append(names, name)
	}
	return names
}

// SynthPCM renders the named sound as 16-bit little-endian stereo at SampleRate.
func SynthPCM(name string) ([]byte, error) {
	build, ok := soundBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown sound %q", name)
	}
	return RenderPCM(build())
}

// RenderPCM drains s into the format ebiten's audio players read.
func RenderPCM(s beep.Streamer) ([]byte, error) {
	var buf bytes.Buffer
	samples := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(samples[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(samples[i][1])))
			buf.Write(frame)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

func newPCMReader(pcm []byte) *bytes.Reader {
	return bytes.NewReader(pcm)
}

func stepSound(freq float64, seed uint64) beep.Streamer {
	return beep.Seq(
		beep.Take(sampleRate.N(90*time.Millisecond), NewThumpGenerator(sampleRate, freq, seed)),
		beep.Silence(sampleRate.N(20*time.Millisecond)),
	)
}

// CrackleGenerator is a low fire rumble with random pops.
type CrackleGenerator struct {
	sr    beep.SampleRate
	pos   int
	rng   *rand.Rand
	pop   float64
	noise float64
}

func NewCrackleGenerator(sr beep.SampleRate, seed uint64) *CrackleGenerator {
	return &CrackleGenerator{sr: sr, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b9))}
}

func (g *CrackleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// one-pole low-pass over white noise
		g.noise += 0.05 * (g.rng.Float64()*2 - 1 - g.noise)
		if g.rng.Float64() < 8.0/float64(g.sr) {
			g.pop = 0.6 + 0.4*g.rng.Float64()
		}
		pop := g.pop * (g.rng.Float64()*2 - 1)
		g.pop *= 0.995

		sample := 0.5*g.noise + 0.3*pop
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackleGenerator) Err() error {
	return nil
}

var melody = []float64{
	392.00, 440.00, 493.88, 587.33, 493.88, 440.00, 392.00, 0,
	329.63, 392.00, 440.00, 392.00, 329.63, 293.66, 329.63, 0,
}

var bassline = []float64{98.00, 82.41, 110.00, 73.42}

// MelodyGenerator plays each note for step seconds once, with a soft attack
// and release per note. A zero frequency is a rest.
type MelodyGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int
	pos   int
}

func NewMelodyGenerator(sr beep.SampleRate, notes []float64, step float64) *MelodyGenerator {
	return &MelodyGenerator{
		sr:    sr,
		notes: notes,
		step:  sr.N(time.Duration(step * float64(time.Second))),
	}
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.step * len(g.notes)
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		note := g.notes[g.pos/g.step]
		inNote := g.pos % g.step
		sample := 0.0
		if note > 0 {
			t := float64(inNote) / float64(g.sr)
			env := math.Min(float64(inNote)/float64(g.sr.N(10*time.Millisecond)), 1)
			env *= 1 - float64(inNote)/float64(g.step)
			sample = 0.2 * env * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(4*math.Pi*note*t))
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// ThumpGenerator is a decaying low sine with a little grit, for footsteps.
type ThumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	rng  *rand.Rand
}

func NewThumpGenerator(sr beep.SampleRate, freq float64, seed uint64) *ThumpGenerator {
	return &ThumpGenerator{sr: sr, freq: freq, rng: rand.New(rand.NewPCG(seed, seed+1))}
}

func (g *ThumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 40)
		sample := env * (0.5*math.Sin(2*math.Pi*g.freq*t) + 0.15*(g.rng.Float64()*2-1))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThumpGenerator) Err() error {
	return nil
}
