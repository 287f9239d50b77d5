package assets

import (
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/thescene/ecs/component"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context. Ebiten allows only one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Library generates sheets and sounds on first use and caches them by name.
// It satisfies entity.Resources and component.SoundSpawner.
type Library struct {
	mu     sync.Mutex
	images map[string]*ebiten.Image
	pcm    map[string][]byte
	muted  bool
}

func NewLibrary() *Library {
	return &Library{
		images: make(map[string]*ebiten.Image),
		pcm:    make(map[string][]byte),
	}
}

// SetMuted silences one-shots and every loop this library handed out.
func (l *Library) SetMuted(muted bool) {
	l.mu.Lock()
	l.muted = muted
	l.mu.Unlock()
}

// Image returns the named sheet, or nil if no sheet has that name.
func (l *Library) Image(name string) *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[name]; ok {
		return img
	}
	img, err := DrawSheet(name)
	if err != nil {
		log.Printf("assets: %v", err)
	}
	l.images[name] = img
	return img
}

// LoopSink returns a paused, endlessly looping player for the named sound.
func (l *Library) LoopSink(name string, volume float64) (component.Sink, error) {
	pcm, err := l.sound(name)
	if err != nil {
		return nil, err
	}
	ctx := AudioContext()
	stream := audio.NewInfiniteLoop(newPCMReader(pcm), int64(len(pcm)))
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: loop %q: %w", name, err)
	}
	sink := l.wrapLoop(player)
	sink.SetVolume(volume)
	return sink, nil
}

// loopSink holds a loop at zero volume while its library is muted, whatever
// volume spatial audio asks for.
type loopSink struct {
	component.Sink
	lib *Library
}

func (l *Library) wrapLoop(sink component.Sink) *loopSink {
	return &loopSink{Sink: sink, lib: l}
}

func (s *loopSink) SetVolume(volume float64) {
	if s.lib.isMuted() {
		volume = 0
	}
	s.Sink.SetVolume(volume)
}

// PlayOneShot starts the named sound and forgets about it.
func (l *Library) PlayOneShot(name string, volume float64) {
	if l.isMuted() {
		return
	}
	pcm, err := l.sound(name)
	if err != nil {
		log.Printf("assets: one-shot: %v", err)
		return
	}
	player := AudioContext().NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

func (l *Library) isMuted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.muted
}

func (l *Library) sound(name string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pcm, ok := l.pcm[name]; ok {
		return pcm, nil
	}
	pcm, err := SynthPCM(name)
	if err != nil {
		return nil, err
	}
	l.pcm[name] = pcm
	return pcm, nil
}
