package system

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

type systemFunc func(w *ecs.World)

func (f systemFunc) Update(w *ecs.World) { f(w) }

type fakeKeys struct {
	pressed  map[component.Key]bool
	released map[component.Key]bool
	held     map[component.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		pressed:  make(map[component.Key]bool),
		released: make(map[component.Key]bool),
		held:     make(map[component.Key]bool),
	}
}

func (k *fakeKeys) IsKeyJustPressed(key component.Key) bool  { return k.pressed[key] }
func (k *fakeKeys) IsKeyJustReleased(key component.Key) bool { return k.released[key] }
func (k *fakeKeys) IsKeyPressed(key component.Key) bool      { return k.held[key] }

func (k *fakeKeys) press(key component.Key) {
	k.pressed[key] = true
	k.held[key] = true
}

func (k *fakeKeys) release(key component.Key) {
	k.released[key] = true
	k.held[key] = false
}

func (k *fakeKeys) endTick() {
	clear(k.pressed)
	clear(k.released)
}

type fakeSink struct {
	playing bool
	volume  float64
	plays   int
	pauses  int
}

func (s *fakeSink) Play() {
	s.playing = true
	s.plays++
}

func (s *fakeSink) Pause() {
	s.playing = false
	s.pauses++
}

func (s *fakeSink) IsPlaying() bool          { return s.playing }
func (s *fakeSink) SetVolume(volume float64) { s.volume = volume }

type fakeSpawner struct {
	played []string
}

func (s *fakeSpawner) PlayOneShot(name string, _ float64) {
	s.played = append(s.played, name)
}

type fakeHints struct {
	seen []string
}

func (h *fakeHints) MarkSeen(id string) error {
	h.seen = append(h.seen, id)
	return nil
}

// testScene is a world running every scene system with scripted keys.
type testScene struct {
	w       *ecs.World
	keys    *fakeKeys
	spawner *fakeSpawner
	hints   *fakeHints
	events  []component.InteractionEvent
}

func newTestScene(t *testing.T) *testScene {
	t.Helper()
	s := &testScene{
		w:       ecs.NewWorld(),
		keys:    newFakeKeys(),
		spawner: &fakeSpawner{},
		hints:   &fakeHints{},
	}
	AddSceneSystems(s.w, Options{
		Keys:    s.keys,
		Spawner: s.spawner,
		Hints:   s.hints,
		Rand:    rand.New(rand.NewPCG(1, 2)),
	})
	s.w.AddSystem(systemFunc(func(w *ecs.World) {
		s.events = append(s.events, w.Interactions().Items()...)
	}))
	return s
}

func (s *testScene) tick(dt float64) {
	s.w.Tick(dt)
	s.keys.endTick()
}

func testPlayer(withAct bool) *component.Player {
	p := &component.Player{
		Speed: 120,
		Stand: &component.Clip{First: 0, Last: 0},
		Walk:  &component.Clip{First: 1, Last: 9, FPS: 10, Loop: true},
	}
	if withAct {
		p.Act = &component.Clip{First: 0, Last: 5, FPS: 10}
	}
	return p
}

func addTestPlayer(t *testing.T, w *ecs.World, x, y float64, player *component.Player) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	anim := player.Stand.Animation()
	steps := component.NewFootsteps(0.4, 0.1, 0.5, []string{"l1", "l2"}, []string{"r1", "r2"})
	mustAdd(t, ecs.Add(w, e, w.Players(), player))
	mustAdd(t, ecs.Add(w, e, w.PlayerTags(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, e, w.Inputs(), &component.Input{}))
	mustAdd(t, ecs.Add(w, e, w.PlayerStateMachines(), &component.PlayerStateMachine{}))
	mustAdd(t, ecs.Add(w, e, w.Transforms(), &component.Transform{Position: cp.Vector{X: x, Y: y}, Scale: 1}))
	mustAdd(t, ecs.Add(w, e, w.Sprites(), &component.Sprite{Tint: 1}))
	mustAdd(t, ecs.Add(w, e, w.Animations(), &anim))
	mustAdd(t, ecs.Add(w, e, w.Interactors(), &component.Interactor{Width: 10, Height: 10}))
	mustAdd(t, ecs.Add(w, e, w.Listeners(), &component.Listener{}))
	mustAdd(t, ecs.Add(w, e, w.Footsteps(), &steps))
	return e
}

func addTestFurnishing(t *testing.T, w *ecs.World, id string, x, y float64, sink component.Sink) ecs.Entity {
	t.Helper()
	off := &component.Clip{First: 0, Last: 0}
	running := &component.Clip{First: 1, Last: 5, FPS: 4, Loop: true, Policy: component.FrameRandom}
	anim := off.Animation()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, w.Furnishings(), &component.Furnishing{ID: id, Off: off, Running: running, BaseScale: 7}))
	mustAdd(t, ecs.Add(w, e, w.Transforms(), &component.Transform{Position: cp.Vector{X: x, Y: y}, Scale: 7}))
	mustAdd(t, ecs.Add(w, e, w.Sprites(), &component.Sprite{Tint: 1}))
	mustAdd(t, ecs.Add(w, e, w.Animations(), &anim))
	mustAdd(t, ecs.Add(w, e, w.Interactables(), &component.Interactable{ID: id, Width: 10, Height: 10, First: true}))
	if sink != nil {
		mustAdd(t, ecs.Add(w, e, w.LoopAudio(), &component.LoopAudio{Sink: sink, Volume: 0.9}))
	}
	return e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func behaviorOf(w *ecs.World, e ecs.Entity) component.Behavior {
	sm, _ := w.PlayerStateMachines().Get(e)
	return sm.Behavior()
}

func positionOf(w *ecs.World, e ecs.Entity) cp.Vector {
	t, _ := w.Transforms().Get(e)
	return t.Position
}

func setPosition(w *ecs.World, e ecs.Entity, x, y float64) {
	t, _ := w.Transforms().Get(e)
	t.Position = cp.Vector{X: x, Y: y}
}
