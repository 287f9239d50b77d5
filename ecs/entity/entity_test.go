package entity

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/milk9111/thescene/prefabs"
)

type fakeSink struct {
	playing bool
	volume  float64
}

func (s *fakeSink) Play()                    { s.playing = true }
func (s *fakeSink) Pause()                   { s.playing = false }
func (s *fakeSink) IsPlaying() bool          { return s.playing }
func (s *fakeSink) SetVolume(volume float64) { s.volume = volume }

type fakeResources struct {
	sinks map[string]*fakeSink
}

func (r *fakeResources) Image(string) *ebiten.Image { return nil }

func (r *fakeResources) LoopSink(name string, volume float64) (component.Sink, error) {
	if r.sinks == nil {
		r.sinks = make(map[string]*fakeSink)
	}
	s := &fakeSink{volume: volume}
	r.sinks[name] = s
	return s, nil
}

type seenHints map[string]bool

func (h seenHints) Seen(id string) bool { return h[id] }

func stereoSpec() prefabs.FurnishingSpec {
	return prefabs.FurnishingSpec{
		Name:      "stereo",
		ID:        "stereo",
		Transform: prefabs.TransformSpec{X: 260, Scale: 7},
		Box:       prefabs.BoxSpec{Width: 20, Height: 16, Scaled: true},
		Off:       prefabs.ClipSpec{Sheet: "stereo", FrameW: 20, FrameH: 16, Columns: 6},
		Running:   prefabs.ClipSpec{Sheet: "stereo", FrameW: 20, FrameH: 16, Columns: 6, First: 1, Last: 5, FPS: 4},
		Audio:     &prefabs.LoopAudioSpec{Clip: "music", Volume: 0.9},
	}
}

func TestBuildFurnishing(t *testing.T) {
	w := ecs.NewWorld()
	res := &fakeResources{}

	e, err := BuildFurnishing(w, res, nil, stereoSpec())
	if err != nil {
		t.Fatalf("BuildFurnishing: %v", err)
	}

	ia, ok := w.Interactables().Get(e)
	if !ok {
		t.Fatal("expected interactable")
	}
	if ia.Width != 140 || ia.Height != 112 {
		t.Fatalf("box = %vx%v, want 140x112", ia.Width, ia.Height)
	}
	if !ia.First {
		t.Fatal("expected first interaction pending")
	}

	furn, _ := w.Furnishings().Get(e)
	if furn.State != component.FurnishingOff || furn.BaseScale != 7 {
		t.Fatalf("furnishing = %+v", furn)
	}
	anim, _ := w.Animations().Get(e)
	if anim.Active {
		t.Fatal("off furnishing should not animate")
	}
	if res.sinks["music"].playing {
		t.Fatal("off furnishing should be silent")
	}
}

func TestBuildFurnishingOptions(t *testing.T) {
	tests := []struct {
		name        string
		hints       HintChecker
		running     bool
		wantFirst   bool
		wantPlaying bool
	}{
		{name: "fresh", wantFirst: true},
		{name: "remembered", hints: seenHints{"stereo": true}},
		{name: "other remembered", hints: seenHints{"fireplace": true}, wantFirst: true},
		{name: "start running", running: true, wantFirst: true, wantPlaying: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			res := &fakeResources{}
			spec := stereoSpec()
			spec.StartRunning = tc.running

			e, err := BuildFurnishing(w, res, tc.hints, spec)
			if err != nil {
				t.Fatalf("BuildFurnishing: %v", err)
			}
			ia, _ := w.Interactables().Get(e)
			if ia.First != tc.wantFirst {
				t.Fatalf("First = %v, want %v", ia.First, tc.wantFirst)
			}
			if got := res.sinks["music"].playing; got != tc.wantPlaying {
				t.Fatalf("playing = %v, want %v", got, tc.wantPlaying)
			}
			if tc.running {
				anim, _ := w.Animations().Get(e)
				sprite, _ := w.Sprites().Get(e)
				if !anim.Active || sprite.Frame != 1 {
					t.Fatalf("running clip not bound: active=%v frame=%d", anim.Active, sprite.Frame)
				}
			}
		})
	}
}

func TestBuildFurnishingRejects(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildFurnishing(w, nil, nil, stereoSpec()); err != nil {
		t.Fatalf("first build: %v", err)
	}

	_, err := BuildFurnishing(w, nil, nil, stereoSpec())
	if !errors.Is(err, component.ErrDuplicateInteractable) {
		t.Fatalf("duplicate id: err = %v", err)
	}

	bad := stereoSpec()
	bad.ID = "other"
	bad.Running.Policy = "sideways"
	if _, err := BuildFurnishing(w, nil, nil, bad); err == nil {
		t.Fatal("expected unknown policy error")
	}

	noID := stereoSpec()
	noID.ID = ""
	if _, err := BuildFurnishing(w, nil, nil, noID); err == nil {
		t.Fatal("expected missing id error")
	}

	if got := w.Furnishings().Len(); got != 1 {
		t.Fatalf("furnishings = %d, want 1", got)
	}
}

func TestBuildPlayer(t *testing.T) {
	w := ecs.NewWorld()
	spec, err := prefabs.LoadPlayerSpec("player.yaml")
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}

	e, err := BuildPlayer(w, nil, spec)
	if err != nil {
		t.Fatalf("BuildPlayer: %v", err)
	}

	player, ok := w.Players().Get(e)
	if !ok {
		t.Fatal("expected player")
	}
	if player.Speed != 120 || player.Walk.First != 1 || player.Walk.Last != 9 || player.Walk.FPS != 10 {
		t.Fatalf("player = %+v walk = %+v", player, player.Walk)
	}
	if player.Act == nil || player.Act.Loop {
		t.Fatal("expected a one-shot act clip")
	}

	tr, _ := w.Transforms().Get(e)
	if tr.Position.X != -200 || tr.Position.Y != 50 || tr.Scale != 4 {
		t.Fatalf("transform = %+v", tr)
	}

	for name, has := range map[string]bool{
		"tag":        w.PlayerTags().Has(e),
		"input":      w.Inputs().Has(e),
		"machine":    w.PlayerStateMachines().Has(e),
		"interactor": w.Interactors().Has(e),
		"listener":   w.Listeners().Has(e),
		"footsteps":  w.Footsteps().Has(e),
		"animation":  w.Animations().Has(e),
	} {
		if !has {
			t.Errorf("missing %s", name)
		}
	}
}

func TestLoadScene(t *testing.T) {
	w := ecs.NewWorld()
	res := &fakeResources{}

	scene, err := LoadScene(w, res, nil, "scene.yaml")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Title != "the scene" {
		t.Fatalf("title = %q", scene.Title)
	}
	if len(scene.Furnishings) != 2 || len(scene.Backdrops) != 1 || !scene.Player.Valid() {
		t.Fatalf("scene = %+v", scene)
	}
	if pos, ok := scene.PlayerPosition(w); !ok || pos.Position.X != -200 {
		t.Fatalf("player position = %+v %v", pos, ok)
	}

	res.sinks["stereo_music"].Play()
	UnloadScene(w, scene)
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("entities after unload = %d", n)
	}
	if res.sinks["stereo_music"].playing {
		t.Fatal("unload should pause sinks")
	}
}

func TestLoadSceneMissing(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := LoadScene(w, nil, nil, "nope.yaml"); err == nil {
		t.Fatal("expected error")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("entities = %d", n)
	}
}

func TestSetEntityTransformAcrossReload(t *testing.T) {
	old := ecs.NewWorld()
	oldScene, err := LoadScene(old, &fakeResources{}, nil, "scene.yaml")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if err := SetEntityTransform(old, oldScene.Player, 75, 50); err != nil {
		t.Fatalf("SetEntityTransform: %v", err)
	}

	fresh := ecs.NewWorld()
	scene, err := LoadScene(fresh, &fakeResources{}, nil, "scene.yaml")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	pos, ok := oldScene.PlayerPosition(old)
	if !ok {
		t.Fatal("old player position missing")
	}
	if err := SetEntityTransform(fresh, scene.Player, pos.Position.X, pos.Position.Y); err != nil {
		t.Fatalf("carry position: %v", err)
	}
	if got, _ := scene.PlayerPosition(fresh); got.Position.X != 75 {
		t.Fatalf("player x = %v, want 75", got.Position.X)
	}

	UnloadScene(old, oldScene)
	if err := SetEntityTransform(old, oldScene.Player, 0, 0); err == nil {
		t.Fatal("expected an error for an unloaded player")
	}
}
