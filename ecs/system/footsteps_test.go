package system

import (
	"slices"
	"testing"

	"github.com/milk9111/thescene/ecs/component"
)

func TestFootstepsAlternate(t *testing.T) {
	s := newTestScene(t)
	addTestPlayer(t, s.w, 0, 0, testPlayer(true))
	s.tick(0.1)

	s.keys.press(component.KeyRight)
	s.tick(0.1)
	if len(s.spawner.played) != 1 || !slices.Contains([]string{"l1", "l2"}, s.spawner.played[0]) {
		t.Fatalf("first step = %v, want a left foot sample", s.spawner.played)
	}

	s.tick(0.4)
	s.tick(0.4)
	if len(s.spawner.played) != 3 {
		t.Fatalf("steps = %v, want 3", s.spawner.played)
	}
	if !slices.Contains([]string{"r1", "r2"}, s.spawner.played[1]) {
		t.Fatalf("second step %q should be a right foot sample", s.spawner.played[1])
	}
	if !slices.Contains([]string{"l1", "l2"}, s.spawner.played[2]) {
		t.Fatalf("third step %q should be a left foot sample", s.spawner.played[2])
	}
}

func TestFootstepsSilentWhenNotWalking(t *testing.T) {
	s := newTestScene(t)
	addTestPlayer(t, s.w, 0, 0, testPlayer(true))

	for i := 0; i < 10; i++ {
		s.tick(0.5)
	}
	s.keys.press(component.KeyAction)
	s.tick(0.5)

	if len(s.spawner.played) != 0 {
		t.Fatalf("steps while standing: %v", s.spawner.played)
	}
}
