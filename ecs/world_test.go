package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/thescene/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
		})
	}
}

func TestWorldReusesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	if err := Add(w, e1, w.Transforms(), &component.Transform{Scale: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, e1)

	e2 := CreateEntity(w)
	if e2.id() != e1.id() {
		t.Fatalf("expected slot %d to be reused, got %d", e1.id(), e2.id())
	}
	if e2 == e1 {
		t.Fatalf("expected a new generation for the reused slot")
	}
	if w.Transforms().Has(e2) {
		t.Fatalf("reused entity must not inherit components")
	}
	if w.Transforms().Has(e1) {
		t.Fatalf("stale handle must not see components")
	}
}

func TestAddRejectsDeadEntity(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	err := Add(w, e, w.Sprites(), &component.Sprite{})
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	live := CreateEntity(w)
	if err := Add[component.Sprite](w, live, w.Sprites(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestSparseSetRemoveKeepsOthers(t *testing.T) {
	w := NewWorld()
	s := &SparseSet[int]{}
	ents := []Entity{CreateEntity(w), CreateEntity(w), CreateEntity(w)}
	for i, e := range ents {
		v := i
		s.Set(e, &v)
	}

	if !s.Remove(ents[0]) {
		t.Fatalf("expected remove to succeed")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 values, got %d", s.Len())
	}
	for i, e := range ents[1:] {
		v, ok := s.Get(e)
		if !ok || *v != i+1 {
			t.Fatalf("entity %s: expected %d, got %v ok=%v", e, i+1, v, ok)
		}
	}
	if s.Remove(ents[0]) {
		t.Fatalf("second remove should report false")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	for _, e := range []Entity{e1, e2, e3} {
		_ = Add(w, e, w.Transforms(), &component.Transform{})
	}
	_ = Add(w, e1, w.Interactors(), &component.Interactor{Width: 1, Height: 1})
	_ = Add(w, e3, w.Interactors(), &component.Interactor{Width: 1, Height: 1})
	DestroyEntity(w, e3)

	var got []Entity
	ForEach2(w, w.Interactors(), w.Transforms(), func(e Entity, _ *component.Interactor, _ *component.Transform) {
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e1 {
		t.Fatalf("expected only e1, got %v", got)
	}
}

func TestForEachToleratesRemoval(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, w.Highlights(), &component.Highlight{Offset: float64(i)})
	}

	visited := 0
	ForEach(w, w.Highlights(), func(e Entity, _ *component.Highlight) {
		visited++
		w.Highlights().Remove(e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if w.Highlights().Len() != 0 {
		t.Fatalf("expected all highlights removed, got %d", w.Highlights().Len())
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	w.Interactions().Push(component.InteractionEvent{ID: r.name})
}

func TestWorldUpdateRunsInOrderAndFlushesQueues(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(recordingSystem{name: "a", log: &log})
	w.AddSystem(recordingSystem{name: "b", log: &log})
	w.AddSystem(nil)

	var seen int
	w.AddSystem(systemFunc(func(w *World) { seen = w.Interactions().Len() }))

	w.Tick(0.5)

	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Fatalf("unexpected order %v", log)
	}
	if seen != 2 {
		t.Fatalf("expected later systems to see 2 events, got %d", seen)
	}
	if w.Interactions().Len() != 0 {
		t.Fatalf("expected queue flushed after update")
	}
	if w.Clock().Elapsed() != 0.5 || w.Clock().Delta() != 0.5 {
		t.Fatalf("unexpected clock %v/%v", w.Clock().Elapsed(), w.Clock().Delta())
	}
}

func TestClockClampsNegativeDelta(t *testing.T) {
	var c Clock
	c.Advance(1)
	c.Advance(-3)
	if c.Delta() != 0 || c.Elapsed() != 1 {
		t.Fatalf("expected delta 0 elapsed 1, got %v %v", c.Delta(), c.Elapsed())
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
