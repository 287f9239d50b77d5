package system

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// ProximitySystem recomputes which interactable each interactor overlaps and
// keeps InRange edges and Highlight annotations in step with that.
//
// Interactables are visited in ascending id order and the first overlap wins,
// so simultaneous overlaps resolve to the lowest id.
type ProximitySystem struct{}

func NewProximitySystem() *ProximitySystem {
	return &ProximitySystem{}
}

type proximityCandidate struct {
	entity       ecs.Entity
	interactable *component.Interactable
	box          cp.BB
}

// Box returns the AABB of a width x height rectangle centred on pos.
func Box(pos cp.Vector, width, height float64) cp.BB {
	return cp.NewBBForExtents(pos, width/2, height/2)
}

// Overlaps reports whether two centred rectangles touch or overlap.
func Overlaps(pos1 cp.Vector, w1, h1 float64, pos2 cp.Vector, w2, h2 float64) bool {
	return Box(pos1, w1, h1).Intersects(Box(pos2, w2, h2))
}

func (p *ProximitySystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	candidates := p.candidates(w)
	byID := make(map[string]ecs.Entity, len(candidates))
	for _, c := range candidates {
		byID[c.interactable.ID] = c.entity
	}
	targeted := make(map[ecs.Entity]bool, len(candidates))
	now := w.Clock().Elapsed()

	ecs.ForEach2(w, w.Interactors(), w.Transforms(), func(e ecs.Entity, interactor *component.Interactor, t *component.Transform) {
		box := Box(t.Position, interactor.Width, interactor.Height)

		var found *proximityCandidate
		for i := range candidates {
			if box.Intersects(candidates[i].box) {
				found = &candidates[i]
				break
			}
		}

		prev, had := w.InRange().Get(e)
		switch {
		case !had && found != nil:
			w.InRange().Set(e, &component.InRange{ID: found.interactable.ID})
			w.ProximityEvents().Push(component.ProximityEvent{Interactor: uint64(e), Kind: component.ProximityEnter, To: found.interactable.ID})
		case had && found != nil && prev.ID != found.interactable.ID:
			from := prev.ID
			w.InRange().Set(e, &component.InRange{ID: found.interactable.ID})
			if old, ok := byID[from]; ok && !targeted[old] {
				w.Highlights().Remove(old)
			}
			w.ProximityEvents().Push(component.ProximityEvent{Interactor: uint64(e), Kind: component.ProximityChange, From: from, To: found.interactable.ID})
		case had && found == nil:
			w.InRange().Remove(e)
			w.ProximityEvents().Push(component.ProximityEvent{Interactor: uint64(e), Kind: component.ProximityExit, From: prev.ID})
		}

		if found != nil {
			targeted[found.entity] = true
		}
	})

	// A highlight exists exactly while its interactable is some interactor's
	// target and has never been triggered.
	for _, c := range candidates {
		want := targeted[c.entity] && c.interactable.First
		has := w.Highlights().Has(c.entity)
		switch {
		case want && !has:
			w.Highlights().Set(c.entity, &component.Highlight{Offset: now})
		case !want && has:
			w.Highlights().Remove(c.entity)
		}
	}
}

func (p *ProximitySystem) candidates(w *ecs.World) []proximityCandidate {
	out := make([]proximityCandidate, 0, w.Interactables().Len())
	ecs.ForEach2(w, w.Interactables(), w.Transforms(), func(e ecs.Entity, ia *component.Interactable, t *component.Transform) {
		out = append(out, proximityCandidate{
			entity:       e,
			interactable: ia,
			box:          Box(t.Position, ia.Width, ia.Height),
		})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].interactable.ID < out[j].interactable.ID
	})
	return out
}
