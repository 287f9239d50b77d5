package system

import (
	"log"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// ProximityLogSystem logs in-range transitions when debugging.
type ProximityLogSystem struct {
	Debug bool
}

func NewProximityLogSystem(debug bool) *ProximityLogSystem {
	return &ProximityLogSystem{Debug: debug}
}

func (p *ProximityLogSystem) Update(w *ecs.World) {
	if p == nil || w == nil || !p.Debug {
		return
	}
	for _, evt := range w.ProximityEvents().Items() {
		switch evt.Kind {
		case component.ProximityEnter:
			log.Printf("proximity: interactor %d entered %q", evt.Interactor, evt.To)
		case component.ProximityChange:
			log.Printf("proximity: interactor %d moved from %q to %q", evt.Interactor, evt.From, evt.To)
		case component.ProximityExit:
			log.Printf("proximity: interactor %d left %q", evt.Interactor, evt.From)
		}
	}
}
