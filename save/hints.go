package save

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	hintsObject   = "hints"
	hintsProperty = "seen"
)

// Hints remembers which interactables have been used, so their first-use
// highlight stays hidden on later runs. With a nil manager it only remembers
// for the current run.
type Hints struct {
	mu      sync.Mutex
	manager *gdata.Manager
	seen    map[string]bool
}

type hintsFile struct {
	Seen []string `yaml:"seen"`
}

// Open creates the gdata store for appName and loads the remembered hints.
func Open(appName string) (*Hints, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return NewHints(manager)
}

func NewHints(manager *gdata.Manager) (*Hints, error) {
	h := &Hints{manager: manager, seen: make(map[string]bool)}
	if err := h.load(); err != nil {
		return h, err
	}
	return h, nil
}

func (h *Hints) load() error {
	if h.manager == nil || !h.manager.ObjectPropExists(hintsObject, hintsProperty) {
		return nil
	}
	data, err := h.manager.LoadObjectProp(hintsObject, hintsProperty)
	if err != nil {
		return fmt.Errorf("save: load hints: %w", err)
	}
	var file hintsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("save: unmarshal hints: %w", err)
	}
	for _, id := range file.Seen {
		h.seen[id] = true
	}
	return nil
}

func (h *Hints) Seen(id string) bool {
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seen[id]
}

// MarkSeen records id and persists the full set.
func (h *Hints) MarkSeen(id string) error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.seen[id] {
		return nil
	}
	h.seen[id] = true
	return h.persist()
}

// Reset forgets every hint.
func (h *Hints) Reset() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.seen)
	return h.persist()
}

func (h *Hints) persist() error {
	if h.manager == nil {
		return nil
	}
	file := hintsFile{Seen: make([]string, 0, len(h.seen))}
	for id := range h.seen {
		file.Seen = append(file.Seen, id)
	}
	sort.Strings(file.Seen)

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("save: marshal hints: %w", err)
	}
	if err := h.manager.SaveObjectProp(hintsObject, hintsProperty, data); err != nil {
		return fmt.Errorf("save: store hints: %w", err)
	}
	log.Printf("save: %d hints remembered", len(file.Seen))
	return nil
}
