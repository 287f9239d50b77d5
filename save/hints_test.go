package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("thescene_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return manager
}

func TestHintsInMemory(t *testing.T) {
	h, err := NewHints(nil)
	if err != nil {
		t.Fatalf("NewHints: %v", err)
	}
	if h.Seen("stereo") {
		t.Fatal("nothing should be seen yet")
	}
	if err := h.MarkSeen("stereo"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}
	if !h.Seen("stereo") || h.Seen("fireplace") {
		t.Fatal("unexpected seen set")
	}
	if err := h.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if h.Seen("stereo") {
		t.Fatal("reset should forget")
	}
}

func TestHintsNilSafe(t *testing.T) {
	var h *Hints
	if h.Seen("x") {
		t.Fatal("nil hints see nothing")
	}
	if err := h.MarkSeen("x"); err != nil {
		t.Fatalf("MarkSeen on nil: %v", err)
	}
}

func TestHintsPersist(t *testing.T) {
	manager := openTestManager(t)

	h, err := NewHints(manager)
	if err != nil {
		t.Fatalf("NewHints: %v", err)
	}
	for _, id := range []string{"stereo", "fireplace", "stereo"} {
		if err := h.MarkSeen(id); err != nil {
			t.Fatalf("MarkSeen %s: %v", id, err)
		}
	}

	again, err := NewHints(manager)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, id := range []string{"stereo", "fireplace"} {
		if !again.Seen(id) {
			t.Errorf("%s not remembered", id)
		}
	}
}
