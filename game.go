package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/thescene/assets"
	"github.com/milk9111/thescene/common"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/entity"
	"github.com/milk9111/thescene/ecs/system"
	"github.com/milk9111/thescene/prefabs"
	"github.com/milk9111/thescene/save"
)

const appName = "thescene"

var backgroundColor = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}

type Config struct {
	Scene    string
	Debug    bool
	Remember bool
	Mute     bool
}

type Game struct {
	cfg Config

	world  *ecs.World
	scene  *entity.Scene
	render *system.RenderSystem

	library *assets.Library
	hints   *save.Hints
	watcher *prefabs.Watcher

	hud     *ebitenui.UI
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	frames  int
}

func NewGame(cfg Config) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		render:  system.NewRenderSystem(),
		library: assets.NewLibrary(),
	}
	g.library.SetMuted(cfg.Mute)

	if cfg.Remember {
		hints, err := save.Open(appName)
		if err != nil {
			log.Printf("game: hints not remembered: %v", err)
		}
		g.hints = hints
	}

	world, scene, err := g.buildWorld()
	if err != nil {
		return nil, err
	}
	g.world = world
	g.scene = scene

	g.hud = NewHUD(scene.Help)
	g.pauseUI = NewPauseUI(g)

	if cfg.Debug {
		g.watchPrefabs()
	}

	return g, nil
}

// buildWorld loads the scene into a fresh world with every scene system.
func (g *Game) buildWorld() (*ecs.World, *entity.Scene, error) {
	w := ecs.NewWorld()

	opts := system.Options{
		Spawner: g.library,
		Debug:   g.cfg.Debug,
	}
	var hints entity.HintChecker
	if g.hints != nil {
		opts.Hints = g.hints
		hints = g.hints
	}
	system.AddSceneSystems(w, opts)

	scene, err := entity.LoadScene(w, g.library, hints, g.cfg.Scene)
	if err != nil {
		return nil, nil, fmt.Errorf("game: %w", err)
	}
	return w, scene, nil
}

func (g *Game) watchPrefabs() {
	dir := prefabs.DiskDir()
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		log.Printf("game: not watching %s: %v", dir, err)
		return
	}
	watcher, err := prefabs.NewWatcher(dir)
	if err != nil {
		log.Printf("game: watch %s: %v", dir, err)
		return
	}
	g.watcher = watcher
}

// reload rebuilds the scene from the prefabs on disk. The old scene keeps
// running if the new one fails to load. Only the player position carries over:
// furnishings restart off, and without -remember their hints show again.
func (g *Game) reload(changed string) {
	world, scene, err := g.buildWorld()
	if err != nil {
		log.Printf("game: reload after %s: %v", changed, err)
		return
	}

	// carry the player over so editing a prefab doesn't teleport them
	if pos, ok := g.scene.PlayerPosition(g.world); ok && scene.Player.Valid() {
		if err := entity.SetEntityTransform(world, scene.Player, pos.Position.X, pos.Position.Y); err != nil {
			log.Printf("game: reload: keep player position: %v", err)
		}
	}

	entity.UnloadScene(g.world, g.scene)
	g.world = world
	g.scene = scene
	g.hud = NewHUD(scene.Help)
	log.Printf("game: reloaded scene after %s changed", changed)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Title() string {
	if g.scene == nil || g.scene.Title == "" {
		return appName
	}
	return g.scene.Title
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()
	g.world.Tick(1 / float64(ebiten.TPS()))
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close silences the scene and stops watching prefabs.
func (g *Game) Close() {
	entity.UnloadScene(g.world, g.scene)
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// forgetHints shows every first-use highlight again, now and on later runs.
func (g *Game) forgetHints() {
	if err := g.hints.Reset(); err != nil {
		log.Printf("game: forget hints: %v", err)
	}
	for _, e := range g.scene.Furnishings {
		if ia, ok := g.world.Interactables().Get(e); ok {
			ia.First = true
		}
	}
}
