package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thescene/common"
	"github.com/milk9111/thescene/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	remember := flag.Bool("remember", false, "remember used furnishings between runs and hide their hints")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides; watched for changes in debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	prefabs.SetDiskDir(*prefabDir)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)

	game, err := NewGame(Config{
		Scene:    "scene.yaml",
		Debug:    *debug,
		Remember: *remember,
		Mute:     *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
