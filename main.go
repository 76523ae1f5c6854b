// Glimmer renders a decorative particle overlay: a cursor trail or an
// ambient field of drifting sparkles, confetti, hearts, snow,
// fireworks or autumn leaves.
//
// Usage:
//
//	glimmer [flags]
//
// Flags:
//
//	--config <path>    YAML effect configuration (defaults apply when omitted)
//	--mode <name>      Override the animation mode ("trail" or "field")
//	--style <name>     Override the style for the selected mode
//	--overlay          Borderless click-through overlay covering the screen
//	--reduced-motion   Start with effects disabled
//	--verbose          Enable verbose logging
//
// Controls:
//
//	Click/Tap   - Explosion at the press point (field mode)
//	T           - Toggle effects on/off
//	Escape      - Quit
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/glimmer/pkg/app"
	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/game"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML effect configuration file")
	modeFlag    = flag.String("mode", "", `Animation mode override ("trail" or "field")`)
	styleFlag   = flag.String("style", "", "Style override for the selected mode")
	overlayFlag = flag.Bool("overlay", false, "Run as a borderless click-through screen overlay")
	reducedFlag = flag.Bool("reduced-motion", false, "Start with effects disabled")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
)

func main() {
	flag.Parse()

	effect := loadEffectConfig()

	width, height := defaultWindowWidth, defaultWindowHeight
	if *overlayFlag {
		width, height = ebiten.Monitor().Size()
	}

	a, err := app.NewApp(app.Config{
		Effect:        effect,
		Store:         openPrefStore(),
		Width:         width,
		Height:        height,
		Overlay:       *overlayFlag,
		ReducedMotion: *reducedFlag,
		Verbose:       *verboseFlag,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer a.Session().Close()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Glimmer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	opts := &ebiten.RunGameOptions{}
	if *overlayFlag {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(true)
		opts.ScreenTransparent = true
	}

	if err := ebiten.RunGameWithOptions(a, opts); err != nil {
		log.Fatal(err)
	}
}

// loadEffectConfig builds the effect configuration from the config
// file plus the command-line overrides.
func loadEffectConfig() *config.EffectConfig {
	effect := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			log.Fatalf("[Config] %v", err)
		}
		effect = loaded
	}

	if *modeFlag != "" {
		effect.Mode = *modeFlag
	}
	if *styleFlag != "" {
		if effect.Mode == config.ModeTrail {
			effect.TrailStyle = *styleFlag
		} else {
			effect.FieldStyle = *styleFlag
		}
	}
	effect.Clamp()
	return effect
}

// openPrefStore opens the platform data directory for the enable
// preference. Failure degrades to an in-memory store so the effect
// still runs, the choice just does not survive the process.
func openPrefStore() game.PrefStore {
	m, err := gdata.Open(gdata.Config{AppName: "glimmer"})
	if err != nil {
		log.Printf("[Config] Warning: preference storage unavailable: %v", err)
		return game.NewMemoryStore()
	}
	return game.NewGdataStore(m)
}
