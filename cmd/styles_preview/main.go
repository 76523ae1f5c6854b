// Package main provides an interactive viewer for cycling through the
// particle styles, used for tuning and debugging.
//
// Usage:
//
//	go run cmd/styles_preview/main.go [flags]
//
// Flags:
//
//	--style <name>    Start with a specific field style
//	--trail           Start in trail mode instead of field mode
//	--count <n>       Particle budget (default 150)
//	--verbose         Enable verbose logging (default off)
//
// Controls:
//
//	Mouse Move        - Attract particles (field) or emit the trail
//	Mouse Click       - Explosion at cursor position
//	Left/Right Arrow  - Switch to previous/next field style
//	1-6               - Jump to field style by index
//	M                 - Switch between trail and field mode
//	T                 - Toggle effects on/off
//	R                 - Re-seed the current style
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/game"
	"github.com/gonewx/glimmer/pkg/systems"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	styleFlag   = flag.String("style", "", "Start with a specific field style")
	trailFlag   = flag.Bool("trail", false, "Start in trail mode")
	countFlag   = flag.Int("count", 150, "Particle budget")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// PreviewGame implements ebiten.Game around one session and the style
// cycling controls.
type PreviewGame struct {
	session *game.Session
	effect  *config.EffectConfig

	styleNames []string
	styleIndex int
}

// NewPreviewGame creates the viewer with an in-memory preference
// store, so preview toggles never touch the real user preference.
func NewPreviewGame() *PreviewGame {
	effect := config.Default()
	effect.MaxParticles = *countFlag
	if *trailFlag {
		effect.Mode = config.ModeTrail
	}
	if *styleFlag != "" {
		effect.FieldStyle = *styleFlag
	}
	effect.Clamp()

	names := systems.FieldStyleNames()
	index := 0
	for i, name := range names {
		if name == effect.FieldStyle {
			index = i
			break
		}
	}

	session := game.NewSession(game.Options{
		Config: effect,
		Width:  screenWidth,
		Height: screenHeight,
		Store:  game.NewMemoryStore(),
	})
	log.Printf("Style preview initialized: mode=%s style=%s budget=%d",
		effect.Mode, names[index], effect.MaxParticles)

	return &PreviewGame{
		session:    session,
		effect:     effect,
		styleNames: names,
		styleIndex: index,
	}
}

// Update handles the viewer controls and advances the simulation.
func (g *PreviewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	px, py := float64(x), float64(y)
	inside := px >= 0 && py >= 0 && px < screenWidth && py < screenHeight
	g.session.SetPointer(px, py, inside, false)

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.switchStyle(g.styleIndex - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.switchStyle(g.styleIndex + 1)
	}
	for i := 0; i < len(g.styleNames); i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.Key1) + i)) {
			g.switchStyle(i)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.switchMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.session.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.switchStyle(g.styleIndex) // same style, full re-seed
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.Click(px, py)
	}

	g.session.Step(time.Now())
	return nil
}

// switchStyle wraps the index and re-seeds the session with the new
// field style.
func (g *PreviewGame) switchStyle(index int) {
	n := len(g.styleNames)
	g.styleIndex = ((index % n) + n) % n
	g.effect.Mode = config.ModeField
	g.session.SetStyle(g.styleNames[g.styleIndex])
	log.Printf("Switched to style: %s", g.styleNames[g.styleIndex])
}

// switchMode flips between trail and field mode. The particle cap
// differs per mode, so the config is re-clamped.
func (g *PreviewGame) switchMode() {
	if g.effect.Mode == config.ModeField {
		g.effect.Mode = config.ModeTrail
	} else {
		g.effect.Mode = config.ModeField
	}
	g.effect.MaxParticles = *countFlag
	g.effect.Clamp()
	g.session.SetStyle(g.effect.FieldStyle)
	log.Printf("Switched to mode: %s", g.effect.Mode)
}

// Draw renders the particles and the debug HUD.
func (g *PreviewGame) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)

	title := fmt.Sprintf("Style Preview - %s (%s mode)", g.session.StyleName(), g.effect.Mode)
	ebitenutil.DebugPrintAt(screen, title, 10, 10)

	info := fmt.Sprintf("Active: %d/%d  Updates: %d  Enabled: %v",
		g.session.World().Pool.ActiveCount(),
		g.session.World().Pool.Allocated(),
		g.session.Updates(),
		g.session.Enabled())
	ebitenutil.DebugPrintAt(screen, info, 10, 30)

	controls := []string{
		"Styles:  <-/-> = Prev/Next  1-6 = Jump  M = Trail/Field  R = Re-seed",
		"Actions: Click = Explode  T = Toggle  Q/Esc = Quit",
	}
	y := screenHeight - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}
}

// Layout returns the viewer's logical screen size.
func (g *PreviewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	log.Println("=== Glimmer Style Preview ===")

	g := NewPreviewGame()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Glimmer Style Preview")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
