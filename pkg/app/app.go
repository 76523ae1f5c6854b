// Package app wraps a particle session in the ebiten game loop.
//
// It owns the host-side glue the simulation core stays free of:
// window visibility, pointer and touch input, the on-screen toggle
// button and the wall-clock feed into the session scheduler. The
// desktop binary uses it via main.go; the style preview tool under
// cmd/ drives the session directly instead.
package app

import (
	"bytes"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/game"
	"github.com/gonewx/glimmer/pkg/particle"
)

// Config defines the application startup configuration.
type Config struct {
	// Effect is the clamped effect configuration. Nil uses defaults.
	Effect *config.EffectConfig
	// Store persists the enable preference across runs. Nil keeps it
	// for the current run only.
	Store game.PrefStore
	// Width and Height are the initial window dimensions.
	Width, Height int
	// Overlay marks the borderless click-through mode; the backdrop
	// and the toggle button are skipped so only particles show.
	Overlay bool
	// ReducedMotion forces the effect off regardless of preference.
	ReducedMotion bool
	// Verbose enables log output.
	Verbose bool
}

// App implements ebiten.Game around one particle session.
type App struct {
	session *game.Session
	effect  *config.EffectConfig
	overlay bool
	verbose bool

	width, height int

	// Toggle button hit rectangle, recomputed on draw.
	btnX, btnY, btnW, btnH float64

	touchIDs []ebiten.TouchID
}

const (
	buttonFontSize = 14
	buttonPadX     = 12
	buttonPadY     = 7
	buttonMargin   = 16
)

var (
	buttonFace     *text.GoTextFaceSource
	buttonFaceErr  error
	buttonFaceInit bool
)

// NewApp creates the application and its session.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effect := cfg.Effect
	if effect == nil {
		effect = config.Default()
	}
	effect.Clamp()

	session := game.NewSession(game.Options{
		Config:        effect,
		Width:         float64(cfg.Width),
		Height:        float64(cfg.Height),
		Store:         cfg.Store,
		ReducedMotion: cfg.ReducedMotion,
	})
	log.Printf("[App] Session state: %v, mode=%s", session.State(), effect.Mode)

	return &App{
		session: session,
		effect:  effect,
		overlay: cfg.Overlay,
		verbose: cfg.Verbose,
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

// Update feeds one host tick into the session: visibility, pointer,
// clicks and the wall clock. Called by ebiten at the display rate.
func (a *App) Update() error {
	a.session.SetVisible(!ebiten.IsWindowMinimized())

	// Touch input wins over the cursor when present.
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	var px, py float64
	touch := len(a.touchIDs) > 0
	if touch {
		x, y := ebiten.TouchPosition(a.touchIDs[0])
		px, py = float64(x), float64(y)
	} else {
		x, y := ebiten.CursorPosition()
		px, py = float64(x), float64(y)
	}
	inside := px >= 0 && py >= 0 && px < float64(a.width) && py < float64(a.height)
	a.session.SetPointer(px, py, inside, touch)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.session.Toggle()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.press(px, py)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		a.press(float64(x), float64(y))
	}

	a.session.Step(time.Now())
	return nil
}

// press routes a click or tap: the toggle button swallows it, anything
// else becomes an explosion at the press point.
func (a *App) press(x, y float64) {
	if a.buttonVisible() && x >= a.btnX && x < a.btnX+a.btnW && y >= a.btnY && y < a.btnY+a.btnH {
		a.session.Toggle()
		return
	}
	a.session.Click(x, y)
}

func (a *App) buttonVisible() bool {
	return !a.overlay && a.effect.Button.Text != "" && a.session.State() != game.StateUninitialized
}

// Draw repaints the frame: backdrop (windowed mode only), particles,
// toggle button.
func (a *App) Draw(screen *ebiten.Image) {
	if !a.overlay {
		screen.Fill(color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff})
	}
	a.session.Draw(screen)
	if a.buttonVisible() {
		a.drawButton(screen)
	}
}

func (a *App) drawButton(screen *ebiten.Image) {
	src := buttonFaceSource()
	if src == nil {
		return
	}
	face := &text.GoTextFace{Source: src, Size: buttonFontSize}

	label := a.effect.Button.Text
	tw, th := text.Measure(label, face, 0)
	a.btnW = tw + 2*buttonPadX
	a.btnH = th + 2*buttonPadY

	switch a.effect.Button.Corner {
	case "top-left":
		a.btnX, a.btnY = buttonMargin, buttonMargin
	case "top-right":
		a.btnX, a.btnY = float64(a.width)-a.btnW-buttonMargin, buttonMargin
	case "bottom-left":
		a.btnX, a.btnY = buttonMargin, float64(a.height)-a.btnH-buttonMargin
	default: // bottom-right
		a.btnX, a.btnY = float64(a.width)-a.btnW-buttonMargin, float64(a.height)-a.btnH-buttonMargin
	}

	bg := particleColorWithAlpha(a.effect.Button.Background, 0xd9)
	fg := particleColorWithAlpha(a.effect.Button.Foreground, 0xff)
	if !a.session.Enabled() {
		// Dim the button while the effect is off.
		fg.A = 0xa0
	}

	vector.DrawFilledRect(screen, float32(a.btnX), float32(a.btnY), float32(a.btnW), float32(a.btnH), bg, true)
	op := &text.DrawOptions{}
	op.GeoM.Translate(a.btnX+buttonPadX, a.btnY+buttonPadY)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(screen, label, face, op)
}

// Layout reports the logical size and forwards dimension changes to
// the session for the debounced re-seed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.session.NotifyResize(float64(outsideWidth), float64(outsideHeight), time.Now())
	}
	return a.width, a.height
}

// Session exposes the underlying session, used on shutdown to close
// it cleanly.
func (a *App) Session() *game.Session { return a.session }

// IsVerbose reports whether verbose logging was requested.
func (a *App) IsVerbose() bool { return a.verbose }

func buttonFaceSource() *text.GoTextFaceSource {
	if !buttonFaceInit {
		buttonFaceInit = true
		buttonFace, buttonFaceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if buttonFaceErr != nil {
			log.Printf("[App] Warning: button font unavailable: %v", buttonFaceErr)
		}
	}
	return buttonFace
}

func particleColorWithAlpha(hex string, alpha uint8) color.RGBA {
	c := particle.ParseHex(hex)
	c.A = alpha
	return c
}
