// Package game owns the per-instance simulation session: the
// lifecycle state machine, the frame-rate-throttled scheduler, resize
// debouncing and the persisted enable preference.
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/glimmer/pkg/config"
	"github.com/gonewx/glimmer/pkg/systems"
)

// State is the session lifecycle state.
type State int

const (
	// StateUninitialized means the session skipped initialization
	// entirely (small viewport with disableOnSmallViewport set).
	StateUninitialized State = iota
	StateInactive
	StateActive
)

// Scheduler and resize tuning.
const (
	// frameInterval is the fixed physics cadence. Redraws may happen
	// more often on high-refresh displays; physics never does.
	frameInterval = time.Second / 60

	// maxLag bounds catch-up: after a longer gap (tab hidden, debug
	// pause) the timing reference snaps forward instead of bursting.
	maxLag = 500 * time.Millisecond

	// resizeDebounce defers the expensive re-seed until resize
	// signals settle; resizeRapid is the spacing under which the
	// overlay dims to resizeFadeDim to avoid flashing.
	resizeDebounce = 250 * time.Millisecond
	resizeRapid    = 150 * time.Millisecond
	resizeFadeDim  = 0.3

	// fadeLerp is the per-tick interpolation factor toward the fade
	// target.
	fadeLerp = 0.12
)

// prefKey is the session-store entry remembering the user's on/off
// choice.
const prefKey = "effects_enabled"

// Options configures a session at construction.
type Options struct {
	Config *config.EffectConfig

	// Viewport dimensions at construction time.
	Width, Height float64

	// Store persists the user's enable choice. Nil falls back to an
	// in-memory store.
	Store PrefStore

	// Announce receives a human-readable status string on every
	// state toggle, intended for assistive-technology announcement.
	// Nil falls back to the log.
	Announce func(string)

	// ReducedMotion reflects the host's accessibility preference; it
	// overrides the enabled default to off.
	ReducedMotion bool

	// Rand seeds the simulation; nil uses a time-based source.
	Rand *rand.Rand
}

// Session is one mounted overlay instance: it owns the pool (via the
// world), the current style, the scheduler reference time and the
// resize/fade state. All methods must be called from the single
// event-loop goroutine; nothing here is safe for concurrent use.
type Session struct {
	cfg   *config.EffectConfig
	world *systems.World
	style systems.Style

	store    PrefStore
	announce func(string)

	state   State
	visible bool

	// Physics timing reference. Zero means "no reference yet"; the
	// next Step establishes it.
	last    time.Time
	updates uint64

	// Resize debounce + fade state.
	lastResize    time.Time
	resizePending bool
	fadeTarget    float64
}

// NewSession constructs the session and resolves the initial enabled
// state: the persisted preference wins over the configured default,
// and reduced motion overrides both to off. With the small-viewport
// disable flag set on a small viewport, initialization is skipped
// entirely.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	store := opts.Store
	if store == nil {
		store = NewMemoryStore()
	}
	announce := opts.Announce
	if announce == nil {
		announce = func(msg string) { log.Printf("[Session] %s", msg) }
	}

	s := &Session{
		cfg:        cfg,
		store:      store,
		announce:   announce,
		visible:    true,
		fadeTarget: 1,
	}

	if cfg.DisableOnSmallViewport && opts.Width < config.SmallViewportWidth {
		s.state = StateUninitialized
		return s
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.world = systems.NewWorld(cfg, opts.Width, opts.Height, rng)
	s.style = systems.New(s.world)
	s.state = StateInactive

	enabled := cfg.EnabledByDefault
	if v, ok := store.Get(prefKey); ok {
		enabled = v == "true"
	}
	if opts.ReducedMotion {
		enabled = false
	}
	if enabled {
		s.activate()
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Enabled reports whether the session is active.
func (s *Session) Enabled() bool { return s.state == StateActive }

// Updates returns the number of physics updates performed, for the
// preview HUD and frame-pacing diagnostics.
func (s *Session) Updates() uint64 { return s.updates }

// World exposes the shared world for the interaction layer.
func (s *Session) World() *systems.World { return s.world }

// StyleName returns the active strategy's registry name.
func (s *Session) StyleName() string {
	if s.style == nil {
		return ""
	}
	return s.style.Name()
}

// Toggle flips the enabled state, persists the user's choice and
// announces the result.
func (s *Session) Toggle() {
	s.SetEnabled(s.state != StateActive)
}

// SetEnabled drives the Inactive ⇄ Active transition, persisting the
// choice. Redundant calls are no-ops (deactivation in particular is
// idempotent).
func (s *Session) SetEnabled(enabled bool) {
	if s.state == StateUninitialized {
		return
	}
	if enabled {
		if s.state != StateActive {
			s.activate()
			s.store.Set(prefKey, "true")
			s.announce("Decorative particle effects enabled")
		}
		return
	}
	if s.state == StateActive {
		s.deactivate()
	}
	s.store.Set(prefKey, "false")
	s.announce("Decorative particle effects disabled")
}

// activate enters Active and re-seeds the field. Field styles get the
// configured particle count; trail styles ignore it and just reset.
func (s *Session) activate() {
	s.state = StateActive
	s.style.Seed(s.cfg.MaxParticles)
}

// deactivate releases every entity, cancels pending resize work and
// drops the timing reference so reactivation starts fresh. Calling it
// twice leaves the same state as calling it once.
func (s *Session) deactivate() {
	s.state = StateInactive
	s.world.Pool.ReleaseAll()
	s.resizePending = false
	s.last = time.Time{}
	s.world.Opacity = 1
	s.fadeTarget = 1
}

// Close tears the session down: deactivate without touching the
// persisted preference. After Close the session performs no further
// work even if stray callbacks still fire.
func (s *Session) Close() {
	if s.state == StateActive {
		s.deactivate()
	}
}

// SetVisible drives the Active/Running ⇄ Active/Suspended-by-
// visibility sub-state. Suspension freezes the simulation without
// releasing entities; resumption drops the timing reference so no
// catch-up burst runs.
func (s *Session) SetVisible(visible bool) {
	if visible == s.visible {
		return
	}
	s.visible = visible
	if visible {
		s.last = time.Time{}
	}
}

// SetPointer records the last known pointer/touch position and the
// in-viewport flag. Called from input handling; it only writes
// pointer state, never advances the simulation.
func (s *Session) SetPointer(x, y float64, inViewport, touch bool) {
	if s.world == nil {
		return
	}
	s.world.PointerX = x
	s.world.PointerY = y
	s.world.PointerIn = inViewport
	s.world.Touch = touch
}

// Click spawns the style's explosion at (x, y) if click explosions
// are enabled.
func (s *Session) Click(x, y float64) {
	if s.state != StateActive || !s.cfg.ClickExplosions {
		return
	}
	s.style.Explode(x, y)
}

// SetStyle switches the field style at runtime: full re-seed, same
// pool. Unknown names fall back to glitter.
func (s *Session) SetStyle(name string) {
	if s.world == nil {
		return
	}
	s.cfg.FieldStyle = name
	s.world.Pool.ReleaseAll()
	s.style = systems.New(s.world)
	if s.state == StateActive {
		s.style.Seed(s.cfg.MaxParticles)
	}
}

// NotifyResize records new viewport dimensions. The re-seed is
// debounced; rapid resize bursts additionally dim the overlay to
// avoid flashing, restoring full opacity once the debounce settles.
func (s *Session) NotifyResize(width, height float64, now time.Time) {
	if s.world == nil {
		return
	}
	if width == s.world.Width && height == s.world.Height {
		return
	}
	if !s.lastResize.IsZero() && now.Sub(s.lastResize) < resizeRapid {
		s.fadeTarget = resizeFadeDim
	}
	s.lastResize = now
	s.resizePending = true

	// The surface already has the new size; wrap and spawn bounds
	// follow immediately, only the re-seed waits.
	s.world.Width = width
	s.world.Height = height
}

// Step advances the simulation to now. Physics runs on the fixed
// 60 Hz cadence, advancing the reference by whole frame intervals to
// absorb jitter; calls between intervals are redraw-only and do not
// advance physics. Returns the number of physics updates performed.
func (s *Session) Step(now time.Time) int {
	if s.state != StateActive || !s.visible {
		return 0
	}

	if s.resizePending && now.Sub(s.lastResize) >= resizeDebounce {
		s.resizePending = false
		s.fadeTarget = 1
		s.style.Seed(s.cfg.MaxParticles)
	}

	if s.last.IsZero() {
		s.last = now
		s.tick()
		return 1
	}
	if now.Sub(s.last) > maxLag {
		s.last = now.Add(-frameInterval)
	}

	n := 0
	for now.Sub(s.last) >= frameInterval {
		s.last = s.last.Add(frameInterval)
		s.tick()
		n++
	}
	return n
}

// tick runs one physics update: fade interpolation then the style
// update.
func (s *Session) tick() {
	s.world.Opacity += (s.fadeTarget - s.world.Opacity) * fadeLerp
	s.style.Update()
	s.updates++
}

// Draw repaints the full surface. Inactive and uninitialized sessions
// draw nothing, leaving the cleared (transparent) surface.
func (s *Session) Draw(dst *ebiten.Image) {
	if s.state != StateActive {
		return
	}
	s.style.Draw(dst)
}
