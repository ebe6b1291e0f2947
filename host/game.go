package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/motion"
)

// Options are the application hooks a Game runs after the driver has ticked.
type Options struct {
	// Update runs once per frame after Driver.Tick. A non-nil error stops the
	// game loop.
	Update func() error

	// Draw renders the frame on top of the cleared background.
	Draw func(screen *ebiten.Image)

	// Script, if set, plays back host actions frame by frame.
	Script *ScriptRunner

	// Reload, if set, delivers configs to apply between frames (see
	// ConfigWatcher). Window title and log level are fixed at startup.
	Reload <-chan Config
}

// Game adapts a motion.Driver to ebiten.Game. Each Update advances the driver
// by TimeScale/TPS seconds, so animation time follows the fixed update rate
// rather than wall-clock time.
type Game struct {
	driver  *motion.Driver
	cfg     Config
	opts    Options
	overlay *Overlay
	script  *ScriptRunner
	paused  bool
	shots   []string
}

// NewGame creates a Game. cfg is completed with defaults.
func NewGame(d *motion.Driver, cfg Config, opts Options) *Game {
	if d == nil {
		panic("host: NewGame with nil driver")
	}
	cfg = cfg.withDefaults()
	g := &Game{driver: d, cfg: cfg, opts: opts, script: opts.Script}
	if cfg.ShowFPS {
		g.overlay = NewOverlay(d)
	}
	return g
}

// Driver returns the driven motion.Driver.
func (g *Game) Driver() *motion.Driver { return g.driver }

// Config returns the effective configuration.
func (g *Game) Config() Config { return g.cfg }

// Step returns the simulated seconds per update.
func (g *Game) Step() float64 {
	return g.cfg.TimeScale / float64(g.cfg.TPS)
}

// Paused reports whether driver ticks are suspended.
func (g *Game) Paused() bool { return g.paused }

// SetPaused suspends or resumes driver ticks. The application Update hook
// still runs while paused.
func (g *Game) SetPaused(paused bool) { g.paused = paused }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.opts.Reload != nil {
		select {
		case cfg := <-g.opts.Reload:
			g.applyConfig(cfg)
		default:
		}
	}
	if g.script != nil {
		if err := g.script.step(g); err != nil {
			return err
		}
	}
	if !g.paused {
		g.driver.Tick(g.Step())
	}
	if g.overlay != nil {
		g.overlay.Update(1 / float64(g.cfg.TPS))
	}
	if g.opts.Update != nil {
		return g.opts.Update()
	}
	return nil
}

// applyConfig adopts the live-tunable fields of cfg.
func (g *Game) applyConfig(cfg Config) {
	cfg = cfg.withDefaults()
	if cfg.TPS != g.cfg.TPS {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Width != g.cfg.Width || cfg.Height != g.cfg.Height {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	g.driver.SetDebugMode(cfg.Debug)
	switch {
	case cfg.ShowFPS && g.overlay == nil:
		g.overlay = NewOverlay(g.driver)
	case !cfg.ShowFPS:
		g.overlay = nil
	}

	cfg.Title = g.cfg.Title
	cfg.LogLevel = g.cfg.LogLevel
	g.cfg = cfg
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.BackgroundColor())
	if g.opts.Draw != nil {
		g.opts.Draw(screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs d until the window closes or opts.Update
// returns an error.
func Run(d *motion.Driver, cfg Config, opts Options) error {
	g := NewGame(d, cfg, opts)
	cfg = g.cfg
	d.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}
