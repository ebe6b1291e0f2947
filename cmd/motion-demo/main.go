// Motion-demo shows the animation engine on screen. A box fades and slides in,
// waits, then fades out, on a loop. Below it five tiles each showcase one
// built-in leaf: position, scale, rotation, alpha and color. Click anywhere to
// send a marker to the pointer; its tween is built lazily at play time so it
// always starts from wherever the marker currently is.
package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/host"
)

const (
	screenW  = 640
	screenH  = 480
	tileSize = 32
)

type demo struct {
	driver *motion.Driver
	root   *motion.Node

	box    *motion.Node
	marker *motion.Node
	tiles  []*motion.Node

	easing motion.EasingFunc
	chase  *motion.Delegate
	row    *motion.Parallel
}

type options struct {
	configPath string
	scriptPath string
	easing     string
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:          "motion-demo",
		Short:        "Show the motion engine on screen",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.Flags().StringVar(&opts.scriptPath, "script", "", "path to a YAML playback script")
	root.Flags().StringVar(&opts.easing, "easing", "inOutCubic", "easing curve for the intro slide")
	root.Flags().BoolVar(&opts.watch, "watch", false, "reload the config file when it changes")

	root.AddCommand(&cobra.Command{
		Use:   "easings",
		Short: "List the easing curve names accepted by --easing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range motion.EasingNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})
	return root
}

func run(opts options) error {
	cfg := host.Config{Title: "Motion Demo", Width: screenW, Height: screenH, ShowFPS: true}
	if opts.configPath != "" {
		var err error
		if cfg, err = host.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	logger := cfg.NewLogger(os.Stderr)

	fn, ok := motion.EasingByName(opts.easing)
	if !ok {
		return fmt.Errorf("unknown easing %q (see motion-demo easings)", opts.easing)
	}

	hostOpts := host.Options{}
	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return err
		}
		if hostOpts.Script, err = host.LoadScript(data); err != nil {
			return err
		}
	}
	if opts.watch {
		if opts.configPath == "" {
			return errors.New("--watch needs --config")
		}
		w, err := host.WatchConfig(opts.configPath, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		hostOpts.Reload = w.Updates()
	}

	d := &demo{driver: motion.NewDriver(logger), root: motion.NewNode("root", 0, 0), easing: fn}
	d.build()
	d.playIntro()
	d.playRow()

	hostOpts.Update = d.update
	hostOpts.Draw = func(screen *ebiten.Image) { host.DrawTree(screen, d.root) }
	return host.Run(d.driver, cfg, hostOpts)
}

func (d *demo) build() {
	d.box = motion.NewNode("box", 48, 48)
	d.box.Color = colorful.Color{R: 0.4, G: 0.8, B: 1}
	d.root.AddChild(d.box)

	d.marker = motion.NewNode("marker", 12, 12)
	d.marker.X, d.marker.Y = screenW/2, screenH/2
	d.marker.Color = colorful.Color{R: 1, G: 0.4, B: 0.7}
	d.root.AddChild(d.marker)

	spacing := 110.0
	startX := screenW/2 - 2*spacing
	for i, name := range []string{"position", "scale", "rotation", "alpha", "color"} {
		tile := motion.NewNode(name, tileSize, tileSize)
		tile.X = startX + float64(i)*spacing
		tile.Y = screenH * 0.7
		d.root.AddChild(tile)
		d.tiles = append(d.tiles, tile)
	}

	d.chase = motion.NewDelegate(d.driver, func() (motion.Animation, error) {
		if d.marker.IsDisposed() {
			return nil, motion.ErrTargetGone
		}
		x, y := ebiten.CursorPosition()
		return motion.MoveTo(d.driver, d.marker, float64(x), float64(y), 0.6, motion.OutBack), nil
	})
}

// playIntro runs fade+slide in, a pause, then fade out, forever.
func (d *demo) playIntro() {
	d.box.Alpha = 0
	d.box.X, d.box.Y = 80, screenH*0.3

	seq := motion.NewSequence(
		motion.NewParallel(
			motion.FadeTo(d.driver, d.box, 1, 1, motion.OutQuad),
			motion.MoveTo(d.driver, d.box, screenW-80, screenH*0.3, 1, d.easing),
		),
		motion.Delay(d.driver, 0.5),
		motion.FadeTo(d.driver, d.box, 0, 0.5, motion.Linear),
		motion.MoveTo(d.driver, d.box, 80, screenH*0.3, 0, nil),
	)
	seq.SetLooping(true)
	seq.Play(nil, nil)
}

// playRow starts one tween per tile and restarts them with fresh targets
// once all have finished.
func (d *demo) playRow() {
	d.resetRow()
	pos, scale, rot, alpha, tint := d.tiles[0], d.tiles[1], d.tiles[2], d.tiles[3], d.tiles[4]

	targetY := pos.Y + (rand.Float64()-0.5)*120
	d.row = motion.NewParallel(
		motion.MoveTo(d.driver, pos, pos.X, targetY, 1.5, motion.FromTweenFunc(ease.OutBounce)),
		motion.ScaleTo(d.driver, scale, 1.75, 1.75, 1.2, motion.OutElastic),
		motion.RotateTo(d.driver, rot, math.Pi*2, 2.0, motion.InOutCubic),
		motion.FadeTo(d.driver, alpha, 0.1, 1.5, motion.InOutSine),
		motion.TintTo(d.driver, tint, randomBrightColor(), 1.5, motion.InOutQuad),
	)
	d.row.Play(d.playRow, nil)
}

func (d *demo) resetRow() {
	pos := d.tiles[0]
	pos.Y = screenH * 0.7
	d.tiles[1].SetScale(motion.Vec2{X: 1, Y: 1})
	d.tiles[2].Rotation = 0
	d.tiles[3].Alpha = 1
	d.tiles[4].Color = colorful.Color{R: 1, G: 1, B: 1}
}

func (d *demo) update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.chase.Play(nil, nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if d.row.IsPaused() {
			d.row.Resume()
		} else {
			d.row.Pause()
		}
	}
	return nil
}

func randomBrightColor() colorful.Color {
	return colorful.Color{
		R: 0.3 + rand.Float64()*0.7,
		G: 0.3 + rand.Float64()*0.7,
		B: 0.3 + rand.Float64()*0.7,
	}
}
