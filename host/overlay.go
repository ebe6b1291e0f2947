package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/motion"
)

// overlayInterval is how often the overlay text is refreshed, in seconds.
const overlayInterval = 0.5

// Overlay is a debug panel in the top-left corner showing FPS, TPS and the
// number of animations registered with a driver.
type Overlay struct {
	driver *motion.Driver

	img     *ebiten.Image
	text    string
	elapsed float64
	dirty   bool
}

// NewOverlay creates an overlay reporting on d. The text is filled on the
// first Update.
func NewOverlay(d *motion.Driver) *Overlay {
	return &Overlay{driver: d, elapsed: overlayInterval}
}

// Text returns the current overlay text.
func (o *Overlay) Text() string { return o.text }

// Update advances the refresh timer by dt seconds and rebuilds the text
// every half second.
func (o *Overlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < overlayInterval {
		return
	}
	o.elapsed = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), o.driver.Len())
	o.dirty = true
}

// Draw renders the panel onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		// 120x48 fits three lines of debug font.
		o.img = ebiten.NewImage(120, 48)
		o.dirty = true
	}
	if o.dirty {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
		o.dirty = false
	}
	screen.DrawImage(o.img, nil)
}

func overlayText(fps, tps float64, registered int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nAnims: %d", fps, tps, registered)
}
