package host

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to Config.ScreenshotDir with a timestamped file name. Safe to call
// from Update or Draw.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

// flushScreenshots captures screen once for every queued label. Called at
// the end of Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	logger := g.driver.Logger()
	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		logger.Error("screenshot directory", "dir", g.cfg.ScreenshotDir, "err", err)
		return
	}

	img := straightAlpha(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.shots {
		path := filepath.Join(g.cfg.ScreenshotDir, shotFileName(stamp, label))
		if err := savePNG(path, img); err != nil {
			logger.Error("screenshot", "label", label, "err", err)
			continue
		}
		logger.Info("screenshot saved", "path", path)
	}
}

// straightAlpha copies the frame into a non-premultiplied image, the form
// PNG stores.
func straightAlpha(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(frame.Pix)
	return toNRGBA(frame)
}

// toNRGBA converts premultiplied pixels to straight alpha. The NRGBA color
// model divides each channel by alpha.
func toNRGBA(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, src.Rect.Min, draw.Src)
	return dst
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// shotFileName builds "<stamp>_<label>.png". Label runes outside
// [A-Za-z0-9.-] become underscores; a blank label reads "unlabeled".
func shotFileName(stamp, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "unlabeled"
	}
	label = strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
	return stamp + "_" + label + ".png"
}
