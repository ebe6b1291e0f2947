package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/motion"
)

// whitePixel is the 1x1 source image every node rectangle is stretched from.
// Created on first use so that importing the package does not touch the GPU.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// DrawNode renders n as a solid rectangle of its size, centered on its world
// position, rotated, scaled and tinted by its color and world alpha. Hidden
// and disposed nodes are skipped. Children are not drawn; see DrawTree.
func DrawNode(screen *ebiten.Image, n *motion.Node) {
	op, ok := nodeDrawOptions(n)
	if !ok {
		return
	}
	screen.DrawImage(pixel(), op)
}

// DrawTree draws n and then its descendants, depth first.
func DrawTree(screen *ebiten.Image, n *motion.Node) {
	if n == nil || !n.Visible || n.IsDisposed() {
		return
	}
	DrawNode(screen, n)
	for _, c := range n.Children() {
		DrawTree(screen, c)
	}
}

// nodeDrawOptions builds the transform and color scale for n. ok is false
// when nothing would be visible.
func nodeDrawOptions(n *motion.Node) (*ebiten.DrawImageOptions, bool) {
	if n == nil || !n.Visible || n.IsDisposed() {
		return nil, false
	}
	alpha := n.WorldAlpha()
	if alpha <= 0 || n.Width <= 0 || n.Height <= 0 {
		return nil, false
	}
	if alpha > 1 {
		alpha = 1
	}

	w := n.Width * n.ScaleX
	h := n.Height * n.ScaleY
	pos := n.WorldPosition()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(n.Rotation)
	op.GeoM.Translate(pos.X, pos.Y)

	// Tints may leave the gamut while an overshooting curve runs.
	c := n.Color.Clamped()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(alpha))
	return op, true
}
