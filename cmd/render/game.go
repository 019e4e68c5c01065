package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"grinder/pkg/color"
)

// Game wraps a Canvas being filled by a background render pass so
// ebiten can repaint it every frame while the workers are still busy.
// Canvas.At is safe to call concurrently with the workers' Set calls.
type Game struct {
	canvas *color.Canvas
}

func (g *Game) Update() error { return nil }

func (g *Game) Draw(screen *ebiten.Image) {
	pix := make([]byte, 4*g.canvas.Width*g.canvas.Height)
	for y := 0; y < g.canvas.Height; y++ {
		for x := 0; x < g.canvas.Width; x++ {
			c := g.canvas.At(x, y)
			i := 4 * (y*g.canvas.Width + x)
			pix[i+0] = color.EncodeByte(c.R)
			pix[i+1] = color.EncodeByte(c.G)
			pix[i+2] = color.EncodeByte(c.B)
			pix[i+3] = 255
		}
	}
	screen.WritePixels(pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width, g.canvas.Height
}
