package color

import (
	"bufio"
	"fmt"
	"image"
	gocolor "image/color"
	"image/png"
	"io"
	"sync"
)

// Canvas is a width x height grid of linear-space Color pixels. Pixel
// (0,0) is top-left. Writes are guarded by a per-row mutex: render
// workers are partitioned by disjoint row stride (see pkg/renderer),
// so contention only ever arises from the occasional read during
// preview, not from concurrent writers on the same row.
type Canvas struct {
	Width, Height int

	mu     []sync.Mutex
	pixels []Color
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		mu:     make([]sync.Mutex, height),
		pixels: make([]Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int { return y*c.Width + x }

// Set writes a pixel. Safe to call concurrently from different rows.
func (c *Canvas) Set(x, y int, col Color) {
	c.mu[y].Lock()
	c.pixels[c.index(x, y)] = col
	c.mu[y].Unlock()
}

// At reads a pixel.
func (c *Canvas) At(x, y int) Color {
	c.mu[y].Lock()
	defer c.mu[y].Unlock()
	return c.pixels[c.index(x, y)]
}

// WritePPM encodes the canvas as ASCII PPM (P3), 255 samples per
// channel, wrapping lines at 10 values as the classic format prefers.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	col := 0
	writeVal := func(v uint8) error {
		if col > 0 {
			if _, err := bw.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%d", v); err != nil {
			return err
		}
		col++
		if col == 10 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
			col = 0
		}
		return nil
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			for _, ch := range [3]float64{p.R, p.G, p.B} {
				if err := writeVal(EncodeByte(ch)); err != nil {
					return err
				}
			}
		}
		if col != 0 {
			bw.WriteString("\n")
			col = 0
		}
	}
	return bw.Flush()
}

// WritePNG encodes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			img.SetRGBA(x, y, gocolor.RGBA{
				R: EncodeByte(p.R),
				G: EncodeByte(p.G),
				B: EncodeByte(p.B),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}
