// Package renderer drives a camera over a world, dispatching rows of
// pixels across a worker pool and writing the shaded result into a
// canvas.
package renderer

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"grinder/pkg/camera"
	"grinder/pkg/color"
	gmath "grinder/pkg/math"
	"grinder/pkg/world"
)

// Options configures a render pass. Workers <= 0 defaults to
// runtime.NumCPU(); Depth <= 0 defaults to world.MaxRecursionDepth.
type Options struct {
	Workers int
	Depth   int
}

// Render casts one ray per pixel of a canvas sized to cam's resolution
// and fills it with the world's shaded colors, splitting the canvas
// into row-striped bands across a worker pool.
func Render(cam *camera.Camera, w *world.World, opts Options) (*color.Canvas, error) {
	canvas := color.NewCanvas(cam.HSize, cam.VSize)
	if err := RenderInto(canvas, cam, w, opts); err != nil {
		return nil, err
	}
	return canvas, nil
}

// RenderInto fills an already-allocated canvas, letting a caller (e.g.
// a live preview window) hold a reference to it and read partial
// progress while the workers are still running. If a worker panics
// shading some row (a malformed scene producing a NaN/out-of-range
// sample, say), that panic is recovered and returned as an error
// instead of taking down the whole process; errgroup.Wait reports the
// first one encountered across all workers.
func RenderInto(canvas *color.Canvas, cam *camera.Camera, w *world.World, opts Options) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = world.MaxRecursionDepth
	}

	var g errgroup.Group
	for worker := 0; worker < workers; worker++ {
		worker := worker
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("renderer: worker %d: %v", worker, r)
				}
			}()
			// Each worker gets its own PRNG, seeded distinctly, so area
			// light jitter doesn't synchronize across rows handled by
			// different goroutines.
			rng := gmath.NewXorShift32(uint32(worker)*2654435761 + 1)
			for y := worker; y < cam.VSize; y += workers {
				renderRow(cam, w, canvas, y, depth, rng)
			}
			return nil
		})
	}
	return g.Wait()
}

func renderRow(cam *camera.Camera, w *world.World, canvas *color.Canvas, y, depth int, rng *gmath.XorShift32) {
	for x := 0; x < cam.HSize; x++ {
		ray := cam.RayForPixel(x, y)
		c := world.ColorAt(w, ray, depth, rng)
		canvas.Set(x, y, c)
	}
}
