// Command render loads a scene description, traces it, and writes the
// result as PNG or PPM, with an optional live ebiten preview window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"grinder/pkg/camera"
	"grinder/pkg/color"
	"grinder/pkg/loader"
	"grinder/pkg/renderer"
	"grinder/pkg/world"
)

func main() {
	scenePath := flag.String("scene", "", "path to the scene JSON file")
	outPath := flag.String("out", "render.png", "output image path (.png or .ppm)")
	workers := flag.Int("workers", 0, "render worker count (0 = runtime.NumCPU)")
	depth := flag.Int("depth", 0, "reflection/refraction recursion depth (0 = default)")
	preview := flag.Bool("preview", false, "open a live framebuffer preview window while rendering")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene is required.")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*scenePath)
	if err != nil {
		log.Fatalf("opening scene: %v", err)
	}
	cam, w, err := loader.Load(f)
	f.Close()
	if err != nil {
		log.Fatalf("loading scene: %v", err)
	}

	opts := renderer.Options{Workers: *workers, Depth: *depth}

	if !*preview {
		renderHeadless(cam, w, opts, *outPath)
		return
	}
	renderWithPreview(cam, w, opts, *scenePath, *outPath)
}

func renderHeadless(cam *camera.Camera, w *world.World, opts renderer.Options, outPath string) {
	start := time.Now()
	fmt.Fprintln(os.Stderr, "rendering...")
	canvas, err := renderer.Render(cam, w, opts)
	if err != nil {
		log.Fatalf("rendering: %v", err)
	}
	fmt.Fprintf(os.Stderr, "render complete in %s\n", time.Since(start))
	if err := writeImage(canvas, outPath); err != nil {
		log.Fatalf("saving %s: %v", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", outPath)
}

func renderWithPreview(cam *camera.Camera, w *world.World, opts renderer.Options, scenePath, outPath string) {
	canvas := color.NewCanvas(cam.HSize, cam.VSize)
	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := renderer.RenderInto(canvas, cam, w, opts); err != nil {
			log.Printf("rendering: %v", err)
			return
		}
		fmt.Fprintf(os.Stderr, "render complete in %s\n", time.Since(start))
		if err := writeImage(canvas, outPath); err != nil {
			log.Printf("saving %s: %v", outPath, err)
			return
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", outPath)
	}()

	game := &Game{canvas: canvas}
	ebiten.SetWindowSize(cam.HSize, cam.VSize)
	ebiten.SetWindowTitle("render preview: " + filepath.Base(scenePath))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("preview window: %v", err)
	}
	<-done
}

func writeImage(canvas *color.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return canvas.WritePPM(f)
	}
	return canvas.WritePNG(f)
}
