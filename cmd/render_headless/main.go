// Command render_headless is the same scene renderer as cmd/render,
// minus the ebiten preview window dependency.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"grinder/pkg/color"
	"grinder/pkg/loader"
	"grinder/pkg/renderer"
)

func main() {
	scenePath := flag.String("scene", "", "path to the scene JSON file")
	outPath := flag.String("out", "render.png", "output image path (.png or .ppm)")
	workers := flag.Int("workers", 0, "render worker count (0 = runtime.NumCPU)")
	depth := flag.Int("depth", 0, "reflection/refraction recursion depth (0 = default)")
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

	start := time.Now()
	fmt.Fprintln(os.Stderr, "rendering...")
	canvas, err := renderer.Render(cam, w, renderer.Options{Workers: *workers, Depth: *depth})
	if err != nil {
		log.Fatalf("rendering: %v", err)
	}
	fmt.Fprintf(os.Stderr, "render complete in %s\n", time.Since(start))

	if err := writeImage(canvas, *outPath); err != nil {
		log.Fatalf("saving %s: %v", *outPath, err)
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", *outPath)
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
