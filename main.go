package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line settings; zero values keep the scene's defaults
type Config struct {
	SceneType   string
	Samples     int
	MaxDepth    int
	Width       int
	Workers     int
	Seed        int64
	TexturePath string
	Format      string
	Output      string
}

func main() {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "random-spheres", "Scene to render (see -list)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	flag.IntVar(&config.Width, "width", 0, "Image width; height follows the scene's aspect ratio (0 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", 42, "Seed for scene layout and pixel sampling")
	flag.StringVar(&config.TexturePath, "texture", scene.DefaultTexturePath, "Image used by the earth texture")
	flag.StringVar(&config.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	flag.StringVar(&config.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}
	if *list {
		listScenes(os.Stdout)
		return
	}

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Go Path Tracer")
	fmt.Println("Usage: go-pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	listScenes(os.Stdout)
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, group := range scene.ListSceneGroups() {
		fmt.Fprintf(w, "  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "    %-20s %s\n", info.ID, info.Description)
		}
	}
}

func run(config Config) error {
	format, err := normalizeFormat(config.Format)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()

	fmt.Println("Starting Go Path Tracer...")
	s, err := createScene(config)
	if err != nil {
		return err
	}

	sampling := s.SamplingConfig
	fmt.Printf("Scene: %s (%d objects)\n", s.Name, s.GetPrimitiveCount())
	fmt.Printf("Resolution: %dx%d, %d samples per pixel, max depth %d\n",
		sampling.Width, sampling.Height, sampling.SamplesPerPixel, sampling.MaxDepth)

	// Ctrl+C cancels the render between rows
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := s.NewRaytracer(config.Workers, logger).Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Render completed in %v using %d workers (%.0f samples/sec)\n",
		stats.Duration, stats.Workers, stats.SamplesPerSecond())

	filename := config.Output
	if filename == "" {
		filename = outputPath(s.Name, format, time.Now())
	}
	if err := saveImage(filename, img, format); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the requested scene and applies the command line overrides
func createScene(config Config) (*scene.Scene, error) {
	opts := scene.DefaultOptions()
	opts.Seed = config.Seed
	opts.TexturePath = config.TexturePath
	opts.Logger = renderer.NewDefaultLogger()

	s, err := scene.Create(config.SceneType, opts)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.SetWidth(config.Width)
	}
	if config.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = config.Samples
	}
	if config.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = config.MaxDepth
	}

	return s, nil
}

func normalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "ppm", "png":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want ppm or png)", format)
	}
}

// outputPath returns output/<scene>/render_<timestamp>.<format>
func outputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

func saveImage(filename string, img *renderer.Image, format string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := writeImage(file, img, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeImage(w io.Writer, img *renderer.Image, format string) error {
	switch format {
	case "png":
		if err := renderer.WritePNG(w, img); err != nil {
			return fmt.Errorf("error saving PNG: %w", err)
		}
	default:
		if err := renderer.WritePPM(w, img); err != nil {
			return fmt.Errorf("error saving PPM: %w", err)
		}
	}
	return nil
}
