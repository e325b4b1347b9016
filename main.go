package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/renderer"
	"github.com/df07/go-motion-raytracer/pkg/scene"
)

// Config holds the CLI settings. Defaults come from RAYTRACER_* environment
// variables (optionally loaded from .env) and are overridden by flags.
type Config struct {
	Scene        string
	Samples      int // 0 = scene default
	Width        int // 0 = scene default
	MaxDepth     int // 0 = scene default
	Workers      int // 0 = physical core count
	Seed         int64
	Output       string // Empty = output/<scene>/render_<timestamp>.png
	EarthTexture string
}

// loadConfig parses args with defaults taken from getenv
func loadConfig(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Scene:        "random-spheres",
		Seed:         scene.DefaultSeed,
		EarthTexture: "earthmap.jpg",
	}

	if v := getenv("RAYTRACER_SCENE"); v != "" {
		cfg.Scene = v
	}
	if v := getenv("RAYTRACER_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := getenv("RAYTRACER_EARTH_TEXTURE"); v != "" {
		cfg.EarthTexture = v
	}

	intVars := []struct {
		key    string
		target *int
	}{
		{"RAYTRACER_SAMPLES", &cfg.Samples},
		{"RAYTRACER_WIDTH", &cfg.Width},
		{"RAYTRACER_MAX_DEPTH", &cfg.MaxDepth},
		{"RAYTRACER_WORKERS", &cfg.Workers},
	}
	for _, iv := range intVars {
		if v := getenv(iv.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", iv.key, err)
			}
			*iv.target = n
		}
	}
	if v := getenv("RAYTRACER_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RAYTRACER_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width; height follows the scene aspect ratio (0 = scene default)")
	fs.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of parallel workers (0 = physical core count)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for scene construction and sampling")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output PNG path")
	fs.StringVar(&cfg.EarthTexture, "earth-texture", cfg.EarthTexture, "Image for the earth globe")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Samples < 0 || cfg.Width < 0 || cfg.MaxDepth < 0 || cfg.Workers < 0 {
		return Config{}, errors.New("samples, width, max-depth and workers must not be negative")
	}

	return cfg, nil
}

// createScene builds the configured scene and applies the sampling overrides
func createScene(cfg Config, logger core.Logger) (*scene.Scene, error) {
	s, err := scene.ByName(cfg.Scene, scene.Options{
		Sampler:      core.NewSeededSampler(cfg.Seed),
		EarthTexture: cfg.EarthTexture,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Width > 0 {
		s.SamplingConfig.Width = cfg.Width
		s.SamplingConfig.Height = max(1, int(float64(cfg.Width)/s.CameraConfig.AspectRatio))
	}
	if cfg.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = cfg.Samples
	}
	if cfg.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = cfg.MaxDepth
	}

	return s, nil
}

// run renders the configured scene and writes it as PNG, returning the output path
func run(ctx context.Context, cfg Config, logger core.Logger) (string, error) {
	s, err := createScene(cfg, logger)
	if err != nil {
		return "", err
	}
	logger.Printf("Scene %s: %d objects, top-level BVH with %d nodes (depth %d)\n",
		cfg.Scene, s.ObjectCount, s.BVHStats.TotalNodes, s.BVHStats.MaxDepth)

	options := renderer.DefaultRenderOptions()
	options.NumWorkers = cfg.Workers
	options.Seed = cfg.Seed

	raytracer := renderer.NewRaytracer(s, s.SamplingConfig, options, logger)
	img, _, err := raytracer.RenderPass(ctx)
	if err != nil {
		return "", err
	}

	filename := cfg.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", cfg.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("error saving PNG: %w", err)
	}

	return filename, nil
}

func main() {
	logger := renderer.NewDefaultLogger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("Warning: could not read .env: %v", err)
	}

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(2)
	}

	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		logger.Printf("CPU: %s", info[0].ModelName)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Printf("Memory: %d MiB total, %d MiB available", vm.Total>>20, vm.Available>>20)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Printf("Error: %v", err)
		stop()
		os.Exit(1)
	}

	logger.Printf("Render saved as %s", filename)
}
