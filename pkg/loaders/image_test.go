package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

// writeTestPNG encodes img into a temporary file and returns its path
func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	imageData, err := LoadImage(writeTestPNG(t, img))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
	}

	checkColor := func(name string, got, expected core.Vec3) {
		const tolerance = 0.01
		if got.Subtract(expected).Length() > tolerance {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	// Row-major order
	checkColor("Top-left (white)", imageData.Pixels[0], core.NewVec3(1, 1, 1))
	checkColor("Top-right (red)", imageData.Pixels[1], core.NewVec3(1, 0, 0))
	checkColor("Bottom-left (green)", imageData.Pixels[2], core.NewVec3(0, 1, 0))
	checkColor("Bottom-right (blue)", imageData.Pixels[3], core.NewVec3(0, 0, 1))
}

func TestLoadImageNotFound(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func TestLoadImageMaxSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	path := writeTestPNG(t, img)

	t.Run("Downsamples preserving aspect", func(t *testing.T) {
		imageData, err := LoadImageMaxSize(path, 16)
		if err != nil {
			t.Fatalf("LoadImageMaxSize failed: %v", err)
		}
		if imageData.Width != 16 || imageData.Height != 8 {
			t.Errorf("Expected 16x8, got %dx%d", imageData.Width, imageData.Height)
		}
		if len(imageData.Pixels) != 16*8 {
			t.Errorf("Expected %d pixels, got %d", 16*8, len(imageData.Pixels))
		}
		// A flat image stays flat after filtering
		center := imageData.Pixels[4*16+8]
		if math.Abs(center.X-128.0/255.0) > 0.02 {
			t.Errorf("Expected gray center pixel, got %v", center)
		}
	})

	t.Run("Small image is left alone", func(t *testing.T) {
		imageData, err := LoadImageMaxSize(path, 128)
		if err != nil {
			t.Fatalf("LoadImageMaxSize failed: %v", err)
		}
		if imageData.Width != 64 || imageData.Height != 32 {
			t.Errorf("Expected 64x32, got %dx%d", imageData.Width, imageData.Height)
		}
	})

	t.Run("Zero size rejected", func(t *testing.T) {
		if _, err := LoadImageMaxSize(path, 0); err == nil {
			t.Error("Expected error for max size 0")
		}
	})
}
