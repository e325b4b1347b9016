package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/nfnt/resize"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, y=0 is the top row
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	img, err := decodeImage(filename)
	if err != nil {
		return nil, err
	}
	return toImageData(img), nil
}

// LoadImageMaxSize loads an image and downsamples it so neither side exceeds
// maxSize, preserving the aspect ratio. Smaller images are returned unchanged.
func LoadImageMaxSize(filename string, maxSize uint) (*ImageData, error) {
	if maxSize == 0 {
		return nil, fmt.Errorf("invalid max image size 0 for %s", filename)
	}

	img, err := decodeImage(filename)
	if err != nil {
		return nil, err
	}

	return toImageData(resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)), nil
}

func decodeImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return img, nil
}

func toImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
