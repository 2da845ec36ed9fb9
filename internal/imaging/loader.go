package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder (flatbed scanner default)
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultJPEGQuality is the quality used for every written artifact unless
// configured otherwise.
const DefaultJPEGQuality = 95

// Load opens and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     JPEG, PNG, GIF, TIFF, BMP and WebP.
//
// Returns:
//   - image.Image: The decoded image. Its bounds may not start at (0,0); callers
//     should always offset by Bounds().Min.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// Nothing is cached: every call reads the file again, and the decoded buffer is
// released as soon as the caller drops the reference.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img, nil
}

// SaveJPEG encodes img as JPEG at the given quality and writes it to path.
//
// A quality outside 1-100 falls back to DefaultJPEGQuality. The parent
// directory must already exist.
func SaveJPEG(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image file.
//
// Hosts call this before supplying boundaries of their own, since a boundary
// set must end at the image extent on each axis.
func GetDimensions(path string) (*DimensionsResult, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
