package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// DefaultBlurKernel is the side of the square Gaussian kernel applied before
// thresholding.
const DefaultBlurKernel = 7

// Mask is a binary image stored one byte per pixel, row-major, with its origin
// at (0,0). Foreground pixels hold 255, background pixels hold 0.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates an all-background mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At reports whether (x, y) is foreground. Out-of-range coordinates are
// background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Set marks (x, y) as foreground or background.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	if on {
		m.Pix[y*m.Width+x] = 255
	} else {
		m.Pix[y*m.Width+x] = 0
	}
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, p := range m.Pix {
		if p != 0 {
			n++
		}
	}
	return n
}

// Binarize converts img into a foreground mask of dark content on a light
// background.
//
// Parameters:
//   - img: Source image (color or grayscale).
//   - kernel: Side of the Gaussian smoothing kernel in pixels. Even values are
//     rounded up to the next odd size; values below 3 disable smoothing.
//
// Returns the mask and the automatically selected threshold.
//
// # Algorithm
//
//  1. Grayscale conversion (luminance)
//  2. Gaussian smoothing with a kernel of the given size, to suppress scan
//     noise and dust
//  3. Otsu's method picks the global threshold t that maximizes the
//     between-class variance of the smoothed histogram
//  4. Inverse binarization: pixels with value <= t become foreground (255),
//     brighter pixels become background (0)
//
// The inverse polarity matches scanned postcards, whose edges and content
// are darker than the scanner lid.
func Binarize(img image.Image, kernel int) (*Mask, uint8) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gray := effect.Grayscale(img)
	var smoothed image.Image = gray
	if kernel >= 3 {
		if kernel%2 == 0 {
			kernel++
		}
		smoothed = blur.Gaussian(gray, float64(kernel-1)/2)
	}

	values := make([]uint8, width*height)
	var hist [256]int
	sb := smoothed.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, _, _, _ := smoothed.At(x+sb.Min.X, y+sb.Min.Y).RGBA()
			v := uint8(r >> 8)
			values[y*width+x] = v
			hist[v]++
		}
	}

	t := otsuThreshold(hist, width*height)

	mask := NewMask(width, height)
	for i, v := range values {
		if v <= t {
			mask.Pix[i] = 255
		}
	}
	return mask, t
}

// otsuThreshold returns the threshold maximizing between-class variance for
// the histogram. Pixels at or below the threshold form the lower class.
//
// A histogram with a single populated bin yields 0.
func otsuThreshold(hist [256]int, total int) uint8 {
	if total == 0 {
		return 0
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumB, weightB, best float64
	threshold := 0
	for t := 0; t < 256; t++ {
		weightB += float64(hist[t])
		if weightB == 0 {
			continue
		}
		weightF := float64(total) - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		meanB := sumB / weightB
		meanF := (sum - sumB) / weightF
		between := weightB * weightF * (meanB - meanF) * (meanB - meanF)
		if between > best {
			best = between
			threshold = t
		}
	}
	return uint8(threshold)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
