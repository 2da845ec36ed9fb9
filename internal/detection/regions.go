package detection

import (
	"image"

	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// Region is the outer extent of one connected foreground shape.
type Region struct {
	// Bounds is the axis-aligned bounding box. Max is exclusive, so
	// Bounds.Max.Y is the first row below the shape.
	Bounds image.Rectangle `json:"bounds"`

	// Area is the area enclosed by the outer contour in square pixels.
	Area float64 `json:"area"`
}

// Top returns the first row covered by the region.
func (r Region) Top() int { return r.Bounds.Min.Y }

// Bottom returns the first row below the region.
func (r Region) Bottom() int { return r.Bounds.Max.Y }

// ExternalRegions finds the outermost shapes of a binary mask.
//
// It follows the conventions of external-only contour retrieval:
//   - foreground is 8-connected, background is 4-connected
//   - holes inside a shape and anything nested within those holes belong to
//     the enclosing shape; they are never reported separately
//   - a region's area is its filled area (foreground plus enclosed holes)
//
// # Algorithm
//
//  1. Flood the background from every border pixel (4-connected). Whatever
//     the flood cannot reach is either foreground or enclosed by it.
//  2. Label the unreached pixels with an 8-connected flood fill; each label
//     is one outer shape.
//  3. Accumulate bounding box and pixel count per label.
//
// Both floods are iterative, so very large sheets cannot overflow the stack.
func ExternalRegions(mask *imaging.Mask) []Region {
	width, height := mask.Width, mask.Height
	if width == 0 || height == 0 {
		return nil
	}

	outside := floodOutside(mask)
	visited := make([]bool, width*height)
	regions := make([]Region, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if outside[i] || visited[i] {
				continue
			}
			regions = append(regions, fillRegion(outside, visited, x, y, width, height))
		}
	}
	return regions
}

// floodOutside marks background pixels 4-connected to the image border.
func floodOutside(mask *imaging.Mask) []bool {
	width, height := mask.Width, mask.Height
	outside := make([]bool, width*height)
	stack := make([]int, 0, 2*(width+height))

	push := func(x, y int) {
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		i := y*width + x
		if outside[i] || mask.Pix[i] != 0 {
			return
		}
		outside[i] = true
		stack = append(stack, i)
	}

	for x := 0; x < width; x++ {
		push(x, 0)
		push(x, height-1)
	}
	for y := 0; y < height; y++ {
		push(0, y)
		push(width-1, y)
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%width, i/width
		push(x+1, y)
		push(x-1, y)
		push(x, y+1)
		push(x, y-1)
	}
	return outside
}

// fillRegion labels the 8-connected component of non-outside pixels that
// contains (startX, startY) and returns its extent.
func fillRegion(outside, visited []bool, startX, startY, width, height int) Region {
	minX, minY := startX, startY
	maxX, maxY := startX, startY
	count := 0

	start := startY*width + startX
	visited[start] = true
	stack := []int{start}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%width, i/width
		count++

		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= width || ny >= height {
					continue
				}
				n := ny*width + nx
				if outside[n] || visited[n] {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}

	return Region{
		Bounds: image.Rect(minX, minY, maxX+1, maxY+1),
		Area:   float64(count),
	}
}
