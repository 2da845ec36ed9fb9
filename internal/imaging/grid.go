package imaging

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/postcard-grid/internal/grid"
)

// PreviewName is the artifact name of a boundary preview.
const PreviewName = "preview.jpg"

const overlayLineWidth = 3

// PreviewResult describes a written boundary preview.
type PreviewResult struct {
	PreviewPath *string `json:"preview_path"`
	Error       *string `json:"error"`
}

// BoundaryOverlay draws row and column boundaries over a copy of img and labels
// every cell with its "row,col" position.
//
// Boundaries outside the image are dropped. An axis left with no boundaries is
// drawn with its two edges only. Lines are overlayLineWidth pixels wide,
// centered on the boundary and clamped to the image.
func BoundaryOverlay(img image.Image, hBoundaries, vBoundaries []int, lineColor color.Color) *image.NRGBA {
	result := imaging.Clone(img)
	bounds := result.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	h := grid.Clip(grid.SortedUnique(hBoundaries), height)
	v := grid.Clip(grid.SortedUnique(vBoundaries), width)
	if len(h) == 0 {
		h = []int{0, height}
	}
	if len(v) == 0 {
		v = []int{0, width}
	}

	half := overlayLineWidth / 2
	for _, y := range h {
		for dy := -half; dy <= half; dy++ {
			py := clamp(y+dy, 0, height-1)
			for x := 0; x < width; x++ {
				result.Set(x, py, lineColor)
			}
		}
	}
	for _, x := range v {
		for dx := -half; dx <= half; dx++ {
			px := clamp(x+dx, 0, width-1)
			for y := 0; y < height; y++ {
				result.Set(px, y, lineColor)
			}
		}
	}

	labelColor := color.RGBA{255, 255, 255, 255}
	bgColor := color.RGBA{0, 0, 0, 180}
	for row, ys := range grid.Spans(h) {
		for col, xs := range grid.Spans(v) {
			label := fmt.Sprintf("%d,%d", row, col)
			drawLabel(result, xs[0]+overlayLineWidth+2, ys[0]+overlayLineWidth+2, label, labelColor, bgColor)
		}
	}

	return result
}

// WritePreview loads the image at path, overlays the boundaries and writes
// preview.jpg into outputDir.
//
// Failures are reported in the result rather than returned.
func WritePreview(path string, hBoundaries, vBoundaries []int, outputDir string, lineColor color.Color, quality int, logger *slog.Logger) *PreviewResult {
	if logger == nil {
		logger = slog.Default()
	}
	fail := func(msg string, err error) *PreviewResult {
		logger.Warn(msg, "path", path, "error", err)
		s := msg
		return &PreviewResult{Error: &s}
	}

	img, err := Load(path)
	if err != nil {
		return fail("Could not read image.", err)
	}
	if err := EnsureDir(outputDir); err != nil {
		return fail("Could not create output directory.", err)
	}

	overlay := BoundaryOverlay(img, hBoundaries, vBoundaries, lineColor)
	outPath := filepath.Join(outputDir, PreviewName)
	if err := SaveJPEG(overlay, outPath, quality); err != nil {
		return fail("Could not write preview.", err)
	}
	return &PreviewResult{PreviewPath: &outPath}
}

// DefaultOverlayColor is opaque red.
var DefaultOverlayColor = color.RGBA{255, 0, 0, 255}

// ParseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func ParseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// drawLabel draws a small "row,col" label with a 3x5 pixel digit font
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(bounds) {
				img.Set(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if image.Pt(px, py).In(bounds) {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
