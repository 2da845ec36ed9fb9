package imaging

import (
	"image"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/postcard-grid/internal/grid"
)

// CropResult lists the cell artifacts written by a grid crop.
type CropResult struct {
	// ExtractedPaths holds the written artifact paths in row-major order
	// (outer loop over rows, inner over columns). Never nil.
	ExtractedPaths []string `json:"extracted_paths"`

	// Skipped counts degenerate cells (zero extent on either axis).
	Skipped int `json:"skipped"`

	// Failed counts cells whose artifact could not be written.
	Failed int `json:"failed"`
}

// Cropper slices a sheet image into grid cells and writes each cell as a
// JPEG artifact named by its (row, col) position.
//
// A Cropper holds no per-call state and may be shared.
type Cropper struct {
	// Quality is the JPEG quality for written cells (1-100).
	Quality int

	// Logger receives per-cell diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// NewCropper returns a Cropper writing at the given JPEG quality.
func NewCropper(quality int, logger *slog.Logger) *Cropper {
	return &Cropper{Quality: quality, Logger: logger}
}

func (c *Cropper) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// CropFile loads the image at path and crops it with CropImage.
//
// An unreadable image yields an empty result, never an error.
func (c *Cropper) CropFile(path string, hBoundaries, vBoundaries []int, outputDir string) *CropResult {
	img, err := Load(path)
	if err != nil {
		c.logger().Warn("crop source unreadable", "path", path, "error", err)
		return &CropResult{ExtractedPaths: []string{}}
	}
	return c.CropImage(img, hBoundaries, vBoundaries, outputDir)
}

// CropImage slices img along the given boundaries and writes one artifact
// per cell into outputDir, creating the directory if needed.
//
// Parameters:
//   - img: Source sheet.
//   - hBoundaries: Row boundaries (y coordinates). Sorted and deduplicated here.
//   - vBoundaries: Column boundaries (x coordinates). Sorted and deduplicated here.
//   - outputDir: Destination directory for crop_row{r}_col{c}.jpg artifacts.
//
// # Validation
//
// Boundaries outside [0, extent] of their axis are dropped. When fewer than two
// remain on either axis there is no cell to form and the result is empty.
//
// # Failure Handling
//
//   - Degenerate cells are skipped and counted in Skipped
//   - A cell that fails to write is counted in Failed and left out of
//     ExtractedPaths; the remaining cells are still processed
//   - A directory that cannot be created yields an empty result
func (c *Cropper) CropImage(img image.Image, hBoundaries, vBoundaries []int, outputDir string) *CropResult {
	result := &CropResult{ExtractedPaths: []string{}}
	log := c.logger()

	bounds := img.Bounds()
	h := grid.Clip(grid.SortedUnique(hBoundaries), bounds.Dy())
	v := grid.Clip(grid.SortedUnique(vBoundaries), bounds.Dx())

	if len(h) < 2 || len(v) < 2 {
		log.Warn("not enough boundaries to form a cell",
			"h_valid", len(h), "v_valid", len(v))
		return result
	}

	if err := EnsureDir(outputDir); err != nil {
		log.Warn("crop aborted", "dir", outputDir, "error", err)
		return result
	}

	for row, ys := range grid.Spans(h) {
		for col, xs := range grid.Spans(v) {
			y0, y1 := ys[0], ys[1]
			x0, x1 := xs[0], xs[1]
			if y1 <= y0 || x1 <= x0 {
				result.Skipped++
				log.Debug("skipping degenerate cell", "row", row, "col", col)
				continue
			}

			rect := image.Rect(x0, y0, x1, y1).Add(bounds.Min)
			cell := imaging.Crop(img, rect)
			if cell.Bounds().Dx() == 0 || cell.Bounds().Dy() == 0 {
				result.Skipped++
				log.Debug("skipping zero-dimension cell", "row", row, "col", col)
				continue
			}

			outPath := filepath.Join(outputDir, grid.CellName(row, col))
			if err := SaveJPEG(cell, outPath, c.Quality); err != nil {
				result.Failed++
				log.Warn("cell write failed", "row", row, "col", col, "error", err)
				continue
			}
			result.ExtractedPaths = append(result.ExtractedPaths, outPath)
		}
	}

	log.Info("grid cropped",
		"written", len(result.ExtractedPaths),
		"skipped", result.Skipped,
		"failed", result.Failed,
		"dir", outputDir)
	return result
}
