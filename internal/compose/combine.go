package compose

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ironsheep/postcard-grid/internal/grid"
	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// Result lists the composites written by Combine.
type Result struct {
	// LotPaths holds one lot per column that had at least one pair,
	// ordered by column.
	LotPaths []string `json:"lot_paths"`

	// CombinedPaths holds one composite per pair, ordered by row then
	// column.
	CombinedPaths []string `json:"combined_paths"`
}

func emptyResult() *Result {
	return &Result{LotPaths: []string{}, CombinedPaths: []string{}}
}

// Compositor builds pair and lot composites from two cell directories.
type Compositor struct {
	// Quality is the JPEG quality of written composites.
	Quality int

	// Logger receives progress and skip events. Nil uses slog.Default().
	Logger *slog.Logger
}

// New creates a Compositor.
func New(quality int, logger *slog.Logger) *Compositor {
	return &Compositor{Quality: quality, Logger: logger}
}

func (c *Compositor) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Combine pairs the cells of faceDir with the cells of versoDir and writes
// the composites to outputDir.
//
// hintRows and hintCols are informational. The grid extent is always
// derived from the face cell names.
//
// Missing directories, a face or verso directory without cells and an
// unwritable output directory all produce an empty Result.
func (c *Compositor) Combine(faceDir, versoDir, outputDir string, hintRows, hintCols int) *Result {
	log := c.logger()

	if !isDir(faceDir) || !isDir(versoDir) {
		log.Warn("face or verso directory missing", "face_dir", faceDir, "verso_dir", versoDir)
		return emptyResult()
	}

	positions, err := ScanPositions(faceDir, log)
	if err != nil {
		log.Warn("cannot list face directory", "dir", faceDir, "error", err)
		return emptyResult()
	}
	versoPositions, err := ScanPositions(versoDir, log)
	if err != nil {
		log.Warn("cannot list verso directory", "dir", versoDir, "error", err)
		return emptyResult()
	}
	if len(positions) == 0 || len(versoPositions) == 0 {
		log.Info("no cells to combine", "face_cells", len(positions), "verso_cells", len(versoPositions))
		return emptyResult()
	}

	rows, cols := grid.Extent(positions)
	if rows != hintRows || cols != hintCols {
		log.Debug("grid hint differs from face cells",
			"hint_rows", hintRows, "hint_cols", hintCols,
			"rows", rows, "cols", cols,
		)
	}

	if err := imaging.EnsureDir(outputDir); err != nil {
		log.Warn("cannot create output directory", "dir", outputDir, "error", err)
		return emptyResult()
	}

	present := make(map[grid.Position]bool, len(positions))
	for _, p := range positions {
		present[p] = true
	}

	p := &pairer{faceDir: faceDir, versoDir: versoDir, log: log}
	result := emptyResult()

	for col := 0; col < cols; col++ {
		var pairs []image.Image
		for row := 0; row < rows; row++ {
			pos := grid.Position{Row: row, Col: col}
			if !present[pos] {
				continue
			}
			if pair := p.build(pos); pair != nil {
				pairs = append(pairs, pair)
			}
		}
		if len(pairs) == 0 {
			log.Debug("column has no pairs", "col", col)
			continue
		}

		path := filepath.Join(outputDir, grid.LotName(col))
		if err := imaging.SaveJPEG(Lot(pairs), path, c.Quality); err != nil {
			log.Warn("lot write failed", "path", path, "error", err)
			continue
		}
		result.LotPaths = append(result.LotPaths, path)
	}

	for _, pos := range positions {
		pair := p.build(pos)
		if pair == nil {
			continue
		}
		path := filepath.Join(outputDir, grid.CombinedName(pos.Row, pos.Col))
		if err := imaging.SaveJPEG(pair, path, c.Quality); err != nil {
			log.Warn("composite write failed", "path", path, "error", err)
			continue
		}
		result.CombinedPaths = append(result.CombinedPaths, path)
	}

	log.Info("cells combined",
		"rows", rows,
		"cols", cols,
		"lots", len(result.LotPaths),
		"combined", len(result.CombinedPaths),
	)
	return result
}

// Lot normalizes every pair to the widest one and stacks them top to bottom
// in the given order.
func Lot(pairs []image.Image) *image.NRGBA {
	maxWidth := 0
	for _, p := range pairs {
		if w := p.Bounds().Dx(); w > maxWidth {
			maxWidth = w
		}
	}
	scaled := make([]image.Image, len(pairs))
	for i, p := range pairs {
		scaled[i] = imaging.ResizeToWidth(p, maxWidth)
	}
	return imaging.VConcat(scaled...)
}

// pairer loads matching face and verso cells.
type pairer struct {
	faceDir  string
	versoDir string
	log      *slog.Logger
}

// build returns the face+verso composite for pos, or nil when either side is
// missing or cannot be decoded.
func (p *pairer) build(pos grid.Position) image.Image {
	name := grid.CellName(pos.Row, pos.Col)

	face, err := imaging.Load(filepath.Join(p.faceDir, name))
	if err != nil {
		p.log.Debug("face cell unreadable", "position", pos.String(), "error", err)
		return nil
	}
	verso, err := imaging.Load(filepath.Join(p.versoDir, name))
	if err != nil {
		p.log.Debug("verso cell missing", "position", pos.String(), "error", err)
		return nil
	}
	return imaging.SideBySide(face, verso)
}

// ScanPositions lists the cell positions present in dir, sorted by row then
// column. Files that carry the cell prefix and extension but do not parse are
// logged and skipped; other files are ignored.
func ScanPositions(dir string, log *slog.Logger) ([]grid.Position, error) {
	if log == nil {
		log = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	positions := make([]grid.Position, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !grid.IsCellName(e.Name()) {
			continue
		}
		pos, ok := grid.ParseCellName(e.Name())
		if !ok {
			log.Warn("skipping unparsable cell name", "dir", dir, "name", e.Name())
			continue
		}
		positions = append(positions, pos)
	}
	grid.SortPositions(positions)
	return positions, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
