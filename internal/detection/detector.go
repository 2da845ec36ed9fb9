package detection

import (
	"fmt"
	"image"
	"log/slog"
	"sort"

	"github.com/ironsheep/postcard-grid/internal/grid"
	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// Messages reported in Result.Info and Result.Error.
const (
	infoDetected  = "Detected %d rows, %d cols by contour bounding boxes."
	errUnreadable = "Could not read image."
)

// Options tunes the row-boundary heuristic.
type Options struct {
	// MinAreaFraction is the share of the sheet area a region must exceed
	// to count as a card.
	MinAreaFraction float64

	// EdgeMarginFraction discards candidates within this share of the
	// sheet height from the top or bottom edge.
	EdgeMarginFraction float64

	// MinDistanceDivisor sets the thinning distance to height / divisor.
	MinDistanceDivisor int

	// BlurKernel is the Gaussian kernel size used before thresholding.
	BlurKernel int
}

// DefaultOptions returns the standard detection parameters.
func DefaultOptions() Options {
	return Options{
		MinAreaFraction:    0.03,
		EdgeMarginFraction: 0.05,
		MinDistanceDivisor: 10,
		BlurKernel:         imaging.DefaultBlurKernel,
	}
}

// Result is the detection record returned to callers.
//
// On failure the numeric fields are nil, all boundary lists are empty and
// Error is set.
type Result struct {
	DetectedRows *int `json:"detected_rows"`
	DetectedCols *int `json:"detected_cols"`

	// HBoundaries and VBoundaries are the complete boundary sets including
	// the sheet edges.
	HBoundaries []int `json:"h_boundaries"`
	VBoundaries []int `json:"v_boundaries"`

	// HBoundariesInternal and VBoundariesInternal exclude the sheet edges.
	HBoundariesInternal []int `json:"h_boundaries_internal"`
	VBoundariesInternal []int `json:"v_boundaries_internal"`

	ImageWidth  *int `json:"image_width"`
	ImageHeight *int `json:"image_height"`

	Info  string  `json:"info"`
	Error *string `json:"error"`

	// CandidateCards is the number of regions that passed the area filter.
	CandidateCards int `json:"candidate_cards"`
}

// Detector finds row boundaries on scanned sheets. It holds no state
// between calls.
type Detector struct {
	Options Options
	Logger  *slog.Logger
}

// New creates a Detector. A nil logger uses slog.Default().
func New(opts Options, logger *slog.Logger) *Detector {
	return &Detector{Options: opts, Logger: logger}
}

func (d *Detector) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// DetectFile loads the image at path and detects its grid. An unreadable
// file produces a failure Result rather than an error.
func (d *Detector) DetectFile(path string) *Result {
	img, err := imaging.Load(path)
	if err != nil {
		d.logger().Warn("cannot read image for detection", "path", path, "error", err)
		return failure(errUnreadable)
	}
	return d.DetectImage(img)
}

// DetectImage detects the grid of an already decoded image.
func (d *Detector) DetectImage(img image.Image) *Result {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return failure(errUnreadable)
	}

	opts := d.normalizedOptions()
	mask, threshold := imaging.Binarize(img, opts.BlurKernel)
	regions := findRegions(mask)
	cards := filterCards(regions, width, height, opts.MinAreaFraction)

	internalH := internalRows(cards, height, opts)
	hBoundaries := grid.Complete(internalH, height)
	vBoundaries := grid.Complete(nil, width)

	rows := len(hBoundaries) - 1
	cols := len(vBoundaries) - 1

	d.logger().Debug("grid detected",
		"backend", Backend,
		"threshold", threshold,
		"regions", len(regions),
		"cards", len(cards),
		"rows", rows,
		"cols", cols,
	)

	return &Result{
		DetectedRows:        &rows,
		DetectedCols:        &cols,
		HBoundaries:         hBoundaries,
		VBoundaries:         vBoundaries,
		HBoundariesInternal: internalH,
		VBoundariesInternal: []int{},
		ImageWidth:          &width,
		ImageHeight:         &height,
		Info:                fmt.Sprintf(infoDetected, rows, cols),
		CandidateCards:      len(cards),
	}
}

// normalizedOptions replaces unusable values with defaults.
func (d *Detector) normalizedOptions() Options {
	opts := d.Options
	def := DefaultOptions()
	if opts.MinAreaFraction <= 0 || opts.MinAreaFraction >= 1 {
		opts.MinAreaFraction = def.MinAreaFraction
	}
	if opts.EdgeMarginFraction < 0 || opts.EdgeMarginFraction >= 0.5 {
		opts.EdgeMarginFraction = def.EdgeMarginFraction
	}
	if opts.MinDistanceDivisor <= 0 {
		opts.MinDistanceDivisor = def.MinDistanceDivisor
	}
	if opts.BlurKernel < 0 {
		opts.BlurKernel = def.BlurKernel
	}
	return opts
}

// filterCards keeps regions whose area exceeds minFraction of the sheet.
func filterCards(regions []Region, width, height int, minFraction float64) []Region {
	minArea := float64(width*height) * minFraction
	cards := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.Area > minArea {
			cards = append(cards, r)
		}
	}
	return cards
}

// internalRows turns card regions into strictly internal row boundaries.
func internalRows(cards []Region, height int, opts Options) []int {
	low := float64(height) * opts.EdgeMarginFraction
	high := float64(height) * (1 - opts.EdgeMarginFraction)

	candidates := make([]int, 0, 2*len(cards))
	for _, c := range cards {
		for _, y := range []int{c.Top(), c.Bottom()} {
			if fy := float64(y); fy > low && fy < high {
				candidates = append(candidates, y)
			}
		}
	}
	sort.Ints(candidates)

	cleaned := grid.Clean(candidates, height/opts.MinDistanceDivisor)
	return grid.Internal(cleaned, height)
}

func failure(msg string) *Result {
	return &Result{
		HBoundaries:         []int{},
		VBoundaries:         []int{},
		HBoundariesInternal: []int{},
		VBoundariesInternal: []int{},
		Info:                msg,
		Error:               &msg,
	}
}
