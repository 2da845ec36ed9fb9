// Package detection finds the row layout of a scanned postcard sheet.
//
// A sheet is binarized (see imaging.Binarize), its outer shapes are extracted
// and every shape large enough to be a card contributes its top and bottom
// edge as a row-boundary candidate. Candidates near the sheet edges are
// discarded and the rest are thinned so that the bottom of one card and the
// top of the card below it collapse into a single boundary.
//
// # Region Backends
//
// Region extraction has two implementations selected at build time:
//
//   - default: a pure-Go flood fill (ExternalRegions)
//   - -tags gocv: OpenCV external contours via gocv.io/x/gocv
//
// Both report only outermost shapes; holes and anything nested in them are
// folded into the enclosing shape.
//
// # Columns
//
// Column boundaries are not detected. Results always carry the two sheet
// edges {0, width} as the column set and an empty internal column list, so a
// column detector can later be added by filling in the internal list alone.
package detection
