// Package grid defines the shared model of a postcard sheet grid: boundary
// sets, cell positions and the on-disk naming convention for cell artifacts.
//
// # Boundary Sets
//
// A boundary set is a strictly increasing sequence of pixel coordinates along
// one image axis. A complete set includes both edges (0 and the image extent);
// an internal set excludes them. Complete and Internal convert between the two.
//
// Boundaries frequently arrive from a foreign marshaling layer as scalars,
// nested lists, floats or numeric strings. ParseBoundaryList normalizes any of
// these shapes into a clean []int, degrading to an empty set when the input
// cannot be interpreted.
//
// # Naming Convention
//
// Every component that produces or consumes cell artifacts goes through the
// helpers in names.go:
//
//	crop_row{row}_col{col}.jpg      cell artifact
//	combined_row{row}_col{col}.jpg  face+verso pair composite
//	lot_column_{col+1}.jpg          per-column lot composite
//
// Row and column indices are zero-based. Only the lot name is one-based.
package grid
