// Package imaging provides the raster plumbing for postcard sheet processing.
//
// This package loads and writes image artifacts, prepares binary masks for
// layout detection, slices sheets into grid cells, and joins cells into
// composites. All operations work with standard Go image.Image values and use
// a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the
// image's own origin (Bounds().Min is added internally):
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - A cell spanning boundaries (x0,x1) x (y0,y1) covers [x0,x1) x [y0,y1)
//
// # Artifacts
//
// Every written artifact is JPEG. Cell names come from package grid, so the
// cropper and the compositor can never disagree on the convention.
//
// # Thread Safety
//
// Nothing here holds shared mutable state. Cropper values may be used from
// several goroutines as long as each call targets its own output directory.
//
// # Error Handling
//
// Plumbing functions (Load, SaveJPEG, EnsureDir) return wrapped errors. The
// Cropper never returns an error: unreadable sources, missing boundaries and
// write failures are reported through CropResult.
package imaging
