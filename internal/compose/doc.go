// Package compose pairs face and verso cell crops into composite images.
//
// Positions are enumerated from the face directory only; a position is
// composed when the verso directory holds a cell with the same name. Each
// position yields a side-by-side "combined" image and each column yields a
// "lot" image stacking that column's pairs top to bottom.
package compose
