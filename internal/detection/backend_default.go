//go:build !gocv

package detection

import "github.com/ironsheep/postcard-grid/internal/imaging"

// Backend names the region extraction implementation compiled in.
const Backend = "pure-go"

func findRegions(mask *imaging.Mask) []Region {
	return ExternalRegions(mask)
}
