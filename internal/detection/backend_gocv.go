//go:build gocv

package detection

import (
	"gocv.io/x/gocv"

	"github.com/ironsheep/postcard-grid/internal/imaging"
)

// Backend names the region extraction implementation compiled in.
const Backend = "opencv"

// findRegions extracts external contours with OpenCV. Contour area is the
// polygon area of the simplified outer contour, which runs through pixel
// centers and is therefore slightly smaller than the filled pixel count.
//
// Falls back to ExternalRegions if the mask cannot be wrapped in a Mat.
func findRegions(mask *imaging.Mask) []Region {
	mat, err := gocv.NewMatFromBytes(mask.Height, mask.Width, gocv.MatTypeCV8UC1, mask.Pix)
	if err != nil {
		return ExternalRegions(mask)
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	regions := make([]Region, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		regions = append(regions, Region{
			Bounds: gocv.BoundingRect(contour),
			Area:   gocv.ContourArea(contour),
		})
	}
	return regions
}
