package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	apperrors "github.com/ironsheep/floorplan-geometry/internal/errors"
)

// Skeletonize runs the raster half of the pipeline: binarize with the
// inverted threshold, clean with a 3x3 opening and closing, then thin with
// the given strategy. The output always has the exact dimensions of the
// source raster (resampled nearest-neighbor if a strategy ever changes
// scale) and holds strictly the values 0 and 255.
//
// The source image is never mutated. A nil or zero-sized raster is an
// invalid-input error.
func Skeletonize(src image.Image, threshold int, thinner Thinner) (*image.Gray, error) {
	if src == nil {
		return nil, apperrors.NewInvalidInput("nil source raster", nil)
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, apperrors.NewInvalidInput("source raster has zero dimensions", nil)
	}

	gray := ToGray(src)
	cleaned := Clean(Binarize(gray, threshold))
	skel := thinner.Thin(cleaned)

	if skel.Bounds().Dx() != width || skel.Bounds().Dy() != height {
		resized := imaging.Resize(skel, width, height, imaging.NearestNeighbor)
		skel = ToGray(resized)
	}

	// Collapse any intermediate values to a strict binary image.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if skel.GrayAt(x, y).Y > 0 {
				skel.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return skel, nil
}
