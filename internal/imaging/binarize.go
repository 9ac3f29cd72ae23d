package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// DefaultThreshold is the binarization level used when the caller does not
// supply one.
const DefaultThreshold = 100

// Binarize converts a grayscale raster to a binary bitmap with inverted
// thresholding: a pixel becomes foreground (255) iff its intensity is
// strictly below threshold, so dark ink turns into foreground. The source
// is never mutated.
//
// Thresholds at or below zero produce an all-background bitmap; thresholds
// above 255 produce an all-foreground one.
func Binarize(g *image.Gray, threshold int) *image.Gray {
	b := g.Bounds()
	width, height := b.Dx(), b.Dy()

	if threshold <= 0 {
		return image.NewGray(image.Rect(0, 0, width, height))
	}
	if threshold > 255 {
		out := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
		return out
	}

	// v < threshold is equivalent to 255-v >= 256-threshold. The level
	// comparison runs on the inverted plane itself: a luminance-ranked
	// threshold loses the boundary intensity to float truncation.
	inverted := effect.Invert(g)
	level := uint8(256 - threshold)
	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if inverted.RGBAAt(b.Min.X+x, b.Min.Y+y).R >= level {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
