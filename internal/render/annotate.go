// Package render draws pipeline results onto a color visualization buffer.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/floorplan-geometry/internal/detection"
	apperrors "github.com/ironsheep/floorplan-geometry/internal/errors"
)

// Classification palette. Cluster centers that no longer sit on a
// recognizable pattern fall back to the "other" color.
var (
	colorEndpoint  = mustHex("#0000ff")
	colorCorner    = mustHex("#ff0000")
	colorTJunction = mustHex("#00ff00")
	colorOther     = mustHex("#ffa500")
	colorSegment   = mustHex("#00ff00")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

const (
	centerRadius     = 3
	segmentLineWidth = 2
)

// Annotate renders cluster centers and wall segments over a skeleton.
//
// The render target is a fresh RGB buffer holding the skeleton. Each
// cluster center is drawn as a filled circle whose color is chosen by
// re-running the crossing-number classification on the render target's red
// channel at the center's (truncated) coordinates; centers without a full
// interior 3x3 neighborhood classify as none and take the fallback color.
//
// Classification is re-derived here because cluster centroids carry no tag,
// and it happens sequentially as circles are drawn, so a circle drawn
// earlier can change what a later center's neighborhood looks like. That
// ordering is deliberate and must not be "fixed" by threading the
// detector's tags through clustering.
func Annotate(skel *image.Gray, centers []detection.ClusterCenter, segments []detection.Segment) (*image.RGBA, error) {
	if skel == nil {
		return nil, apperrors.NewInvalidInput("nil skeleton", nil)
	}
	b := skel.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, apperrors.NewInvalidInput("skeleton has zero dimensions", nil)
	}

	target := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := skel.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			target.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	dc := gg.NewContextForRGBA(target)

	for _, c := range centers {
		cx, cy := int(c.X), int(c.Y)
		dc.SetColor(classifyOnTarget(target, cx, cy))
		dc.DrawCircle(float64(cx), float64(cy), centerRadius)
		dc.Fill()
	}

	dc.SetColor(colorSegment)
	dc.SetLineWidth(segmentLineWidth)
	for _, s := range segments {
		dc.DrawLine(float64(s.X1), float64(s.Y1), float64(s.X2), float64(s.Y2))
		dc.Stroke()
	}

	return target, nil
}

// classifyOnTarget re-derives a center's classification from the current
// state of the render target, reading the red channel as the binary plane.
func classifyOnTarget(target *image.RGBA, x, y int) colorful.Color {
	b := target.Bounds()
	kind := detection.KindNone
	if x > b.Min.X && x < b.Max.X-1 && y > b.Min.Y && y < b.Max.Y-1 {
		var nb detection.Neighborhood
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nb[dy+1][dx+1] = target.RGBAAt(x+dx, y+dy).R == 255
			}
		}
		kind = detection.Classify(nb)
	}

	switch kind {
	case detection.KindEndpoint:
		return colorEndpoint
	case detection.KindCorner:
		return colorCorner
	case detection.KindTJunction:
		return colorTJunction
	}
	return colorOther
}
