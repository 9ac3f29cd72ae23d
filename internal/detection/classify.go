package detection

import "image"

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// PointKind classifies a skeleton pixel by its local 8-neighborhood pattern.
type PointKind string

const (
	// KindNone marks an ordinary skeleton pixel (or a background center).
	KindNone PointKind = "none"

	// KindEndpoint marks a pixel with exactly one foreground neighbor.
	KindEndpoint PointKind = "endpoint"

	// KindCorner marks a pixel where two strokes meet at an angle.
	KindCorner PointKind = "corner"

	// KindTJunction marks a pixel where three strokes meet.
	KindTJunction PointKind = "t_junction"
)

// FeaturePoint is a classified skeleton pixel.
type FeaturePoint struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Kind PointKind `json:"kind"`
}

// Neighborhood is a 3x3 binary patch indexed [row][col], row 0 on top.
// Element [1][1] is the center pixel.
type Neighborhood [3][3]bool

// Classify applies the crossing-number rule to a 3x3 neighborhood.
//
// The 8 neighbors are walked clockwise starting north. With N the number of
// foreground neighbors and T the number of background-to-foreground
// transitions along the walk (wrapping):
//
//   - N == 1            -> endpoint
//   - T == 2 and N == 2 -> corner
//   - T == 2 and N == 3 -> t_junction
//   - anything else     -> none
//
// A background center is always none. Every component that needs to label a
// pixel (detector, annotator) must go through this function so the rule has
// a single definition.
func Classify(nb Neighborhood) PointKind {
	if !nb[1][1] {
		return KindNone
	}

	// Clockwise from north: N, NE, E, SE, S, SW, W, NW.
	ring := [8]bool{
		nb[0][1], nb[0][2], nb[1][2], nb[2][2],
		nb[2][1], nb[2][0], nb[1][0], nb[0][0],
	}

	neighbors := 0
	transitions := 0
	for i := 0; i < 8; i++ {
		if ring[i] {
			neighbors++
		}
		if !ring[i] && ring[(i+1)%8] {
			transitions++
		}
	}

	switch {
	case neighbors == 1:
		return KindEndpoint
	case transitions == 2 && neighbors == 2:
		return KindCorner
	case transitions == 2 && neighbors == 3:
		return KindTJunction
	}
	return KindNone
}

// ClassifyAt classifies the pixel at (x, y) of a binary grayscale image,
// treating any value above zero as foreground. Pixels on the image border
// have no full 3x3 neighborhood and are always none.
func ClassifyAt(g *image.Gray, x, y int) PointKind {
	b := g.Bounds()
	if x <= b.Min.X || x >= b.Max.X-1 || y <= b.Min.Y || y >= b.Max.Y-1 {
		return KindNone
	}

	var nb Neighborhood
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nb[dy+1][dx+1] = g.GrayAt(x+dx, y+dy).Y > 0
		}
	}
	return Classify(nb)
}
