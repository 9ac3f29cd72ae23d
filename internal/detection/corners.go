package detection

import (
	"image"
	"math"
	"sort"
)

// PointParams controls the two-pass feature point detector.
type PointParams struct {
	// MaxPoints caps the number of candidates kept by the sparse pass.
	MaxPoints int `json:"max_points"`

	// MinQuality is the corner-strength cutoff for the sparse pass,
	// expressed as a fraction of the strongest response in the image.
	MinQuality float64 `json:"min_quality"`

	// MinDistance is the minimum pixel distance enforced between sparse
	// candidates, and the per-axis closeness used to suppress duplicates
	// in the exhaustive pass.
	MinDistance int `json:"min_distance"`
}

// DefaultPointParams returns the detector defaults.
func DefaultPointParams() PointParams {
	return PointParams{
		MaxPoints:   500,
		MinQuality:  0.001,
		MinDistance: 10,
	}
}

// DetectFeaturePoints finds classified structural points on a skeleton image.
//
// Two passes run in order:
//
//  1. A sparse strong-corner pass selects up to MaxPoints foreground pixels
//     by minimum-eigenvalue corner response, spaced at least MinDistance
//     apart. Each selected pixel with a full 3x3 neighborhood is classified;
//     pixels that classify as none are discarded.
//
//  2. An exhaustive pass scans every interior foreground pixel and accepts
//     endpoints and t-junctions that are not already represented. A point is
//     considered represented when an accepted point lies within MinDistance
//     on BOTH axes independently (not Euclidean distance).
//
// Corners are only ever produced by the first pass. An image with no
// qualifying pixels yields an empty slice.
func DetectFeaturePoints(skel *image.Gray, p PointParams) []FeaturePoint {
	points := make([]FeaturePoint, 0)
	if skel == nil {
		return points
	}
	b := skel.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return points
	}

	// Pass 1: sparse corner candidates.
	for _, c := range strongCorners(skel, p) {
		kind := ClassifyAt(skel, b.Min.X+c.X, b.Min.Y+c.Y)
		if kind == KindNone {
			continue
		}
		points = append(points, FeaturePoint{X: c.X, Y: c.Y, Kind: kind})
	}

	// Pass 2: exhaustive endpoint / t-junction scan.
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if skel.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0 {
				continue
			}
			kind := ClassifyAt(skel, b.Min.X+x, b.Min.Y+y)
			if kind != KindEndpoint && kind != KindTJunction {
				continue
			}
			if hasNearbyPoint(points, x, y, p.MinDistance) {
				continue
			}
			points = append(points, FeaturePoint{X: x, Y: y, Kind: kind})
		}
	}

	return points
}

// hasNearbyPoint reports whether any accepted point lies within dist of
// (x, y) on both axes. The per-axis check is intentional; it matches the
// detector's historical duplicate suppression and is cheaper than Euclidean.
func hasNearbyPoint(points []FeaturePoint, x, y, dist int) bool {
	for _, pt := range points {
		if abs(x-pt.X) < dist && abs(y-pt.Y) < dist {
			return true
		}
	}
	return false
}

// strongCorners selects up to MaxPoints foreground pixels ranked by
// Shi-Tomasi corner response (the smaller eigenvalue of the 3x3 structure
// tensor built from Sobel gradients), enforcing MinDistance spacing.
func strongCorners(skel *image.Gray, p PointParams) []Point {
	b := skel.Bounds()
	width, height := b.Dx(), b.Dy()
	if width < 3 || height < 3 || p.MaxPoints <= 0 {
		return nil
	}

	gray := make([][]float64, height)
	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			gray[y][x] = float64(skel.GrayAt(b.Min.X+x, b.Min.Y+y).Y) / 255.0
		}
	}

	gradX, gradY := sobelGradients(gray, width, height)

	// Minimum eigenvalue of the structure tensor summed over a 3x3 block,
	// evaluated at foreground pixels only.
	type candidate struct {
		x, y  int
		score float64
	}
	scores := make([]candidate, 0)
	maxScore := 0.0
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if gray[y][x] == 0 {
				continue
			}
			var sxx, syy, sxy float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					gx := gradX[y+dy][x+dx]
					gy := gradY[y+dy][x+dx]
					sxx += gx * gx
					syy += gy * gy
					sxy += gx * gy
				}
			}
			// Smaller eigenvalue of [[sxx, sxy], [sxy, syy]].
			lambda := ((sxx + syy) - math.Sqrt((sxx-syy)*(sxx-syy)+4*sxy*sxy)) / 2
			if lambda <= 0 {
				continue
			}
			scores = append(scores, candidate{x: x, y: y, score: lambda})
			if lambda > maxScore {
				maxScore = lambda
			}
		}
	}
	if maxScore == 0 {
		return nil
	}

	cutoff := p.MinQuality * maxScore
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	minDistSq := float64(p.MinDistance * p.MinDistance)
	selected := make([]Point, 0)
	for _, c := range scores {
		if c.score < cutoff {
			break
		}
		tooClose := false
		for _, s := range selected {
			dx := float64(c.x - s.X)
			dy := float64(c.y - s.Y)
			if dx*dx+dy*dy < minDistSq {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		selected = append(selected, Point{X: c.x, Y: c.y})
		if len(selected) >= p.MaxPoints {
			break
		}
	}
	return selected
}

// sobelGradients computes horizontal and vertical Sobel gradients with
// clamped borders.
func sobelGradients(gray [][]float64, width, height int) ([][]float64, [][]float64) {
	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	gradX := make([][]float64, height)
	gradY := make([][]float64, height)
	for y := 0; y < height; y++ {
		gradX[y] = make([]float64, width)
		gradY[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += gray[py][px] * sobelX[ky+1][kx+1]
					gy += gray[py][px] * sobelY[ky+1][kx+1]
				}
			}
			gradX[y][x] = gx
			gradY[y][x] = gy
		}
	}
	return gradX, gradY
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
