package detection

import (
	"image"
	"math"
	"sort"
)

// Segment is a straight line segment with integer endpoints in image
// coordinates. Endpoints always lie within the bounds of the image the
// segment was detected on.
type Segment struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// LineParams controls the Hough line extractor.
type LineParams struct {
	// VoteThreshold is the minimum accumulator support for a line candidate.
	VoteThreshold int `json:"vote_threshold"`

	// MinLength is the minimum segment length in pixels.
	MinLength int `json:"min_length"`

	// MaxGap is the largest run of missing pixels tolerated inside one
	// segment before it is split.
	MaxGap int `json:"max_gap"`
}

// DefaultLineParams returns the extractor defaults.
func DefaultLineParams() LineParams {
	return LineParams{
		VoteThreshold: 50,
		MinLength:     50,
		MaxGap:        10,
	}
}

// Fixed hysteresis bounds for the edge extraction feeding the transform.
const (
	edgeThresholdLow  = 50
	edgeThresholdHigh = 150
)

// lineTolerance is the max distance (in pixels) from the parameterized line
// at which an edge pixel is considered to support it.
const lineTolerance = 2.0

// DetectSegments recovers straight wall segments from a skeleton image.
//
// Edge pixels are extracted first (Canny, fixed 50/150 hysteresis), then a
// linear Hough accumulator is built at 1-pixel distance and 1-degree angle
// resolution. Accumulator cells that reach VoteThreshold and are local
// maxima are traced back to their supporting edge pixels, which are walked
// in order along the line and split wherever a gap exceeds MaxGap. Runs
// shorter than MinLength are dropped, and edge pixels claimed by an
// accepted segment do not support later candidates.
//
// An image with no qualifying lines yields an empty slice.
func DetectSegments(skel *image.Gray, p LineParams) []Segment {
	segments := make([]Segment, 0)
	if skel == nil {
		return segments
	}
	b := skel.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return segments
	}

	edges := edgeMap(skel, edgeThresholdLow, edgeThresholdHigh)

	maxDist := int(math.Sqrt(float64(width*width + height*height)))
	if maxDist == 0 {
		return segments
	}
	const numAngles = 180
	accumulator := make([][]int, maxDist*2)
	for i := range accumulator {
		accumulator[i] = make([]int, numAngles)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !edges[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				angle := float64(theta) * math.Pi / 180.0
				rho := float64(x)*math.Cos(angle) + float64(y)*math.Sin(angle)
				rhoIdx := int(rho) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					accumulator[rhoIdx][theta]++
				}
			}
		}
	}

	type peak struct {
		rho   int
		theta int
		votes int
	}
	peaks := make([]peak, 0)
	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			votes := accumulator[rhoIdx][theta]
			if votes < p.VoteThreshold {
				continue
			}
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + numAngles) % numAngles
					if nr >= 0 && nr < maxDist*2 && accumulator[nr][nt] > votes {
						isMax = false
					}
				}
			}
			if isMax {
				peaks = append(peaks, peak{rho: rhoIdx - maxDist, theta: theta, votes: votes})
			}
		}
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].votes > peaks[j].votes
	})

	used := make([][]bool, height)
	for y := range used {
		used[y] = make([]bool, width)
	}

	for _, pk := range peaks {
		angle := float64(pk.theta) * math.Pi / 180.0
		rho := float64(pk.rho)
		cosA := math.Cos(angle)
		sinA := math.Sin(angle)

		// Supporting pixels, parameterized by their position t along the
		// line x = rho*cos - t*sin, y = rho*sin + t*cos.
		type support struct {
			x, y int
			t    float64
		}
		pts := make([]support, 0)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !edges[y][x] || used[y][x] {
					continue
				}
				dist := math.Abs(float64(x)*cosA + float64(y)*sinA - rho)
				if dist < lineTolerance {
					pts = append(pts, support{x: x, y: y, t: -float64(x)*sinA + float64(y)*cosA})
				}
			}
		}
		if len(pts) < p.VoteThreshold {
			continue
		}

		sort.Slice(pts, func(i, j int) bool { return pts[i].t < pts[j].t })

		runStart := 0
		for i := 1; i <= len(pts); i++ {
			if i < len(pts) && pts[i].t-pts[i-1].t <= float64(p.MaxGap) {
				continue
			}
			run := pts[runStart:i]
			runStart = i
			if len(run) == 0 {
				continue
			}
			length := run[len(run)-1].t - run[0].t
			if length < float64(p.MinLength) {
				continue
			}
			seg := segmentOnLine(rho, cosA, sinA, run[0].t, run[len(run)-1].t, width, height)
			segments = append(segments, seg)
			for _, s := range run {
				used[s.y][s.x] = true
			}
		}
	}

	return filterDuplicateSegments(segments)
}

// segmentOnLine projects the run extremes back onto the parameterized line
// and clamps the rounded endpoints into image bounds.
func segmentOnLine(rho, cosA, sinA, t1, t2 float64, width, height int) Segment {
	x1 := int(math.Round(rho*cosA - t1*sinA))
	y1 := int(math.Round(rho*sinA + t1*cosA))
	x2 := int(math.Round(rho*cosA - t2*sinA))
	y2 := int(math.Round(rho*sinA + t2*cosA))
	return Segment{
		X1: clamp(x1, 0, width-1),
		Y1: clamp(y1, 0, height-1),
		X2: clamp(x2, 0, width-1),
		Y2: clamp(y2, 0, height-1),
	}
}

// filterDuplicateSegments drops segments that re-detect an already accepted
// line, which happens when edge extraction produces parallel responses on
// both sides of a thin stroke. Segments are duplicates when their angles
// differ by under 3 degrees, the midpoint of one lies within 5 pixels of
// the other's carrier line, and their extents overlap.
func filterDuplicateSegments(segments []Segment) []Segment {
	kept := make([]Segment, 0, len(segments))
	for _, s := range segments {
		dup := false
		for _, k := range kept {
			if segmentsSimilar(s, k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, s)
		}
	}
	return kept
}

func segmentsSimilar(a, b Segment) bool {
	angleA := math.Atan2(float64(a.Y2-a.Y1), float64(a.X2-a.X1))
	angleB := math.Atan2(float64(b.Y2-b.Y1), float64(b.X2-b.X1))
	diff := math.Abs(angleA - angleB)
	// Undirected lines: fold the angle difference into [0, pi/2].
	for diff > math.Pi {
		diff -= math.Pi
	}
	diff = math.Abs(diff)
	if diff > math.Pi/2 {
		diff = math.Pi - diff
	}
	if diff > 3*math.Pi/180 {
		return false
	}

	midX := float64(a.X1+a.X2) / 2
	midY := float64(a.Y1+a.Y2) / 2
	if pointLineDistance(midX, midY, b) > 5 {
		return false
	}

	// Require overlap of projections on b's direction.
	dx := float64(b.X2 - b.X1)
	dy := float64(b.Y2 - b.Y1)
	lenB := math.Hypot(dx, dy)
	if lenB == 0 {
		return true
	}
	ux, uy := dx/lenB, dy/lenB
	tA1 := (float64(a.X1)-float64(b.X1))*ux + (float64(a.Y1)-float64(b.Y1))*uy
	tA2 := (float64(a.X2)-float64(b.X1))*ux + (float64(a.Y2)-float64(b.Y1))*uy
	lo, hi := math.Min(tA1, tA2), math.Max(tA1, tA2)
	return hi >= 0 && lo <= lenB
}

// pointLineDistance returns the perpendicular distance from (x, y) to the
// infinite line carrying s.
func pointLineDistance(x, y float64, s Segment) float64 {
	dx := float64(s.X2 - s.X1)
	dy := float64(s.Y2 - s.Y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(x-float64(s.X1), y-float64(s.Y1))
	}
	return math.Abs(dy*(x-float64(s.X1))-dx*(y-float64(s.Y1))) / length
}
