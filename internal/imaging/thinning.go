package imaging

import (
	"fmt"
	"image"
	"strings"

	apperrors "github.com/ironsheep/floorplan-geometry/internal/errors"
)

// Thinner reduces a binary bitmap to a 1-pixel-wide, connectivity-preserving
// skeleton.
type Thinner interface {
	// Name returns the strategy identifier used in configuration.
	Name() string

	// Thin returns a fresh skeleton bitmap; the input is not mutated.
	Thin(g *image.Gray) *image.Gray
}

// ResolveThinner maps a configured strategy name to an implementation. The
// resolution happens once at process start; an unknown name is a fatal
// configuration error, not a per-call failure. An empty name selects
// Zhang-Suen.
func ResolveThinner(name string) (Thinner, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "zhang-suen", "zhangsuen":
		return zhangSuen{}, nil
	case "guo-hall", "guohall":
		return guoHall{}, nil
	}
	return nil, apperrors.NewUnavailableAlgorithm(
		fmt.Sprintf("no thinning implementation named %q (have zhang-suen, guo-hall)", name), nil)
}

// ring holds the 8 neighbors of a pixel clockwise from north:
// N, NE, E, SE, S, SW, W, NW.
type ring [8]bool

func neighborRing(grid [][]bool, x, y int) ring {
	at := func(nx, ny int) bool {
		if ny < 0 || ny >= len(grid) || nx < 0 || nx >= len(grid[ny]) {
			return false
		}
		return grid[ny][nx]
	}
	return ring{
		at(x, y-1), at(x+1, y-1), at(x+1, y), at(x+1, y+1),
		at(x, y+1), at(x-1, y+1), at(x-1, y), at(x-1, y-1),
	}
}

func (r ring) count() int {
	n := 0
	for _, v := range r {
		if v {
			n++
		}
	}
	return n
}

// transitions counts background-to-foreground steps walking the ring
// clockwise, wrapping at the end.
func (r ring) transitions() int {
	t := 0
	for i := 0; i < 8; i++ {
		if !r[i] && r[(i+1)%8] {
			t++
		}
	}
	return t
}

// zhangSuen implements the classic two-subiteration thinning of Zhang and
// Suen (1984). Each full pass deletes boundary pixels whose removal keeps
// the neighborhood connected, alternating the directional conditions,
// until a pass removes nothing.
type zhangSuen struct{}

func (zhangSuen) Name() string { return "zhang-suen" }

func (zhangSuen) Thin(g *image.Gray) *image.Gray {
	grid := grayToGrid(g)
	height := len(grid)
	if height == 0 {
		return gridToGray(grid)
	}
	width := len(grid[0])

	for {
		changed := false
		for step := 0; step < 2; step++ {
			var deletions [][2]int
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if !grid[y][x] {
						continue
					}
					r := neighborRing(grid, x, y)
					b := r.count()
					if b < 2 || b > 6 || r.transitions() != 1 {
						continue
					}
					// Ring indices: 0=N, 2=E, 4=S, 6=W.
					var c1, c2 bool
					if step == 0 {
						c1 = r[0] && r[2] && r[4]
						c2 = r[2] && r[4] && r[6]
					} else {
						c1 = r[0] && r[2] && r[6]
						c2 = r[0] && r[4] && r[6]
					}
					if !c1 && !c2 {
						deletions = append(deletions, [2]int{x, y})
					}
				}
			}
			for _, d := range deletions {
				grid[d[1]][d[0]] = false
			}
			if len(deletions) > 0 {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return gridToGray(grid)
}

// guoHall implements the two-subiteration thinning of Guo and Hall (1989),
// which tends to preserve diagonal strokes slightly better than Zhang-Suen.
type guoHall struct{}

func (guoHall) Name() string { return "guo-hall" }

func (guoHall) Thin(g *image.Gray) *image.Gray {
	grid := grayToGrid(g)
	height := len(grid)
	if height == 0 {
		return gridToGray(grid)
	}
	width := len(grid[0])

	b2i := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}

	for {
		changed := false
		for step := 0; step < 2; step++ {
			var deletions [][2]int
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if !grid[y][x] {
						continue
					}
					r := neighborRing(grid, x, y)
					// p2..p9 clockwise from north.
					p2, p3, p4, p5 := r[0], r[1], r[2], r[3]
					p6, p7, p8, p9 := r[4], r[5], r[6], r[7]

					c := b2i(!p2 && (p3 || p4)) + b2i(!p4 && (p5 || p6)) +
						b2i(!p6 && (p7 || p8)) + b2i(!p8 && (p9 || p2))
					n1 := b2i(p9 || p2) + b2i(p3 || p4) + b2i(p5 || p6) + b2i(p7 || p8)
					n2 := b2i(p2 || p3) + b2i(p4 || p5) + b2i(p6 || p7) + b2i(p8 || p9)
					n := n1
					if n2 < n {
						n = n2
					}

					var m bool
					if step == 0 {
						m = (p6 || p7 || !p9) && p8
					} else {
						m = (p2 || p3 || !p5) && p4
					}

					if c == 1 && n >= 2 && n <= 3 && !m {
						deletions = append(deletions, [2]int{x, y})
					}
				}
			}
			for _, d := range deletions {
				grid[d[1]][d[0]] = false
			}
			if len(deletions) > 0 {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return gridToGray(grid)
}
