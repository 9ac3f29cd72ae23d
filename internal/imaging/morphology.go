package imaging

import "image"

// Morphological cleanup of a binary bitmap with a 3x3 square structuring
// element. Opening (erode then dilate) removes isolated specks smaller than
// the neighborhood; closing (dilate then erode) fills small background gaps
// inside foreground regions.

// Open erodes then dilates the bitmap.
func Open(g *image.Gray) *image.Gray {
	return gridToGray(dilateGrid(erodeGrid(grayToGrid(g))))
}

// Close dilates then erodes the bitmap.
func Close(g *image.Gray) *image.Gray {
	return gridToGray(erodeGrid(dilateGrid(grayToGrid(g))))
}

// Clean applies opening then closing, the denoising sequence the pipeline
// runs between binarization and thinning.
func Clean(g *image.Gray) *image.Gray {
	return Close(Open(g))
}

// erodeGrid keeps a pixel foreground only if its whole in-bounds 3x3
// neighborhood is foreground. Out-of-bounds neighbors are treated as
// foreground so strokes touching the border are not eaten away.
func erodeGrid(grid [][]bool) [][]bool {
	height := len(grid)
	if height == 0 {
		return grid
	}
	width := len(grid[0])

	out := make([][]bool, height)
	for y := 0; y < height; y++ {
		out[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if !grid[y][x] {
				continue
			}
			keep := true
			for dy := -1; dy <= 1 && keep; dy++ {
				for dx := -1; dx <= 1 && keep; dx++ {
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= height || nx < 0 || nx >= width {
						continue
					}
					if !grid[ny][nx] {
						keep = false
					}
				}
			}
			out[y][x] = keep
		}
	}
	return out
}

// dilateGrid sets a pixel foreground if any in-bounds 3x3 neighbor is
// foreground.
func dilateGrid(grid [][]bool) [][]bool {
	height := len(grid)
	if height == 0 {
		return grid
	}
	width := len(grid[0])

	out := make([][]bool, height)
	for y := 0; y < height; y++ {
		out[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			set := false
			for dy := -1; dy <= 1 && !set; dy++ {
				for dx := -1; dx <= 1 && !set; dx++ {
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= height || nx < 0 || nx >= width {
						continue
					}
					if grid[ny][nx] {
						set = true
					}
				}
			}
			out[y][x] = set
		}
	}
	return out
}
