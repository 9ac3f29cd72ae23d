package imaging

import (
	"image"
	"image/color"
)

// ToGray converts any image to 8-bit grayscale using ITU-R BT.601 luminance
// weights (0.299*R + 0.587*G + 0.114*B). The result is anchored at the
// origin regardless of the source bounds.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			luma := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.SetGray(x, y, color.Gray{Y: uint8(luma + 0.5)})
		}
	}
	return gray
}

// grayToGrid copies a binary grayscale image into a boolean lattice,
// treating any value above zero as foreground.
func grayToGrid(g *image.Gray) [][]bool {
	b := g.Bounds()
	width, height := b.Dx(), b.Dy()

	grid := make([][]bool, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			grid[y][x] = g.GrayAt(b.Min.X+x, b.Min.Y+y).Y > 0
		}
	}
	return grid
}

// gridToGray renders a boolean lattice as a strict {0, 255} grayscale image
// anchored at the origin.
func gridToGray(grid [][]bool) *image.Gray {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	g := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x] {
				g.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return g
}
