// Package halfblock maps a canvas image onto a character grid where each
// cell shows two vertically stacked pixels with the upper half block
// glyph: foreground on top, background below.
package halfblock

import (
	"image"
	"image/color"
)

// Glyph is the upper half block.
const Glyph = '▀'

// Cell is one character position.
type Cell struct {
	Top, Bottom color.Color
}

// Grid samples img into cols x rows cells, nearest neighbour. A nil image
// or an empty grid yields nil.
func Grid(img image.Image, cols, rows int) [][]Cell {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	grid := make([][]Cell, rows)
	for r := range rows {
		row := make([]Cell, cols)
		for c := range cols {
			x := b.Min.X + c*b.Dx()/cols
			top := b.Min.Y + (2*r)*b.Dy()/(2*rows)
			bottom := b.Min.Y + (2*r+1)*b.Dy()/(2*rows)
			row[c] = Cell{Top: img.At(x, top), Bottom: img.At(x, bottom)}
		}
		grid[r] = row
	}
	return grid
}

// ToPixel maps the cell at (col, row) on a cols x rows grid to the pixel
// at its centre on a width x height canvas.
func ToPixel(col, row, cols, rows, width, height int) (int, int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (2*col + 1) * width / (2 * cols)
	y := (2*row + 1) * height / (2 * rows)
	return x, y
}
