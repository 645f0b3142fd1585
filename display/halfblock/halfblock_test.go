package halfblock

import (
	"image"
	"image/color"
	"testing"
)

func TestGridSamplesTopAndBottom(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	for x := range 4 {
		img.Set(x, 0, red)
		img.Set(x, 1, red)
		img.Set(x, 2, blue)
		img.Set(x, 3, blue)
	}

	grid := Grid(img, 2, 1)
	if len(grid) != 1 || len(grid[0]) != 2 {
		t.Fatalf("grid shape = %dx%d, want 1x2", len(grid), len(grid[0]))
	}
	cell := grid[0][1]
	if cell.Top != color.Color(red) {
		t.Errorf("Top = %v, want red", cell.Top)
	}
	if cell.Bottom != color.Color(blue) {
		t.Errorf("Bottom = %v, want blue", cell.Bottom)
	}
}

func TestGridEmpty(t *testing.T) {
	if Grid(nil, 2, 2) != nil {
		t.Error("nil image should give nil grid")
	}
	if Grid(image.NewRGBA(image.Rect(0, 0, 2, 2)), 0, 2) != nil {
		t.Error("zero columns should give nil grid")
	}
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		col, row int
		wantX    int
		wantY    int
	}{
		{0, 0, 5, 10},
		{9, 9, 95, 190},
		{5, 0, 55, 10},
	}
	for _, tt := range tests {
		x, y := ToPixel(tt.col, tt.row, 10, 10, 100, 200)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ToPixel(%d, %d) = (%d, %d), want (%d, %d)", tt.col, tt.row, x, y, tt.wantX, tt.wantY)
		}
	}
}
