package viz

import "strings"

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot matrix with a rune overlay for glyphs (charge
// signs, particle labels). The sub-pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
	overlay       [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		grid:    make([][]rune, h),
		overlay: make([][]rune, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.overlay[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

// SetGlyph places a rune at cell coordinates; glyphs render on top of dots.
func (c *Canvas) SetGlyph(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.overlay[row][col] = r
}

// Clear resets dots and glyphs.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.overlay[i][j] = 0
		}
	}
}

// CopyFrom overwrites this canvas with the contents of another of the same
// dimensions. Used to stamp the cached static layer under the dynamic pass.
func (c *Canvas) CopyFrom(other *Canvas) {
	if other == nil || other.Width != c.Width || other.Height != c.Height {
		return
	}
	for i := range c.grid {
		copy(c.grid[i], other.grid[i])
		copy(c.overlay[i], other.overlay[i])
	}
}

// DrawLine draws a dot line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Dot reports whether any dot in the cell at (col, row) is lit.
func (c *Canvas) Dot(col, row int) bool {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return false
	}
	return c.grid[row][col] != 0x2800
}

// Glyph returns the overlay rune at (col, row), or 0.
func (c *Canvas) Glyph(col, row int) rune {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return 0
	}
	return c.overlay[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		for j, r := range row {
			if g := c.overlay[i][j]; g != 0 {
				b.WriteRune(g)
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
