// Package braille implements a dot-matrix drawing surface backed by
// Unicode braille characters. Each character cell holds a 2x4 dot grid,
// so a canvas of W x H cells addresses (W*2) x (H*4) dots.
package braille

const blank = 0x2800

// Dot positions within one braille cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells. Cells hold runes at offset 0x2800.
type Canvas struct {
	Cols, Rows int
	Cells      [][]rune
}

// NewCanvas allocates a cols x rows canvas with every cell blank.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, Cells: make([][]rune, rows)}
	for i := range c.Cells {
		c.Cells[i] = make([]rune, cols)
		for j := range c.Cells[i] {
			c.Cells[i][j] = blank
		}
	}
	return c
}

// DotWidth and DotHeight report the canvas size in dot coordinates.
func (c *Canvas) DotWidth() int  { return c.Cols * 2 }
func (c *Canvas) DotHeight() int { return c.Rows * 4 }

// Set turns on the dot at (x, y) in dot coordinates. Out-of-range
// coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	c.Cells[row][col] |= dotBits[y%4][x%2]
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.Cells {
		for j := range c.Cells[i] {
			c.Cells[i][j] = blank
		}
	}
}

// Line draws a straight dot line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm, in dot coordinates.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
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

// Dots visits every lit dot, calling fn with its dot coordinates.
func (c *Canvas) Dots(fn func(x, y int)) {
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			pattern := c.Cells[row][col] - blank
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] != 0 {
						fn(col*2+dx, row*4+dy)
					}
				}
			}
		}
	}
}

// String renders the canvas as Rows lines of braille runes.
func (c *Canvas) String() string {
	out := make([]rune, 0, c.Rows*(c.Cols+1))
	for i, row := range c.Cells {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, row...)
	}
	return string(out)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
