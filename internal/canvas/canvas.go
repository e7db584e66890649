// Package canvas provides a colored character buffer for drawing boards.
// It has no Bubble Tea dependency so drawing code stays testable.
package canvas

import (
	"strings"
)

// Cell is one character position on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D grid of colored cells.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a canvas with the given dimensions.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  max(0, width),
		height: max(0, height),
	}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the dimensions and clears the canvas.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = max(0, width)
	c.height = max(0, height)
	c.allocate()
	c.Clear()
}

// Clear fills the canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the rune at the given position, or space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters beyond the canvas are clipped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - len([]rune(text))) / 2
	c.DrawText(x, y, text, color)
}

// DrawBox draws a box outline using box-drawing characters.
func (c *Canvas) DrawBox(r Rect, color Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	c.Set(r.X, r.Y, '┌', color)
	c.Set(r.Right()-1, r.Y, '┐', color)
	c.Set(r.X, r.Bottom()-1, '└', color)
	c.Set(r.Right()-1, r.Bottom()-1, '┘', color)

	for x := r.X + 1; x < r.Right()-1; x++ {
		c.Set(x, r.Y, '─', color)
		c.Set(x, r.Bottom()-1, '─', color)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.Set(r.X, y, '│', color)
		c.Set(r.Right()-1, y, '│', color)
	}
}

// String converts the canvas to plain text without colors.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}

// Row returns the plain text of row y.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	runes := make([]rune, c.width)
	for x, cell := range c.cells[y] {
		runes[x] = cell.Rune
	}
	return string(runes)
}

// Trimmed returns the text with trailing spaces removed from every row
// and trailing blank rows dropped.
func (c *Canvas) Trimmed() string {
	lines := strings.Split(c.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
