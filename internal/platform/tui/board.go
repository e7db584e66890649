package tui

import (
	"math"

	"github.com/vovakirdan/voltkid/internal/canvas"
	"github.com/vovakirdan/voltkid/internal/circuit"
	"github.com/vovakirdan/voltkid/internal/hex"
)

// Board glyphs.
const (
	glyphEmpty = '·'
	glyphPath  = '•'
	glyphStart = '◇'
)

// BoardView projects a hex board onto terminal cells.
// Columns of equal q are CellWidth characters apart and each step in r
// moves two rows down, so neighbors never share a row and column.
type BoardView struct {
	layout    hex.Layout
	cellWidth int
	radius    int
	xScale    float64
	yScale    float64
}

// Marks are the overlays drawn on top of the board.
type Marks struct {
	Cursor    hex.Coord
	HasCursor bool
	Hint      hex.Coord
	HasHint   bool
	Armed     bool
}

// NewBoardView creates a view for a board of the given radius.
func NewBoardView(hexSize float64, cellWidth, radius int) BoardView {
	if hexSize <= 0 {
		hexSize = 1
	}
	cellWidth = max(3, cellWidth)
	return BoardView{
		layout:    hex.NewLayout(hexSize, hex.Point{}),
		cellWidth: cellWidth,
		radius:    max(0, radius),
		xScale:    float64(cellWidth) / (1.5 * hexSize),
		yScale:    2 / (math.Sqrt(3) * hexSize),
	}
}

// Size returns the canvas dimensions the board needs.
func (v BoardView) Size() (w, h int) {
	return 2*v.radius*v.cellWidth + 5, 4*v.radius + 1
}

// origin is the canvas position of hex (0,0).
func (v BoardView) origin() (x, y int) {
	return v.radius*v.cellWidth + 2, 2 * v.radius
}

// ToScreen returns the canvas cell at the center of hex c.
func (v BoardView) ToScreen(c hex.Coord) (x, y int) {
	p := v.layout.Pixel(c)
	ox, oy := v.origin()
	return ox + int(math.Round(p.X*v.xScale)), oy + int(math.Round(p.Y*v.yScale))
}

// FromScreen returns the hex under canvas cell (x, y).
func (v BoardView) FromScreen(x, y int) hex.Coord {
	ox, oy := v.origin()
	p := hex.Point{
		X: float64(x-ox) / v.xScale,
		Y: float64(y-oy) / v.yScale,
	}
	return v.layout.FromPixel(p)
}

// Draw renders the board and overlays into cv. cv should be at least Size().
func (v BoardView) Draw(cv *canvas.Canvas, b *circuit.Board, m Marks) {
	onPath := make(map[hex.Coord]bool)
	for _, c := range b.Path() {
		onPath[c] = true
	}

	for _, c := range b.Cells() {
		x, y := v.ToScreen(c)
		glyph, color := v.content(b, c, onPath[c])
		cv.Set(x, y, glyph, color)
	}

	if m.HasHint {
		x, y := v.ToScreen(m.Hint)
		cv.Set(x-1, y, '>', canvas.ColorMagenta)
		cv.Set(x+1, y, '<', canvas.ColorMagenta)
	}

	px, py := v.ToScreen(b.Player())
	cv.Set(px-1, py, '(', canvas.ColorMagenta)
	cv.Set(px+1, py, ')', canvas.ColorMagenta)

	if m.HasCursor {
		color := canvas.ColorBrightCyan
		if m.Armed {
			color = canvas.ColorRed
		}
		left, right := '[', ']'
		if m.Cursor == b.Player() {
			left, right = '{', '}'
		}
		x, y := v.ToScreen(m.Cursor)
		cv.Set(x-1, y, left, color)
		cv.Set(x+1, y, right, color)
	}
}

func (v BoardView) content(b *circuit.Board, c hex.Coord, onPath bool) (rune, canvas.Color) {
	if comp, ok := b.ComponentAt(c); ok {
		sym := comp.Type.Symbol()
		if !b.IsActivated(c) {
			return sym, canvas.ColorWhite
		}
		return sym, activeColor(comp.Type)
	}
	switch {
	case onPath:
		return glyphPath, canvas.ColorCyan
	case c == b.Start():
		return glyphStart, canvas.ColorBlue
	default:
		return glyphEmpty, canvas.ColorGray
	}
}

func activeColor(t circuit.ComponentType) canvas.Color {
	switch t {
	case circuit.Battery:
		return canvas.ColorBrightGreen
	case circuit.Bulb:
		return canvas.ColorBrightYellow
	case circuit.Switch:
		return canvas.ColorOrange
	case circuit.Connector:
		return canvas.ColorBrightCyan
	default:
		return canvas.ColorYellow
	}
}

// DrawBoard renders a board without overlays as plain text.
func DrawBoard(b *circuit.Board, hexSize float64, cellWidth int) string {
	v := NewBoardView(hexSize, cellWidth, b.Radius())
	w, h := v.Size()
	cv := canvas.New(w, h)
	v.Draw(cv, b, Marks{})
	return cv.Trimmed()
}
