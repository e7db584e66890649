package canvas

// Color represents a foreground color for a canvas cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightCyan
)
