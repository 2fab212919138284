package core

// Color is a foreground color tag for a screen cell. The TUI layer maps
// these to ANSI colors; the plain ASCII renderer ignores them.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightYellow
	ColorOrange
)
