package core

// Color is a foreground or background color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Colors used by the games. ColorDefault leaves the terminal's own color
// untouched.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorGreen
	ColorYellow
	ColorBrightWhite
	ColorBrown
	ColorNavy
)
