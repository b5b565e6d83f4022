package core

// Color is a foreground color for a screen cell, mapped to ANSI
// colors by the platform renderer.
type Color uint8

// Colors used by the plot and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightYellow
	ColorOrange
	ColorGray
)
