package render

import "image/color"

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
)

// Palette is the cycling color set shared by the background and the model
// lines, in cycle order.
var Palette = []Color{ColorBlack, ColorWhite, ColorRed, ColorGreen, ColorBlue}

// PaletteNames holds the display name of each Palette entry.
var PaletteNames = []string{"black", "white", "red", "green", "blue"}

// NextColor advances a palette index by one step, wrapping past the end.
func NextColor(i int) int {
	return (i + 1) % len(Palette)
}

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
