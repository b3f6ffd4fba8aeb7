package hal

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xRRGGBB value, one scalar per key.
type Color uint32

const (
	ColorOff    Color = 0x000000
	ColorClear  Color = 0x080808
	ColorWhite  Color = 0xFFFFFF
	ColorRed    Color = 0xFF0000
	ColorOrange Color = 0xFFA500
	ColorYellow Color = 0xFFFF00
	ColorGreen  Color = 0x00FF00
	ColorBlue   Color = 0x0000FF
	ColorIndigo Color = 0x4B0082
	ColorViolet Color = 0x8F00FF

	// ColorError is painted on every key before a fatal halt.
	ColorError = ColorRed
)

// RGB packs three 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels unpacks the three 8-bit channels.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA converts to the stdlib color type used by the LED and display
// drivers. Alpha is fully opaque; pixel implementations may repurpose
// it for brightness.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Darken returns a resting-state variant of c at half brightness,
// scaled in HSV so hue survives the dimming.
func Darken(c Color) Color {
	h, s, v := toColorful(c).Hsv()
	return fromColorful(colorful.Hsv(h, s, v*0.5))
}

// Rainbow returns n colors sweeping red through violet.
func Rainbow(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	for i := range out {
		hue := 300.0 * float64(i) / float64(n)
		out[i] = fromColorful(colorful.Hsv(hue, 1, 1))
	}
	return out
}

func toColorful(c Color) colorful.Color {
	r, g, b := c.Channels()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}
