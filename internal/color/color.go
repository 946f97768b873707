package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is the canonical resolved color. All channels are normalized to [0, 1].
//
// Whichever triple the color was built from (RGB or HSB) is authoritative;
// the other one is derived on demand.
type Color struct {
	red, green, blue, alpha float64

	hue, saturation, brightness float64
	hasHSB                      bool
}

// Black is the fully-default color every grammar degrades to.
var Black = NewRGB(0, 0, 0, 1)

// NewRGB creates a color from red, green, blue and alpha channels.
func NewRGB(r, g, b, a float64) Color {
	return Color{
		red:   Clamp(r),
		green: Clamp(g),
		blue:  Clamp(b),
		alpha: Clamp(a),
	}
}

// NewHSB creates a color from hue, saturation, brightness and alpha channels.
// Hue wraps at 1.0, so 360° and 0° resolve to the same color.
func NewHSB(h, s, v, a float64) Color {
	h = WrapHue(h)
	s = Clamp(s)
	v = Clamp(v)

	rgb := colorful.Hsv(h*360, s, v)
	return Color{
		red:        Clamp(rgb.R),
		green:      Clamp(rgb.G),
		blue:       Clamp(rgb.B),
		alpha:      Clamp(a),
		hue:        h,
		saturation: s,
		brightness: v,
		hasHSB:     true,
	}
}

func (c Color) Red() float64   { return c.red }
func (c Color) Green() float64 { return c.green }
func (c Color) Blue() float64  { return c.blue }
func (c Color) Alpha() float64 { return c.alpha }

// RGBA returns the four channel values.
func (c Color) RGBA() (r, g, b, a float64) {
	return c.red, c.green, c.blue, c.alpha
}

// HSB returns hue, saturation and brightness, each in [0, 1].
func (c Color) HSB() (h, s, v float64) {
	if c.hasHSB {
		return c.hue, c.saturation, c.brightness
	}
	h, s, v = colorful.Color{R: c.red, G: c.green, B: c.blue}.Hsv()
	return WrapHue(h / 360), Clamp(s), Clamp(v)
}

// Equal reports whether two colors match within tolerance on every RGBA channel.
func (c Color) Equal(other Color, tolerance float64) bool {
	return math.Abs(c.red-other.red) <= tolerance &&
		math.Abs(c.green-other.green) <= tolerance &&
		math.Abs(c.blue-other.blue) <= tolerance &&
		math.Abs(c.alpha-other.alpha) <= tolerance
}

// Clamp restricts a channel to [0, 1]. NaN becomes 0.
func Clamp(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// WrapHue folds a normalized hue into [0, 1).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}
