package grammar

// Grammar identifies one recognized input syntax for describing a color.
type Grammar int

const (
	Hex Grammar = iota
	DeviceRGB
	StandardRGB
	WideGamutRGB
	HSL
	HSV
	HSB
	Grayscale
)

// All lists every grammar in prefix-match order.
var All = []Grammar{Hex, DeviceRGB, StandardRGB, WideGamutRGB, HSL, HSV, HSB, Grayscale}

// Per-channel divisors for channels given as plain integers or percents.
var (
	rgbScale  = []float64{255, 255, 255, 100}
	hsbScale  = []float64{360, 100, 100, 100}
	grayScale = []float64{255, 100}
)

func (g Grammar) String() string {
	switch g {
	case Hex:
		return "hex"
	case DeviceRGB:
		return "rgb"
	case StandardRGB:
		return "srgb"
	case WideGamutRGB:
		return "p3"
	case HSL:
		return "hsl"
	case HSV:
		return "hsv"
	case HSB:
		return "hsb"
	case Grayscale:
		return "grayscale"
	}
	return ""
}

// Prefix returns the token a sanitized query must start with to select this grammar.
func (g Grammar) Prefix() string {
	if g == Hex {
		return "#"
	}
	return g.String()
}

// Scale returns the per-channel multiplier table. Hex has none.
func (g Grammar) Scale() []float64 {
	switch g {
	case DeviceRGB, StandardRGB, WideGamutRGB:
		return rgbScale
	case HSL, HSV, HSB:
		return hsbScale
	case Grayscale:
		return grayScale
	}
	return nil
}

// AlphaIndex is the channel position that carries alpha.
func (g Grammar) AlphaIndex() int {
	if g == Grayscale {
		return 1
	}
	return 3
}

// UsesAlpha reports whether a parsed channel sequence supplied an explicit alpha.
func (g Grammar) UsesAlpha(channels []float64) bool {
	return len(channels) > g.AlphaIndex()
}
