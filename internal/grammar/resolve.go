package grammar

import "github.com/Jaesung-Jung/Colors/internal/color"

// Resolve builds the canonical color for a parsed channel sequence. Missing
// color channels default to 0 and a missing alpha defaults to 1.
func Resolve(g Grammar, channels []float64) color.Color {
	at := func(i int, def float64) float64 {
		if i < len(channels) {
			return channels[i]
		}
		return def
	}

	switch g {
	case HSL, HSV, HSB:
		return color.NewHSB(at(0, 0), at(1, 0), at(2, 0), at(3, 1))
	case Grayscale:
		gray := at(0, 0)
		return color.NewRGB(gray, gray, gray, at(1, 1))
	default:
		// sRGB and Display P3 values pass through unchanged; no color
		// management happens in the converter.
		return color.NewRGB(at(0, 0), at(1, 0), at(2, 0), at(3, 1))
	}
}
