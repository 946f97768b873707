// Package representation renders a canonical color into its textual forms.
package representation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Jaesung-Jung/Colors/internal/color"
)

// Kind identifies one textual rendering of a color.
type Kind int

const (
	Literal Kind = iota
	Hex
	RGB
	RGBFraction
	HSB
	HSBFraction
)

// Kinds lists every representation in output order.
var Kinds = []Kind{Literal, Hex, RGB, RGBFraction, HSB, HSBFraction}

// LiteralLabel names the source-code literal form regardless of alpha.
const LiteralLabel = "Color Literal"

const separator = ", "

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Hex:
		return "hex"
	case RGB:
		return "rgb"
	case RGBFraction:
		return "rgb-fraction"
	case HSB:
		return "hsb"
	case HSBFraction:
		return "hsb-fraction"
	}
	return ""
}

// Representation is one rendered form of a color.
type Representation struct {
	Kind  Kind
	Label string
	Text  string
}

// All renders every kind in output order.
func All(c color.Color, usesAlpha bool) []Representation {
	reps := make([]Representation, 0, len(Kinds))
	for _, k := range Kinds {
		reps = append(reps, Render(k, c, usesAlpha))
	}
	return reps
}

// Render produces the label and text for a single kind. usesAlpha controls
// whether the alpha term is shown; the literal form always shows it.
func Render(k Kind, c color.Color, usesAlpha bool) Representation {
	r, g, b, a := c.RGBA()
	h, s, v := c.HSB()

	rep := Representation{Kind: k}
	switch k {
	case Literal:
		rep.Label = LiteralLabel
		rep.Text = fmt.Sprintf("#colorLiteral(red: %s, green: %s, blue: %s, alpha: %s)",
			fraction(r), fraction(g), fraction(b), fraction(a))

	case Hex:
		rep.Label = alphaName("Hex", " (Alpha)", usesAlpha)
		var sb strings.Builder
		sb.WriteString("#")
		for _, ch := range withAlpha([]float64{r, g, b}, a, usesAlpha) {
			fmt.Fprintf(&sb, "%02X", scale(ch, 255))
		}
		rep.Text = sb.String()

	case RGB:
		rep.Label = alphaName("RGB", "A", usesAlpha)
		parts := []string{
			strconv.Itoa(scale(r, 255)),
			strconv.Itoa(scale(g, 255)),
			strconv.Itoa(scale(b, 255)),
		}
		if usesAlpha {
			parts = append(parts, strconv.Itoa(scale(a, 100)))
		}
		rep.Text = wrap(rep.Label, parts)

	case RGBFraction:
		name := alphaName("RGB", "A", usesAlpha)
		rep.Label = name + " (Fraction)"
		rep.Text = wrap(name, fractions(withAlpha([]float64{r, g, b}, a, usesAlpha)))

	case HSB:
		rep.Label = alphaName("HSB", "A", usesAlpha)
		parts := []string{
			strconv.Itoa(scale(h, 360)),
			strconv.Itoa(scale(s, 100)),
			strconv.Itoa(scale(v, 100)),
		}
		if usesAlpha {
			parts = append(parts, strconv.Itoa(scale(a, 100)))
		}
		rep.Text = wrap(rep.Label, parts)

	case HSBFraction:
		name := alphaName("HSB", "A", usesAlpha)
		rep.Label = name + " (Fraction)"
		rep.Text = wrap(name, fractions(withAlpha([]float64{h, s, v}, a, usesAlpha)))
	}
	return rep
}

// scale multiplies a channel and rounds half away from zero.
func scale(ch, factor float64) int {
	return int(math.Round(ch * factor))
}

func fraction(ch float64) string {
	return strconv.FormatFloat(ch, 'f', -1, 64)
}

func fractions(chs []float64) []string {
	out := make([]string, len(chs))
	for i, ch := range chs {
		out[i] = fraction(ch)
	}
	return out
}

func withAlpha(chs []float64, a float64, usesAlpha bool) []float64 {
	if usesAlpha {
		return append(chs, a)
	}
	return chs
}

func alphaName(name, suffix string, usesAlpha bool) string {
	if usesAlpha {
		return name + suffix
	}
	return name
}

func wrap(name string, parts []string) string {
	return name + "(" + strings.Join(parts, separator) + ")"
}
