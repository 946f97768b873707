package representation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Jaesung-Jung/Colors/internal/color"
)

func TestRender(t *testing.T) {
	red := color.NewRGB(1, 0, 0, 1)
	halfRed := color.NewRGB(1, 0, 0, 0.5)

	tests := []struct {
		name      string
		kind      Kind
		c         color.Color
		usesAlpha bool
		label     string
		text      string
	}{
		{"literal", Literal, red, false, LiteralLabel, "#colorLiteral(red: 1, green: 0, blue: 0, alpha: 1)"},
		{"literal alpha", Literal, halfRed, true, LiteralLabel, "#colorLiteral(red: 1, green: 0, blue: 0, alpha: 0.5)"},
		{"hex", Hex, red, false, "Hex", "#FF0000"},
		{"hex alpha", Hex, halfRed, true, "Hex (Alpha)", "#FF000080"},
		{"rgb", RGB, red, false, "RGB", "RGB(255, 0, 0)"},
		{"rgba", RGB, halfRed, true, "RGBA", "RGBA(255, 0, 0, 50)"},
		{"rgb fraction", RGBFraction, red, false, "RGB (Fraction)", "RGB(1, 0, 0)"},
		{"rgba fraction", RGBFraction, halfRed, true, "RGBA (Fraction)", "RGBA(1, 0, 0, 0.5)"},
		{"hsb", HSB, red, false, "HSB", "HSB(0, 100, 100)"},
		{"hsba", HSB, halfRed, true, "HSBA", "HSBA(0, 100, 100, 50)"},
		{"hsb fraction", HSBFraction, red, false, "HSB (Fraction)", "HSB(0, 1, 1)"},
		{"hsba fraction", HSBFraction, halfRed, true, "HSBA (Fraction)", "HSBA(0, 1, 1, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Render(tt.kind, tt.c, tt.usesAlpha)
			if rep.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", rep.Kind, tt.kind)
			}
			if rep.Label != tt.label {
				t.Errorf("Label = %q, want %q", rep.Label, tt.label)
			}
			if rep.Text != tt.text {
				t.Errorf("Text = %q, want %q", rep.Text, tt.text)
			}
		})
	}
}

func TestRender_RoundsHalfAwayFromZero(t *testing.T) {
	// 0.125 scales to exactly 12.5.
	c := color.NewRGB(0, 0, 0, 0.125)
	if got := Render(RGB, c, true).Text; got != "RGBA(0, 0, 0, 13)" {
		t.Errorf("Text = %q, want %q", got, "RGBA(0, 0, 0, 13)")
	}
}

func TestAll_OrderAndAlphaConsistency(t *testing.T) {
	for _, usesAlpha := range []bool{false, true} {
		reps := All(color.NewRGB(0.2, 0.4, 0.6, 0.8), usesAlpha)
		if len(reps) != len(Kinds) {
			t.Fatalf("len(All) = %d, want %d", len(reps), len(Kinds))
		}
		for i, rep := range reps {
			if rep.Kind != Kinds[i] {
				t.Errorf("reps[%d].Kind = %v, want %v", i, rep.Kind, Kinds[i])
			}
		}

		var rgb, rgba, hsb, hsba int
		for _, rep := range reps {
			switch {
			case strings.HasPrefix(rep.Text, "RGBA("):
				rgba++
			case strings.HasPrefix(rep.Text, "RGB("):
				rgb++
			case strings.HasPrefix(rep.Text, "HSBA("):
				hsba++
			case strings.HasPrefix(rep.Text, "HSB("):
				hsb++
			}
		}
		if usesAlpha && (rgb != 0 || hsb != 0 || rgba != 2 || hsba != 2) {
			t.Errorf("usesAlpha: rgb=%d rgba=%d hsb=%d hsba=%d", rgb, rgba, hsb, hsba)
		}
		if !usesAlpha && (rgba != 0 || hsba != 0 || rgb != 2 || hsb != 2) {
			t.Errorf("no alpha: rgb=%d rgba=%d hsb=%d hsba=%d", rgb, rgba, hsb, hsba)
		}
	}
}

func TestRender_IntegerRGBRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := color.NewRGB(float64(v)/255, float64(255-v)/255, float64(v)/255, 1)
		want := fmt.Sprintf("RGB(%d, %d, %d)", v, 255-v, v)
		if got := Render(RGB, c, false).Text; got != want {
			t.Fatalf("Text = %q, want %q", got, want)
		}
	}
}
