package converter

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/Jaesung-Jung/Colors/internal/grammar"
	"github.com/Jaesung-Jung/Colors/internal/representation"
)

func textOf(t *testing.T, reps []representation.Representation, k representation.Kind) string {
	t.Helper()
	for _, rep := range reps {
		if rep.Kind == k {
			return rep.Text
		}
	}
	t.Fatalf("no %v representation in %v", k, reps)
	return ""
}

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		query     string
		kind      representation.Kind
		want      string
		usesAlpha bool
	}{
		{"#FF0000", representation.RGB, "RGB(255, 0, 0)", false},
		{"#FF0000", representation.HSB, "HSB(0, 100, 100)", false},
		{"rgb(255,0,0,50)", representation.RGB, "RGBA(255, 0, 0, 50)", true},
		{"hsb 120 100 100", representation.RGB, "RGB(0, 255, 0)", false},
		{"grayscale(128)", representation.RGB, "RGB(128, 128, 128)", false},
		{"grayscale(128, 50%)", representation.RGB, "RGBA(128, 128, 128, 50)", true},
		{"RGB(0.5, 0.5, 0.5)", representation.RGBFraction, "RGB(0.5, 0.5, 0.5)", false},
		{"hsl(240, 100%, 100%)", representation.Hex, "#0000FF", false},
		{"hsv(60-100-100)", representation.Hex, "#FFFF00", false},
		{"srgb 255 128 0", representation.Hex, "#FF8000", false},
		{"p3 0 0 255 25", representation.Hex, "#0000FF40", true},
		{"#ff000080", representation.Literal, "#colorLiteral(red: 1, green: 0, blue: 0, alpha: 0.5019607843137255)", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%v", tt.query, tt.kind), func(t *testing.T) {
			res, ok := Convert(tt.query)
			if !ok {
				t.Fatalf("Convert(%q) not recognized", tt.query)
			}
			if res.UsesAlpha != tt.usesAlpha {
				t.Errorf("UsesAlpha = %v, want %v", res.UsesAlpha, tt.usesAlpha)
			}
			if got := textOf(t, res.Representations, tt.kind); got != tt.want {
				t.Errorf("%v text = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestConvert_Unrecognized(t *testing.T) {
	for _, q := range []string{"notacolor", "", "   ", "gray 50", "ff0000"} {
		res, ok := Convert(q)
		if ok {
			t.Errorf("Convert(%q) recognized as %v", q, res.Grammar)
		}
		if reps := Representations(q); reps == nil || len(reps) != 0 {
			t.Errorf("Representations(%q) = %v, want empty", q, reps)
		}
	}
}

func TestConvert_GarbageDegradesToBlack(t *testing.T) {
	res, ok := Convert("rgb banana")
	if !ok {
		t.Fatal("rgb prefix not recognized")
	}
	if res.Grammar != grammar.DeviceRGB {
		t.Errorf("Grammar = %v, want rgb", res.Grammar)
	}
	if got := textOf(t, res.Representations, representation.Hex); got != "#000000" {
		t.Errorf("hex = %q, want #000000", got)
	}
}

func TestConvert_HexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const digits = "0123456789abcdefABCDEF"

	for i := 0; i < 500; i++ {
		n := 6
		if i%2 == 1 {
			n = 8
		}
		var sb strings.Builder
		sb.WriteString("#")
		for j := 0; j < n; j++ {
			sb.WriteByte(digits[rng.IntN(len(digits))])
		}
		query := sb.String()

		got := textOf(t, Representations(query), representation.Hex)
		if want := strings.ToUpper(query); got != want {
			t.Fatalf("hex of %q = %q, want %q", query, got, want)
		}
	}
}

func TestConvert_IntegerRGBRoundTrip(t *testing.T) {
	for _, triple := range [][3]int{{0, 0, 0}, {255, 255, 255}, {1, 2, 3}, {127, 128, 129}, {254, 0, 77}} {
		query := fmt.Sprintf("rgb(%d,%d,%d)", triple[0], triple[1], triple[2])
		want := fmt.Sprintf("RGB(%d, %d, %d)", triple[0], triple[1], triple[2])
		if got := textOf(t, Representations(query), representation.RGB); got != want {
			t.Errorf("%s -> %q, want %q", query, got, want)
		}
	}
}

func TestConvert_HexIdempotent(t *testing.T) {
	for _, query := range []string{"hsb 200 40 70", "rgb 0.3 0.6 0.9 0.4", "grayscale 0.33", "p3 12 34 56"} {
		first, ok := Convert(query)
		if !ok {
			t.Fatalf("Convert(%q) not recognized", query)
		}
		hex := textOf(t, first.Representations, representation.Hex)

		second, ok := Convert(hex)
		if !ok {
			t.Fatalf("Convert(%q) not recognized", hex)
		}
		if !second.Color.Equal(first.Color, 1.0/255) {
			t.Errorf("%q via %q drifted more than 1/255", query, hex)
		}
	}
}

func TestConvert_HueWraps(t *testing.T) {
	full, _ := Convert("hsb(360,100,100)")
	zero, _ := Convert("hsb(0,100,100)")
	if !full.Color.Equal(zero.Color, 1e-9) {
		t.Error("hsb(360,100,100) differs from hsb(0,100,100)")
	}
	for i := range full.Representations {
		if full.Representations[i] != zero.Representations[i] {
			t.Errorf("%v: %q != %q", full.Representations[i].Kind, full.Representations[i].Text, zero.Representations[i].Text)
		}
	}
}
