package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Jaesung-Jung/Colors/internal/converter"
)

func TestRenderText(t *testing.T) {
	res, ok := converter.Convert("#FF0000")

	var buf bytes.Buffer
	if err := RenderText(&buf, res, ok, DefaultStyles()); err != nil {
		t.Fatalf("RenderText() error = %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+len(res.Representations) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), 1+len(res.Representations), out)
	}
	for _, want := range []string{"#FF0000", "RGB(255, 0, 0)", "HSB(0, 100, 100)", "Color Literal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderText_NoResults(t *testing.T) {
	res, ok := converter.Convert("notacolor")

	var buf bytes.Buffer
	if err := RenderText(&buf, res, ok, DefaultStyles()); err != nil {
		t.Fatalf("RenderText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "no results") {
		t.Errorf("output = %q, want no results", buf.String())
	}
}
