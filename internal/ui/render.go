package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Jaesung-Jung/Colors/internal/converter"
	"github.com/Jaesung-Jung/Colors/internal/representation"
)

// RenderText writes a human-readable listing of a conversion: a swatch
// header followed by one line per representation.
func RenderText(w io.Writer, res converter.Result, ok bool, st Styles) error {
	var sb strings.Builder

	if !ok {
		sb.WriteString(st.Hint.Render(IconNoResults + " no results"))
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	// Terminals cannot show alpha, so the swatch uses the opaque hex.
	hex := representation.Render(representation.Hex, res.Color, false).Text

	sb.WriteString(Swatch(hex).Render(IconSwatch))
	sb.WriteString(" ")
	sb.WriteString(st.Header.Render(strings.TrimSpace(res.Query)))
	sb.WriteString("\n")

	for _, rep := range res.Representations {
		fmt.Fprintf(&sb, "%s %s %s\n",
			st.Frame.Render(IconSeparator),
			st.Label.Render(rep.Label),
			st.Text.Render(rep.Text),
		)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
