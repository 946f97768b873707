// Package converter runs a query through sanitizing, grammar selection,
// parsing and resolution, then renders every representation.
package converter

import (
	"github.com/Jaesung-Jung/Colors/internal/color"
	"github.com/Jaesung-Jung/Colors/internal/grammar"
	"github.com/Jaesung-Jung/Colors/internal/logging"
	"github.com/Jaesung-Jung/Colors/internal/representation"
)

// Result is the outcome of a recognized query.
type Result struct {
	Query           string
	Grammar         grammar.Grammar
	Color           color.Color
	UsesAlpha       bool
	Representations []representation.Representation
}

// Convert interprets query as a color. ok is false when no grammar prefix
// matched; that is an empty result, not an error.
func Convert(query string) (Result, bool) {
	g, rest, ok := grammar.Select(grammar.Sanitize(query))
	if !ok {
		logging.Logger().Debug("no grammar matched", "query", query)
		return Result{Query: query}, false
	}

	channels := grammar.Parse(g, rest)
	c := grammar.Resolve(g, channels)
	usesAlpha := g.UsesAlpha(channels)

	logging.Logger().Debug("resolved color",
		"query", query,
		"grammar", g.String(),
		"channels", len(channels),
		"uses_alpha", usesAlpha,
	)

	return Result{
		Query:           query,
		Grammar:         g,
		Color:           c,
		UsesAlpha:       usesAlpha,
		Representations: representation.All(c, usesAlpha),
	}, true
}

// Representations is Convert reduced to its ordered output; unrecognized
// input yields an empty slice.
func Representations(query string) []representation.Representation {
	res, ok := Convert(query)
	if !ok {
		return []representation.Representation{}
	}
	return res.Representations
}
