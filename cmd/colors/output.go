package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Jaesung-Jung/Colors/internal/converter"
	"github.com/Jaesung-Jung/Colors/internal/icon"
	"github.com/Jaesung-Jung/Colors/internal/model"
	"github.com/Jaesung-Jung/Colors/internal/ui"
)

// writeAlfred emits the script-filter payload. Every item shares one swatch;
// a failed swatch leaves the items without an icon.
func writeAlfred(w io.Writer, res converter.Result, ok bool, cache *icon.Cache) error {
	sf := model.NewScriptFilter()
	if ok {
		iconPath := cache.TryPath(res.Color, res.UsesAlpha)
		for _, rep := range res.Representations {
			sf.AddItem(model.NewItem(rep.Label, rep.Text, iconPath))
		}
	}

	data, err := sf.ToJSON()
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

type jsonColor struct {
	Red        float64 `json:"red"`
	Green      float64 `json:"green"`
	Blue       float64 `json:"blue"`
	Alpha      float64 `json:"alpha"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

type jsonRepresentation struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type jsonResult struct {
	Query           string               `json:"query"`
	Grammar         string               `json:"grammar,omitempty"`
	Color           *jsonColor           `json:"color,omitempty"`
	UsesAlpha       bool                 `json:"uses_alpha"`
	Representations []jsonRepresentation `json:"representations"`
}

// writeJSON emits the conversion with the resolved channel values.
func writeJSON(w io.Writer, res converter.Result, ok bool) error {
	out := jsonResult{
		Query:           res.Query,
		Representations: make([]jsonRepresentation, 0, len(res.Representations)),
	}
	if ok {
		r, g, b, a := res.Color.RGBA()
		h, s, v := res.Color.HSB()
		out.Grammar = res.Grammar.String()
		out.Color = &jsonColor{Red: r, Green: g, Blue: b, Alpha: a, Hue: h, Saturation: s, Brightness: v}
		out.UsesAlpha = res.UsesAlpha
		for _, rep := range res.Representations {
			out.Representations = append(out.Representations, jsonRepresentation{
				Kind:  rep.Kind.String(),
				Label: rep.Label,
				Text:  rep.Text,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

func writeText(w io.Writer, res converter.Result, ok bool) error {
	return ui.RenderText(w, res, ok, ui.DefaultStyles())
}
