// Package render formats explanation and dashboard results for the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"triage-insights-go/internal/processor"
)

// Renderer writes processor results to w.
type Renderer interface {
	Explanation(w io.Writer, res *processor.ExplanationResult) error
	Dashboard(w io.Writer, res *processor.DashboardResult) error
}

// ForFormat returns the renderer for "text" or "json".
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TextRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
}

// JSONRenderer marshals results to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Explanation(w io.Writer, res *processor.ExplanationResult) error {
	return encode(w, res)
}

func (r *JSONRenderer) Dashboard(w io.Writer, res *processor.DashboardResult) error {
	return encode(w, res)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
