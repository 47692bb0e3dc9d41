package render

import (
	"encoding/json"
	"io"

	"github.com/ha1tch/fsmviz/pkg/diagram"
)

// WriteJSON writes the draw instructions of a diagram as indented JSON.
func WriteJSON(w io.Writer, d *diagram.Diagram) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}
