// Package render paints a laid-out diagram.Diagram as SVG, PNG, Graphviz
// DOT or JSON. Renderers only read the draw instructions; no layout or
// geometry is computed here.
package render

import "fmt"

// Options controls presentation details that do not affect layout.
type Options struct {
	FontSize float64 `toml:"font_size" json:"font_size"` // label size in view box units
	Title    string  `toml:"title" json:"title"`
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{FontSize: 14}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	if o.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", o.FontSize)
	}
	return nil
}

// epsilonLabel is drawn for transitions without a symbol.
const epsilonLabel = "ε"

// labelText returns the text drawn at an edge's anchor.
func labelText(label string) string {
	if label == "" {
		return epsilonLabel
	}
	return label
}

// ringInset is the distance between a marker circle and its accept ring.
const ringInset = 4
