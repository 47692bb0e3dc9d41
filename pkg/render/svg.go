package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/fsmviz/pkg/diagram"
)

const svgStyle = `
  .state { fill: white; stroke: #333; stroke-width: 2; }
  .state-initial { fill: #e8f5e9; stroke: #2e7d32; stroke-width: 2; }
  .ring { fill: none; stroke: #333; stroke-width: 1.5; }
  .state-label { font-family: sans-serif; font-size: %gpx; text-anchor: middle; dominant-baseline: middle; }
  .edge { fill: none; stroke: #333; stroke-width: 1.5; }
  .edge-epsilon { fill: none; stroke: #666; stroke-width: 1.5; stroke-dasharray: 4,3; }
  .arrow { fill: #333; stroke: none; }
  .edge-label { font-family: sans-serif; font-size: %gpx; fill: #333; text-anchor: middle; dominant-baseline: middle; }
`

// WriteSVG renders the diagram as an SVG document.
// Edges are drawn first so markers sit on top of them.
func WriteSVG(w io.Writer, d *diagram.Diagram, opts Options) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	c := d.Canvas
	viewBox := fmt.Sprintf(`viewBox="%s %s %s %s"`,
		num(c.ViewBoxOrigin.X), num(c.ViewBoxOrigin.Y), num(c.ViewBoxWidth), num(c.ViewBoxHeight))
	canvas.Start(int(math.Ceil(c.Width)), int(math.Ceil(c.Height)), viewBox)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Style("text/css", fmt.Sprintf(svgStyle, opts.FontSize, opts.FontSize*0.85))

	canvas.Gid("edges")
	for _, e := range d.Edges {
		class := `class="edge"`
		if e.IsEpsilon() {
			class = `class="edge-epsilon"`
		}
		canvas.Path(curvePath(e.Curve), class)
		canvas.Path(polygonPath(e.Arrow), `class="arrow"`)
		x, y := round(e.Anchor)
		canvas.Text(x, y, labelText(e.Label), `class="edge-label"`)
	}
	canvas.Gend()

	canvas.Gid("states")
	r := d.Config.Radius
	for _, m := range d.Markers {
		x, y := round(m.Center)
		class := `class="state"`
		if m.Kind == diagram.MarkerInitial {
			class = `class="state-initial"`
		}
		canvas.Circle(x, y, int(math.Round(r)), class)
		if m.Accepts {
			canvas.Circle(x, y, int(math.Round(ringRadius(r))), `class="ring"`)
		}
		canvas.Text(x, y, fmt.Sprint(m.ID), `class="state-label"`)
	}
	canvas.Gend()
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

// ringRadius is the radius of the accept ring inside a marker.
func ringRadius(r float64) float64 {
	if r > ringInset {
		return r - ringInset
	}
	return r / 2
}

func curvePath(c diagram.Curve) string {
	return fmt.Sprintf("M%s C%s %s %s", pt(c.Start), pt(c.ControlA), pt(c.ControlB), pt(c.End))
}

func polygonPath(p diagram.Polygon) string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M" + pt(p[0]))
	for _, v := range p[1:] {
		sb.WriteString(" L" + pt(v))
	}
	sb.WriteString(" Z")
	return sb.String()
}

func pt(v vec.Vec2) string {
	return num(v.X) + "," + num(v.Y)
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func round(v vec.Vec2) (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
