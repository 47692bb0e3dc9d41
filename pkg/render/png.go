// Native PNG rendering of diagrams. Mirrors the SVG renderer output.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ha1tch/fsmviz/pkg/diagram"
)

// Colors used in rendering
var (
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorBlack      = color.RGBA{51, 51, 51, 255}    // #333
	colorGray       = color.RGBA{102, 102, 102, 255} // #666
	colorInitial    = color.RGBA{232, 245, 233, 255} // #e8f5e9
	colorInitialBdr = color.RGBA{46, 125, 50, 255}   // #2e7d32
)

// WritePNG renders the diagram as a PNG image of Canvas.Width by
// Canvas.Height pixels.
func WritePNG(w io.Writer, d *diagram.Diagram, opts Options) error {
	img, err := Image(d, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image rasterizes the diagram.
func Image(d *diagram.Diagram, opts Options) (image.Image, error) {
	c := d.Canvas
	width := int(math.Ceil(c.Width))
	height := int(math.Ceil(c.Height))
	if width <= 0 || height <= 0 || c.ViewBoxWidth <= 0 {
		return nil, fmt.Errorf("empty canvas %gx%g", c.Width, c.Height)
	}
	scale := c.Width / c.ViewBoxWidth

	// glyphs go through the context transform, so the face stays unscaled
	face, err := labelFace(opts.FontSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(colorWhite)
	dc.Clear()
	dc.SetFontFace(face)

	// map view box coordinates onto pixels
	dc.Scale(scale, scale)
	dc.Translate(-c.ViewBoxOrigin.X, -c.ViewBoxOrigin.Y)

	for _, e := range d.Edges {
		drawEdgePNG(dc, e, scale)
	}
	for _, m := range d.Markers {
		drawMarkerPNG(dc, m, d.Config.Radius, scale)
	}

	return dc.Image(), nil
}

func labelFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

func drawEdgePNG(dc *gg.Context, e diagram.DrawnEdge, scale float64) {
	c := e.Curve
	dc.SetLineWidth(1.5 * scale)
	if e.IsEpsilon() {
		dc.SetColor(colorGray)
		dc.SetDash(4*scale, 3*scale)
	} else {
		dc.SetColor(colorBlack)
	}
	dc.MoveTo(c.Start.X, c.Start.Y)
	dc.CubicTo(c.ControlA.X, c.ControlA.Y, c.ControlB.X, c.ControlB.Y, c.End.X, c.End.Y)
	dc.Stroke()
	dc.SetDash()

	if len(e.Arrow) > 0 {
		dc.SetColor(colorBlack)
		dc.MoveTo(e.Arrow[0].X, e.Arrow[0].Y)
		for _, p := range e.Arrow[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.Fill()
	}

	dc.SetColor(colorBlack)
	dc.DrawStringAnchored(labelText(e.Label), e.Anchor.X, e.Anchor.Y, 0.5, 0.5)
}

func drawMarkerPNG(dc *gg.Context, m diagram.Marker, r, scale float64) {
	fill, stroke := color.Color(colorWhite), color.Color(colorBlack)
	if m.Kind == diagram.MarkerInitial {
		fill, stroke = colorInitial, colorInitialBdr
	}

	dc.DrawCircle(m.Center.X, m.Center.Y, r)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(stroke)
	dc.SetLineWidth(2 * scale)
	dc.Stroke()

	if m.Accepts {
		dc.DrawCircle(m.Center.X, m.Center.Y, ringRadius(r))
		dc.SetLineWidth(1.5 * scale)
		dc.Stroke()
	}

	dc.SetColor(colorBlack)
	dc.DrawStringAnchored(fmt.Sprint(m.ID), m.Center.X, m.Center.Y, 0.5, 0.5)
}
