package diagram

import "seehuhn.de/go/geom/vec"

// Canvas is the drawable area of a diagram.
// Width and Height are the displayed size; the view box is the unscaled
// coordinate window, shifted so the margin surrounds the drawing.
type Canvas struct {
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	ViewBoxOrigin vec.Vec2 `json:"view_box_origin"`
	ViewBoxWidth  float64  `json:"view_box_width"`
	ViewBoxHeight float64  `json:"view_box_height"`
}

// Bounds computes the canvas for a grid. An empty grid is treated like a
// single state at (0,0).
func Bounds(g Grid, cfg Config) Canvas {
	maxCol, maxRow := g.MaxExtent()
	extent := cfg.Pixel(GridPosition{Column: maxCol, Row: maxRow})
	pad := cfg.Radius + cfg.Gap + 2*cfg.Margin

	w := extent.X + pad
	h := extent.Y + pad
	return Canvas{
		Width:         w * cfg.Scale,
		Height:        h * cfg.Scale,
		ViewBoxOrigin: vec.Vec2{X: -cfg.Margin, Y: -cfg.Margin},
		ViewBoxWidth:  w,
		ViewBoxHeight: h,
	}
}
