package diagram

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Config holds the fixed layout constants. All values are in unscaled
// pixels except Scale, which multiplies the final canvas size.
type Config struct {
	Radius    float64 `toml:"radius" json:"radius"`         // state marker radius
	Gap       float64 `toml:"gap" json:"gap"`               // space between a marker and its grid cell edge
	ArrowSize float64 `toml:"arrow_size" json:"arrow_size"` // arrowhead length scale
	Margin    float64 `toml:"margin" json:"margin"`         // border around the drawing
	Scale     float64 `toml:"scale" json:"scale"`           // display scale factor
}

// DefaultConfig returns the standard layout constants.
func DefaultConfig() Config {
	return Config{
		Radius:    20,
		Gap:       15,
		ArrowSize: 10,
		Margin:    10,
		Scale:     1.5,
	}
}

// Validate checks that every constant is usable.
func (c Config) Validate() error {
	switch {
	case c.Radius <= 0:
		return fmt.Errorf("radius must be positive, got %g", c.Radius)
	case c.Gap < 0:
		return fmt.Errorf("gap must not be negative, got %g", c.Gap)
	case c.ArrowSize <= 0:
		return fmt.Errorf("arrow_size must be positive, got %g", c.ArrowSize)
	case c.Margin < 0:
		return fmt.Errorf("margin must not be negative, got %g", c.Margin)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	return nil
}

// cell converts one grid coordinate to the pixel coordinate of its centre.
// Cells are 2*(Radius+Gap) wide.
func (c Config) cell(n int) float64 {
	return (c.Radius + c.Gap) * float64(2*n+1)
}

// Pixel returns the pixel centre of a grid position.
func (c Config) Pixel(p GridPosition) vec.Vec2 {
	return vec.Vec2{X: c.cell(p.Column), Y: c.cell(p.Row)}
}
