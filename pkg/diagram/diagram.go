// Package diagram lays out a finite automaton and derives the geometry
// needed to draw it: marker positions, edge curves, arrowheads, label
// anchors and canvas bounds.
//
// Everything here is a pure function of the automaton and a Config. The
// typical entry point is Build, which runs the whole pipeline:
//
//	d := diagram.Build(machines.NFA, diagram.DefaultConfig())
//	for _, m := range d.Markers { ... }
//	for _, e := range d.Edges { ... }
//
// Call Build again whenever the automaton changes; results are never
// updated in place.
package diagram

import (
	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// MarkerKind selects how a state marker is drawn.
type MarkerKind int

const (
	MarkerNormal  MarkerKind = iota
	MarkerInitial            // state 0
)

func (k MarkerKind) String() string {
	if k == MarkerInitial {
		return "initial"
	}
	return "normal"
}

// MarshalText encodes the kind by name.
func (k MarkerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarkerKindOf returns the marker variant for a state id.
func MarkerKindOf(id int) MarkerKind {
	if id == 0 {
		return MarkerInitial
	}
	return MarkerNormal
}

// Marker is the draw instruction for one state.
type Marker struct {
	ID      int          `json:"id"`
	Kind    MarkerKind   `json:"kind"`
	Accepts bool         `json:"accepts"` // draw the accept ring
	Grid    GridPosition `json:"grid"`
	Center  vec.Vec2     `json:"center"`
}

// DrawnEdge is the draw instruction for one transition.
type DrawnEdge struct {
	Edge
	Curve  Curve    `json:"curve"`
	Arrow  Polygon  `json:"arrow"`
	Anchor vec.Vec2 `json:"anchor"` // label position
}

// Diagram is the complete draw-instruction set for an automaton.
type Diagram struct {
	Config  Config      `json:"config"`
	Markers []Marker    `json:"markers"`
	Edges   []DrawnEdge `json:"edges"`
	Canvas  Canvas      `json:"canvas"`

	// Omitted lists states unreachable from state 0. They have no marker
	// and their outgoing edges are not drawn.
	Omitted []int `json:"omitted,omitempty"`

	// Skipped lists edges that could not be drawn.
	Skipped []Edge `json:"skipped,omitempty"`
}

// Edges lists every transition of the automaton as an Edge, in the order
// Build draws them: by source id, then symbols sorted with targets in list
// order, then epsilon targets.
func Edges(a *fsm.Automaton) []Edge {
	var edges []Edge
	for id, s := range a.States {
		for _, sym := range s.Symbols() {
			for _, to := range s.Branches[sym] {
				edges = append(edges, Edge{From: id, To: to, Label: sym})
			}
		}
		for _, to := range s.EpsilonTransitions {
			edges = append(edges, Edge{From: id, To: to})
		}
	}
	return edges
}

// Build lays out the automaton and computes all draw instructions.
func Build(a *fsm.Automaton, cfg Config) *Diagram {
	grid := Assign(a)
	d := &Diagram{
		Config: cfg,
		Canvas: Bounds(grid, cfg),
	}

	for id, s := range a.States {
		pos, ok := grid[id]
		if !ok {
			d.Omitted = append(d.Omitted, id)
			continue
		}
		d.Markers = append(d.Markers, Marker{
			ID:      id,
			Kind:    MarkerKindOf(id),
			Accepts: s.Accepts,
			Grid:    pos,
			Center:  cfg.Pixel(pos),
		})
	}

	for _, e := range Edges(a) {
		if _, ok := grid[e.From]; !ok {
			// unreachable source; already reported in Omitted
			continue
		}
		curve, err := CurveFor(e, grid, cfg)
		if err != nil {
			d.Skipped = append(d.Skipped, e)
			continue
		}
		arrow, err := ArrowFor(curve, cfg)
		if err != nil {
			d.Skipped = append(d.Skipped, e)
			continue
		}
		d.Edges = append(d.Edges, DrawnEdge{
			Edge:   e,
			Curve:  curve,
			Arrow:  arrow,
			Anchor: LabelAnchor(curve),
		})
	}

	return d
}

// Marker returns the marker of a state, if it was placed.
func (d *Diagram) Marker(id int) (Marker, bool) {
	for _, m := range d.Markers {
		if m.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}
