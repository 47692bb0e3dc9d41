package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/fsmviz/pkg/diagram"
)

// Styles
var (
	styleDefault   = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleState     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStateInit = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTrans     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleLabel     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSidebarH  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMsgError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal cells per grid cell, and where the grid starts.
const (
	cellCols     = 10
	cellRows     = 4
	canvasX      = 1
	canvasY      = 3
	sidebarWidth = 24
	curveSamples = 24
)

const helpText = "Type:Edit  Backspace:Delete  Ctrl+U:Clear  Tab:NFA/DFA  Esc:Quit"

func (w *watcher) draw() {
	w.screen.Clear()
	width, height := w.screen.Size()

	title := fmt.Sprintf("fsmviz  %s  ", strings.ToUpper(string(w.kind)))
	w.drawString(0, 0, title, styleTitle)
	w.drawString(len(title), 0, "pattern: "+string(w.pattern)+"_", styleDefault)

	if w.err != nil {
		w.drawString(0, 1, w.err.Error(), styleMsgError)
	} else if w.diagram != nil {
		w.drawString(0, 1, fmt.Sprintf("%d states, %d edges, canvas %gx%g",
			len(w.diagram.Markers), len(w.diagram.Edges), w.diagram.Canvas.Width, w.diagram.Canvas.Height), styleHelp)
	}

	if w.diagram != nil {
		w.drawDiagram()
		if width > 3*sidebarWidth {
			w.drawSidebar(width-sidebarWidth, height)
		}
	}

	w.drawString(0, height-1, helpText, styleHelp)
}

// toTerm maps a pixel position to a terminal cell.
func (w *watcher) toTerm(p vec.Vec2) (int, int) {
	pitch := 2 * (w.cfg.Radius + w.cfg.Gap)
	x := canvasX + int(math.Floor(p.X*cellCols/pitch))
	y := canvasY + int(math.Floor(p.Y*cellRows/pitch))
	return x, y
}

func (w *watcher) drawDiagram() {
	for _, e := range w.diagram.Edges {
		for i := 1; i < curveSamples; i++ {
			x, y := w.toTerm(e.Curve.At(float64(i) / curveSamples))
			w.screen.SetContent(x, y, '·', nil, styleTrans)
		}
		x, y := w.toTerm(e.Curve.End)
		w.screen.SetContent(x, y, arrowRune(e.Curve.End.Sub(e.Curve.ControlB)), nil, styleTrans)

		lx, ly := w.toTerm(e.Anchor)
		w.drawString(lx, ly, edgeLabel(e.Edge), styleLabel)
	}

	for _, m := range w.diagram.Markers {
		text := markerText(m)
		style := styleState
		if m.Kind == diagram.MarkerInitial {
			style = styleStateInit
		}
		x, y := w.toTerm(m.Center)
		w.drawString(x-len(text)/2, y, text, style)
	}
}

func (w *watcher) drawSidebar(x, height int) {
	w.drawString(x, canvasY, "Transitions", styleSidebarH)
	row := canvasY + 1
	for _, e := range w.diagram.Edges {
		if row >= height-1 {
			break
		}
		w.drawString(x, row, fmt.Sprintf("%d %s %d  %s", e.From, iconArrow, e.To, edgeLabel(e.Edge)), styleDefault)
		row++
	}
	for _, e := range w.diagram.Skipped {
		if row >= height-1 {
			break
		}
		w.drawString(x, row, fmt.Sprintf("%d %s %d  not drawn", e.From, iconArrow, e.To), styleMsgError)
		row++
	}
}

// markerText is "(id)", or "((id))" for accepting states.
func markerText(m diagram.Marker) string {
	if m.Accepts {
		return fmt.Sprintf("((%d))", m.ID)
	}
	return fmt.Sprintf("(%d)", m.ID)
}

// arrowRune picks the arrow glyph closest to direction d (y grows down).
func arrowRune(d vec.Vec2) rune {
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X >= 0 {
			return '→'
		}
		return '←'
	}
	if d.Y >= 0 {
		return '↓'
	}
	return '↑'
}

func (w *watcher) drawString(x, y int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		w.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}
