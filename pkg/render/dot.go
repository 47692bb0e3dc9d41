package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ha1tch/fsmviz/pkg/diagram"
	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// GenerateDOT converts an automaton to Graphviz DOT format.
// Parallel transitions between the same pair of states share one edge
// with their labels joined.
func GenerateDOT(a *fsm.Automaton, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph FSM {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\", fontsize=11];\n")
	sb.WriteString("    edge [fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("\n")

	if title != "" {
		sb.WriteString("    labelloc=\"t\";\n")
		sb.WriteString(fmt.Sprintf("    label=\"%s\";\n", escapeDOT(title)))
		sb.WriteString("\n")
	}

	if len(a.States) > 0 {
		sb.WriteString("    __start [shape=none, label=\"\", width=0, height=0];\n")
		sb.WriteString("    __start -> s0;\n")
		sb.WriteString("\n")
	}

	for id, s := range a.States {
		shape := "circle"
		if s.Accepts {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    s%d [shape=%s, label=\"%d\"];\n", id, shape, id))
	}
	sb.WriteString("\n")

	// group labels by (from, to), keeping first-seen order
	var order [][2]int
	labels := make(map[[2]int][]string)
	for _, e := range diagram.Edges(a) {
		key := [2]int{e.From, e.To}
		if _, ok := labels[key]; !ok {
			order = append(order, key)
		}
		labels[key] = append(labels[key], labelText(e.Label))
	}

	for _, key := range order {
		combined := strings.Join(labels[key], ", ")
		sb.WriteString(fmt.Sprintf("    s%d -> s%d [label=\"%s\"];\n",
			key[0], key[1], escapeDOT(combined)))
	}

	sb.WriteString("}\n")

	return sb.String()
}

// RenderDOT lays out a DOT graph with Graphviz and returns it as SVG.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "<", "\\<")
	s = strings.ReplaceAll(s, ">", "\\>")
	return s
}
