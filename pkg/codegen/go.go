package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// GenerateGo generates a Go matcher for the automaton.
// The generated code has no imports and no heap allocations in Step.
func GenerateGo(a *fsm.Automaton, opts Options) (string, error) {
	t, err := newTable(a)
	if err != nil {
		return "", err
	}
	typeName := toPascalCase(opts.name())
	pkg := sanitizeName(opts.Package)
	if pkg == "" {
		pkg = "match"
	}

	var sb strings.Builder

	sb.WriteString("// Code generated by fsmviz. DO NOT EDIT.\n")
	if opts.Pattern != "" {
		sb.WriteString(fmt.Sprintf("// Pattern: %s\n", strings.ReplaceAll(opts.Pattern, "\n", " ")))
	}
	sb.WriteString(fmt.Sprintf("\npackage %s\n\n", pkg))

	sb.WriteString(fmt.Sprintf("// %s is a deterministic matcher with %d states.\n", typeName, len(t.states)))
	sb.WriteString(fmt.Sprintf("type %s struct {\n", typeName))
	sb.WriteString("\tstate uint16\n")
	sb.WriteString("\tdead  bool\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("// New%s creates a matcher in its initial state.\n", typeName))
	sb.WriteString(fmt.Sprintf("func New%s() *%s {\n", typeName, typeName))
	sb.WriteString(fmt.Sprintf("\treturn &%s{}\n", typeName))
	sb.WriteString("}\n\n")

	sb.WriteString("// State returns the current state.\n")
	sb.WriteString(fmt.Sprintf("func (m *%s) State() int {\n", typeName))
	sb.WriteString("\treturn int(m.state)\n")
	sb.WriteString("}\n\n")

	sb.WriteString("// Step consumes one character.\n")
	sb.WriteString("// Returns false, and rejects all further input, if there is no transition.\n")
	sb.WriteString(fmt.Sprintf("func (m *%s) Step(r rune) bool {\n", typeName))
	sb.WriteString("\tif m.dead {\n\t\treturn false\n\t}\n")
	sb.WriteString("\tswitch m.state {\n")
	for _, row := range t.states {
		if len(row.edges) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\tcase %d:\n", row.id))
		sb.WriteString("\t\tswitch r {\n")
		for _, e := range row.edges {
			sb.WriteString(fmt.Sprintf("\t\tcase %s:\n", strconv.QuoteRune(e.symbol)))
			sb.WriteString(fmt.Sprintf("\t\t\tm.state = %d\n", e.to))
			sb.WriteString("\t\t\treturn true\n")
		}
		sb.WriteString("\t\t}\n")
	}
	sb.WriteString("\t}\n")
	sb.WriteString("\tm.dead = true\n")
	sb.WriteString("\treturn false\n")
	sb.WriteString("}\n\n")

	sb.WriteString("// IsAccepting returns true if the input so far is accepted.\n")
	sb.WriteString(fmt.Sprintf("func (m *%s) IsAccepting() bool {\n", typeName))
	if len(t.accepting) > 0 {
		sb.WriteString("\tif m.dead {\n\t\treturn false\n\t}\n")
		sb.WriteString("\tswitch m.state {\n")
		sb.WriteString(fmt.Sprintf("\tcase %s:\n", joinInts(t.accepting, ", ", strconv.Itoa)))
		sb.WriteString("\t\treturn true\n")
		sb.WriteString("\t}\n")
	}
	sb.WriteString("\treturn false\n")
	sb.WriteString("}\n\n")

	sb.WriteString("// Reset returns the matcher to its initial state.\n")
	sb.WriteString(fmt.Sprintf("func (m *%s) Reset() {\n", typeName))
	sb.WriteString("\tm.state = 0\n")
	sb.WriteString("\tm.dead = false\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("// Match%s reports whether the whole input is accepted.\n", typeName))
	sb.WriteString(fmt.Sprintf("func Match%s(input string) bool {\n", typeName))
	sb.WriteString(fmt.Sprintf("\tvar m %s\n", typeName))
	sb.WriteString("\tfor _, r := range input {\n")
	sb.WriteString("\t\tif !m.Step(r) {\n\t\t\treturn false\n\t\t}\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn m.IsAccepting()\n")
	sb.WriteString("}\n")

	return sb.String(), nil
}
