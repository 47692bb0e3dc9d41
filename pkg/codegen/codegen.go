// Package codegen generates standalone matchers from automata.
//
// Every generator works on the DFA of its input: NFAs are converted with
// the powerset construction first, so the generated code needs no
// backtracking and runs in time linear in the input.
package codegen

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// Options names the generated code.
type Options struct {
	Name    string // base name of the generated type (default "matcher")
	Package string // Go package name (default "match")
	Pattern string // source pattern, recorded in the header comment
}

func (o Options) name() string {
	if n := sanitizeName(o.Name); n != "" {
		return n
	}
	return "matcher"
}

// table is a DFA flattened for code generation.
type table struct {
	states    []row
	accepting []int
}

type row struct {
	id    int
	edges []edge // sorted by symbol
}

type edge struct {
	symbol rune
	to     int
}

// maxStates is the number of states a uint16 state field can address.
const maxStates = math.MaxUint16 + 1

// newTable validates the automaton and flattens its DFA.
func newTable(a *fsm.Automaton) (table, error) {
	if err := a.Validate(); err != nil {
		return table{}, fmt.Errorf("invalid automaton: %w", err)
	}
	dfa := a.ToDFA()
	if len(dfa.States) > maxStates {
		return table{}, fmt.Errorf("DFA has %d states, at most %d are supported", len(dfa.States), maxStates)
	}

	var t table
	for id, s := range dfa.States {
		r := row{id: id}
		for _, sym := range s.Symbols() {
			ch := []rune(sym)[0]
			r.edges = append(r.edges, edge{symbol: ch, to: s.Branches[sym][0]})
		}
		sort.Slice(r.edges, func(i, j int) bool { return r.edges[i].symbol < r.edges[j].symbol })
		t.states = append(t.states, r)
	}
	t.accepting = dfa.Accepting()
	return t, nil
}

// sanitizeName converts a name to a valid lowercase ASCII identifier.
func sanitizeName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune('_')
		}
	}
	name := strings.Trim(sb.String(), "_")
	if name != "" && unicode.IsDigit(rune(name[0])) {
		name = "m_" + name
	}
	return name
}

// toPascalCase converts snake_case to PascalCase.
func toPascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if len(p) > 0 {
			runes := []rune(p)
			runes[0] = unicode.ToUpper(runes[0])
			parts[i] = string(runes)
		}
	}
	return strings.Join(parts, "")
}

func joinInts(ids []int, sep string, format func(int) string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = format(id)
	}
	return strings.Join(parts, sep)
}
