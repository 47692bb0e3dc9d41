package codegen

import (
	"go/format"
	"strings"
	"testing"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

func compile(t *testing.T, pattern string) *fsm.Automaton {
	t.Helper()
	m, err := fsm.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return m.NFA
}

func TestGenerateGo(t *testing.T) {
	a := compile(t, "ab*")

	code, err := GenerateGo(a, Options{Name: "ab star", Package: "demo", Pattern: "ab*"})
	if err != nil {
		t.Fatalf("GenerateGo failed: %v", err)
	}

	if _, err := format.Source([]byte(code)); err != nil {
		t.Fatalf("Generated Go does not parse: %v\n%s", err, code)
	}

	// DFA of ab*: 0 --a--> 1, 1 --b--> 2, 2 --b--> 2; 1 and 2 accept
	for _, want := range []string{
		"// Code generated by fsmviz. DO NOT EDIT.",
		"// Pattern: ab*",
		"package demo",
		"type AbStar struct",
		"func NewAbStar() *AbStar",
		"func MatchAbStar(input string) bool",
		"case 'a':\n\t\t\tm.state = 1",
		"case 'b':\n\t\t\tm.state = 2",
		"case 1, 2:",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("Expected %q in generated Go:\n%s", want, code)
		}
	}
}

func TestGenerateGoDefaults(t *testing.T) {
	code, err := GenerateGo(compile(t, "a"), Options{})
	if err != nil {
		t.Fatalf("GenerateGo failed: %v", err)
	}

	if !strings.Contains(code, "package match") || !strings.Contains(code, "type Matcher struct") {
		t.Errorf("Expected default package and type names:\n%s", code)
	}
	if strings.Contains(code, "// Pattern:") {
		t.Error("Pattern comment should be omitted when empty")
	}
}

func TestGenerateGoQuotesSymbols(t *testing.T) {
	a := &fsm.Automaton{States: []fsm.State{
		{Branches: map[string][]int{"'": {1}, "\\": {1}}},
		{Accepts: true, Branches: map[string][]int{}},
	}}

	code, err := GenerateGo(a, Options{})
	if err != nil {
		t.Fatalf("GenerateGo failed: %v", err)
	}
	if _, err := format.Source([]byte(code)); err != nil {
		t.Fatalf("Generated Go does not parse: %v\n%s", err, code)
	}
	if !strings.Contains(code, `case '\'':`) || !strings.Contains(code, `case '\\':`) {
		t.Errorf("Expected escaped rune literals:\n%s", code)
	}
}

func TestGenerateGoNoAccepting(t *testing.T) {
	a := &fsm.Automaton{States: []fsm.State{{Branches: map[string][]int{"a": {0}}}}}

	code, err := GenerateGo(a, Options{})
	if err != nil {
		t.Fatalf("GenerateGo failed: %v", err)
	}
	if _, err := format.Source([]byte(code)); err != nil {
		t.Fatalf("Generated Go does not parse: %v\n%s", err, code)
	}
}

func TestGenerateRust(t *testing.T) {
	code, err := GenerateRust(compile(t, "a|b"), Options{Name: "choice"})
	if err != nil {
		t.Fatalf("GenerateRust failed: %v", err)
	}

	for _, want := range []string{
		"pub struct Choice {",
		"(0, 'a') =>",
		"(0, 'b') =>",
		"matches!(self.state,",
		"pub fn choice_matches(input: &str) -> bool",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("Expected %q in generated Rust:\n%s", want, code)
		}
	}
}

func TestGenerateC(t *testing.T) {
	code, err := GenerateC(compile(t, "ab"), Options{Name: "ab"})
	if err != nil {
		t.Fatalf("GenerateC failed: %v", err)
	}

	for _, want := range []string{
		"#ifndef AB_H",
		"} ab_t;",
		"static inline bool ab_step(ab_t *m, char c)",
		"case 'a':",
		"return !m->dead && (m->state == 2);",
		"static inline bool ab_match(const char *s)",
		"#endif // AB_H",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("Expected %q in generated C:\n%s", want, code)
		}
	}
}

func TestGenerateCRejectsNonASCII(t *testing.T) {
	if _, err := GenerateC(compile(t, "é"), Options{}); err == nil {
		t.Error("Expected error for non-ASCII symbol")
	}
}

func TestGenerateRejectsInvalidAutomaton(t *testing.T) {
	tests := []struct {
		name string
		a    *fsm.Automaton
	}{
		{"empty symbol", &fsm.Automaton{States: []fsm.State{{Branches: map[string][]int{"": {0}}}}}},
		{"target out of range", &fsm.Automaton{States: []fsm.State{{Branches: map[string][]int{"a": {3}}}}}},
		{"no states", &fsm.Automaton{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateGo(tt.a, Options{}); err == nil {
				t.Error("GenerateGo: expected error")
			}
			if _, err := GenerateRust(tt.a, Options{}); err == nil {
				t.Error("GenerateRust: expected error")
			}
			if _, err := GenerateC(tt.a, Options{}); err == nil {
				t.Error("GenerateC: expected error")
			}
		})
	}
}

func TestNewTableStateLimit(t *testing.T) {
	// a chain of maxStates+1 states gives a DFA of the same size
	a := &fsm.Automaton{}
	for i := 0; i <= maxStates; i++ {
		a.AddState()
		if i > 0 {
			a.AddBranch(i-1, "a", i)
		}
	}

	if _, err := newTable(a); err == nil || !strings.Contains(err.Error(), "at most") {
		t.Errorf("Expected state limit error, got %v", err)
	}

	a.States = a.States[:maxStates]
	a.States[maxStates-1].Branches = map[string][]int{}
	if _, err := newTable(a); err != nil {
		t.Errorf("Expected %d states to fit, got %v", maxStates, err)
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		r     rune
		rust  string
		cChar string
	}{
		{'a', `'a'`, `'a'`},
		{'\'', `'\''`, `'\''`},
		{'\\', `'\\'`, `'\\'`},
		{'\t', `'\t'`, `'\x09'`},
	}
	for _, tt := range tests {
		if got := rustChar(tt.r); got != tt.rust {
			t.Errorf("rustChar(%q) = %s, want %s", tt.r, got, tt.rust)
		}
		if got := cChar(tt.r); got != tt.cChar {
			t.Errorf("cChar(%q) = %s, want %s", tt.r, got, tt.cChar)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Matcher", "matcher"},
		{"ab star", "ab_star"},
		{"(a|b)*", "a_b"},
		{"1st", "m_1st"},
		{"***", ""},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := toPascalCase("ab_star"); got != "AbStar" {
		t.Errorf("toPascalCase: expected AbStar, got %q", got)
	}
}
