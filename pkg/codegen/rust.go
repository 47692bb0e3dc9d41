package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// GenerateRust generates a Rust matcher for the automaton.
// The output is no_std compatible.
func GenerateRust(a *fsm.Automaton, opts Options) (string, error) {
	t, err := newTable(a)
	if err != nil {
		return "", err
	}
	typeName := toPascalCase(opts.name())
	fnName := opts.name()

	var sb strings.Builder

	sb.WriteString("// Generated by fsmviz. Do not edit.\n")
	if opts.Pattern != "" {
		sb.WriteString(fmt.Sprintf("// Pattern: %s\n", strings.ReplaceAll(opts.Pattern, "\n", " ")))
	}
	sb.WriteString("\n")

	sb.WriteString("#[derive(Debug, Clone, Copy, Default)]\n")
	sb.WriteString(fmt.Sprintf("pub struct %s {\n", typeName))
	sb.WriteString("    state: u16,\n")
	sb.WriteString("    dead: bool,\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("impl %s {\n", typeName))
	sb.WriteString("    pub const fn new() -> Self {\n")
	sb.WriteString("        Self { state: 0, dead: false }\n")
	sb.WriteString("    }\n\n")

	sb.WriteString("    pub fn state(&self) -> u16 {\n")
	sb.WriteString("        self.state\n")
	sb.WriteString("    }\n\n")

	sb.WriteString("    pub fn step(&mut self, c: char) -> bool {\n")
	sb.WriteString("        if self.dead {\n            return false;\n        }\n")
	sb.WriteString("        let next = match (self.state, c) {\n")
	for _, row := range t.states {
		for _, e := range row.edges {
			sb.WriteString(fmt.Sprintf("            (%d, %s) => %d,\n", row.id, rustChar(e.symbol), e.to))
		}
	}
	sb.WriteString("            _ => {\n")
	sb.WriteString("                self.dead = true;\n")
	sb.WriteString("                return false;\n")
	sb.WriteString("            }\n")
	sb.WriteString("        };\n")
	sb.WriteString("        self.state = next;\n")
	sb.WriteString("        true\n")
	sb.WriteString("    }\n\n")

	sb.WriteString("    pub fn is_accepting(&self) -> bool {\n")
	if len(t.accepting) > 0 {
		sb.WriteString(fmt.Sprintf("        !self.dead && matches!(self.state, %s)\n", joinInts(t.accepting, " | ", strconv.Itoa)))
	} else {
		sb.WriteString("        false\n")
	}
	sb.WriteString("    }\n\n")

	sb.WriteString("    pub fn reset(&mut self) {\n")
	sb.WriteString("        *self = Self::new();\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("pub fn %s_matches(input: &str) -> bool {\n", fnName))
	sb.WriteString(fmt.Sprintf("    let mut m = %s::new();\n", typeName))
	sb.WriteString("    input.chars().all(|c| m.step(c)) && m.is_accepting()\n")
	sb.WriteString("}\n")

	return sb.String(), nil
}

// rustChar formats r as a Rust char literal.
func rustChar(r rune) string {
	switch r {
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`'\u{%x}'`, r)
	}
	return "'" + string(r) + "'"
}
