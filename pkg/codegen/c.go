package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ha1tch/fsmviz/pkg/fsm"
)

// GenerateC generates a header-only C matcher for the automaton.
// The matcher works on bytes, so every symbol must be ASCII.
func GenerateC(a *fsm.Automaton, opts Options) (string, error) {
	t, err := newTable(a)
	if err != nil {
		return "", err
	}
	for _, row := range t.states {
		for _, e := range row.edges {
			if e.symbol > 0x7f {
				return "", fmt.Errorf("symbol %q is not ASCII", e.symbol)
			}
		}
	}
	name := opts.name()
	NAME := strings.ToUpper(name)

	var sb strings.Builder

	sb.WriteString("// Generated by fsmviz. Do not edit.\n")
	if opts.Pattern != "" {
		sb.WriteString(fmt.Sprintf("// Pattern: %s\n", strings.ReplaceAll(opts.Pattern, "\n", " ")))
	}
	sb.WriteString(fmt.Sprintf(`
#ifndef %s_H
#define %s_H

#include <stdbool.h>
#include <stdint.h>

typedef struct {
    uint16_t state;
    bool dead;
} %s_t;

`, NAME, NAME, name))

	sb.WriteString(fmt.Sprintf("static inline void %s_reset(%s_t *m) {\n", name, name))
	sb.WriteString("    m->state = 0;\n")
	sb.WriteString("    m->dead = false;\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("static inline bool %s_step(%s_t *m, char c) {\n", name, name))
	sb.WriteString("    if (m->dead) {\n        return false;\n    }\n")
	sb.WriteString("    switch (m->state) {\n")
	for _, row := range t.states {
		if len(row.edges) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    case %d:\n", row.id))
		sb.WriteString("        switch (c) {\n")
		for _, e := range row.edges {
			sb.WriteString(fmt.Sprintf("        case %s:\n", cChar(e.symbol)))
			sb.WriteString(fmt.Sprintf("            m->state = %d;\n", e.to))
			sb.WriteString("            return true;\n")
		}
		sb.WriteString("        }\n")
		sb.WriteString("        break;\n")
	}
	sb.WriteString("    }\n")
	sb.WriteString("    m->dead = true;\n")
	sb.WriteString("    return false;\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("static inline bool %s_is_accepting(const %s_t *m) {\n", name, name))
	if len(t.accepting) > 0 {
		cond := joinInts(t.accepting, " || ", func(id int) string {
			return "m->state == " + strconv.Itoa(id)
		})
		sb.WriteString(fmt.Sprintf("    return !m->dead && (%s);\n", cond))
	} else {
		sb.WriteString("    return false;\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("static inline bool %s_match(const char *s) {\n", name))
	sb.WriteString(fmt.Sprintf("    %s_t m;\n", name))
	sb.WriteString(fmt.Sprintf("    %s_reset(&m);\n", name))
	sb.WriteString("    for (; *s; s++) {\n")
	sb.WriteString(fmt.Sprintf("        if (!%s_step(&m, *s)) {\n", name))
	sb.WriteString("            return false;\n")
	sb.WriteString("        }\n")
	sb.WriteString("    }\n")
	sb.WriteString(fmt.Sprintf("    return %s_is_accepting(&m);\n", name))
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("#endif // %s_H\n", NAME))

	return sb.String(), nil
}

// cChar formats an ASCII rune as a C char literal.
func cChar(r rune) string {
	switch r {
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`'\x%02x'`, r)
	}
	return "'" + string(r) + "'"
}
