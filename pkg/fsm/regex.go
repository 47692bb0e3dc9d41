package fsm

import (
	"errors"
	"fmt"
)

// Pattern errors. A failed parse returns a *PatternError wrapping one of these.
var (
	ErrEmpty           = errors.New("input is empty")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// PatternError reports where a pattern failed to parse.
type PatternError struct {
	Pattern string
	Pos     int // rune offset into Pattern
	Err     error
}

func (e *PatternError) Error() string {
	if e.Err == ErrEmpty {
		return fmt.Sprintf("pattern: %v", e.Err)
	}
	return fmt.Sprintf("pattern %q at %d: %v", e.Pattern, e.Pos, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Node is a parsed pattern element.
type Node interface {
	node()
}

// Literal matches a single character.
type Literal struct {
	Char rune
}

// Repeat matches its operand zero or more times (p*).
type Repeat struct {
	Sub Node
}

// Alternate matches either operand (p|q).
type Alternate struct {
	Left, Right Node
}

// Concat matches Left followed by Right (pq).
type Concat struct {
	Left, Right Node
}

func (Literal) node()   {}
func (Repeat) node()    {}
func (Alternate) node() {}
func (Concat) node()    {}

// isSpecial reports whether r is an operator character.
func isSpecial(r rune) bool {
	switch r {
	case '(', ')', '*', '|':
		return true
	}
	return false
}

// parser is a recursive-descent parser over the pattern runes.
// Precedence from tightest: '*', concatenation, '|'.
type parser struct {
	src   string
	runes []rune
	pos   int
}

// Parse parses a pattern made of literal characters, grouping with
// parentheses, the postfix '*' operator and '|' alternation.
func Parse(pattern string) (Node, error) {
	p := &parser{src: pattern, runes: []rune(pattern)}
	if len(p.runes) == 0 {
		return nil, p.fail(ErrEmpty)
	}

	n, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		// only a stray ')' can stop the top-level alternation early
		return nil, p.fail(ErrUnexpectedToken)
	}
	return n, nil
}

func (p *parser) done() bool { return p.pos >= len(p.runes) }

func (p *parser) peek() rune { return p.runes[p.pos] }

func (p *parser) fail(err error) error {
	return &PatternError{Pattern: p.src, Pos: p.pos, Err: err}
}

func (p *parser) alternation() (Node, error) {
	left, err := p.concatenation()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek() == '|' {
		p.pos++
		if p.done() {
			return nil, p.fail(ErrUnexpectedEnd)
		}
		right, err := p.concatenation()
		if err != nil {
			return nil, err
		}
		left = Alternate{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) concatenation() (Node, error) {
	left, err := p.repetition()
	if err != nil {
		return nil, err
	}
	for !p.done() {
		r := p.peek()
		if r != '(' && isSpecial(r) {
			break
		}
		right, err := p.repetition()
		if err != nil {
			return nil, err
		}
		left = Concat{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) repetition() (Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	if !p.done() && p.peek() == '*' {
		p.pos++
		n = Repeat{Sub: n}
		if !p.done() && p.peek() == '*' {
			return nil, p.fail(ErrUnexpectedToken)
		}
	}
	return n, nil
}

func (p *parser) atom() (Node, error) {
	if p.done() {
		return nil, p.fail(ErrUnexpectedEnd)
	}

	r := p.peek()
	switch {
	case r == '(':
		p.pos++
		if p.done() {
			return nil, p.fail(ErrUnexpectedEnd)
		}
		inner, err := p.alternation()
		if err != nil {
			return nil, err
		}
		if p.done() {
			return nil, p.fail(ErrUnexpectedEnd)
		}
		p.pos++ // ')'
		return inner, nil
	case isSpecial(r):
		return nil, p.fail(ErrUnexpectedToken)
	default:
		p.pos++
		return Literal{Char: r}, nil
	}
}
