package optics

import (
	"strconv"
	"strings"

	opterrors "github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/tree"
)

// FromKeys builds a lens from a dynamic key list: strings become Prop steps
// and integers become Index steps.
func FromKeys(keys []any) (Lens, error) {
	steps := make([]Step, 0, len(keys))
	for i, k := range keys {
		switch x := k.(type) {
		case string:
			steps = append(steps, PropStep{Key: x})
		case int:
			steps = append(steps, IndexStep{Index: x})
		case int32:
			steps = append(steps, IndexStep{Index: int(x)})
		case int64:
			steps = append(steps, IndexStep{Index: int(x)})
		case float64:
			if x != float64(int(x)) {
				return Lens{}, opterrors.Newf(opterrors.ErrCodeInvalidPath, "key %d: %v is not an integer index", i, x)
			}
			steps = append(steps, IndexStep{Index: int(x)})
		default:
			return Lens{}, opterrors.Newf(opterrors.ErrCodeInvalidPath, "key %d: unsupported key type %T", i, k)
		}
	}
	return Lens{steps: steps}, nil
}

// ParseOption tunes ParsePath.
type ParseOption func(*parser)

// WithOutOfRange sets the update policy of every index step in the path.
func WithOutOfRange(policy OutOfRange) ParseOption {
	return func(p *parser) { p.policy = policy }
}

// ParsePath compiles a textual path into an optic:
//
//	a.b.c            Prop steps (a leading "$" is allowed)
//	a["b c"]         Prop with an arbitrary key
//	names[3]         Index
//	names[*]  .*     Elems
//	names[?id=="x"]  Find the first element whose field id equals "x"
//	names[*]?(id=="x")  When: keep foci whose field id equals "x"
//	children{s1}     At: the field if present
//
// Literals are JSON: double-quoted strings, numbers, true, false, null.
func ParsePath(expr string, opts ...ParseOption) (Optic, error) {
	p := &parser{expr: expr}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return FromSteps(p.steps...), nil
}

// MustParsePath is ParsePath for expressions known at compile time.
func MustParsePath(expr string, opts ...ParseOption) Optic {
	o, err := ParsePath(expr, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

type parser struct {
	expr   string
	pos    int
	policy OutOfRange
	steps  []Step
}

func (p *parser) fail(reason string) error {
	return opterrors.InvalidPath(p.expr, p.pos, reason)
}

func (p *parser) peek() byte {
	if p.pos < len(p.expr) {
		return p.expr[p.pos]
	}
	return 0
}

func (p *parser) eof() bool { return p.pos >= len(p.expr) }

func (p *parser) skipSpace() {
	for !p.eof() && p.peek() == ' ' {
		p.pos++
	}
}

func (p *parser) parse() error {
	p.expr = strings.TrimSpace(p.expr)
	if p.peek() == '$' {
		p.pos++
	}
	if !p.eof() && isIdentStart(p.peek()) {
		p.steps = append(p.steps, PropStep{Key: p.ident()})
	}
	for !p.eof() {
		var err error
		switch p.peek() {
		case '.':
			err = p.dot()
		case '[':
			err = p.bracket()
		case '{':
			err = p.brace()
		case '?':
			err = p.when()
		default:
			err = p.fail("unexpected character " + strconv.QuoteRune(rune(p.peek())))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) dot() error {
	p.pos++
	switch {
	case p.peek() == '*':
		p.pos++
		p.steps = append(p.steps, ElemsStep{})
	case !p.eof() && (isIdentStart(p.peek()) || isDigit(p.peek())):
		p.steps = append(p.steps, PropStep{Key: p.ident()})
	default:
		return p.fail("expected field name after '.'")
	}
	return nil
}

func (p *parser) bracket() error {
	p.pos++
	p.skipSpace()
	switch c := p.peek(); {
	case c == '*':
		p.pos++
		p.steps = append(p.steps, ElemsStep{})
	case c == '"':
		key, err := p.quoted()
		if err != nil {
			return err
		}
		p.steps = append(p.steps, PropStep{Key: key})
	case c == '?':
		p.pos++
		label, pred, err := p.filter()
		if err != nil {
			return err
		}
		p.steps = append(p.steps, FindStep{Pred: pred, Label: label})
	case c == '-' || isDigit(c):
		start := p.pos
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
		}
		n, err := strconv.Atoi(p.expr[start:p.pos])
		if err != nil {
			p.pos = start
			return p.fail("invalid index")
		}
		p.steps = append(p.steps, IndexStep{Index: n, OutOfRange: p.policy})
	default:
		return p.fail("expected index, '*', '?' or quoted key after '['")
	}
	p.skipSpace()
	if p.peek() != ']' {
		return p.fail("expected ']'")
	}
	p.pos++
	return nil
}

func (p *parser) brace() error {
	p.pos++
	p.skipSpace()
	var key string
	switch {
	case p.peek() == '"':
		k, err := p.quoted()
		if err != nil {
			return err
		}
		key = k
	case !p.eof() && (isIdentStart(p.peek()) || isDigit(p.peek())):
		key = p.ident()
	default:
		return p.fail("expected key after '{'")
	}
	p.skipSpace()
	if p.peek() != '}' {
		return p.fail("expected '}'")
	}
	p.pos++
	p.steps = append(p.steps, AtStep{Key: key})
	return nil
}

func (p *parser) when() error {
	p.pos++
	if p.peek() != '(' {
		return p.fail("expected '(' after '?'")
	}
	p.pos++
	p.skipSpace()
	label, pred, err := p.filter()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.peek() != ')' {
		return p.fail("expected ')'")
	}
	p.pos++
	p.steps = append(p.steps, WhenStep{Pred: pred, Label: label})
	return nil
}

// filter parses `field == literal`.
func (p *parser) filter() (string, Predicate, error) {
	start := p.pos
	p.skipSpace()
	if p.eof() || !isIdentStart(p.peek()) {
		return "", nil, p.fail("expected field name in filter")
	}
	field := p.ident()
	p.skipSpace()
	if !strings.HasPrefix(p.expr[p.pos:], "==") {
		return "", nil, p.fail("expected '==' in filter")
	}
	p.pos += 2
	p.skipSpace()
	want, err := p.literal()
	if err != nil {
		return "", nil, err
	}
	label := strings.TrimSpace(p.expr[start:p.pos])
	return label, FieldEquals(field, want), nil
}

func (p *parser) literal() (tree.Value, error) {
	rest := p.expr[p.pos:]
	switch {
	case strings.HasPrefix(rest, `"`):
		return p.quoted()
	case strings.HasPrefix(rest, "true"):
		p.pos += 4
		return true, nil
	case strings.HasPrefix(rest, "false"):
		p.pos += 5
		return false, nil
	case strings.HasPrefix(rest, "null"):
		p.pos += 4
		return nil, nil
	}
	start := p.pos
	for !p.eof() && strings.IndexByte("+-.eE0123456789", p.peek()) >= 0 {
		p.pos++
	}
	f, err := strconv.ParseFloat(p.expr[start:p.pos], 64)
	if err != nil || start == p.pos {
		p.pos = start
		return nil, p.fail("expected literal")
	}
	return f, nil
}

func (p *parser) quoted() (string, error) {
	q, err := strconv.QuotedPrefix(p.expr[p.pos:])
	if err != nil || q[0] != '"' {
		return "", p.fail("unterminated string")
	}
	s, err := strconv.Unquote(q)
	if err != nil {
		return "", p.fail("invalid string")
	}
	p.pos += len(q)
	return s, nil
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && (isIdentStart(p.peek()) || isDigit(p.peek()) || p.peek() == '-') {
		p.pos++
	}
	return p.expr[start:p.pos]
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
