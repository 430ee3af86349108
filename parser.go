package forth

import (
	"strconv"
	"unicode"
)

// A Node is one typed element of a parsed line.  The interpreter consumes
// nodes through the Parser boundary and never inspects raw grammar.
type Node interface{ node() }

// LiteralNode pushes an already-typed literal.
type LiteralNode struct{ Lit Literal }

// NameNode invokes a word, or resolves a variable or constant name.
type NameNode struct{ Name string }

// DeclareNode declares a new unset variable: `variable x`.
type DeclareNode struct{ Name string }

// ConstantNode binds a constant to the value popped at execution time:
// `10 constant ten`.
type ConstantNode struct{ Name string }

// DefineNode defines a user word from its already-parsed body:
// `: name ... ;`.
type DefineNode struct {
	Name string
	Body []Node
}

func (LiteralNode) node()  {}
func (NameNode) node()     {}
func (DeclareNode) node()  {}
func (ConstantNode) node() {}
func (DefineNode) node()   {}

// Parser turns one line of source text into a sequence of typed nodes, or
// fails with a *SyntaxError.  The interpreter treats it as a black box.
type Parser interface {
	ParseLine(line string) ([]Node, error)
}

// textParser is the default Parser: whitespace-separated tokens, signed
// decimal integers, double-quoted strings with backslash escapes, `( ... )`
// comments, and the defining forms `variable`, `constant`, and `: ... ;`.
type textParser struct{}

// NewParser returns the default text parser.
func NewParser() Parser { return textParser{} }

func (textParser) ParseLine(line string) ([]Node, error) {
	sc := &lineScanner{src: []rune(line)}
	nodes, err := sc.parse(false)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

type lineScanner struct {
	src []rune
	pos int
}

func (sc *lineScanner) errorf(offset int, msg string) error {
	return &SyntaxError{Offset: offset, Msg: msg}
}

// parse consumes tokens until end of line, or until the terminating `;` when
// inside a definition body.
func (sc *lineScanner) parse(inDef bool) ([]Node, error) {
	var nodes []Node
	for {
		tok, at, ok, err := sc.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			if inDef {
				return nil, sc.errorf(at, "unterminated definition")
			}
			return nodes, nil
		}

		switch tok.text {
		case ";":
			if tok.quoted {
				break
			}
			if !inDef {
				return nil, sc.errorf(at, `";" outside a definition`)
			}
			return nodes, nil
		case ":":
			if tok.quoted {
				break
			}
			if inDef {
				return nil, sc.errorf(at, "definitions do not nest")
			}
			name, err := sc.nameAfter(at, "definition")
			if err != nil {
				return nil, err
			}
			body, err := sc.parse(true)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, DefineNode{Name: name, Body: body})
			continue
		case "variable":
			if tok.quoted {
				break
			}
			name, err := sc.nameAfter(at, "variable")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, DeclareNode{Name: name})
			continue
		case "constant":
			if tok.quoted {
				break
			}
			name, err := sc.nameAfter(at, "constant")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ConstantNode{Name: name})
			continue
		}

		nodes = append(nodes, tok.typed())
	}
}

// nameAfter scans the name token required by a defining form.
func (sc *lineScanner) nameAfter(at int, form string) (string, error) {
	tok, _, ok, err := sc.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", sc.errorf(at, "missing name after "+form)
	}
	return tok.text, nil
}

type token struct {
	text   string
	quoted bool
}

// typed classifies a plain token: a fully-numeric token is an integer
// literal, a quoted token is a string literal, anything else is a name.
func (tok token) typed() Node {
	if tok.quoted {
		return LiteralNode{Lit: Str(tok.text)}
	}
	if n, err := strconv.ParseInt(tok.text, 10, 64); err == nil {
		return LiteralNode{Lit: Int(n)}
	}
	return NameNode{Name: tok.text}
}

// next scans one token, skipping whitespace and `( ... )` comments.  It
// reports ok=false at end of line; the returned offset points at the start
// of the token (or at end of line).
func (sc *lineScanner) next() (tok token, at int, ok bool, err error) {
	for {
		for sc.pos < len(sc.src) && unicode.IsSpace(sc.src[sc.pos]) {
			sc.pos++
		}
		if sc.pos >= len(sc.src) {
			return token{}, sc.pos, false, nil
		}
		at = sc.pos
		switch sc.src[sc.pos] {
		case '(':
			if err := sc.skipComment(at); err != nil {
				return token{}, at, false, err
			}
			continue
		case '"':
			s, err := sc.scanString(at)
			if err != nil {
				return token{}, at, false, err
			}
			return token{text: s, quoted: true}, at, true, nil
		}
		return token{text: sc.scanBare()}, at, true, nil
	}
}

func (sc *lineScanner) scanBare() string {
	start := sc.pos
	for sc.pos < len(sc.src) && !unicode.IsSpace(sc.src[sc.pos]) {
		sc.pos++
	}
	return string(sc.src[start:sc.pos])
}

func (sc *lineScanner) scanString(at int) (string, error) {
	sc.pos++ // opening quote
	var sb []rune
	for sc.pos < len(sc.src) {
		r := sc.src[sc.pos]
		sc.pos++
		switch r {
		case '"':
			return string(sb), nil
		case '\\':
			if sc.pos >= len(sc.src) {
				return "", sc.errorf(at, "unterminated string")
			}
			e := sc.src[sc.pos]
			sc.pos++
			switch e {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case '"', '\\':
				sb = append(sb, e)
			default:
				return "", sc.errorf(sc.pos-1, `unknown escape \`+string(e))
			}
		default:
			sb = append(sb, r)
		}
	}
	return "", sc.errorf(at, "unterminated string")
}

func (sc *lineScanner) skipComment(at int) error {
	for sc.pos < len(sc.src) {
		if sc.src[sc.pos] == ')' {
			sc.pos++
			return nil
		}
		sc.pos++
	}
	return sc.errorf(at, "unterminated comment")
}
