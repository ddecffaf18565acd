package literal

import (
	"strconv"
	"strings"
)

// node is either a list of child nodes or a leaf token.
type node struct {
	list     bool
	children []*node
	text     string // leaf token, trimmed
	pos      int    // byte offset of the '[' or of the token
}

type parser struct {
	src string
	pos int
}

// parseTree checks bracket balance and builds the token tree.
func parseTree(text string) (*node, error) {
	if err := checkBrackets(text); err != nil {
		return nil, err
	}

	p := &parser{src: text}

	root, err := p.value()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected trailing text", strings.TrimSpace(p.src[p.pos:]))
	}

	return root, nil
}

// checkBrackets rejects unbalanced square brackets outside quoted strings.
func checkBrackets(text string) error {
	depth, open := 0, -1

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			q, err := strconv.QuotedPrefix(text[i:])
			if err != nil {
				return &SyntaxError{Err: ErrMalformedLiteral, Offset: i, Msg: "unterminated string", Token: text[i:]}
			}

			i += len(q) - 1
		case '[':
			if depth == 0 {
				open = i
			}

			depth++
		case ']':
			depth--
			if depth < 0 {
				return &SyntaxError{Err: ErrMalformedLiteral, Offset: i, Msg: "unmatched closing bracket", Token: "]"}
			}
		}
	}

	if depth > 0 {
		return &SyntaxError{Err: ErrMalformedLiteral, Offset: open, Msg: "unclosed bracket", Token: "["}
	}

	return nil
}

func (p *parser) value() (*node, error) {
	p.skipSpace()

	if p.pos < len(p.src) && p.src[p.pos] == '[' {
		return p.list()
	}

	return p.leaf()
}

func (p *parser) list() (*node, error) {
	n := &node{list: true, pos: p.pos}
	p.pos++ // '['

	p.skipSpace()

	if p.peek() == ']' {
		p.pos++
		return n, nil
	}

	for {
		child, err := p.value()
		if err != nil {
			return nil, err
		}

		n.children = append(n.children, child)

		p.skipSpace()

		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return n, nil
		default:
			return nil, p.errorf("expected ',' or ']'", p.rest())
		}
	}
}

func (p *parser) leaf() (*node, error) {
	start := p.pos

	if p.peek() == '"' {
		q, err := strconv.QuotedPrefix(p.src[p.pos:])
		if err != nil {
			return nil, p.errorf("unterminated string", p.src[p.pos:])
		}

		p.pos += len(q)

		return &node{text: q, pos: start}, nil
	}

	for p.pos < len(p.src) && !strings.ContainsRune(",[]", rune(p.src[p.pos])) {
		p.pos++
	}

	text := strings.TrimSpace(p.src[start:p.pos])
	if text == "" {
		return nil, &SyntaxError{Err: ErrMalformedLiteral, Offset: start, Msg: "missing value"}
	}

	return &node{text: text, pos: start + strings.Index(p.src[start:p.pos], text)}, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}

	return 0
}

// rest returns the token starting at the current position.
func (p *parser) rest() string {
	end := p.pos
	for end < len(p.src) && !strings.ContainsRune(",[] \t\r\n", rune(p.src[end])) {
		end++
	}

	if end == p.pos && end < len(p.src) {
		end++
	}

	return p.src[p.pos:end]
}

func (p *parser) errorf(msg, token string) *SyntaxError {
	return &SyntaxError{Err: ErrMalformedLiteral, Offset: p.pos, Msg: msg, Token: token}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
