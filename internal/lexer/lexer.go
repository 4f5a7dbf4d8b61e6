package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-valfmt/internal/token"
)

// Lexer holds the state for tokenizing a format spec.
type Lexer struct {
	input  string
	names  []string
	pos    int // current byte position in input
	column int // current rune column
}

// New creates and returns a new Lexer that recognises the given unit names.
func New(input string, names []string) *Lexer {
	return &Lexer{input: input, names: names, column: 1}
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() token.Token {
	tok := token.Token{Offset: l.pos, Column: l.column}
	if l.pos >= len(l.input) {
		tok.Type = token.EOF
		return tok
	}
	if l.input[l.pos] == token.LBRACK {
		lit, ok := l.readEscape()
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.ESCAPE
		}
		tok.Literal = lit
		return tok
	}
	if name := l.matchUnit(); name != "" {
		l.advance(len(name))
		tok.Type = token.UNIT
		tok.Literal = name
		return tok
	}
	tok.Type = token.TEXT
	tok.Literal = l.readText()
	return tok
}

func (l *Lexer) advance(n int) {
	l.column += utf8.RuneCountInString(l.input[l.pos : l.pos+n])
	l.pos += n
}

// matchUnit returns the longest unit name the remaining input starts with.
func (l *Lexer) matchUnit() string {
	rest := l.input[l.pos:]
	var best string
	for _, name := range l.names {
		if len(name) > len(best) && strings.HasPrefix(rest, name) {
			best = name
		}
	}
	return best
}

func (l *Lexer) readText() string {
	start := l.pos
	for l.pos < len(l.input) {
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.advance(size)
		if l.pos >= len(l.input) || l.input[l.pos] == token.LBRACK || l.matchUnit() != "" {
			break
		}
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readEscape() (string, bool) {
	end := strings.IndexByte(l.input[l.pos+1:], token.RBRACK)
	if end < 0 {
		l.advance(len(l.input) - l.pos)
		return "unterminated escape", false
	}
	lit := l.input[l.pos+1 : l.pos+1+end]
	l.advance(end + 2) // brackets included
	return lit, true
}
