package token

// Type is the type of a token.
type Type string

// Token represents a lexical token of a format spec.
type Token struct {
	Type    Type
	Literal string
	Offset  int // byte offset into the format
	Column  int // 1-based rune column
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unterminated escape
	EOF     Type = "EOF"     // End of spec

	// Content
	TEXT   Type = "TEXT"   // a run of characters that matched no unit
	ESCAPE Type = "ESCAPE" // the contents of a [...] run, brackets removed
	UNIT   Type = "UNIT"   // a registered unit name

	// Escape delimiters
	LBRACK = '['
	RBRACK = ']'
)

// IsLiteral reports whether t renders verbatim.
func (t Type) IsLiteral() bool {
	return t == TEXT || t == ESCAPE
}
