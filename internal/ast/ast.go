package ast

import (
	"strings"

	"github.com/KimNorgaard/go-valfmt/internal/token"
)

// Node is the base interface for the nodes of a compiled format.
type Node interface {
	// TokenLiteral returns the literal value of the first token of the node.
	TokenLiteral() string
	// String returns the node rendered back as format spec text.
	String() string
	formatNode()
}

// Format is a compiled format spec: literal and unit nodes in source order.
// Two literals are never adjacent.
type Format struct {
	Source string
	Nodes  []Node
}

// String returns a spec that compiles to the same nodes.
func (f *Format) String() string {
	var out strings.Builder
	for _, n := range f.Nodes {
		out.WriteString(n.String())
	}
	return out.String()
}

// Units returns the distinct unit names of the format in order of first
// appearance.
func (f *Format) Units() []string {
	var names []string
	seen := make(map[string]bool)
	for _, n := range f.Nodes {
		u, ok := n.(*Unit)
		if !ok || seen[u.Name] {
			continue
		}
		seen[u.Name] = true
		names = append(names, u.Name)
	}
	return names
}

// Literal is text that is rendered verbatim and matched exactly on parse.
type Literal struct {
	Token token.Token // the first token of the run
	Value string
}

func (l *Literal) formatNode()          {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }

// String escapes the value so none of it is read back as a unit name. A
// closing bracket cannot appear inside an escape and is written bare.
func (l *Literal) String() string {
	var out strings.Builder
	for i, part := range strings.Split(l.Value, "]") {
		if i > 0 {
			out.WriteByte(token.RBRACK)
		}
		if part != "" {
			out.WriteByte(token.LBRACK)
			out.WriteString(part)
			out.WriteByte(token.RBRACK)
		}
	}
	return out.String()
}

// Unit is a reference to a registered transform.
type Unit struct {
	Token token.Token
	Name  string
}

func (u *Unit) formatNode()          {}
func (u *Unit) TokenLiteral() string { return u.Token.Literal }
func (u *Unit) String() string       { return u.Name }
