package composer

import (
	"fmt"
	"strings"

	valerr "github.com/KimNorgaard/go-valfmt/errors"
	"github.com/KimNorgaard/go-valfmt/internal/ast"
	"github.com/KimNorgaard/go-valfmt/unit"
)

// Units applies a compiled format to a single value.
type Units struct {
	Format   *ast.Format
	Registry *unit.Registry
}

// Render concatenates the literal text and the output of each unit's Format
// for raw.
func (u *Units) Render(raw any) (string, error) {
	var out strings.Builder
	for _, n := range u.Format.Nodes {
		switch n := n.(type) {
		case *ast.Literal:
			out.WriteString(n.Value)
		case *ast.Unit:
			t, err := u.resolve(n.Name)
			if err != nil {
				return "", err
			}
			s, err := t.Format(raw)
			if err != nil {
				return "", &valerr.UnitError{Unit: n.Name, Err: err}
			}
			out.WriteString(s)
		}
	}
	return out.String(), nil
}

// Extract splits text on the format's literals and parses the text between
// them with the enclosed unit. The last literal of the format anchors the
// end of text; any other literal is matched at its first occurrence.
func (u *Units) Extract(text string) (unit.Hash, error) {
	hash := make(unit.Hash)
	nodes := u.Format.Nodes
	pos := 0
	for i, n := range nodes {
		switch n := n.(type) {
		case *ast.Literal:
			if !strings.HasPrefix(text[pos:], n.Value) {
				return nil, &valerr.FormatMismatchError{Anchor: n.Value, Offset: pos, Input: text, Msg: "literal text not found"}
			}
			pos += len(n.Value)
		case *ast.Unit:
			end, err := unitEnd(nodes, i, text, pos)
			if err != nil {
				return nil, err
			}
			t, err := u.resolve(n.Name)
			if err != nil {
				return nil, err
			}
			frag, ok := t.Parse(text[pos:end])
			if !ok {
				return nil, &valerr.FormatMismatchError{
					Unit:   n.Name,
					Offset: pos,
					Input:  text,
					Msg:    fmt.Sprintf("unit did not accept %q", text[pos:end]),
				}
			}
			if _, seen := hash[n.Name]; !seen {
				hash[n.Name] = frag
			}
			pos = end
		}
	}
	if pos != len(text) {
		return nil, &valerr.FormatMismatchError{Offset: pos, Input: text, Msg: "unexpected trailing text"}
	}
	return hash, nil
}

// unitEnd returns the end offset of the unit at nodes[i] starting at pos.
func unitEnd(nodes []ast.Node, i int, text string, pos int) (int, error) {
	if i+1 == len(nodes) {
		return len(text), nil
	}
	next, ok := nodes[i+1].(*ast.Literal)
	if !ok {
		return 0, fmt.Errorf("valfmt: unit %q is not followed by literal text", nodes[i].TokenLiteral())
	}
	if i+2 == len(nodes) {
		end := len(text) - len(next.Value)
		if end < pos || !strings.HasSuffix(text, next.Value) {
			return 0, &valerr.FormatMismatchError{Anchor: next.Value, Offset: pos, Input: text, Msg: "text does not end with the expected literal"}
		}
		return end, nil
	}
	idx := strings.Index(text[pos:], next.Value)
	if idx < 0 {
		return 0, &valerr.FormatMismatchError{Anchor: next.Value, Offset: pos, Input: text, Msg: "literal text not found"}
	}
	return pos + idx, nil
}

func (u *Units) resolve(name string) (unit.Transform, error) {
	t, ok := u.Registry.Resolve(name)
	if !ok {
		return nil, &valerr.ConfigurationError{Option: "format", Msg: fmt.Sprintf("unknown unit %q", name)}
	}
	return t, nil
}
