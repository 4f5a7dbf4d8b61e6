package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-valfmt/internal/ast"
	"github.com/KimNorgaard/go-valfmt/internal/lexer"
	"github.com/KimNorgaard/go-valfmt/internal/token"
)

// Parser compiles the token stream of a format spec.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken token.Token
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}
	p.nextToken()
	return p
}

// Errors returns the error messages encountered during parsing.
func (p *Parser) Errors() []string {
	return p.errors
}

// Parse compiles the whole spec. Consecutive literal tokens are merged into
// one literal node; a unit directly followed by another unit is an error
// because the text between them could not be split on parse.
func (p *Parser) Parse() *ast.Format {
	f := &ast.Format{Nodes: []ast.Node{}}
	var prevUnit *ast.Unit

	for !p.curTokenIs(token.EOF) {
		switch {
		case p.curTokenIs(token.ILLEGAL):
			p.errors = append(p.errors, fmt.Sprintf("column %d: %s", p.curToken.Column, p.curToken.Literal))
			return f
		case p.curToken.Type.IsLiteral():
			lit := p.parseLiteral()
			if lit.Value == "" {
				continue
			}
			f.Nodes = append(f.Nodes, lit)
			prevUnit = nil
		case p.curTokenIs(token.UNIT):
			unit := &ast.Unit{Token: p.curToken, Name: p.curToken.Literal}
			if prevUnit != nil {
				p.errors = append(p.errors, fmt.Sprintf("column %d: unit %q directly follows unit %q; separate them with literal text",
					unit.Token.Column, unit.Name, prevUnit.Name))
			}
			f.Nodes = append(f.Nodes, unit)
			prevUnit = unit
			p.nextToken()
		default:
			p.errors = append(p.errors, fmt.Sprintf("column %d: unexpected token %s", p.curToken.Column, p.curToken.Type))
			p.nextToken()
		}
	}
	return f
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// parseLiteral is entered on a literal token and returns with curToken on
// the first token that is not a literal.
func (p *Parser) parseLiteral() *ast.Literal {
	lit := &ast.Literal{Token: p.curToken}
	for p.curToken.Type.IsLiteral() {
		lit.Value += p.curToken.Literal
		p.nextToken()
	}
	return lit
}
