package hypgen

import (
	"strings"
	"unicode"
)

// nameOpts controls which separator fragments an unquoted name may contain.
type nameOpts struct {
	colon bool // allow ':' fragments (attribute names)
	dot   bool // allow '.' fragments (attribute names)
}

// isNameStart reports whether a token can begin an unquoted name. Keyword
// tokens count: inside template bodies words like var or type are names.
func isNameStart(tok Token) bool {
	switch tok.Type {
	case TokenIdent, TokenInt, TokenUnderscore,
		TokenPackage, TokenImport, TokenFunc, TokenTypeKw, TokenConst,
		TokenVar, TokenMaud, TokenRsx, TokenAttrKw, TokenStatic, TokenInclude:
		return true
	}
	return false
}

// isNameCont reports whether a token can continue an unquoted name.
func isNameCont(tok Token, opts nameOpts) bool {
	if isNameStart(tok) {
		return true
	}
	switch tok.Type {
	case TokenMinus:
		return true
	case TokenColon:
		return opts.colon
	case TokenDot:
		return opts.dot
	}
	return false
}

// parseName reads an unquoted name from the current token. Fragments join
// only when byte-adjacent in the source, so "data-label" is one name while
// "data - label" is not. The current token is advanced past the name.
func (p *Parser) parseName(opts nameOpts) *Name {
	if !isNameStart(p.current) {
		p.errors.AddErrorf(p.position(), "expected name, got %s", p.current.Type)
		return nil
	}

	n := &Name{Position: p.position()}
	end := p.current.StartPos + len(p.current.Literal)
	n.Fragments = append(n.Fragments, NameFragment{Text: p.current.Literal, Position: p.position()})

	for isNameCont(p.peek, opts) && p.peek.StartPos == end {
		p.advance()
		end = p.current.StartPos + len(p.current.Literal)
		n.Fragments = append(n.Fragments, NameFragment{Text: p.current.Literal, Position: p.position()})
	}
	p.advance()
	return n
}

// forbidden characters inside quoted attribute names
func invalidAttrNameChar(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) ||
		r == '>' || r == '/' || r == '=' || r == '"' || r == '\''
}

// parseAttrName reads an attribute name in any of its forms:
// normal, data-*, namespaced, symbol-prefixed, or quoted (unchecked).
func (p *Parser) parseAttrName() *AttrName {
	pos := p.position()

	switch p.current.Type {
	case TokenString:
		raw := p.current.Literal
		for _, r := range raw {
			if invalidAttrNameChar(r) {
				p.errors.AddErrorf(pos, "invalid character %q in attribute name %q", r, raw)
				break
			}
		}
		if raw == "" {
			p.errors.AddError(pos, "attribute name cannot be empty")
		}
		p.advance()
		return &AttrName{Kind: AttrNameUnchecked, Raw: raw, Position: pos}

	case TokenAt:
		// lexer packed the following word into the literal
		word := p.current.Literal
		if word == "" {
			p.errors.AddError(pos, "expected attribute name after @")
			p.advance()
			return nil
		}
		name := &Name{Position: pos}
		end := p.current.StartPos + 1 + len(word)
		name.Fragments = append(name.Fragments, NameFragment{Text: word, Position: pos})
		for isNameCont(p.peek, nameOpts{}) && p.peek.StartPos == end {
			p.advance()
			end = p.current.StartPos + len(p.current.Literal)
			name.Fragments = append(name.Fragments, NameFragment{Text: p.current.Literal, Position: p.position()})
		}
		p.advance()
		return &AttrName{Kind: AttrNameSymbol, Symbol: '@', Name: name, Position: pos}

	case TokenColon:
		p.advance()
		name := p.parseName(nameOpts{})
		if name == nil {
			return nil
		}
		return &AttrName{Kind: AttrNameSymbol, Symbol: ':', Name: name, Position: pos}
	}

	name := p.parseName(nameOpts{colon: true, dot: true})
	if name == nil {
		return nil
	}

	full := name.String()
	if strings.HasPrefix(full, "data-") {
		return &AttrName{Kind: AttrNameData, Name: name, Position: pos}
	}
	if i := colonFragment(name); i >= 0 {
		ns := &Name{Fragments: name.Fragments[:i], Position: name.Position}
		return &AttrName{Kind: AttrNameNamespace, Name: name, Namespace: ns, Position: pos}
	}
	return &AttrName{Kind: AttrNameNormal, Name: name, Position: pos}
}

// colonFragment returns the index of the first ':' fragment, or -1.
func colonFragment(n *Name) int {
	for i, f := range n.Fragments {
		if f.Text == ":" {
			return i
		}
	}
	return -1
}
