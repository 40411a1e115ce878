package hypgen

import "strings"

// parseRsxNodes parses rsx-syntax nodes until the terminator (not consumed).
func (p *Parser) parseRsxNodes(until TokenType) []Node {
	var nodes []Node
	for {
		p.skipNewlines()
		if p.current.Type == until || p.current.Type == TokenEOF {
			break
		}
		if p.current.Type == TokenLAngleSlash {
			// A stray closing tag; the caller handles closings, so at this
			// level it can only be unmatched.
			p.errors.AddErrorf(p.position(), "unexpected closing tag")
			p.skipClosingTag()
			continue
		}
		n := p.parseRsxNode()
		if n == nil {
			p.advance()
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// parseRsxNode parses a single rsx-syntax node.
func (p *Parser) parseRsxNode() Node {
	pos := p.position()

	switch p.current.Type {
	case TokenLAngle:
		return p.parseRsxTag()

	case TokenLBrace:
		p.advanceSkipNewlines()
		children := p.parseRsxNodes(TokenRBrace)
		p.expect(TokenRBrace)
		return &Group{Children: children, Position: pos}

	case TokenLParen:
		return p.parseSplice()

	case TokenPercent, TokenQuestion:
		if p.peek.Type == TokenLParen {
			return p.parseSplice()
		}
		return p.parseRsxText()

	case TokenString:
		lit := &Literal{Kind: LitString, Value: p.current.Literal, Position: pos}
		p.advance()
		return lit

	case TokenAtLet, TokenAtIf, TokenAtFor, TokenAtWhile, TokenAtMatch:
		return p.parseControl(SyntaxRsx)

	case TokenAt:
		p.errors.AddErrorf(pos, "unknown @ keyword: @%s", p.current.Literal)
		return nil
	}

	if isRsxTextToken(p.current) {
		return p.parseRsxText()
	}

	p.errors.AddErrorf(pos, "unexpected %s in template body", p.current.Type)
	return nil
}

// isRsxWordToken reports whether a token is word-like bare text.
func isRsxWordToken(tok Token) bool {
	switch tok.Type {
	case TokenInt, TokenFloat:
		return true
	}
	return isNameStart(tok)
}

// isRsxTextToken reports whether a token may appear in a bare text run.
func isRsxTextToken(tok Token) bool {
	if isRsxWordToken(tok) {
		return true
	}
	switch tok.Type {
	case TokenComma, TokenDot, TokenColon, TokenSemicolon, TokenBang,
		TokenQuestion, TokenPercent, TokenMinus, TokenPlus, TokenStar,
		TokenEquals, TokenAmpersand, TokenPipe, TokenHash, TokenColonEquals:
		return true
	}
	return false
}

// parseRsxText accumulates a run of bare text tokens into a string literal.
// Each token contributes its text plus a trailing space when the next token
// is word-like, so "Hello, world" keeps its spacing.
func (p *Parser) parseRsxText() *Literal {
	pos := p.position()
	var sb strings.Builder

	for isRsxTextToken(p.current) {
		// % and ? introduce splices when a paren follows
		if (p.current.Type == TokenPercent || p.current.Type == TokenQuestion) && p.peek.Type == TokenLParen {
			break
		}
		sb.WriteString(p.current.Literal)
		next := p.peek
		p.advance()
		if p.current.Type == TokenNewline {
			p.skipNewlines()
			next = p.current
		}
		if isRsxWordToken(next) {
			sb.WriteString(" ")
		}
	}

	return &Literal{Kind: LitString, Value: sb.String(), Position: pos}
}

// skipClosingTag consumes </ name > without building a node.
func (p *Parser) skipClosingTag() {
	p.advance() // consume </
	for p.current.Type != TokenRAngle && p.current.Type != TokenEOF &&
		p.current.Type != TokenNewline {
		p.advance()
	}
	if p.current.Type == TokenRAngle {
		p.advance()
	}
}

// parseRsxTag parses a construct opened by <: a doctype, a fragment, an
// element, or a component invocation.
func (p *Parser) parseRsxTag() Node {
	pos := p.position()
	p.advance() // consume <

	switch p.current.Type {
	case TokenBang:
		return p.parseRsxDoctype(pos)
	case TokenRAngle:
		return p.parseRsxFragment(pos)
	}

	name := p.parseName(nameOpts{})
	if name == nil {
		return nil
	}

	if name.IsComponent() {
		return p.parseRsxComponent(name, pos)
	}

	elem := &Element{Name: name, Position: pos}

	for {
		p.skipNewlines()
		if p.current.Type == TokenRAngle || p.current.Type == TokenSlashAngle || p.current.Type == TokenEOF {
			break
		}
		attr := p.parseAttribute()
		if attr == nil {
			break
		}
		elem.Attrs = append(elem.Attrs, attr)
	}

	if p.current.Type == TokenSlashAngle {
		p.advance()
		elem.Void = true
		return elem
	}
	if !p.expect(TokenRAngle) {
		return elem
	}

	return p.parseRsxChildren(elem)
}

// parseRsxDoctype parses <!DOCTYPE html>.
func (p *Parser) parseRsxDoctype(pos Position) Node {
	p.advance() // consume !

	if p.current.Type != TokenIdent || !strings.EqualFold(p.current.Literal, "doctype") {
		p.errors.AddErrorWithHint(pos, "expected DOCTYPE after <!", "write <!DOCTYPE html>")
		return nil
	}
	p.advance()

	if p.current.Type == TokenIdent && strings.EqualFold(p.current.Literal, "html") {
		p.advance()
	}
	p.expect(TokenRAngle)
	return &Doctype{Position: pos}
}

// parseRsxFragment parses <> children </>.
func (p *Parser) parseRsxFragment(pos Position) Node {
	p.advance() // consume >

	group := &Group{Position: pos}
	for {
		p.skipNewlines()
		if p.current.Type == TokenEOF {
			p.errors.AddError(pos, "unclosed fragment")
			return group
		}
		if p.current.Type == TokenLAngleSlash && p.peek.Type == TokenRAngle {
			// The close must be written exactly </>, with no gap.
			if p.peek.StartPos != p.current.StartPos+2 {
				p.errors.AddErrorWithHint(p.position(),
					"fragment close must be written </>",
					"remove the space between </ and >")
			}
			p.advance()
			p.advance()
			return group
		}
		if p.current.Type == TokenLAngleSlash {
			// closing tag for an ancestor; the fragment is unclosed
			p.errors.AddError(pos, "unclosed fragment")
			return group
		}
		n := p.parseRsxNode()
		if n == nil {
			p.advance()
			continue
		}
		group.Children = append(group.Children, n)
	}
}

// parseRsxChildren parses element children up to the matching closing tag.
//
// Recovery keeps the partial tree: when the element is never closed, or the
// closing name does not match, the opening tag is demoted to a void element
// and the parsed children are re-attached to the enclosing list via a Group.
func (p *Parser) parseRsxChildren(elem *Element) Node {
	p.rsxStack = append(p.rsxStack, elem.Name.String())
	defer func() { p.rsxStack = p.rsxStack[:len(p.rsxStack)-1] }()

	var children []Node
	demote := func() Node {
		elem.Void = true
		return &Group{
			Children: append([]Node{elem}, children...),
			Position: elem.Position,
		}
	}

	for {
		p.skipNewlines()

		switch p.current.Type {
		case TokenEOF, TokenRBrace:
			p.errors.AddErrorf(elem.Position, "unclosed element <%s>", elem.Name)
			return demote()

		case TokenLAngleSlash:
			if p.peek.Type == TokenRAngle && p.peek.StartPos == p.current.StartPos+2 {
				// </> closes an enclosing fragment, not this element
				p.errors.AddErrorf(elem.Position, "unclosed element <%s>", elem.Name)
				return demote()
			}
			closingPos := Position{File: p.lexer.filename, Line: p.peek.Line, Column: p.peek.Column}
			if p.peek.Literal == elem.Name.String() || closesOuter(p.rsxStack[:len(p.rsxStack)-1], p.peek.Literal) {
				if p.peek.Literal != elem.Name.String() {
					// The closing tag belongs to an ancestor; leave it unconsumed.
					p.errors.AddErrorf(elem.Position, "unclosed element <%s>", elem.Name)
					return demote()
				}
				p.advance() // consume </
				closing := p.parseName(nameOpts{})
				if closing != nil && closing.String() != elem.Name.String() {
					p.errors.AddErrorf(closingPos, "mismatched closing tag: expected </%s>, got </%s>", elem.Name, closing)
					p.expect(TokenRAngle)
					return demote()
				}
				p.expect(TokenRAngle)
				elem.Children = children
				return elem
			}

			// Closing tag matches neither this element nor an ancestor.
			p.errors.AddErrorf(closingPos, "mismatched closing tag: expected </%s>, got </%s>", elem.Name, p.peek.Literal)
			p.skipClosingTag()
			return demote()
		}

		n := p.parseRsxNode()
		if n == nil {
			p.advance()
			continue
		}
		children = append(children, n)
	}
}

// closesOuter reports whether the closing name matches an open ancestor.
func closesOuter(open []string, name string) bool {
	for _, o := range open {
		if o == name {
			return true
		}
	}
	return false
}

// parseRsxComponent parses <Name attr=value>children</Name> and the
// self-closing <Name attr=value />.
func (p *Parser) parseRsxComponent(name *Name, pos Position) Node {
	comp := &Component{Name: name, Position: pos}

	for {
		p.skipNewlines()
		if p.current.Type == TokenRAngle || p.current.Type == TokenSlashAngle || p.current.Type == TokenEOF {
			break
		}
		attrPos := p.position()
		attr := p.parseAttribute()
		if attr == nil {
			break
		}
		if attr.Kind != AttrValue {
			p.errors.AddErrorWithHint(attrPos, "component attributes require a value",
				"write name=value")
			continue
		}
		comp.Attrs = append(comp.Attrs, attr)
	}

	if p.current.Type == TokenSlashAngle {
		p.advance()
		return comp
	}
	if !p.expect(TokenRAngle) {
		return comp
	}

	comp.HasChildren = true
	for {
		p.skipNewlines()
		if p.current.Type == TokenEOF || p.current.Type == TokenRBrace {
			p.errors.AddErrorf(pos, "unclosed component <%s>", name)
			return comp
		}
		if p.current.Type == TokenLAngleSlash {
			closingPos := Position{File: p.lexer.filename, Line: p.peek.Line, Column: p.peek.Column}
			p.advance()
			closing := p.parseName(nameOpts{})
			if closing != nil && closing.String() != name.String() {
				p.errors.AddErrorf(closingPos, "mismatched closing tag: expected </%s>, got </%s>", name, closing)
			}
			p.expect(TokenRAngle)
			return comp
		}
		n := p.parseRsxNode()
		if n == nil {
			p.advance()
			continue
		}
		comp.Children = append(comp.Children, n)
	}
}
