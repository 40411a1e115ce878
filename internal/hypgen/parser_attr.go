package hypgen

// parseAttrNodes parses attribute-context nodes until the terminator
// (not consumed). Used for attr template bodies and braced value lists.
func (p *Parser) parseAttrNodes(until TokenType) []Node {
	var nodes []Node
	for {
		p.skipNewlines()
		if p.current.Type == until || p.current.Type == TokenEOF {
			break
		}
		n := p.parseAttrNode()
		if n == nil {
			p.advance()
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// parseAttrNode parses a single attribute-context node: a literal, splice,
// group, or control structure. Elements are not allowed here.
func (p *Parser) parseAttrNode() Node {
	switch p.current.Type {
	case TokenString, TokenInt, TokenFloat:
		return p.parseValueNode()

	case TokenLParen, TokenPercent, TokenQuestion:
		s := p.parseSplice()
		if s == nil {
			return nil
		}
		return s

	case TokenLBrace:
		pos := p.position()
		p.advanceSkipNewlines()
		children := p.parseAttrNodes(TokenRBrace)
		p.expect(TokenRBrace)
		return &Group{Children: children, Position: pos}

	case TokenAtLet, TokenAtIf, TokenAtFor, TokenAtWhile, TokenAtMatch:
		return p.parseControl(SyntaxAttr)

	case TokenLAngle, TokenLAngleSlash:
		p.errors.AddError(p.position(), "elements are not allowed in attribute context")
		return nil

	case TokenBang:
		p.errors.AddError(p.position(), "doctype is not allowed in attribute context")
		return nil
	}

	if isNameStart(p.current) {
		return p.parseValueNode()
	}

	p.errors.AddErrorf(p.position(), "unexpected %s in attribute value", p.current.Type)
	return nil
}
