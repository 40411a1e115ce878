package hypgen

import "strings"

// parseSpliceAt captures a parenthesized Go expression as a splice.
// The current token must be TokenLParen; pos is the splice start, which
// for %(...) and ?(...) is the prefix token.
func (p *Parser) parseSpliceAt(mode SpliceMode, pos Position) *SpliceExpr {
	if p.current.Type != TokenLParen {
		p.errors.AddErrorf(p.position(), "expected '(', got %s", p.current.Type)
		return nil
	}
	code, err := p.lexer.ReadBalancedParensFrom(p.current.StartPos)
	if err != nil {
		p.errors.Add(err.(*Error))
		p.resync()
		return nil
	}
	end := Position{File: p.lexer.filename, Line: p.lexer.line, Column: p.lexer.column}
	p.resync()

	code = strings.TrimSpace(code)
	if code == "" {
		p.errors.AddError(pos, "empty splice expression")
		return nil
	}
	return &SpliceExpr{Mode: mode, Code: code, Position: pos, End: end}
}

// parseSplice parses (expr), %(expr), or ?(expr) starting at the current
// token, which must be one of ( % ?.
func (p *Parser) parseSplice() *SpliceExpr {
	pos := p.position()
	switch p.current.Type {
	case TokenLParen:
		return p.parseSpliceAt(SpliceRender, pos)
	case TokenPercent:
		p.advance()
		return p.parseSpliceAt(SpliceDisplay, pos)
	case TokenQuestion:
		p.advance()
		return p.parseSpliceAt(SpliceDebug, pos)
	}
	p.errors.AddErrorf(pos, "expected splice, got %s", p.current.Type)
	return nil
}

// parseValueNode parses a single attribute-value part: a literal, a splice,
// or an unquoted name rendered as its text.
func (p *Parser) parseValueNode() Node {
	pos := p.position()

	switch p.current.Type {
	case TokenString:
		lit := &Literal{Kind: LitString, Value: p.current.Literal, Position: pos}
		p.advance()
		return lit
	case TokenInt:
		lit := &Literal{Kind: LitInt, Value: p.current.Literal, Position: pos}
		p.advance()
		return lit
	case TokenFloat:
		lit := &Literal{Kind: LitFloat, Value: p.current.Literal, Position: pos}
		p.advance()
		return lit
	case TokenLParen, TokenPercent, TokenQuestion:
		s := p.parseSplice()
		if s == nil {
			return nil
		}
		return s
	}

	if isNameStart(p.current) {
		if p.current.Literal == "true" || p.current.Literal == "false" {
			lit := &Literal{Kind: LitBool, Value: p.current.Literal, Position: pos}
			p.advance()
			return lit
		}
		name := p.parseName(nameOpts{colon: true, dot: true})
		if name == nil {
			return nil
		}
		return &Literal{Kind: LitString, Value: name.String(), Position: pos}
	}

	p.errors.AddErrorf(pos, "expected attribute value, got %s", p.current.Type)
	return nil
}

// parseAttrValueParts parses the value after '=' in an attribute. A bare
// single identifier names a host variable rendered through the runtime;
// multi-fragment names (text/css style) stay literal text.
func (p *Parser) parseAttrValueParts() []Node {
	if p.current.Type == TokenIdent && p.current.Literal != "true" && p.current.Literal != "false" {
		pos := p.position()
		name := p.parseName(nameOpts{colon: true, dot: true})
		if name == nil {
			return nil
		}
		if len(name.Fragments) == 1 {
			return []Node{&SpliceExpr{Mode: SpliceRender, Code: name.Fragments[0].Text, Position: pos}}
		}
		return []Node{&Literal{Kind: LitString, Value: name.String(), Position: pos}}
	}
	return p.parseValueParts()
}

// parseValueParts parses an attribute value: a single part, or a braced
// list of parts concatenated in order.
func (p *Parser) parseValueParts() []Node {
	if p.current.Type != TokenLBrace {
		n := p.parseValueNode()
		if n == nil {
			return nil
		}
		return []Node{n}
	}

	p.advanceSkipNewlines()
	var parts []Node
	for p.current.Type != TokenRBrace && p.current.Type != TokenEOF {
		n := p.parseAttrNode()
		if n == nil {
			p.advance()
			continue
		}
		parts = append(parts, n)
		p.skipNewlines()
	}
	p.expect(TokenRBrace)
	return parts
}

// parseToggle parses an optional [cond] toggle group after an attribute or
// class entry. Returns the raw condition, or "" if there is none.
func (p *Parser) parseToggle() string {
	if p.current.Type != TokenLBracket {
		return ""
	}
	cond, err := p.lexer.ReadBalancedBracketsFrom(p.current.StartPos)
	if err != nil {
		p.errors.Add(err.(*Error))
		p.resync()
		return ""
	}
	p.resync()

	cond = strings.TrimSpace(cond)
	if cond == "" {
		p.errors.AddError(p.position(), "empty toggle condition")
	}
	return cond
}
