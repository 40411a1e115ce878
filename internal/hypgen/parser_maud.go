package hypgen

import "strings"

// parseMaudNodes parses maud-syntax nodes until the terminator (not consumed).
func (p *Parser) parseMaudNodes(until TokenType) []Node {
	var nodes []Node
	for {
		p.skipNewlines()
		if p.current.Type == until || p.current.Type == TokenEOF {
			break
		}
		n := p.parseMaudNode()
		if n == nil {
			p.advance()
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// parseMaudNode parses a single maud-syntax node.
func (p *Parser) parseMaudNode() Node {
	pos := p.position()

	switch p.current.Type {
	case TokenBang:
		return p.parseDoctypeBang()

	case TokenString, TokenInt, TokenFloat:
		return p.parseValueNode()

	case TokenLParen, TokenPercent, TokenQuestion:
		s := p.parseSplice()
		if s == nil {
			return nil
		}
		return s

	case TokenLBrace:
		p.advanceSkipNewlines()
		children := p.parseMaudNodes(TokenRBrace)
		p.expect(TokenRBrace)
		return &Group{Children: children, Position: pos}

	case TokenAtLet, TokenAtIf, TokenAtFor, TokenAtWhile, TokenAtMatch:
		return p.parseControl(SyntaxMaud)

	case TokenAt:
		p.errors.AddErrorf(pos, "unknown @ keyword: @%s", p.current.Literal)
		return nil
	}

	if isNameStart(p.current) {
		if p.current.Literal == "true" || p.current.Literal == "false" {
			lit := &Literal{Kind: LitBool, Value: p.current.Literal, Position: pos}
			p.advance()
			return lit
		}
		return p.parseMaudElement()
	}

	p.errors.AddErrorf(pos, "unexpected %s in template body", p.current.Type)
	return nil
}

// parseDoctypeBang parses !DOCTYPE.
func (p *Parser) parseDoctypeBang() Node {
	pos := p.position()
	p.advance() // consume !

	if p.current.Type != TokenIdent || !strings.EqualFold(p.current.Literal, "doctype") {
		p.errors.AddErrorWithHint(pos, "expected DOCTYPE after !", "write !DOCTYPE")
		return nil
	}
	p.advance()
	return &Doctype{Position: pos}
}

// parseMaudElement parses an element or component invocation:
//
//	name #id .class attr=value ... { children }
//	name attr=value ... ;
func (p *Parser) parseMaudElement() Node {
	pos := p.position()
	name := p.parseName(nameOpts{})
	if name == nil {
		return nil
	}

	if name.IsComponent() {
		return p.parseMaudComponent(name, pos)
	}

	elem := &Element{Name: name, Position: pos}

	// #id shorthand comes before everything else
	var classes []*ClassEntry
	if p.current.Type == TokenHash {
		idAttr := p.parseIDShorthand()
		if idAttr != nil {
			elem.Attrs = append(elem.Attrs, idAttr)
		}
	}

	for p.current.Type == TokenDot {
		entryPos := p.position()
		p.advance()
		value := p.parseValueNode()
		if value == nil {
			continue
		}
		classes = append(classes, &ClassEntry{
			Value:    value,
			Toggle:   p.parseToggle(),
			Position: entryPos,
		})
	}
	if len(classes) > 0 {
		elem.Attrs = append(elem.Attrs, &Attribute{
			Name: &AttrName{
				Kind:     AttrNameNormal,
				Name:     &Name{Fragments: []NameFragment{{Text: "class", Position: classes[0].Position}}, Position: classes[0].Position},
				Position: classes[0].Position,
			},
			Kind:     AttrClassList,
			Classes:  classes,
			Position: classes[0].Position,
		})
	}

	// Remaining attributes until ; or {
	for {
		p.skipNewlines()
		if p.current.Type == TokenSemicolon || p.current.Type == TokenLBrace || p.current.Type == TokenEOF {
			break
		}
		if p.current.Type == TokenHash {
			p.errors.AddErrorWithHint(p.position(), "#id must come before classes and attributes",
				"move the #id shorthand directly after the element name")
			p.advance()
			p.parseValueNode()
			continue
		}
		attr := p.parseAttribute()
		if attr == nil {
			break
		}
		elem.Attrs = append(elem.Attrs, attr)
	}

	switch p.current.Type {
	case TokenSemicolon:
		p.advance()
		elem.Void = true
	case TokenLBrace:
		p.advanceSkipNewlines()
		elem.Children = p.parseMaudNodes(TokenRBrace)
		p.expect(TokenRBrace)
	default:
		p.errors.AddErrorWithHint(p.position(), "expected ';' or '{' after element attributes",
			"use ; for a void element or { } for children")
		return elem
	}

	return elem
}

// parseIDShorthand parses #value into an id attribute.
func (p *Parser) parseIDShorthand() *Attribute {
	pos := p.position()
	p.advance() // consume #

	value := p.parseValueParts()
	if value == nil {
		return nil
	}
	return &Attribute{
		Name: &AttrName{
			Kind:     AttrNameNormal,
			Name:     &Name{Fragments: []NameFragment{{Text: "id", Position: pos}}, Position: pos},
			Position: pos,
		},
		Kind:     AttrValue,
		Value:    value,
		Position: pos,
	}
}

// parseAttribute parses a single attribute in any of its forms:
// name=value [toggle], bare name [toggle], and name=[expr].
func (p *Parser) parseAttribute() *Attribute {
	pos := p.position()
	name := p.parseAttrName()
	if name == nil {
		return nil
	}

	attr := &Attribute{Name: name, Position: pos}

	if p.current.Type != TokenEquals {
		attr.Kind = AttrEmpty
		attr.Toggle = p.parseToggle()
		return attr
	}
	p.advance() // consume =

	if p.current.Type == TokenLBracket {
		expr, err := p.lexer.ReadBalancedBracketsFrom(p.current.StartPos)
		if err != nil {
			p.errors.Add(err.(*Error))
			p.resync()
			return nil
		}
		p.resync()
		attr.Kind = AttrOption
		attr.OptionExpr = strings.TrimSpace(expr)
		if attr.OptionExpr == "" {
			p.errors.AddError(pos, "empty option attribute expression")
		}
		return attr
	}

	attr.Kind = AttrValue
	attr.Value = p.parseAttrValueParts()
	if attr.Value == nil {
		return nil
	}
	attr.Toggle = p.parseToggle()
	return attr
}

// parseMaudComponent parses an uppercase-named component invocation.
// Every attribute must carry a value; children bind lazily.
func (p *Parser) parseMaudComponent(name *Name, pos Position) *Component {
	comp := &Component{Name: name, Position: pos}

	for {
		p.skipNewlines()
		if p.current.Type == TokenSemicolon || p.current.Type == TokenLBrace || p.current.Type == TokenEOF {
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

	switch p.current.Type {
	case TokenSemicolon:
		p.advance()
	case TokenLBrace:
		p.advanceSkipNewlines()
		comp.HasChildren = true
		comp.Children = p.parseMaudNodes(TokenRBrace)
		p.expect(TokenRBrace)
	default:
		p.errors.AddErrorWithHint(p.position(), "expected ';' or '{' after component",
			"use ; for no children or { } to pass children")
	}

	return comp
}
