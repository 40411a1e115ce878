package hypgen

import (
	"strings"
)

// parseControl dispatches on the control keyword at the current token.
// syntax selects how nested bodies are parsed.
func (p *Parser) parseControl(syntax Syntax) Node {
	switch p.current.Type {
	case TokenAtLet:
		return p.parseLet()
	case TokenAtIf:
		return p.parseIf(syntax)
	case TokenAtFor:
		return p.parseFor(syntax)
	case TokenAtWhile:
		return p.parseWhile(syntax)
	case TokenAtMatch:
		return p.parseMatch(syntax)
	}
	p.errors.AddErrorf(p.position(), "expected control keyword, got %s", p.current.Type)
	return nil
}

// captureUntilBrace collects raw source from the current token until an
// opening brace, newline, or EOF. The brace is not consumed. Conditions
// containing composite literals need parentheses.
func (p *Parser) captureUntilBrace() string {
	start := p.current.StartPos
	for p.current.Type != TokenLBrace && p.current.Type != TokenEOF && p.current.Type != TokenNewline {
		p.advance()
	}
	return strings.TrimSpace(p.lexer.SourceRange(start, p.current.StartPos))
}

// parseControlBody parses a brace-delimited body in the given syntax.
func (p *Parser) parseControlBody(syntax Syntax) []Node {
	p.skipNewlines()
	if !p.expect(TokenLBrace) {
		return nil
	}
	p.skipNewlines()
	body := p.parseBody(syntax, TokenRBrace)
	p.expect(TokenRBrace)
	return body
}

// parseLet parses @let name = expr and @let name Type [= expr].
func (p *Parser) parseLet() *LetBinding {
	pos := p.position()

	if !p.expect(TokenAtLet) {
		return nil
	}

	if p.current.Type != TokenIdent && p.current.Type != TokenUnderscore {
		p.errors.AddError(p.position(), "expected binding name after @let")
		return nil
	}
	let := &LetBinding{Name: p.current.Literal, Position: pos}
	p.advance()

	if p.current.Type != TokenEquals {
		// Typed form: capture the type until = or end of line
		start := p.current.StartPos
		for p.current.Type != TokenEquals && p.current.Type != TokenNewline &&
			p.current.Type != TokenEOF && p.current.Type != TokenRBrace {
			p.advance()
		}
		let.Type = strings.TrimSpace(p.lexer.SourceRange(start, p.current.StartPos))
	}

	if p.current.Type == TokenEquals {
		p.advance()
		start := p.current.StartPos
		for p.current.Type != TokenNewline && p.current.Type != TokenEOF {
			p.advance()
		}
		let.Value = strings.TrimSpace(p.lexer.SourceRange(start, p.current.StartPos))
	}

	if let.Type == "" && let.Value == "" {
		p.errors.AddErrorWithHint(pos, "@let needs a type or a value",
			"write @let name = expr or @let name Type")
	}

	return let
}

// parseIf parses @if condition { ... } with optional @else if chain and @else.
func (p *Parser) parseIf(syntax Syntax) *IfStmt {
	pos := p.position()

	if !p.expect(TokenAtIf) {
		return nil
	}

	stmt := &IfStmt{Position: pos}
	stmt.Cond = p.captureUntilBrace()
	if stmt.Cond == "" {
		p.errors.AddError(pos, "expected condition after @if")
	}
	stmt.Then = p.parseControlBody(syntax)

	for {
		p.skipNewlines()
		if p.current.Type != TokenAtElse {
			break
		}
		p.advance()
		p.skipNewlines()

		if p.current.Type == TokenIdent && p.current.Literal == "if" {
			// @else if cond { ... }
			elifPos := p.position()
			p.advance()
			cond := p.captureUntilBrace()
			if cond == "" {
				p.errors.AddError(elifPos, "expected condition after @else if")
			}
			body := p.parseControlBody(syntax)
			stmt.ElseIfs = append(stmt.ElseIfs, &ElseIf{Cond: cond, Body: body, Position: elifPos})
			continue
		}

		stmt.HasElse = true
		stmt.Else = p.parseControlBody(syntax)
		break
	}

	return stmt
}

// parseFor parses @for header { ... } with a raw Go for-header.
func (p *Parser) parseFor(syntax Syntax) *ForLoop {
	pos := p.position()

	if !p.expect(TokenAtFor) {
		return nil
	}

	loop := &ForLoop{Position: pos}
	loop.Header = p.captureUntilBrace()
	if loop.Header == "" {
		p.errors.AddErrorWithHint(pos, "expected loop header after @for",
			"write @for i, v := range items or @for i := 0; i < n; i++")
	}
	loop.Body = p.parseControlBody(syntax)
	return loop
}

// parseWhile parses @while condition { ... }.
func (p *Parser) parseWhile(syntax Syntax) *WhileLoop {
	pos := p.position()

	if !p.expect(TokenAtWhile) {
		return nil
	}

	loop := &WhileLoop{Position: pos}
	loop.Cond = p.captureUntilBrace()
	if loop.Cond == "" {
		p.errors.AddError(pos, "expected condition after @while")
	}
	loop.Body = p.parseControlBody(syntax)
	return loop
}

// parseMatch parses @match subject { @case exprs { ... } @default { ... } }.
func (p *Parser) parseMatch(syntax Syntax) *MatchStmt {
	pos := p.position()

	if !p.expect(TokenAtMatch) {
		return nil
	}

	stmt := &MatchStmt{Position: pos}
	stmt.Subject = p.captureUntilBrace()
	if stmt.Subject == "" {
		p.errors.AddError(pos, "expected subject expression after @match")
	}

	p.skipNewlines()
	if !p.expect(TokenLBrace) {
		return nil
	}
	p.skipNewlines()

	for p.current.Type != TokenRBrace && p.current.Type != TokenEOF {
		switch p.current.Type {
		case TokenAtCase:
			casePos := p.position()
			p.advance()
			exprs := p.captureUntilBrace()
			if exprs == "" {
				p.errors.AddError(casePos, "expected expression list after @case")
			}
			body := p.parseControlBody(syntax)
			stmt.Cases = append(stmt.Cases, &MatchCase{Exprs: exprs, Body: body, Position: casePos})
		case TokenAtDefault:
			dfltPos := p.position()
			p.advance()
			if stmt.HasDflt {
				p.errors.AddError(dfltPos, "duplicate @default arm")
			}
			stmt.HasDflt = true
			stmt.Default = p.parseControlBody(syntax)
		default:
			p.errors.AddErrorf(p.position(), "expected @case or @default in @match, got %s", p.current.Type)
			p.advance()
		}
		p.skipNewlines()
	}
	p.expect(TokenRBrace)

	if len(stmt.Cases) == 0 && !stmt.HasDflt {
		p.errors.AddError(pos, "@match needs at least one arm")
	}

	return stmt
}
