package hypgen

import "strings"

// Parser parses .hyp source files into an AST.
type Parser struct {
	lexer           *Lexer
	current         Token
	peek            Token
	errors          *ErrorList
	pendingComments []*Comment // comments collected since last attachment
	rsxStack        []string   // names of open rsx elements, innermost last
}

// NewParser creates a new Parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	p := &Parser{
		lexer:  lexer,
		errors: NewErrorList(),
	}
	// Read two tokens to initialize current and peek
	p.advance()
	p.advance()
	return p
}

// Errors returns any errors encountered during parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lexer.Next()
}

// advanceSkipNewlines advances while skipping newline tokens.
func (p *Parser) advanceSkipNewlines() {
	p.advance()
	p.skipNewlines()
}

// skipNewlines consumes any newline tokens.
func (p *Parser) skipNewlines() {
	for p.current.Type == TokenNewline {
		p.advance()
	}
}

// position returns the current token's position.
func (p *Parser) position() Position {
	return Position{
		File:   p.lexer.filename,
		Line:   p.current.Line,
		Column: p.current.Column,
	}
}

// expect checks if the current token matches the expected type and advances.
// Returns true if matched, false otherwise (and records an error).
func (p *Parser) expect(typ TokenType) bool {
	if p.current.Type == typ {
		p.advance()
		return true
	}
	p.errors.AddErrorf(p.position(), "expected %s, got %s", typ, p.current.Type)
	return false
}

// expectSkipNewlines is like expect but skips newlines after advancing.
func (p *Parser) expectSkipNewlines(typ TokenType) bool {
	if !p.expect(typ) {
		return false
	}
	p.skipNewlines()
	return true
}

// synchronize skips tokens until a top-level declaration keyword is found.
// This allows the parser to recover from errors and continue parsing.
func (p *Parser) synchronize() {
	for p.current.Type != TokenEOF {
		switch p.current.Type {
		case TokenMaud, TokenRsx, TokenAttrKw, TokenStatic, TokenFunc,
			TokenTypeKw, TokenConst, TokenVar:
			return
		}
		p.advance()
	}
}

// collectPendingComments collects comments from the lexer into the
// parser's pending comments buffer.
func (p *Parser) collectPendingComments() {
	comments := p.lexer.ConsumeComments()
	p.pendingComments = append(p.pendingComments, comments...)
}

// clearPendingComments discards pending comments from both the lexer and
// parser. Used after capturing raw Go code, where comments inside the code
// are already part of the captured source string.
func (p *Parser) clearPendingComments() {
	p.lexer.ConsumeComments()
	p.pendingComments = nil
}

// leadingCommentGroup returns a group of all pending comments, or nil.
func (p *Parser) leadingCommentGroup() *CommentGroup {
	p.collectPendingComments()
	comments := p.pendingComments
	p.pendingComments = nil
	if len(comments) == 0 {
		return nil
	}
	return &CommentGroup{Comments: comments, Position: comments[0].Position}
}

// ParseFile parses a complete .hyp file into a File AST node.
func (p *Parser) ParseFile() (*File, error) {
	file := &File{
		Position: p.position(),
	}

	p.skipNewlines()
	p.clearPendingComments()

	file.Package = p.parsePackage()
	if file.Package == "" {
		return nil, p.errors.Err()
	}
	file.PackagePos = file.Position

	p.skipNewlines()
	file.Imports = p.parseImports()
	p.skipNewlines()

	for p.current.Type != TokenEOF {
		p.skipNewlines()
		if p.current.Type == TokenEOF {
			break
		}

		doc := p.leadingCommentGroup()

		switch p.current.Type {
		case TokenStatic, TokenMaud, TokenRsx, TokenAttrKw:
			tmpl := p.parseTemplate()
			if tmpl != nil {
				tmpl.Doc = doc
				file.Decls = append(file.Decls, tmpl)
			} else {
				p.synchronize()
			}
		case TokenFunc:
			fn := p.parseGoFunc()
			if fn != nil {
				fn.Doc = doc
				file.Decls = append(file.Decls, fn)
			} else {
				p.synchronize()
			}
		case TokenTypeKw, TokenConst, TokenVar:
			decl := p.parseGoDecl()
			if decl != nil {
				decl.Doc = doc
				file.Decls = append(file.Decls, decl)
			} else {
				p.synchronize()
			}
		default:
			p.errors.AddErrorf(p.position(), "unexpected token %s, expected maud, rsx, attr, func, type, const, or var", p.current.Type)
			p.synchronize()
		}
	}

	// Merge lexer errors
	for _, err := range p.lexer.Errors().Errors() {
		p.errors.Add(err)
	}

	return file, p.errors.Err()
}

// parsePackage parses "package <name>".
func (p *Parser) parsePackage() string {
	if p.current.Type != TokenPackage {
		p.errors.AddError(p.position(), "expected 'package' declaration")
		return ""
	}
	p.advance()

	if p.current.Type != TokenIdent {
		p.errors.AddError(p.position(), "expected package name")
		return ""
	}
	name := p.current.Literal
	p.advanceSkipNewlines()
	return name
}

// parseImports parses import statements.
// Supports:
//   - import "path"
//   - import alias "path"
//   - import ( "path1"; "path2" )
//   - import ( alias "path" )
func (p *Parser) parseImports() []*Import {
	var imports []*Import

	for p.current.Type == TokenImport {
		p.advance() // consume 'import'
		p.skipNewlines()

		if p.current.Type == TokenLParen {
			p.advance()
			p.skipNewlines()

			for p.current.Type != TokenRParen && p.current.Type != TokenEOF {
				imp := p.parseSingleImport()
				if imp != nil {
					imports = append(imports, imp)
				}
				p.skipNewlines()
			}
			p.expect(TokenRParen)
		} else {
			imp := p.parseSingleImport()
			if imp != nil {
				imports = append(imports, imp)
			}
		}
		p.skipNewlines()
	}

	return imports
}

// parseSingleImport parses a single import: [alias] "path"
func (p *Parser) parseSingleImport() *Import {
	pos := p.position()
	var alias string

	if p.current.Type == TokenIdent || p.current.Type == TokenDot || p.current.Type == TokenUnderscore {
		alias = p.current.Literal
		p.advance()
	}

	if p.current.Type != TokenString {
		p.errors.AddError(p.position(), "expected import path string")
		return nil
	}

	path := p.current.Literal
	p.advance()

	return &Import{
		Alias:    alias,
		Path:     path,
		Position: pos,
	}
}

// parseTemplate parses a template declaration:
//
//	[static] (maud|rsx|attr) [(receiver)] Name(params) { body }
//	[static] (maud|rsx|attr) [(receiver)] Name(params) include "path"
func (p *Parser) parseTemplate() *Template {
	pos := p.position()
	tmpl := &Template{Position: pos}

	if p.current.Type == TokenStatic {
		tmpl.Static = true
		p.advance()
	}

	switch p.current.Type {
	case TokenMaud:
		tmpl.Syntax = SyntaxMaud
	case TokenRsx:
		tmpl.Syntax = SyntaxRsx
	case TokenAttrKw:
		tmpl.Syntax = SyntaxAttr
	default:
		p.errors.AddErrorf(p.position(), "expected maud, rsx, or attr, got %s", p.current.Type)
		return nil
	}
	p.advance()

	// Optional method receiver: maud (p Page) Name(...)
	if p.current.Type == TokenLParen {
		recv, err := p.lexer.ReadBalancedParensFrom(p.current.StartPos)
		if err != nil {
			p.errors.Add(err.(*Error))
			return nil
		}
		tmpl.Recv = strings.TrimSpace(recv)
		p.resync()
	}

	if p.current.Type != TokenIdent {
		p.errors.AddErrorf(p.position(), "expected template name, got %s", p.current.Type)
		return nil
	}
	tmpl.Name = p.current.Literal
	p.advance()

	if p.current.Type != TokenLParen {
		p.errors.AddErrorf(p.position(), "expected parameter list after template name, got %s", p.current.Type)
		return nil
	}
	rawParams, err := p.lexer.ReadBalancedParensFrom(p.current.StartPos)
	if err != nil {
		p.errors.Add(err.(*Error))
		return nil
	}
	paramsPos := p.position()
	p.resync()
	tmpl.Params = parseParams(rawParams, paramsPos)

	if tmpl.Static && len(tmpl.Params) > 0 {
		p.errors.AddErrorWithHint(paramsPos,
			"static template cannot declare parameters",
			"static templates are evaluated at generation time; remove the parameters or drop 'static'")
	}

	// Body: either include "path" or a brace-delimited body
	if p.current.Type == TokenInclude {
		p.advance()
		tmpl.IncludePos = p.position()
		if p.current.Type != TokenString {
			p.errors.AddError(p.position(), "expected quoted path after include")
			return nil
		}
		tmpl.IncludePath = p.current.Literal
		p.advance()
		return tmpl
	}

	if p.current.Type != TokenLBrace {
		p.errors.AddErrorf(p.position(), "expected '{' or include to open template body, got %s", p.current.Type)
		return nil
	}
	p.advanceSkipNewlines()

	tmpl.Body = p.parseBody(tmpl.Syntax, TokenRBrace)

	if !p.expect(TokenRBrace) {
		return tmpl
	}
	return tmpl
}

// parseBody dispatches to the syntax-specific body parser, reading nodes
// until the terminator token (not consumed).
func (p *Parser) parseBody(syntax Syntax, until TokenType) []Node {
	switch syntax {
	case SyntaxRsx:
		return p.parseRsxNodes(until)
	case SyntaxAttr:
		return p.parseAttrNodes(until)
	default:
		return p.parseMaudNodes(until)
	}
}

// resync re-reads current and peek after the lexer has been repositioned
// by a raw source capture.
func (p *Parser) resync() {
	p.current = p.lexer.Next()
	p.peek = p.lexer.Next()
}

// parseGoFunc captures a complete func declaration as raw source.
func (p *Parser) parseGoFunc() *GoFunc {
	pos := p.position()
	source, err := p.lexer.ReadDeclFrom(p.current.StartPos)
	if err != nil {
		p.errors.Add(err.(*Error))
		return nil
	}
	p.clearPendingComments()
	p.resync()
	return &GoFunc{Source: source, Position: pos}
}

// parseGoDecl captures a type, const, or var declaration as raw source.
func (p *Parser) parseGoDecl() *GoDecl {
	pos := p.position()
	keyword := p.current.Literal
	source, err := p.lexer.ReadDeclFrom(p.current.StartPos)
	if err != nil {
		p.errors.Add(err.(*Error))
		return nil
	}
	p.clearPendingComments()
	p.resync()
	return &GoDecl{Keyword: keyword, Source: source, Position: pos}
}

// parseParams splits a raw parameter list into params. Grouped parameters
// share the trailing type: "a, b string" yields two string params.
func parseParams(raw string, pos Position) []*Param {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := splitTopLevel(raw, ',')
	params := make([]*Param, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, typ := part, ""
		if i := strings.IndexAny(part, " \t"); i >= 0 {
			name = part[:i]
			typ = strings.TrimSpace(part[i:])
		}
		params = append(params, &Param{Name: name, Type: typ, Position: pos})
	}

	// Fill grouped params: "a, b string" leaves a with no type
	for i := len(params) - 2; i >= 0; i-- {
		if params[i].Type == "" {
			params[i].Type = params[i+1].Type
		}
	}

	return params
}

// splitTopLevel splits s on sep at zero bracket depth, respecting (), [],
// {}, and string literals.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '"', '`', '\'':
			quote := s[i]
			i++
			for i < len(s) && s[i] != quote {
				if s[i] == '\\' && quote != '`' {
					i++
				}
				i++
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
