package hypgen

import (
	"testing"
)

func TestLexer_BasicTokens(t *testing.T) {
	type tc struct {
		input    string
		expected []Token
	}

	tests := map[string]tc{
		"empty": {
			input:    "",
			expected: []Token{{Type: TokenEOF, Literal: "", Line: 1, Column: 1}},
		},
		"parens": {
			input: "()",
			expected: []Token{
				{Type: TokenLParen, Literal: "(", Line: 1, Column: 1},
				{Type: TokenRParen, Literal: ")", Line: 1, Column: 2},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"braces": {
			input: "{}",
			expected: []Token{
				{Type: TokenLBrace, Literal: "{", Line: 1, Column: 1},
				{Type: TokenRBrace, Literal: "}", Line: 1, Column: 2},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"brackets": {
			input: "[]",
			expected: []Token{
				{Type: TokenLBracket, Literal: "[", Line: 1, Column: 1},
				{Type: TokenRBracket, Literal: "]", Line: 1, Column: 2},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"angles": {
			input: "<>",
			expected: []Token{
				{Type: TokenLAngle, Literal: "<", Line: 1, Column: 1},
				{Type: TokenRAngle, Literal: ">", Line: 1, Column: 2},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"closing tag": {
			input: "</",
			expected: []Token{
				{Type: TokenLAngleSlash, Literal: "</", Line: 1, Column: 1},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"self close": {
			input: "/>",
			expected: []Token{
				{Type: TokenSlashAngle, Literal: "/>", Line: 1, Column: 1},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"colon equals": {
			input: ":=",
			expected: []Token{
				{Type: TokenColonEquals, Literal: ":=", Line: 1, Column: 1},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 3},
			},
		},
		"splice sigils": {
			input: "%?#",
			expected: []Token{
				{Type: TokenPercent, Literal: "%", Line: 1, Column: 1},
				{Type: TokenQuestion, Literal: "?", Line: 1, Column: 2},
				{Type: TokenHash, Literal: "#", Line: 1, Column: 3},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 4},
			},
		},
		"punctuation": {
			input: ",.;=",
			expected: []Token{
				{Type: TokenComma, Literal: ",", Line: 1, Column: 1},
				{Type: TokenDot, Literal: ".", Line: 1, Column: 2},
				{Type: TokenSemicolon, Literal: ";", Line: 1, Column: 3},
				{Type: TokenEquals, Literal: "=", Line: 1, Column: 4},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 5},
			},
		},
		"newline advances line": {
			input: "a\nb",
			expected: []Token{
				{Type: TokenIdent, Literal: "a", Line: 1, Column: 1},
				{Type: TokenNewline, Literal: "\n", Line: 1, Column: 2},
				{Type: TokenIdent, Literal: "b", Line: 2, Column: 1},
				{Type: TokenEOF, Literal: "", Line: 2, Column: 2},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.hyp", tt.input)
			for i, expected := range tt.expected {
				tok := l.Next()
				if tok.Type != expected.Type {
					t.Errorf("token %d: Type = %v, want %v", i, tok.Type, expected.Type)
				}
				if tok.Literal != expected.Literal {
					t.Errorf("token %d: Literal = %q, want %q", i, tok.Literal, expected.Literal)
				}
				if tok.Line != expected.Line {
					t.Errorf("token %d: Line = %d, want %d", i, tok.Line, expected.Line)
				}
				if tok.Column != expected.Column {
					t.Errorf("token %d: Column = %d, want %d", i, tok.Column, expected.Column)
				}
			}
		})
	}
}

func TestLexer_Keywords(t *testing.T) {
	type tc struct {
		input        string
		expectedType TokenType
	}

	tests := map[string]tc{
		"package": {input: "package", expectedType: TokenPackage},
		"import":  {input: "import", expectedType: TokenImport},
		"func":    {input: "func", expectedType: TokenFunc},
		"type":    {input: "type", expectedType: TokenTypeKw},
		"const":   {input: "const", expectedType: TokenConst},
		"var":     {input: "var", expectedType: TokenVar},
		"maud":    {input: "maud", expectedType: TokenMaud},
		"rsx":     {input: "rsx", expectedType: TokenRsx},
		"attr":    {input: "attr", expectedType: TokenAttrKw},
		"static":  {input: "static", expectedType: TokenStatic},
		"include": {input: "include", expectedType: TokenInclude},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.hyp", tt.input)
			tok := l.Next()
			if tok.Type != tt.expectedType {
				t.Errorf("Type = %v, want %v", tok.Type, tt.expectedType)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexer_AtKeywords(t *testing.T) {
	type tc struct {
		input        string
		expectedType TokenType
		literal      string
	}

	tests := map[string]tc{
		"let":     {input: "@let", expectedType: TokenAtLet, literal: "@let"},
		"for":     {input: "@for", expectedType: TokenAtFor, literal: "@for"},
		"while":   {input: "@while", expectedType: TokenAtWhile, literal: "@while"},
		"if":      {input: "@if", expectedType: TokenAtIf, literal: "@if"},
		"else":    {input: "@else", expectedType: TokenAtElse, literal: "@else"},
		"match":   {input: "@match", expectedType: TokenAtMatch, literal: "@match"},
		"case":    {input: "@case", expectedType: TokenAtCase, literal: "@case"},
		"default": {input: "@default", expectedType: TokenAtDefault, literal: "@default"},
		"unknown word keeps literal": {
			input: "@click", expectedType: TokenAt, literal: "click",
		},
		"bare at": {
			input: "@=", expectedType: TokenAt, literal: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.hyp", tt.input)
			tok := l.Next()
			if tok.Type != tt.expectedType {
				t.Errorf("Type = %v, want %v", tok.Type, tt.expectedType)
			}
			if tok.Literal != tt.literal {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.literal)
			}
		})
	}
}

func TestLexer_IdentsAndNumbers(t *testing.T) {
	type tc struct {
		input    string
		expected []Token
	}

	tests := map[string]tc{
		"simple ident": {
			input: "div",
			expected: []Token{
				{Type: TokenIdent, Literal: "div"},
			},
		},
		"capitalized ident": {
			input: "Button",
			expected: []Token{
				{Type: TokenIdent, Literal: "Button"},
			},
		},
		"hyphen splits into minus": {
			input: "custom-element",
			expected: []Token{
				{Type: TokenIdent, Literal: "custom"},
				{Type: TokenMinus, Literal: "-"},
				{Type: TokenIdent, Literal: "element"},
			},
		},
		"int": {
			input: "42",
			expected: []Token{
				{Type: TokenInt, Literal: "42"},
			},
		},
		"float": {
			input: "3.14",
			expected: []Token{
				{Type: TokenFloat, Literal: "3.14"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.hyp", tt.input)
			for i, expected := range tt.expected {
				tok := l.Next()
				if tok.Type != expected.Type {
					t.Errorf("token %d: Type = %v, want %v", i, tok.Type, expected.Type)
				}
				if tok.Literal != expected.Literal {
					t.Errorf("token %d: Literal = %q, want %q", i, tok.Literal, expected.Literal)
				}
			}
		})
	}
}

func TestLexer_StartPos(t *testing.T) {
	l := NewLexer("test.hyp", "maud Page() {")

	tok := l.Next()
	if tok.StartPos != 0 {
		t.Errorf("maud StartPos = %d, want 0", tok.StartPos)
	}
	tok = l.Next()
	if tok.Literal != "Page" || tok.StartPos != 5 {
		t.Errorf("name token = %q at %d, want %q at 5", tok.Literal, tok.StartPos, "Page")
	}
	tok = l.Next()
	if tok.Type != TokenLParen || tok.StartPos != 9 {
		t.Errorf("lparen StartPos = %d, want 9", tok.StartPos)
	}
}
