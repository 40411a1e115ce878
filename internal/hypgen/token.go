// Package hypgen provides a DSL compiler that transforms .hyp files into Go
// source code. A .hyp file declares HTML templates in two syntaxes (maud and
// rsx) that compile to render closures plus compile-time name validation.
package hypgen

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF        TokenType = iota // end of file
	TokenError                       // lexer error
	TokenNewline                     // newline
	TokenWhitespace                  // spaces/tabs (usually skipped)

	// Keywords
	TokenPackage // package
	TokenImport  // import
	TokenFunc    // func
	TokenTypeKw  // type
	TokenConst   // const
	TokenVar     // var
	TokenMaud    // maud
	TokenRsx     // rsx
	TokenAttrKw  // attr
	TokenStatic  // static
	TokenInclude // include

	// DSL keywords (@ prefixed)
	TokenAtLet     // @let
	TokenAtFor     // @for
	TokenAtWhile   // @while
	TokenAtIf      // @if
	TokenAtElse    // @else
	TokenAtMatch   // @match
	TokenAtCase    // @case
	TokenAtDefault // @default

	// Literals
	TokenIdent     // identifier
	TokenInt       // integer literal: 123
	TokenFloat     // float literal: 1.23
	TokenString    // string literal: "..."
	TokenRawString // raw string literal: `...`
	TokenRune      // rune literal: 'x'

	// Operators and Punctuation
	TokenLParen      // (
	TokenRParen      // )
	TokenLBrace      // {
	TokenRBrace      // }
	TokenLAngle      // <
	TokenRAngle      // >
	TokenLBracket    // [
	TokenRBracket    // ]
	TokenSlash       // /
	TokenEquals      // =
	TokenComma       // ,
	TokenDot         // .
	TokenColon       // :
	TokenSemicolon   // ;
	TokenColonEquals // :=
	TokenAmpersand   // &
	TokenPipe        // |
	TokenStar        // *
	TokenPlus        // +
	TokenMinus       // -
	TokenBang        // !
	TokenUnderscore  // _
	TokenHash        // #
	TokenPercent     // %
	TokenQuestion    // ?
	TokenAt          // @ (bare, not forming a keyword)

	// Composite tokens
	TokenSlashAngle  // />  (self-closing tag end)
	TokenLAngleSlash // </ (closing tag start)

	// Comment tokens (collected but not emitted by lexer)
	TokenLineComment  // // comment
	TokenBlockComment // /* comment */
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenError:        "Error",
	TokenNewline:      "Newline",
	TokenWhitespace:   "Whitespace",
	TokenPackage:      "package",
	TokenImport:       "import",
	TokenFunc:         "func",
	TokenTypeKw:       "type",
	TokenConst:        "const",
	TokenVar:          "var",
	TokenMaud:         "maud",
	TokenRsx:          "rsx",
	TokenAttrKw:       "attr",
	TokenStatic:       "static",
	TokenInclude:      "include",
	TokenAtLet:        "@let",
	TokenAtFor:        "@for",
	TokenAtWhile:      "@while",
	TokenAtIf:         "@if",
	TokenAtElse:       "@else",
	TokenAtMatch:      "@match",
	TokenAtCase:       "@case",
	TokenAtDefault:    "@default",
	TokenIdent:        "Ident",
	TokenInt:          "Int",
	TokenFloat:        "Float",
	TokenString:       "String",
	TokenRawString:    "RawString",
	TokenRune:         "Rune",
	TokenLParen:       "(",
	TokenRParen:       ")",
	TokenLBrace:       "{",
	TokenRBrace:       "}",
	TokenLAngle:       "<",
	TokenRAngle:       ">",
	TokenLBracket:     "[",
	TokenRBracket:     "]",
	TokenSlash:        "/",
	TokenEquals:       "=",
	TokenComma:        ",",
	TokenDot:          ".",
	TokenColon:        ":",
	TokenSemicolon:    ";",
	TokenColonEquals:  ":=",
	TokenAmpersand:    "&",
	TokenPipe:         "|",
	TokenStar:         "*",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenBang:         "!",
	TokenUnderscore:   "_",
	TokenHash:         "#",
	TokenPercent:      "%",
	TokenQuestion:     "?",
	TokenAt:           "@",
	TokenSlashAngle:   "/>",
	TokenLAngleSlash:  "</",
	TokenLineComment:  "LineComment",
	TokenBlockComment: "BlockComment",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token represents a lexical token with its type, literal value, and source position.
type Token struct {
	Type     TokenType
	Literal  string
	Line     int
	Column   int
	StartPos int // byte offset in source where token starts
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Line, t.Column)
	}
	// Truncate long literals for readability
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Line, t.Column)
}

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// keywords maps keyword strings to their token types. Only declaration-level
// keywords live here; inside template bodies idents like "static" are plain
// names, and the parser decides by context.
var keywords = map[string]TokenType{
	"package": TokenPackage,
	"import":  TokenImport,
	"func":    TokenFunc,
	"type":    TokenTypeKw,
	"const":   TokenConst,
	"var":     TokenVar,
	"maud":    TokenMaud,
	"rsx":     TokenRsx,
	"attr":    TokenAttrKw,
	"static":  TokenStatic,
	"include": TokenInclude,
}

// LookupIdent returns the token type for an identifier,
// checking if it's a keyword first.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
