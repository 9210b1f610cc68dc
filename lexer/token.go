package lexer

import "fmt"

type TokenType int

const (
	// Identifiers
	TokenIdentifier TokenType = iota

	// Literals
	TokenNumber
	TokenString
	TokenBoolLiteral

	// Keywords
	TokenVar
	TokenConst
	TokenFunc
	TokenIf
	TokenElse
	TokenLoop
	TokenImport
	TokenTrue
	TokenFalse
	TokenAnd
	TokenOr
	TokenNot

	// Type names
	TokenTypeNumber
	TokenTypeString
	TokenTypeBool

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenCaret
	TokenHash
	TokenEqualEqual
	TokenBangEqual
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	TokenEqual

	// Punctuation
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenSemicolon

	// Line terminators
	TokenEol

	TokenEof
)

var tokenTypeNames = [...]string{
	TokenIdentifier:   "Identifier",
	TokenNumber:       "Number",
	TokenString:       "String",
	TokenBoolLiteral:  "BoolLiteral",
	TokenVar:          "Var",
	TokenConst:        "Const",
	TokenFunc:         "Func",
	TokenIf:           "If",
	TokenElse:         "Else",
	TokenLoop:         "Loop",
	TokenImport:       "Import",
	TokenTrue:         "True",
	TokenFalse:        "False",
	TokenAnd:          "And",
	TokenOr:           "Or",
	TokenNot:          "Not",
	TokenTypeNumber:   "TypeNumber",
	TokenTypeString:   "TypeString",
	TokenTypeBool:     "TypeBool",
	TokenPlus:         "Plus",
	TokenMinus:        "Minus",
	TokenStar:         "Star",
	TokenSlash:        "Slash",
	TokenPercent:      "Percent",
	TokenCaret:        "Caret",
	TokenHash:         "Hash",
	TokenEqualEqual:   "EqualEqual",
	TokenBangEqual:    "BangEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenEqual:        "Equal",
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenComma:        "Comma",
	TokenSemicolon:    "Semicolon",
	TokenEol:          "Eol",
	TokenEof:          "Eof",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one classified fragment of source text. Tokens are created by the
// scanner and never mutated afterwards; the parser may hold on to them for
// diagnostics. Literal is non-nil exactly for Number, String and BoolLiteral
// tokens.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Literal   Value
	Line      int
	Column    int
	Start     int
	File      string
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%d:%d %s %q %s", t.Line, t.Column, t.TokenType, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.TokenType, t.Lexeme)
}

// keywords maps reserved words to their token types. true and false map to
// TokenBoolLiteral rather than TokenTrue/TokenFalse: boolean literals are
// literals first, keywords second, and the scanner attaches their value.
var keywords = map[string]TokenType{
	"var":    TokenVar,
	"const":  TokenConst,
	"func":   TokenFunc,
	"if":     TokenIf,
	"else":   TokenElse,
	"loop":   TokenLoop,
	"import": TokenImport,
	"true":   TokenBoolLiteral,
	"false":  TokenBoolLiteral,
	"and":    TokenAnd,
	"or":     TokenOr,
	"not":    TokenNot,
	"number": TokenTypeNumber,
	"string": TokenTypeString,
	"bool":   TokenTypeBool,
}
