package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scan tokenizes source in one call. file identifies the originating file in
// token positions and error messages; it is never opened or resolved here.
func Scan(source, file string) ([]Token, error) {
	return NewScanner(source, file).ScanTokens()
}

func NewScanner(source, file string) *Scanner {
	return &Scanner{source: source, file: file, line: 1, column: 1}
}

// Scanner turns one file's source text into a token sequence terminated by a
// TokenEof token. A Scanner is single-use: after ScanTokens returns, create a
// new one to scan again. Scanners for different files share no mutable state
// and may run concurrently.
type Scanner struct {
	source string
	file   string

	start   int // byte offset of the lexeme being scanned
	current int // byte offset of the next unconsumed byte
	line    int // 1-based line of s.current
	column  int // 1-based column of s.current

	// position of the first character of the lexeme being scanned
	startLine   int
	startColumn int

	tokens []Token
}

// ScanTokens scans the whole source eagerly and returns the token sequence,
// or the first lexical fault as a *LexError. The sequence always ends with
// exactly one TokenEof, preceded by a TokenEol unless the last real token
// already was one. Tokens appear in source order.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.startLine, s.startColumn = s.line, s.column
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}

	// a source that doesn't end in a newline still terminates its last
	// statement: synthesize the line terminator, with an empty lexeme since
	// no source text backs it
	if n := len(s.tokens); n > 0 && s.tokens[n-1].TokenType != TokenEol {
		s.tokens = append(s.tokens, Token{
			TokenType: TokenEol,
			Line:      s.line,
			Column:    s.column,
			Start:     s.current,
			File:      s.file,
		})
	}

	s.tokens = append(s.tokens, Token{
		TokenType: TokenEof,
		Line:      s.line,
		Column:    s.column,
		Start:     s.current,
		File:      s.file,
	})
	return s.tokens, nil
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() error {
	char := s.advance()

	switch char {
	// Ignore whitespace
	case ' ', '\t', '\r':

	case '\n':
		// line breaks separate statements, but runs of blank lines collapse
		// to a single terminator, and leading blank lines produce none
		if n := len(s.tokens); n > 0 && s.tokens[n-1].TokenType != TokenEol {
			s.addToken(TokenEol)
		}

	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case ';':
		s.addToken(TokenSemicolon)

	case '+':
		s.addToken(TokenPlus)
	case '-':
		s.addToken(TokenMinus)
	case '*':
		s.addToken(TokenStar)
	case '/':
		s.addToken(TokenSlash)
	case '%':
		s.addToken(TokenPercent)
	case '^':
		s.addToken(TokenCaret)
	case '#':
		s.addToken(TokenHash)

	case '=':
		if s.match('=') {
			s.addToken(TokenEqualEqual)
		} else {
			s.addToken(TokenEqual)
		}
	case '!':
		// there is no bare "!" operator; negation is the "not" keyword
		if s.match('=') {
			s.addToken(TokenBangEqual)
		} else {
			return s.errorAtStart(ErrUnexpectedCharacter, '!', "")
		}
	case '<':
		if s.match('=') {
			s.addToken(TokenLessEqual)
		} else {
			s.addToken(TokenLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(TokenGreaterEqual)
		} else {
			s.addToken(TokenGreater)
		}

	case '"':
		return s.scanString()

	default:
		if isDigit(char) {
			return s.scanNumber()
		}
		if isAlpha(char) {
			s.scanIdentifier()
			return nil
		}
		r, _ := utf8.DecodeRuneInString(s.source[s.start:])
		return s.errorAtStart(ErrUnexpectedCharacter, r, "")
	}

	return nil
}

// scanNumber consumes digits with an optional fractional part. A decimal
// point not followed by a digit is a fault rather than two tokens, since the
// language has no standalone dot.
func (s *Scanner) scanNumber() error {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' {
		if !isDigit(s.peekNext()) {
			s.advance() // include the dot in the reported text
			return s.errorAtStart(ErrMalformedNumber, 0, s.source[s.start:s.current])
		}
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return s.errorAtStart(ErrMalformedNumber, 0, text)
	}

	s.addTokenWithLiteral(TokenNumber, NumberValue(value))
	return nil
}

// scanString consumes a double-quoted single-line string. The literal value
// is the unescaped content; the lexeme keeps the delimiters. Recognized
// escapes are \" \\ and \n only.
func (s *Scanner) scanString() error {
	var value strings.Builder
	for {
		if s.isAtEnd() || s.peek() == '\n' {
			return s.errorAtStart(ErrUnterminatedString, 0, "")
		}

		if s.peek() == '"' {
			s.advance()
			break
		}

		if s.peek() == '\\' {
			escLine, escColumn := s.line, s.column
			s.advance()
			if s.isAtEnd() {
				return s.errorAtStart(ErrUnterminatedString, 0, "")
			}
			esc := s.advance()
			switch esc {
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			case 'n':
				value.WriteByte('\n')
			default:
				r, _ := utf8.DecodeRuneInString(s.source[s.current-1:])
				return &LexError{
					Kind:   ErrInvalidEscape,
					File:   s.file,
					Line:   escLine,
					Column: escColumn,
					Char:   r,
				}
			}
			continue
		}

		value.WriteByte(s.advance())
	}

	s.addTokenWithLiteral(TokenString, StringValue(value.String()))
	return nil
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, found := keywords[text]
	if !found {
		s.addToken(TokenIdentifier)
		return
	}

	if tokenType == TokenBoolLiteral {
		s.addTokenWithLiteral(TokenBoolLiteral, BooleanValue(text == "true"))
		return
	}
	s.addToken(tokenType)
}

func (s *Scanner) advance() byte {
	curr := s.source[s.current]
	s.current++
	if curr == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return curr
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenWithLiteral(tokenType, nil)
}

func (s *Scanner) addTokenWithLiteral(tokenType TokenType, literal Value) {
	s.tokens = append(s.tokens, Token{
		TokenType: tokenType,
		Lexeme:    s.source[s.start:s.current],
		Literal:   literal,
		Line:      s.startLine,
		Column:    s.startColumn,
		Start:     s.start,
		File:      s.file,
	})
}

// errorAtStart builds a LexError pointing at the first character of the
// lexeme being scanned.
func (s *Scanner) errorAtStart(kind ErrorKind, char rune, text string) error {
	return &LexError{
		Kind:   kind,
		File:   s.file,
		Line:   s.startLine,
		Column: s.startColumn,
		Char:   char,
		Text:   text,
	}
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isAlpha(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || char == '_'
}

func isAlphaNumeric(char byte) bool {
	return isAlpha(char) || isDigit(char)
}
