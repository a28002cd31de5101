package syntax

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// LexError reports a rune that does not start any token.
type LexError struct {
	Pos Pos
	Ch  rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Ch, e.Pos)
}

// Lexer scans a source string lazily. After a LexError the lexer has
// already moved past the bad rune, so scanning can continue.
type Lexer struct {
	s string
	i int
}

func NewLexer(src string) *Lexer { return &Lexer{s: src} }

// peek returns the rune at the cursor without consuming it.
func (l *Lexer) peek() (rune, int) {
	if l.i >= len(l.s) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.s[l.i:])
}

func (l *Lexer) peekEq(b byte) bool {
	return l.i < len(l.s) && l.s[l.i] == b
}

// Next returns the next token, a *LexError, or io.EOF when the input is
// exhausted.
func (l *Lexer) Next() (Spanned, error) {
	for {
		l.skipWhitespace()
		if l.i >= len(l.s) {
			return Spanned{}, io.EOF
		}
		if l.s[l.i] == '/' && l.i+1 < len(l.s) && l.s[l.i+1] == '/' {
			l.skipLine()
			continue
		}
		break
	}

	start := l.i
	ch, size := l.peek()
	l.i += size

	switch ch {
	case ',':
		return l.emit(start, Comma), nil
	case ';':
		return l.emit(start, Semicolon), nil
	case ':':
		return l.emit(start, Colon), nil
	case '(':
		return l.emit(start, LeftParen), nil
	case ')':
		return l.emit(start, RightParen), nil
	case '{':
		return l.emit(start, LeftBrace), nil
	case '}':
		return l.emit(start, RightBrace), nil
	case '[':
		return l.emit(start, LeftBracket), nil
	case ']':
		return l.emit(start, RightBracket), nil
	case '=':
		return l.emit(start, Assign), nil
	case '~':
		return l.emit(start, Negate), nil
	case '&':
		return l.emit(start, BitAnd), nil
	case '|':
		return l.emit(start, BitOr), nil
	case '^':
		return l.emit(start, BitXor), nil
	case '<':
		if l.peekEq('<') {
			l.i++
			return l.emit(start, ShiftLeft), nil
		}
	case '>':
		if l.peekEq('>') {
			l.i++
			return l.emit(start, ShiftRight), nil
		}
	default:
		if isLetter(ch) {
			return l.readIdentifier(start), nil
		}
		if isDigit(ch) {
			return l.readNumber(start), nil
		}
	}
	return Spanned{}, &LexError{Pos: Pos(start), Ch: ch}
}

func (l *Lexer) emit(start int, k Kind) Spanned {
	return Spanned{Start: Pos(start), Tok: Token{Kind: k}, End: Pos(l.i)}
}

func (l *Lexer) readIdentifier(start int) Spanned {
	for {
		ch, size := l.peek()
		if size == 0 || !(isLetter(ch) || unicode.IsNumber(ch)) {
			break
		}
		l.i += size
	}
	text := l.s[start:l.i]
	tok := Token{Kind: Ident, Text: text}
	if k, ok := keywords[text]; ok {
		tok = Token{Kind: k}
	}
	return Spanned{Start: Pos(start), Tok: tok, End: Pos(l.i)}
}

func (l *Lexer) readNumber(start int) Spanned {
	for {
		ch, size := l.peek()
		if size == 0 || !isDigit(ch) {
			break
		}
		l.i += size
	}
	return Spanned{Start: Pos(start), Tok: Token{Kind: Literal, Text: l.s[start:l.i]}, End: Pos(l.i)}
}

func (l *Lexer) skipWhitespace() {
	for {
		ch, size := l.peek()
		if size == 0 || !unicode.IsSpace(ch) {
			return
		}
		l.i += size
	}
}

// skipLine stops on the newline, leaving it to skipWhitespace.
func (l *Lexer) skipLine() {
	for l.i < len(l.s) && l.s[l.i] != '\n' {
		l.i++
	}
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isDigit is narrower than identifier continuation, which also takes
// superscripts and other numeric runes.
func isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// Tokenize drains a lexer over src, collecting every token and every
// lexical error in scan order.
func Tokenize(src string) ([]Spanned, []error) {
	var (
		toks []Spanned
		errs []error
	)
	l := NewLexer(src)
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return toks, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		toks = append(toks, tok)
	}
}
