package syntax

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Error is implemented by every syntax error the parser returns.
type Error interface {
	error
	Position() Pos
}

// InvalidTokenError means no continuation is valid at Pos and there is no
// candidate token to blame, e.g. a bit-vector bound that is not a usable
// number.
type InvalidTokenError struct {
	Pos Pos
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token at offset %d", e.Pos)
}

func (e *InvalidTokenError) Position() Pos { return e.Pos }

// UnrecognizedTokenError means Token is not valid here. Token is nil at end
// of input, in which case Pos is the end of the last token read.
type UnrecognizedTokenError struct {
	Token    *Spanned
	Pos      Pos
	Expected []string
}

func (e *UnrecognizedTokenError) Error() string {
	var b strings.Builder
	if e.Token == nil {
		b.WriteString("unexpected end of input")
	} else {
		fmt.Fprintf(&b, "unexpected %s", e.Token.Tok)
	}
	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ", expected %s", e.Expected[0])
	default:
		fmt.Fprintf(&b, ", expected one of %s", strings.Join(e.Expected, ", "))
	}
	return b.String()
}

func (e *UnrecognizedTokenError) Position() Pos {
	if e.Token != nil {
		return e.Token.Start
	}
	return e.Pos
}

// ExtraTokenError means input continues after a complete source file.
type ExtraTokenError struct {
	Token Spanned
}

func (e *ExtraTokenError) Error() string {
	return fmt.Sprintf("extra token %s after end of module", e.Token.Tok)
}

func (e *ExtraTokenError) Position() Pos { return e.Token.Start }

// InvalidCharacterError is a lexical error surfaced through the parser.
type InvalidCharacterError struct {
	Pos Pos
	Ch  rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Ch)
}

func (e *InvalidCharacterError) Position() Pos { return e.Pos }

// translate maps each engine error shape to exactly one Error.
func translate(e *engineError) error {
	switch e.kind {
	case engineInvalidToken:
		return &InvalidTokenError{Pos: e.location}
	case engineUnrecognizedToken:
		return &UnrecognizedTokenError{Token: e.token, Pos: e.location, Expected: e.expected}
	case engineExtraToken:
		return &ExtraTokenError{Token: *e.token}
	case engineUser:
		var le *LexError
		if errors.As(e.user, &le) {
			return &InvalidCharacterError{Pos: le.Pos, Ch: le.Ch}
		}
		return e.user
	}
	panic(fmt.Sprintf("syntax: unknown engine error kind %d", e.kind))
}

// Locate converts a byte offset into a 1-based line and rune column.
func Locate(src string, pos Pos) (line, col int) {
	off := int(pos)
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	lineStart := strings.LastIndexByte(src[:off], '\n') + 1
	line = strings.Count(src[:lineStart], "\n") + 1
	col = utf8.RuneCountInString(src[lineStart:off]) + 1
	return line, col
}
