package syntax

import "fmt"

// Pos is a byte offset into the source buffer.
type Pos int

type Kind int

const (
	Ident Kind = iota
	Literal

	// Punctuation
	Comma
	Semicolon
	Colon
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket

	// Operators
	Assign
	Negate
	BitAnd
	BitOr
	BitXor
	ShiftLeft
	ShiftRight

	// Keywords
	KwMod
	KwTop
	KwIn
	KwOut
	KwBit
	KwLet
)

var kindNames = [...]string{
	Ident:        "identifier",
	Literal:      "literal",
	Comma:        `","`,
	Semicolon:    `";"`,
	Colon:        `":"`,
	LeftParen:    `"("`,
	RightParen:   `")"`,
	LeftBrace:    `"{"`,
	RightBrace:   `"}"`,
	LeftBracket:  `"["`,
	RightBracket: `"]"`,
	Assign:       `"="`,
	Negate:       `"~"`,
	BitAnd:       `"&"`,
	BitOr:        `"|"`,
	BitXor:       `"^"`,
	ShiftLeft:    `"<<"`,
	ShiftRight:   `">>"`,
	KwMod:        `"mod"`,
	KwTop:        `"top"`,
	KwIn:         `"in"`,
	KwOut:        `"out"`,
	KwBit:        `"bit"`,
	KwLet:        `"let"`,
}

// String describes the kind the way it appears in expected-token lists.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var keywords = map[string]Kind{
	"mod": KwMod,
	"top": KwTop,
	"in":  KwIn,
	"out": KwOut,
	"bit": KwBit,
	"let": KwLet,
}

// Token is one lexeme. Text is only set for identifiers and literals.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Literal:
		return fmt.Sprintf("%q", t.Text)
	}
	return t.Kind.String()
}

// Spanned is a token together with its half-open byte range [Start, End).
type Spanned struct {
	Start Pos
	Tok   Token
	End   Pos
}
