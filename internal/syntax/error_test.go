package syntax

import (
	"reflect"
	"testing"
)

func TestTranslate(t *testing.T) {
	tok := Spanned{Start: 4, Tok: Token{Kind: Comma}, End: 5}
	tests := []struct {
		name string
		in   *engineError
		want error
	}{
		{
			name: "InvalidToken",
			in:   &engineError{kind: engineInvalidToken, location: 7},
			want: &InvalidTokenError{Pos: 7},
		},
		{
			name: "Unrecognized",
			in:   &engineError{kind: engineUnrecognizedToken, location: 4, token: &tok, expected: []string{`")"`}},
			want: &UnrecognizedTokenError{Token: &tok, Pos: 4, Expected: []string{`")"`}},
		},
		{
			name: "Extra",
			in:   &engineError{kind: engineExtraToken, location: 4, token: &tok},
			want: &ExtraTokenError{Token: tok},
		},
		{
			name: "User",
			in:   &engineError{kind: engineUser, user: &LexError{Pos: 2, Ch: '∞'}},
			want: &InvalidCharacterError{Pos: 2, Ch: '∞'},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tok := Spanned{Start: 3, Tok: Token{Kind: Ident, Text: "foo"}, End: 6}
	tests := []struct {
		err Error
		msg string
		pos Pos
	}{
		{&InvalidTokenError{Pos: 9}, "invalid token at offset 9", 9},
		{&UnrecognizedTokenError{Token: &tok, Pos: 3, Expected: []string{`";"`}}, `unexpected "foo", expected ";"`, 3},
		{&UnrecognizedTokenError{Pos: 12, Expected: []string{`"in"`, `"out"`}}, `unexpected end of input, expected one of "in", "out"`, 12},
		{&UnrecognizedTokenError{Token: &tok, Pos: 3}, `unexpected "foo"`, 3},
		{&ExtraTokenError{Token: Spanned{Start: 20, Tok: Token{Kind: KwMod}, End: 23}}, `extra token "mod" after end of module`, 20},
		{&InvalidCharacterError{Pos: 1, Ch: '$'}, "invalid character '$'", 1},
	}
	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.msg {
			t.Errorf("Error() = %q, want %q", got, tc.msg)
		}
		if got := tc.err.Position(); got != tc.pos {
			t.Errorf("%q: Position() = %d, want %d", tc.msg, got, tc.pos)
		}
	}
}

func TestLocate(t *testing.T) {
	src := "top\n  ∞x\n\nend"
	tests := []struct {
		pos       Pos
		line, col int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{6, 2, 3},
		{9, 2, 4},
		{11, 3, 1},
		{12, 4, 1},
		{-5, 1, 1},
		{100, 4, 4},
	}
	for _, tc := range tests {
		line, col := Locate(src, tc.pos)
		if line != tc.line || col != tc.col {
			t.Errorf("Locate(%d) = %d:%d, want %d:%d", tc.pos, line, col, tc.line, tc.col)
		}
	}
}
