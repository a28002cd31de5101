package syntax

import (
	"io"
	"strconv"
)

// TokenStream is anything that yields spanned tokens the way Lexer does:
// a token, a lexical error, or io.EOF at the end.
type TokenStream interface {
	Next() (Spanned, error)
}

// Parse lexes and parses a complete source file.
func Parse(src string) (Ast, error) {
	return ParseTokens(NewLexer(src))
}

// ParseTokens parses a source file from ts, pulling one token at a time.
// The first error stops parsing.
func ParseTokens(ts TokenStream) (Ast, error) {
	p := parser{ts: ts}
	a, err := p.parseSourceFile()
	if err != nil {
		if ee, ok := err.(*engineError); ok {
			return Ast{}, translate(ee)
		}
		return Ast{}, err
	}
	return a, nil
}

// Engine errors. These are the shapes the parser itself produces; callers
// only ever see them after translate.

type engineErrorKind int

const (
	engineInvalidToken engineErrorKind = iota
	engineUnrecognizedToken
	engineExtraToken
	engineUser
)

type engineError struct {
	kind     engineErrorKind
	location Pos
	token    *Spanned
	expected []string
	user     error
}

func (e *engineError) Error() string { return "parse error" }

type parser struct {
	ts     TokenStream
	tok    Spanned
	filled bool
	atEOF  bool
	last   Pos // end of the last consumed token
}

func (p *parser) fill() error {
	if p.filled {
		return nil
	}
	tok, err := p.ts.Next()
	switch {
	case err == io.EOF:
		p.atEOF = true
	case err != nil:
		return &engineError{kind: engineUser, user: err}
	default:
		p.tok = tok
	}
	p.filled = true
	return nil
}

// peek reports the lookahead kind; ok is false at end of input.
func (p *parser) peek() (Kind, bool, error) {
	if err := p.fill(); err != nil {
		return 0, false, err
	}
	if p.atEOF {
		return 0, false, nil
	}
	return p.tok.Tok.Kind, true, nil
}

func (p *parser) at(k Kind) (bool, error) {
	kind, ok, err := p.peek()
	return ok && kind == k, err
}

func (p *parser) advance() Spanned {
	t := p.tok
	p.filled = false
	p.last = t.End
	return t
}

func (p *parser) unexpected(expected ...Kind) error {
	e := &engineError{kind: engineUnrecognizedToken, location: p.last}
	if !p.atEOF {
		t := p.tok
		e.token = &t
		e.location = t.Start
	}
	for _, k := range expected {
		e.expected = append(e.expected, k.String())
	}
	return e
}

func (p *parser) expect(k Kind) (Spanned, error) {
	ok, err := p.at(k)
	if err != nil {
		return Spanned{}, err
	}
	if !ok {
		return Spanned{}, p.unexpected(k)
	}
	return p.advance(), nil
}

// expectAfterExpr is expect for the token closing an expression, where any
// binary operator would also have been accepted.
func (p *parser) expectAfterExpr(k Kind) (Spanned, error) {
	ok, err := p.at(k)
	if err != nil {
		return Spanned{}, err
	}
	if !ok {
		return Spanned{}, p.unexpected(k, BitOr, BitXor, BitAnd, ShiftLeft, ShiftRight)
	}
	return p.advance(), nil
}

func (p *parser) parseSourceFile() (Ast, error) {
	if _, err := p.expect(KwTop); err != nil {
		return Ast{}, err
	}
	if _, err := p.expect(KwMod); err != nil {
		return Ast{}, err
	}
	m, err := p.parseMod()
	if err != nil {
		return Ast{}, err
	}
	if err := p.fill(); err != nil {
		return Ast{}, err
	}
	if !p.atEOF {
		t := p.tok
		return Ast{}, &engineError{kind: engineExtraToken, location: t.Start, token: &t}
	}
	return Ast{Top: m}, nil
}

func (p *parser) parseMod() (Mod, error) {
	name, err := p.expect(Ident)
	if err != nil {
		return Mod{}, err
	}
	if _, err := p.expect(LeftParen); err != nil {
		return Mod{}, err
	}
	ports, err := p.parsePorts()
	if err != nil {
		return Mod{}, err
	}
	if _, err := p.expect(RightParen); err != nil {
		return Mod{}, err
	}
	if _, err := p.expect(LeftBrace); err != nil {
		return Mod{}, err
	}
	var stmts []Stmt
	for {
		kind, ok, err := p.peek()
		if err != nil {
			return Mod{}, err
		}
		if ok && kind == RightBrace {
			p.advance()
			break
		}
		if !ok || (kind != Ident && kind != KwLet) {
			return Mod{}, p.unexpected(Ident, KwLet, RightBrace)
		}
		st, err := p.parseStmt()
		if err != nil {
			return Mod{}, err
		}
		stmts = append(stmts, st)
	}
	return Mod{Name: name.Tok.Text, Ports: ports, Stmts: stmts}, nil
}

// parsePorts reads ports up to, but not including, the closing paren. A
// trailing comma is allowed.
func (p *parser) parsePorts() ([]Port, error) {
	var ports []Port
	for {
		kind, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if ok && kind == RightParen {
			return ports, nil
		}
		if !ok || (kind != KwIn && kind != KwOut) {
			return nil, p.unexpected(KwIn, KwOut, RightParen)
		}
		port, err := p.parsePort()
		if err != nil {
			return nil, err
		}
		ports = append(ports, port)

		kind, ok, err = p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case ok && kind == Comma:
			p.advance()
		case ok && kind == RightParen:
			return ports, nil
		default:
			return nil, p.unexpected(Comma, RightParen)
		}
	}
}

func (p *parser) parsePort() (Port, error) {
	dir := Input
	if p.advance().Tok.Kind == KwOut {
		dir = Output
	}
	name, err := p.expect(Ident)
	if err != nil {
		return Port{}, err
	}
	if _, err := p.expect(Colon); err != nil {
		return Port{}, err
	}
	ty, err := p.parseType()
	if err != nil {
		return Port{}, err
	}
	return Port{Dir: dir, Name: name.Tok.Text, Type: ty}, nil
}

func (p *parser) parseType() (Type, error) {
	if _, err := p.expect(KwBit); err != nil {
		return nil, err
	}
	ok, err := p.at(LeftBracket)
	if err != nil {
		return nil, err
	}
	if !ok {
		return TypeBit{}, nil
	}
	p.advance()
	hiTok, err := p.expect(Literal)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	loTok, err := p.expect(Literal)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RightBracket); err != nil {
		return nil, err
	}
	hi, err := parseBound(hiTok)
	if err != nil {
		return nil, err
	}
	lo, err := parseBound(loTok)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, &engineError{kind: engineInvalidToken, location: loTok.Start}
	}
	return TypeBitVec{High: hi, Low: lo}, nil
}

func parseBound(t Spanned) (uint64, error) {
	v, err := strconv.ParseUint(t.Tok.Text, 10, 64)
	if err != nil {
		return 0, &engineError{kind: engineInvalidToken, location: t.Start}
	}
	return v, nil
}

func (p *parser) parseStmt() (Stmt, error) {
	t := p.advance()
	if t.Tok.Kind == KwLet {
		return p.parseLet()
	}
	id := t.Tok.Text
	if _, err := p.expect(Assign); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectAfterExpr(Semicolon); err != nil {
		return nil, err
	}
	return StmtAssign{ID: id, Expr: x}, nil
}

func (p *parser) parseLet() (Stmt, error) {
	id, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	kind, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case ok && kind == Semicolon:
		p.advance()
		return StmtDeclare{ID: id.Tok.Text, Type: ty}, nil
	case ok && kind == Assign:
		p.advance()
	default:
		return nil, p.unexpected(Assign, Semicolon)
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectAfterExpr(Semicolon); err != nil {
		return nil, err
	}
	return StmtDeclareAssign{ID: id.Tok.Text, Type: ty, Expr: x}, nil
}

// Expressions, loosest first: | ^ & (<< >>) then unary and primary.

func (p *parser) parseExpr() (Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.at(BitOr)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = ExprBinary{LHS: left, Op: OpBitOr, RHS: right}
	}
	return left, nil
}

func (p *parser) parseXor() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.at(BitXor)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ExprBinary{LHS: left, Op: OpBitXor, RHS: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.at(BitAnd)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		left = ExprBinary{LHS: left, Op: OpBitAnd, RHS: right}
	}
	return left, nil
}

func (p *parser) parseShift() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		kind, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		var op BinaryOp
		switch {
		case ok && kind == ShiftLeft:
			op = OpShiftLeft
		case ok && kind == ShiftRight:
			op = OpShiftRight
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ExprBinary{LHS: left, Op: op, RHS: right}
	}
}

var unaryOps = map[Kind]UnaryOp{
	Negate: OpNegate,
	BitAnd: OpReductAnd,
	BitXor: OpReductXor,
	BitOr:  OpReductOr,
}

func (p *parser) parseUnary() (Expr, error) {
	kind, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if op, isUnary := unaryOps[kind]; ok && isUnary {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ExprUnary{Op: op, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	kind, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.unexpected(LeftParen, Negate, BitAnd, BitXor, BitOr, Ident, Literal)
	}
	switch kind {
	case Ident:
		return ExprIdent{Name: p.advance().Tok.Text}, nil
	case Literal:
		return ExprLiteral{Text: p.advance().Tok.Text}, nil
	case LeftParen:
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectAfterExpr(RightParen); err != nil {
			return nil, err
		}
		return ExprParen{X: x}, nil
	}
	return nil, p.unexpected(LeftParen, Negate, BitAnd, BitXor, BitOr, Ident, Literal)
}
