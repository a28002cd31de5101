// Package verilog holds the output-side tree, the lowering from the Silica
// syntax tree into it, and the renderer producing Verilog-2001 text.
package verilog

type Ast struct {
	Top Mod
}

type Mod struct {
	Name  string
	Ports []Port
	Stmts []Stmt
}

type Dir int

const (
	Input Dir = iota
	Output
)

func (d Dir) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Type has a single variant; widths are not carried yet.
type Type int

const Wire Type = 0

func (Type) String() string { return "wire" }

type Port struct {
	Dir  Dir
	Name string
	Type Type
}

// Stmt AST

type Stmt interface{ isStmt() }

type StmtAssign struct {
	ID   string
	Expr Expr
}

func (StmtAssign) isStmt() {}

type StmtDeclare struct {
	ID   string
	Type Type
}

func (StmtDeclare) isStmt() {}

type StmtDeclareAssign struct {
	ID   string
	Type Type
	Expr Expr
}

func (StmtDeclareAssign) isStmt() {}

// Expr AST

type Expr interface{ isExpr() }

type ExprBinary struct {
	LHS Expr
	Op  BinaryOp
	RHS Expr
}

func (ExprBinary) isExpr() {}

type ExprUnary struct {
	Op UnaryOp
	X  Expr
}

func (ExprUnary) isExpr() {}

type ExprParen struct{ X Expr }

func (ExprParen) isExpr() {}

type ExprIdent struct{ Name string }

func (ExprIdent) isExpr() {}

type ExprLiteral struct{ Text string }

func (ExprLiteral) isExpr() {}

type BinaryOp int

const (
	ShiftLeft BinaryOp = iota
	ShiftRight
	BitAnd
	BitXor
	BitOr
)

var binarySymbols = [...]string{
	ShiftLeft:  "<<",
	ShiftRight: ">>",
	BitAnd:     "&",
	BitXor:     "^",
	BitOr:      "|",
}

func (op BinaryOp) String() string { return binarySymbols[op] }

type UnaryOp int

const (
	Negate UnaryOp = iota
	ReductAnd
	ReductXor
	ReductOr
)

var unarySymbols = [...]string{
	Negate:    "~",
	ReductAnd: "&",
	ReductXor: "^",
	ReductOr:  "|",
}

func (op UnaryOp) String() string { return unarySymbols[op] }
