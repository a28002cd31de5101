package syntax

// Ast is one compilation unit: a single top module.
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

type Port struct {
	Dir  Dir
	Name string
	Type Type
}

// Type AST

type Type interface{ isType() }

type TypeBit struct{}

func (TypeBit) isType() {}

// TypeBitVec is the inclusive range [High:Low], High >= Low.
type TypeBitVec struct {
	High uint64
	Low  uint64
}

func (TypeBitVec) isType() {}

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

// ExprLiteral keeps the digits as written.
type ExprLiteral struct{ Text string }

func (ExprLiteral) isExpr() {}

type BinaryOp int

const (
	OpShiftLeft BinaryOp = iota
	OpShiftRight
	OpBitAnd
	OpBitXor
	OpBitOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpShiftLeft:
		return "<<"
	case OpShiftRight:
		return ">>"
	case OpBitAnd:
		return "&"
	case OpBitXor:
		return "^"
	case OpBitOr:
		return "|"
	}
	return "?"
}

type UnaryOp int

const (
	OpNegate UnaryOp = iota
	OpReductAnd
	OpReductXor
	OpReductOr
)

func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "~"
	case OpReductAnd:
		return "&"
	case OpReductXor:
		return "^"
	case OpReductOr:
		return "|"
	}
	return "?"
}
