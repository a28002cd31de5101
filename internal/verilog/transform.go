package verilog

import (
	"fmt"

	"github.com/pborges/silica/internal/syntax"
)

type Config struct {
	// CollapseDeclareAssign lowers `let x: bit = e;` to `assign x = e;`
	// instead of `wire x = e;`, matching older compiler output.
	CollapseDeclareAssign bool
}

// Transform lowers a Silica syntax tree into a Verilog tree. It never fails
// for trees produced by syntax.Parse.
func Transform(cfg Config, a syntax.Ast) Ast {
	return Ast{Top: transformMod(cfg, a.Top)}
}

func transformMod(cfg Config, m syntax.Mod) Mod {
	out := Mod{Name: m.Name}
	for _, p := range m.Ports {
		out.Ports = append(out.Ports, transformPort(p))
	}
	for _, s := range m.Stmts {
		out.Stmts = append(out.Stmts, transformStmt(cfg, s))
	}
	return out
}

func transformPort(p syntax.Port) Port {
	return Port{Dir: transformDir(p.Dir), Name: p.Name, Type: transformType(p.Type)}
}

func transformDir(d syntax.Dir) Dir {
	if d == syntax.Output {
		return Output
	}
	return Input
}

// transformType drops bit-vector widths: every type becomes a plain wire.
func transformType(t syntax.Type) Type {
	switch t.(type) {
	case syntax.TypeBit, syntax.TypeBitVec:
		return Wire
	}
	panic(fmt.Sprintf("verilog: unknown type %T", t))
}

func transformStmt(cfg Config, s syntax.Stmt) Stmt {
	switch s := s.(type) {
	case syntax.StmtAssign:
		return StmtAssign{ID: s.ID, Expr: transformExpr(s.Expr)}
	case syntax.StmtDeclare:
		return StmtDeclare{ID: s.ID, Type: transformType(s.Type)}
	case syntax.StmtDeclareAssign:
		if cfg.CollapseDeclareAssign {
			return StmtAssign{ID: s.ID, Expr: transformExpr(s.Expr)}
		}
		return StmtDeclareAssign{ID: s.ID, Type: transformType(s.Type), Expr: transformExpr(s.Expr)}
	}
	panic(fmt.Sprintf("verilog: unknown statement %T", s))
}

func transformExpr(e syntax.Expr) Expr {
	switch e := e.(type) {
	case syntax.ExprBinary:
		return ExprBinary{LHS: transformExpr(e.LHS), Op: transformBinaryOp(e.Op), RHS: transformExpr(e.RHS)}
	case syntax.ExprUnary:
		return ExprUnary{Op: transformUnaryOp(e.Op), X: transformExpr(e.X)}
	case syntax.ExprParen:
		return ExprParen{X: transformExpr(e.X)}
	case syntax.ExprIdent:
		return ExprIdent{Name: e.Name}
	case syntax.ExprLiteral:
		return ExprLiteral{Text: e.Text}
	}
	panic(fmt.Sprintf("verilog: unknown expression %T", e))
}

func transformBinaryOp(op syntax.BinaryOp) BinaryOp {
	switch op {
	case syntax.OpShiftLeft:
		return ShiftLeft
	case syntax.OpShiftRight:
		return ShiftRight
	case syntax.OpBitAnd:
		return BitAnd
	case syntax.OpBitXor:
		return BitXor
	case syntax.OpBitOr:
		return BitOr
	}
	panic(fmt.Sprintf("verilog: unknown binary operator %d", op))
}

func transformUnaryOp(op syntax.UnaryOp) UnaryOp {
	switch op {
	case syntax.OpNegate:
		return Negate
	case syntax.OpReductAnd:
		return ReductAnd
	case syntax.OpReductXor:
		return ReductXor
	case syntax.OpReductOr:
		return ReductOr
	}
	panic(fmt.Sprintf("verilog: unknown unary operator %d", op))
}
