package verilog

import (
	"reflect"
	"testing"

	"github.com/pborges/silica/internal/syntax"
)

func sourceModule() syntax.Ast {
	return syntax.Ast{Top: syntax.Mod{
		Name: "m",
		Ports: []syntax.Port{
			{Dir: syntax.Input, Name: "a", Type: syntax.TypeBitVec{High: 7, Low: 0}},
			{Dir: syntax.Output, Name: "y", Type: syntax.TypeBit{}},
		},
		Stmts: []syntax.Stmt{
			syntax.StmtDeclare{ID: "t", Type: syntax.TypeBitVec{High: 3, Low: 0}},
			syntax.StmtDeclareAssign{ID: "u", Type: syntax.TypeBit{}, Expr: syntax.ExprUnary{Op: syntax.OpReductXor, X: syntax.ExprIdent{Name: "a"}}},
			syntax.StmtAssign{ID: "y", Expr: syntax.ExprBinary{
				LHS: syntax.ExprParen{X: syntax.ExprBinary{LHS: syntax.ExprIdent{Name: "u"}, Op: syntax.OpShiftLeft, RHS: syntax.ExprLiteral{Text: "01"}}},
				Op:  syntax.OpBitOr,
				RHS: syntax.ExprUnary{Op: syntax.OpNegate, X: syntax.ExprIdent{Name: "t"}},
			}},
		},
	}}
}

func TestTransform(t *testing.T) {
	got := Transform(Config{}, sourceModule())
	want := Ast{Top: Mod{
		Name: "m",
		Ports: []Port{
			{Dir: Input, Name: "a", Type: Wire},
			{Dir: Output, Name: "y", Type: Wire},
		},
		Stmts: []Stmt{
			StmtDeclare{ID: "t", Type: Wire},
			StmtDeclareAssign{ID: "u", Type: Wire, Expr: ExprUnary{Op: ReductXor, X: ExprIdent{Name: "a"}}},
			StmtAssign{ID: "y", Expr: ExprBinary{
				LHS: ExprParen{X: ExprBinary{LHS: ExprIdent{Name: "u"}, Op: ShiftLeft, RHS: ExprLiteral{Text: "01"}}},
				Op:  BitOr,
				RHS: ExprUnary{Op: Negate, X: ExprIdent{Name: "t"}},
			}},
		},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTransformCollapseDeclareAssign(t *testing.T) {
	got := Transform(Config{CollapseDeclareAssign: true}, sourceModule())
	want := StmtAssign{ID: "u", Expr: ExprUnary{Op: ReductXor, X: ExprIdent{Name: "a"}}}
	if !reflect.DeepEqual(got.Top.Stmts[1], want) {
		t.Errorf("got %+v, want %+v", got.Top.Stmts[1], want)
	}
	if _, ok := got.Top.Stmts[0].(StmtDeclare); !ok {
		t.Errorf("plain declarations must stay declarations, got %T", got.Top.Stmts[0])
	}
}

func TestTransformOperators(t *testing.T) {
	binary := map[syntax.BinaryOp]BinaryOp{
		syntax.OpShiftLeft:  ShiftLeft,
		syntax.OpShiftRight: ShiftRight,
		syntax.OpBitAnd:     BitAnd,
		syntax.OpBitXor:     BitXor,
		syntax.OpBitOr:      BitOr,
	}
	for in, want := range binary {
		if got := transformBinaryOp(in); got != want {
			t.Errorf("%v: got %v, want %v", in, got, want)
		}
		if in.String() != want.String() {
			t.Errorf("symbol changed: %q -> %q", in.String(), want.String())
		}
	}
	unary := map[syntax.UnaryOp]UnaryOp{
		syntax.OpNegate:    Negate,
		syntax.OpReductAnd: ReductAnd,
		syntax.OpReductXor: ReductXor,
		syntax.OpReductOr:  ReductOr,
	}
	for in, want := range unary {
		if got := transformUnaryOp(in); got != want {
			t.Errorf("%v: got %v, want %v", in, got, want)
		}
		if in.String() != want.String() {
			t.Errorf("symbol changed: %q -> %q", in.String(), want.String())
		}
	}
}
