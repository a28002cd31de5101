package verilog

import (
	"fmt"
	"io"
	"strings"
)

// Render produces the Verilog source for a.
//
// Layout is fixed: the header and every port and statement line end in
// " \n", ports and statements are indented by one tab, and the last port
// carries no comma.
func Render(a Ast) string {
	var buf strings.Builder
	m := a.Top
	fmt.Fprintf(&buf, "module %s ( \n", m.Name)
	for i, p := range m.Ports {
		fmt.Fprintf(&buf, "\t%s %s %s", p.Dir, p.Type, p.Name)
		if i < len(m.Ports)-1 {
			buf.WriteByte(',')
		}
		buf.WriteString(" \n")
	}
	buf.WriteString("); \n")
	for _, s := range m.Stmts {
		buf.WriteByte('\t')
		writeStmt(&buf, s)
		buf.WriteString(" \n")
	}
	buf.WriteString("endmodule \n")
	return buf.String()
}

// Write renders a to w.
func Write(w io.Writer, a Ast) error {
	_, err := io.WriteString(w, Render(a))
	return err
}

func writeStmt(buf *strings.Builder, s Stmt) {
	switch s := s.(type) {
	case StmtAssign:
		fmt.Fprintf(buf, "assign %s = ", s.ID)
		writeExpr(buf, s.Expr)
		buf.WriteByte(';')
	case StmtDeclare:
		fmt.Fprintf(buf, "%s %s;", s.Type, s.ID)
	case StmtDeclareAssign:
		fmt.Fprintf(buf, "%s %s = ", s.Type, s.ID)
		writeExpr(buf, s.Expr)
		buf.WriteByte(';')
	default:
		panic(fmt.Sprintf("verilog: unknown statement %T", s))
	}
}

func writeExpr(buf *strings.Builder, e Expr) {
	switch e := e.(type) {
	case ExprBinary:
		writeExpr(buf, e.LHS)
		fmt.Fprintf(buf, " %s ", e.Op)
		writeExpr(buf, e.RHS)
	case ExprUnary:
		buf.WriteString(e.Op.String())
		writeExpr(buf, e.X)
	case ExprParen:
		buf.WriteString("( ")
		writeExpr(buf, e.X)
		buf.WriteString(" )")
	case ExprIdent:
		buf.WriteString(e.Name)
	case ExprLiteral:
		buf.WriteString(e.Text)
	default:
		panic(fmt.Sprintf("verilog: unknown expression %T", e))
	}
}
