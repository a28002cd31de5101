package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Module is the line structure of one emitted Verilog module, with
// surrounding whitespace stripped from every line.
type Module struct {
	Name  string
	Ports []string
	Stmts []string
}

// ParseVerilog reads a module in the layout the compiler emits. Blank lines
// and // comment lines are ignored, so hand-written golden files can be
// annotated.
func ParseVerilog(data []byte) (Module, error) {
	var m Module
	const (
		header = iota
		ports
		body
		done
	)
	state := header
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		switch state {
		case header:
			if !strings.HasPrefix(line, "module ") || !strings.HasSuffix(line, "(") {
				return m, fmt.Errorf("line %d: expected module header, got %q", lineNo, line)
			}
			m.Name = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "module "), "("))
			state = ports
		case ports:
			if line == ");" {
				state = body
				continue
			}
			m.Ports = append(m.Ports, strings.TrimSpace(strings.TrimSuffix(line, ",")))
		case body:
			if line == "endmodule" {
				state = done
				continue
			}
			m.Stmts = append(m.Stmts, line)
		case done:
			return m, fmt.Errorf("line %d: text after endmodule: %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return m, err
	}
	if state != done {
		return m, fmt.Errorf("missing endmodule")
	}
	return m, nil
}

// CompareVerilog returns a human-readable diff, or "" when got matches want.
func CompareVerilog(got, want Module) string {
	var buf bytes.Buffer
	if got.Name != want.Name {
		fmt.Fprintf(&buf, "  module name: got %q want %q\n", got.Name, want.Name)
	}
	compareLines(&buf, "port", got.Ports, want.Ports)
	compareLines(&buf, "stmt", got.Stmts, want.Stmts)
	if buf.Len() == 0 {
		return ""
	}
	return "verilog mismatch:\n" + buf.String()
}

func compareLines(buf *bytes.Buffer, what string, got, want []string) {
	n := len(got)
	if len(want) > n {
		n = len(want)
	}
	for i := 0; i < n; i++ {
		var g, w string
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g != w {
			fmt.Fprintf(buf, "  %s[%d]: got %q want %q\n", what, i, g, w)
		}
	}
}
