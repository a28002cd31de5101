// Package compiler runs the Silica pipeline: parse, lower, render.
package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pborges/silica/internal/syntax"
	"github.com/pborges/silica/internal/verilog"
)

type Config struct {
	Verilog verilog.Config
}

// Compile turns Silica source into Verilog text. Only syntax errors can
// occur; lowering and rendering are total.
func Compile(src []byte, cfg Config) (string, error) {
	a, err := syntax.Parse(string(src))
	if err != nil {
		return "", err
	}
	return verilog.Render(verilog.Transform(cfg.Verilog, a)), nil
}

// Diagnose formats err for a user. Syntax errors are located in src and
// shown with the offending line and a caret:
//
//	and.si:3:7: error: invalid character '<'
//	    y = a < b;
//	          ^
func Diagnose(name, src string, err error) string {
	var se syntax.Error
	if !errors.As(err, &se) {
		return fmt.Sprintf("%s: error: %v", name, err)
	}
	line, col := syntax.Locate(src, se.Position())
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: error: %v", name, line, col, err)
	lines := strings.Split(src, "\n")
	if line-1 < len(lines) {
		text := strings.TrimRight(lines[line-1], "\r")
		fmt.Fprintf(&b, "\n    %s\n    %s^", text, caretPad(text, col))
	}
	return b.String()
}

// caretPad keeps tabs so the caret lines up under tab-indented source.
func caretPad(text string, col int) string {
	var pad strings.Builder
	i := 1
	for _, r := range text {
		if i >= col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		pad.WriteByte(' ')
	}
	return pad.String()
}
