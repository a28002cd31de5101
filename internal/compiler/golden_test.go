package compiler

import (
	"testing"

	"github.com/pborges/silica/examples"
	"github.com/pborges/silica/internal/testutil"
	"github.com/pborges/silica/internal/verilog"
)

func TestGoldenExamples(t *testing.T) {
	cases := []struct {
		name   string
		siPath string
		vPath  string
	}{
		{name: "SimpleMod", siPath: "simple_mod.si", vPath: "simple_mod.v"},
		{name: "AndGate", siPath: "and_gate.si", vPath: "and_gate.v"},
		{name: "Precedence", siPath: "precedence.si", vPath: "precedence.v"},
		{name: "Declare", siPath: "declare.si", vPath: "declare.v"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := mustRead(t, tc.siPath)
			expected := mustRead(t, tc.vPath)
			got, err := Compile(src, Config{})
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got != string(expected) {
				t.Fatalf("output mismatch\ngot:\n%q\nwant:\n%q", got, expected)
			}
		})
	}
}

func TestCompileCollapseDeclareAssign(t *testing.T) {
	src := mustRead(t, "declare.si")
	got, err := Compile(src, Config{Verilog: verilog.Config{CollapseDeclareAssign: true}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	m, err := testutil.ParseVerilog([]byte(got))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	want := []string{
		"wire tmp;",
		"assign mask = data & 15;",
		"assign tmp = ^mask;",
		"assign q = tmp | clk_en;",
	}
	if diff := testutil.CompareVerilog(m, testutil.Module{Name: m.Name, Ports: m.Ports, Stmts: want}); diff != "" {
		t.Fatalf("%s", diff)
	}
}

func TestCompileMinimalModule(t *testing.T) {
	got, err := Compile([]byte("top mod a ( out y: bit ) { y = 1; }"), Config{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := "module a ( \n\toutput wire y \n); \n\tassign y = 1; \nendmodule \n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

// A stacked reduction renders without a gap, which Verilog reads as logical
// AND. Changing this changes the output layout.
func TestCompileStackedReduction(t *testing.T) {
	got, err := Compile([]byte("top mod a ( in x: bit, out y: bit ) { y = & &x; }"), Config{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := "module a ( \n\tinput wire x, \n\toutput wire y \n); \n\tassign y = &&x; \nendmodule \n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func mustRead(t *testing.T, path string) []byte {
	b, err := examples.FS.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return b
}
