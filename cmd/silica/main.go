package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pborges/silica"
	"github.com/pborges/silica/internal/compiler"
	"github.com/pborges/silica/internal/syntax"
	"github.com/pborges/silica/internal/verilog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		if err := cmdBuild(os.Args[2:], os.Stdout, os.Stderr); err != nil {
			if !errors.Is(err, errReported) {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			os.Exit(1)
		}
	case "tokens":
		if err := cmdTokens(os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "version":
		fmt.Println(silica.Version())
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("silica - Silica to Verilog compiler")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  silica build -i <file.si> -o <file.v> [-collapse-let]")
	fmt.Println("  silica tokens <file.si>")
	fmt.Println("  silica version")
}

// errReported marks a failure whose diagnostic was already printed.
var errReported = errors.New("compilation failed")

type buildArgs struct {
	in           string
	out          string
	collapseLets bool
}

func cmdBuild(args []string, stdout, stderr io.Writer) error {
	ba, err := parseBuildArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		buildUsage(stdout)
		return nil
	}
	if err != nil {
		return err
	}
	data, err := os.ReadFile(ba.in)
	if err != nil {
		return err
	}
	text, err := compiler.Compile(data, compiler.Config{
		Verilog: verilog.Config{CollapseDeclareAssign: ba.collapseLets},
	})
	if err != nil {
		var se syntax.Error
		if errors.As(err, &se) {
			fmt.Fprintln(stderr, compiler.Diagnose(ba.in, string(data), err))
			return errReported
		}
		return fmt.Errorf("%s: %w", ba.in, err)
	}
	return os.WriteFile(ba.out, []byte(text), 0644)
}

func buildFlags(ba *buildArgs) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&ba.in, "i", "", "input Silica file")
	fs.StringVar(&ba.in, "input", "", "input Silica file")
	fs.StringVar(&ba.out, "o", "", "output Verilog file")
	fs.StringVar(&ba.out, "output", "", "output Verilog file")
	fs.BoolVar(&ba.collapseLets, "collapse-let", false, "lower let declarations with an initializer to plain assigns")
	return fs
}

func buildUsage(w io.Writer) {
	fs := buildFlags(&buildArgs{})
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage: silica build -i <file.si> -o <file.v> [-collapse-let]")
	fs.PrintDefaults()
}

func parseBuildArgs(args []string) (buildArgs, error) {
	var ba buildArgs
	fs := buildFlags(&ba)
	if err := fs.Parse(args); err != nil {
		return ba, err
	}
	if fs.NArg() != 0 {
		return ba, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if ba.in == "" {
		return ba, errors.New("missing input file (-i)")
	}
	if ba.out == "" {
		return ba, errors.New("missing output file (-o)")
	}
	return ba, nil
}

func cmdTokens(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("tokens requires a single .si input")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	src := string(data)
	l := syntax.NewLexer(src)
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var le *syntax.LexError
			if errors.As(err, &le) {
				line, col := syntax.Locate(src, le.Pos)
				fmt.Fprintf(stdout, "%d:%d\terror\t%q\n", line, col, le.Ch)
				continue
			}
			return err
		}
		fmt.Fprintf(stdout, "%d..%d\t%s\t%s\n", tok.Start, tok.End, tokenKind(tok.Tok), src[tok.Start:tok.End])
	}
}

func tokenKind(t syntax.Token) string {
	switch t.Kind {
	case syntax.Ident, syntax.Literal:
		return t.Kind.String()
	case syntax.KwMod, syntax.KwTop, syntax.KwIn, syntax.KwOut, syntax.KwBit, syntax.KwLet:
		return "keyword"
	}
	return "symbol"
}
