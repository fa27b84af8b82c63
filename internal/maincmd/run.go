package maincmd

import (
	"bufio"
	"context"
	"fmt"
	gotoken "go/token"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

// runFile reads path, runs it to completion, and maps the outcome to the
// jlox exit code contract: 65 for a scan/parse/resolve error, 70 for an
// uncaught runtime error, 0 on success.
func runFile(_ context.Context, stdio mainer.Stdio, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return exitDataErr
	}

	in := interp.New(nil, stdio.Stdout)
	stmts, ok := compile(stdio, in, src)
	if !ok {
		return exitDataErr
	}

	if err := in.Interpret(stmts); err != nil {
		printRuntimeError(stdio, err)
		return exitSoftware
	}
	return exitSuccess
}

// runPrompt implements the REPL: each line is compiled and run against a
// single long-lived Interpreter, so declarations persist across lines. A
// line with a compile error is reported but does not end the session; a
// runtime error likewise just reports and the prompt continues.
func runPrompt(ctx context.Context, stdio mainer.Stdio) mainer.ExitCode {
	in := interp.New(nil, stdio.Stdout)
	scan := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if ctx.Err() != nil {
			return exitSuccess
		}
		if !scan.Scan() {
			return exitSuccess
		}
		line := scan.Text()
		if line == "" {
			continue
		}

		stmts, ok := compile(stdio, in, []byte(line))
		if !ok {
			continue
		}
		if err := in.Interpret(stmts); err != nil {
			printRuntimeError(stdio, err)
		}
	}
}

// compile runs the scan/parse/resolve pipeline, printing any diagnostics in
// the jlox wire format, and merges the resolved locals into in. ok is false
// if any stage reported an error, in which case stmts must not be
// evaluated.
func compile(stdio mainer.Stdio, in *interp.Interpreter, src []byte) (stmts []ast.Stmt, ok bool) {
	var scanErrs scanner.ErrorList
	toks := scanner.ScanTokens(src, func(pos gotoken.Position, msg string) {
		scanErrs.Add(pos, "Error: "+msg)
	})
	scanErrs.Sort()

	stmts, err := parser.Parse(toks)
	if len(scanErrs) > 0 {
		printErrorList(stdio, scanErrs)
	}
	if err != nil {
		printDiagError(stdio, err)
	}
	if len(scanErrs) > 0 || err != nil {
		return nil, false
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		printDiagError(stdio, err)
		return nil, false
	}
	in.MergeLocals(locals)
	return stmts, true
}

func printDiagError(stdio mainer.Stdio, err error) {
	if list, ok := err.(scanner.ErrorList); ok {
		printErrorList(stdio, list)
		return
	}
	fmt.Fprintf(stdio.Stderr, "%s\n", err)
}

func printErrorList(stdio mainer.Stdio, list scanner.ErrorList) {
	for _, e := range list {
		fmt.Fprintf(stdio.Stderr, "[line %d] %s\n", e.Pos.Line, e.Msg)
	}
}

func printRuntimeError(stdio mainer.Stdio, err error) {
	if rerr, ok := err.(*interp.RuntimeError); ok {
		fmt.Fprintf(stdio.Stderr, "[line %d] RuntimeError: %s\n", rerr.Token.Line, rerr.Message)
		return
	}
	fmt.Fprintf(stdio.Stderr, "RuntimeError: %s\n", err)
}
