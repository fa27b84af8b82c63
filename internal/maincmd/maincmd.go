// Package maincmd implements the jlox command-line contract: no arguments
// starts a REPL, one argument executes a script file, and anything else is
// a usage error. It is kept separate from cmd/jlox so it can be exercised
// directly by tests with fake Stdio.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const (
	binName = "jlox"

	// exit codes per the Lox CLI contract: usage errors, compile-time
	// errors (scan/parse/resolve), and runtime errors each get a distinct
	// code so scripts can distinguish failure modes.
	exitUsage    mainer.ExitCode = 64
	exitDataErr  mainer.ExitCode = 65
	exitSoftware mainer.ExitCode = 70
	exitSuccess  mainer.ExitCode = 0
)

// Cmd is the jlox command. It has no flags: the CLI contract takes at most
// one positional argument, a script path.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}
func (c *Cmd) Validate() error                { return nil }

// Main parses args and dispatches to the REPL or file runner, returning the
// process exit code per the CLI contract.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n", err)
		return exitUsage
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	switch len(c.args) {
	case 0:
		return runPrompt(ctx, stdio)
	case 1:
		return runFile(ctx, stdio, c.args[0])
	default:
		fmt.Fprintf(stdio.Stderr, "Usage: %s [script]\n", binName)
		return exitUsage
	}
}
