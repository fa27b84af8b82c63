package maincmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/internal/maincmd"
)

func newStdio(stdin string) (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return mainer.Stdio{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	}, &out, &errOut
}

func TestUsageErrorExitCode(t *testing.T) {
	stdio, _, errOut := newStdio("")
	var c maincmd.Cmd
	code := c.Main([]string{"jlox", "a.lox", "b.lox"}, stdio)
	require.EqualValues(t, 64, code)
	require.Contains(t, errOut.String(), "Usage: jlox [script]")
}

func TestRunMissingFileExitCode(t *testing.T) {
	stdio, _, _ := newStdio("")
	var c maincmd.Cmd
	code := c.Main([]string{"jlox", "/no/such/file.lox"}, stdio)
	require.EqualValues(t, 65, code)
}

func TestReplPrintsPromptAndEchoesOutput(t *testing.T) {
	stdio, out, errOut := newStdio("print 1 + 1;\n")
	var c maincmd.Cmd
	code := c.Main([]string{"jlox"}, stdio)
	require.EqualValues(t, 0, code)
	require.Contains(t, out.String(), "> ")
	require.Contains(t, out.String(), "2")
	require.Empty(t, errOut.String())
}

func TestReplReportsErrorButContinues(t *testing.T) {
	stdio, out, errOut := newStdio("1 +;\nprint 3;\n")
	var c maincmd.Cmd
	code := c.Main([]string{"jlox"}, stdio)
	require.EqualValues(t, 0, code)
	require.Contains(t, errOut.String(), "Error")
	require.Contains(t, out.String(), "3")
}
