package parser_test

import (
	"flag"
	gotoken "go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
	"github.com/stretchr/testify/require"
)

var testUpdateParserGoldenTests = flag.Bool("test.update-parser-golden-tests", false, "If set, replace expected parser golden results with actual results.")

// TestParserGolden scans and parses every .lox file in testdata/in, prints
// the resulting statements in their parenthesized debug form, and diffs
// against the matching golden file in testdata/out.
func TestParserGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			require.NoError(t, err)

			var scanErrs []string
			toks := scanner.ScanTokens(src, func(_ gotoken.Position, msg string) {
				scanErrs = append(scanErrs, msg)
			})
			require.Empty(t, scanErrs)

			stmts, err := parser.Parse(toks)
			require.NoError(t, err)

			lines := make([]string, len(stmts))
			for i, s := range stmts {
				lines[i] = ast.Sprint(s)
			}
			output := strings.Join(lines, "\n") + "\n"

			filetest.DiffOutput(t, fi, output, resultDir, testUpdateParserGoldenTests)
		})
	}
}
