package parser_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks := scanner.ScanTokens([]byte(src), nil)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts := parse(t, "print 1 + 2 * 3;")
	require.Len(t, stmts, 1)
	pr := stmts[0].(*ast.PrintStmt)
	require.Equal(t, "(print (+ 1 (* 2 3)))", ast.Sprint(pr))
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	stmts := parse(t, "a = b = 3;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	outer, ok := exprStmt.Expression.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetReportsButContinues(t *testing.T) {
	toks := scanner.ScanTokens([]byte("1 + 2 = 3;\nprint 1;"), nil)
	stmts, err := parser.Parse(toks)
	require.Error(t, err)
	// parsing continues: both statements are present.
	require.Len(t, stmts, 2)
}

func TestForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block := stmts[0].(*ast.BlockStmt)
	require.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*ast.VarStmt)
	require.True(t, isVar)
	while, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	body := while.Body.(*ast.BlockStmt)
	require.Len(t, body.Statements, 2)
}

func TestForDefaultsToTrueCondition(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	while := stmts[0].(*ast.WhileStmt)
	lit, ok := while.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	require.True(t, lit.Value.Bool)
}

func TestClassWithSuperclassAndMethods(t *testing.T) {
	stmts := parse(t, `
class A {
  hello() { print "A"; }
}
class B < A {
  hello() { super.hello(); print "B"; }
}
`)
	require.Len(t, stmts, 2)
	b := stmts[1].(*ast.ClassStmt)
	require.Equal(t, "B", b.Name.Lexeme)
	require.NotNil(t, b.Superclass)
	require.Equal(t, "A", b.Superclass.Name.Lexeme)
	require.Len(t, b.Methods, 1)
	require.Equal(t, "hello", b.Methods[0].Name.Lexeme)
}

func TestParamLimitReportsPastTwoFiftyFive(t *testing.T) {
	var params string
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += "p" + string(rune('a'+i%26))
	}
	toks := scanner.ScanTokens([]byte("fun f("+params+") { return 1; }"), nil)
	_, err := parser.Parse(toks)
	require.Error(t, err)
}

func TestExprIDsAreUnique(t *testing.T) {
	stmts := parse(t, "print 1 + 2;")
	pr := stmts[0].(*ast.PrintStmt)
	bin := pr.Expression.(*ast.BinaryExpr)
	require.NotEqual(t, bin.ID(), bin.Left.(*ast.LiteralExpr).ID())
	require.NotEqual(t, bin.ID(), bin.Right.(*ast.LiteralExpr).ID())
}

func TestSynchronizeRecoversAtStatementBoundary(t *testing.T) {
	toks := scanner.ScanTokens([]byte("var = ;\nprint 2;"), nil)
	stmts, err := parser.Parse(toks)
	require.Error(t, err)
	require.NotEmpty(t, stmts)
}
