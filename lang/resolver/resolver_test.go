package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
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

func TestResolveLocalDepth(t *testing.T) {
	stmts := parse(t, `
{
  var a = 1;
  {
    var b = 2;
    print a + b;
  }
}
`)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	printStmt := inner.Statements[1].(*ast.PrintStmt)
	bin := printStmt.Expression.(*ast.BinaryExpr)

	aRef := bin.Left.(*ast.VariableExpr)
	bRef := bin.Right.(*ast.VariableExpr)

	require.Equal(t, 1, locals[aRef.ID()])
	require.Equal(t, 0, locals[bRef.ID()])
}

func TestResolveGlobalIsNotInTable(t *testing.T) {
	stmts := parse(t, `
var g = 1;
{
  print g;
}
`)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	block := stmts[1].(*ast.BlockStmt)
	printStmt := block.Statements[0].(*ast.PrintStmt)
	ref := printStmt.Expression.(*ast.VariableExpr)

	_, ok := locals[ref.ID()]
	require.False(t, ok)
}

func TestDuplicateDeclarationInScope(t *testing.T) {
	stmts := parse(t, `{ var a = 1; var a = 2; }`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Already a variable with this name in this scope.")
}

func TestShadowingAcrossScopesIsAllowed(t *testing.T) {
	stmts := parse(t, `var a = 1; { var a = 2; }`)
	_, err := resolver.Resolve(stmts)
	require.NoError(t, err)
}

func TestSelfReferenceInInitializerIsError(t *testing.T) {
	stmts := parse(t, `{ var a = a; }`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't read local variable in its own initializer.")
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	stmts := parse(t, `return 1;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return from top-level code.")
}

func TestReturnValueInInitializerIsError(t *testing.T) {
	stmts := parse(t, `
class Foo {
  init() { return 1; }
}
`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't return a value from an initializer.")
}

func TestReturnBareInInitializerIsAllowed(t *testing.T) {
	stmts := parse(t, `
class Foo {
  init() { return; }
}
`)
	_, err := resolver.Resolve(stmts)
	require.NoError(t, err)
}

func TestThisOutsideClassIsError(t *testing.T) {
	stmts := parse(t, `print this;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'this' outside of a class.")
}

func TestSuperOutsideClassIsError(t *testing.T) {
	stmts := parse(t, `print super.foo;`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'super' outside of a class.")
}

func TestSuperWithNoSuperclassIsError(t *testing.T) {
	stmts := parse(t, `
class Foo {
  bar() { super.bar(); }
}
`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can't use 'super' in a class with no superclass.")
}

func TestClassInheritingFromItselfIsError(t *testing.T) {
	stmts := parse(t, `class Foo < Foo {}`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "A class can't inherit from itself.")
}

func TestMethodResolvesThisAndSuper(t *testing.T) {
	stmts := parse(t, `
class A {
  greet() { print "A"; }
}
class B < A {
  greet() { super.greet(); print this; }
}
`)
	_, err := resolver.Resolve(stmts)
	require.NoError(t, err)
}

func TestFunctionParamsShadowEnclosing(t *testing.T) {
	stmts := parse(t, `
var a = "global";
fun f(a) {
  print a;
}
`)
	_, err := resolver.Resolve(stmts)
	require.NoError(t, err)
}
