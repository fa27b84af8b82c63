package interp_test

import (
	"bytes"
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	toks := scanner.ScanTokens([]byte(src), nil)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	in := interp.New(locals, &buf)
	require.NoError(t, in.Interpret(stmts))
	return buf.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	require.Equal(t, "7\n", run(t, "print 1 + 2 * 3;"))
}

func TestStringConcatenation(t *testing.T) {
	require.Equal(t, "helloworld\n", run(t, `print "hello" + "world";`))
}

func TestVariablesAndBlocks(t *testing.T) {
	out := run(t, `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`)
	require.Equal(t, "inner\nouter\n", out)
}

func TestWhileLoop(t *testing.T) {
	out := run(t, `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}
`)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestForLoopDesugared(t *testing.T) {
	out := run(t, `
for (var i = 0; i < 3; i = i + 1) print i;
`)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestClosures(t *testing.T) {
	out := run(t, `
fun makeCounter() {
  var i = 0;
  fun count() {
    i = i + 1;
    print i;
  }
  return count;
}
var counter = makeCounter();
counter();
counter();
`)
	require.Equal(t, "1\n2\n", out)
}

func TestClassesFieldsAndMethods(t *testing.T) {
	out := run(t, `
class Greeter {
  init(name) {
    this.name = name;
  }
  greet() {
    print "Hello, " + this.name + "!";
  }
}
var g = Greeter("world");
g.greet();
`)
	require.Equal(t, "Hello, world!\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out := run(t, `
class Animal {
  speak() {
    print "...";
  }
}
class Dog < Animal {
  speak() {
    super.speak();
    print "Woof";
  }
}
Dog().speak();
`)
	require.Equal(t, "...\nWoof\n", out)
}

func TestRuntimeErrorUndefinedVariable(t *testing.T) {
	toks := scanner.ScanTokens([]byte("print x;"), nil)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	in := interp.New(locals, &buf)
	err = in.Interpret(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined variable 'x'.")
}

func TestRuntimeErrorWrongOperandType(t *testing.T) {
	toks := scanner.ScanTokens([]byte(`print "a" - 1;`), nil)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	in := interp.New(locals, &buf)
	err = in.Interpret(stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Operands must be numbers.")
}

func TestGlobalRedeclarationAllowed(t *testing.T) {
	out := run(t, `
var a = 1;
var a = 2;
print a;
`)
	require.Equal(t, "2\n", out)
}
