package interp

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
)

// LoxFunction is a user-defined function or method, closing over the
// environment active at its declaration site.
type LoxFunction struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

var (
	_ Value    = (*LoxFunction)(nil)
	_ Callable = (*LoxFunction)(nil)
)

func newLoxFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

func (f *LoxFunction) String() string { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }
func (f *LoxFunction) Type() string   { return "function" }
func (f *LoxFunction) Arity() int     { return len(f.declaration.Params) }

// bind returns a copy of f whose closure has "this" bound to instance,
// forming the receiver environment a method sees when looked up off an
// instance.
func (f *LoxFunction) bind(instance *LoxInstance) *LoxFunction {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return newLoxFunction(f.declaration, env, f.isInitializer)
}

func (f *LoxFunction) Call(in *Interpreter, args []Value) (value Value, err error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				value = f.closure.GetAt(0, "this")
			} else {
				value = ret.value
			}
			err = nil
		}
	}()

	if execErr := in.executeBlock(f.declaration.Body, env); execErr != nil {
		return nil, execErr
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return Nil, nil
}
