package interp

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Interpreter evaluates a resolved syntax tree. It holds the global
// environment (which persists across statements, so a REPL can build up
// state incrementally) and the locals side table produced by the resolver.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.ExprID]int
	stdout      io.Writer
}

// New returns an Interpreter ready to evaluate statements resolved against
// locals, printing "print" statement output to stdout.
func New(locals map[ast.ExprID]int, stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	defineGlobals(globals)
	if locals == nil {
		locals = make(map[ast.ExprID]int)
	}
	return &Interpreter{Globals: globals, environment: globals, locals: locals, stdout: stdout}
}

// MergeLocals adds another resolve pass's side table to the interpreter's
// own, used by the REPL where each line is scanned, parsed, and resolved
// independently but shares one long-lived Interpreter (and so one set of
// globals, for variables and functions declared on earlier lines).
func (in *Interpreter) MergeLocals(locals map[ast.ExprID]int) {
	for id, depth := range locals {
		in.locals[id] = depth
	}
}

// Interpret executes stmts in order. A RuntimeError aborts execution and is
// returned to the caller for diagnostic reporting; it is not a Go panic.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value = Nil
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := newLoxFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value = Nil
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value})

	case *ast.ClassStmt:
		return in.executeClass(s)

	default:
		return fmt.Errorf("interp: unexpected stmt %T", stmt)
	}
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *LoxClass
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*LoxClass)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, Nil)

	enclosing := in.environment
	if s.Superclass != nil {
		in.environment = NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = newLoxFunction(m, in.environment, m.Name.Lexeme == "init")
	}

	class := newLoxClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.environment = enclosing
	}

	return in.environment.Assign(s.Name, class)
}

// executeBlock runs stmts in env, restoring the interpreter's current
// environment when done (including when a panic unwinds through it, e.g. a
// return statement).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Expression)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.VariableExpr:
		return in.lookupVariable(e, e.Name)

	case *ast.AssignExpr:
		return in.evalAssign(e)

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		return in.evalGet(e)

	case *ast.SetExpr:
		return in.evalSet(e)

	case *ast.ThisExpr:
		return in.lookupVariable(e, e.Keyword)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		return nil, fmt.Errorf("interp: unexpected expr %T", expr)
	}
}

func literalValue(lit token.Literal) Value {
	switch lit.Kind {
	case token.NilLiteral:
		return Nil
	case token.BoolLiteral:
		return Bool(lit.Bool)
	case token.NumberLiteral:
		return Number(lit.Number)
	case token.StringLiteral:
		return String(lit.Str)
	default:
		return Nil
	}
}

func (in *Interpreter) lookupVariable(expr ast.Expr, name token.Token) (Value, error) {
	if distance, ok := in.locals[expr.ID()]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) evalAssign(e *ast.AssignExpr) (Value, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e.ID()]; ok {
		in.environment.AssignAt(distance, e.Name, value)
	} else if err := in.Globals.Assign(e.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Bool(!isTruthy(right)), nil
	default:
		return nil, newRuntimeError(e.Op, "Unknown unary operator.")
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.MINUS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l - r, nil
	case token.SLASH:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l / r, nil
	case token.STAR:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return l * r, nil
	case token.PLUS:
		if l, ok := left.(Number); ok {
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings.")
	case token.GREATER:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return Bool(l > r), nil
	case token.GREATER_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return Bool(l >= r), nil
	case token.LESS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return Bool(l < r), nil
	case token.LESS_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operands must be numbers.")
		}
		return Bool(l <= r), nil
	case token.BANG_EQUAL:
		return Bool(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return Bool(isEqual(left, right)), nil
	default:
		return nil, newRuntimeError(e.Op, "Unknown binary operator.")
	}
}

func numberOperands(left, right Value) (Number, Number, bool) {
	l, ok := left.(Number)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(Number)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*LoxInstance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	return inst.Get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*LoxInstance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	distance := in.locals[e.ID()]
	superclass := in.environment.GetAt(distance, "super").(*LoxClass)
	object := in.environment.GetAt(distance-1, "this").(*LoxInstance)

	method, ok := superclass.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.bind(object), nil
}
