// Package resolver implements the static pass that assigns every local
// variable reference a scope depth for the evaluator's environment walk,
// and diagnoses scope errors (duplicate declarations, invalid return/this/
// super usage, self-inheriting classes).
package resolver

import (
	"fmt"
	gotoken "go/token"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	clsNone classType = iota
	clsClass
	clsSubclass
)

// scope maps a name to whether its declaration has finished resolving (a
// variable is present but false while its own initializer is resolving).
type scope map[string]bool

// Resolve walks stmts and returns the side table mapping every locally
// resolved expression to its scope depth. Expressions absent from the
// table are globals, looked up dynamically by the evaluator. The returned
// error, if non-nil, is a scanner.ErrorList.
func Resolve(stmts []ast.Stmt) (map[ast.ExprID]int, error) {
	r := &resolver{locals: make(map[ast.ExprID]int)}
	r.resolveStmts(stmts)
	r.errors.Sort()
	return r.locals, r.errors.Err()
}

type resolver struct {
	scopes          []scope
	currentFunction functionType
	currentClass    classType
	locals          map[ast.ExprID]int
	errors          scanner.ErrorList
}

func (r *resolver) errorAt(tok token.Token, message string) {
	var where string
	if tok.Kind == token.EOF {
		where = " at end"
	} else {
		where = " at '" + tok.Lexeme + "'"
	}
	r.errors.Add(gotoken.Position{Line: tok.Line}, fmt.Sprintf("Error%s: %s", where, message))
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) innermost() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

func (r *resolver) declare(name token.Token) {
	s := r.innermost()
	if s == nil {
		return
	}
	if _, ok := s[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if s := r.innermost(); s != nil {
		s[name.Lexeme] = true
	}
}

// resolveLocal walks scopes innermost-to-outermost looking for name. If
// found, it records the expression's depth in the side table; if not found
// in any local scope, the reference is left as a global.
func (r *resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic(fmt.Sprintf("resolver: unexpected stmt %T", stmt))
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = clsClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = clsSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.innermost()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.innermost()["this"] = true
	defer r.endScope()

	for _, m := range s.Methods {
		typ := fnMethod
		if m.Name.Lexeme == "init" {
			typ = fnInitializer
		}
		r.resolveFunction(m, typ)
	}
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.VariableExpr:
		if s := r.innermost(); s != nil {
			if ready, declared := s[e.Name.Lexeme]; declared && !ready {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == clsNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.currentClass {
		case clsNone:
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case clsClass:
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(e, "super")
		}

	default:
		panic(fmt.Sprintf("resolver: unexpected expr %T", expr))
	}
}
