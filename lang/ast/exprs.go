package ast

import "github.com/mna/lox/lang/token"

type (
	// LiteralExpr is a literal value: a number, string, boolean, or nil.
	LiteralExpr struct {
		ExprBase
		Value token.Literal
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		ExprBase
		Expression Expr
	}

	// UnaryExpr is a unary operator applied to an operand, e.g. -x or !x.
	UnaryExpr struct {
		ExprBase
		Op    token.Token
		Right Expr
	}

	// BinaryExpr is a binary operator applied to two operands.
	BinaryExpr struct {
		ExprBase
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr is "and" or "or", which short-circuit and so are not plain
	// BinaryExpr.
	LogicalExpr struct {
		ExprBase
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// VariableExpr reads a named variable.
	VariableExpr struct {
		ExprBase
		Name token.Token
	}

	// AssignExpr assigns a value to a named variable.
	AssignExpr struct {
		ExprBase
		Name  token.Token
		Value Expr
	}

	// CallExpr calls a function or class with a list of arguments.
	CallExpr struct {
		ExprBase
		Callee Expr
		Paren  token.Token // closing ')', used to report arity errors
		Args   []Expr
	}

	// GetExpr reads a property (field or method) off an object.
	GetExpr struct {
		ExprBase
		Object Expr
		Name   token.Token
	}

	// SetExpr assigns a property (field) on an object.
	SetExpr struct {
		ExprBase
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr refers to the implicit receiver inside a method body.
	ThisExpr struct {
		ExprBase
		Keyword token.Token
	}

	// SuperExpr refers to a method on the enclosing class's superclass.
	SuperExpr struct {
		ExprBase
		Keyword token.Token
		Method  token.Token
	}
)

func (e *LiteralExpr) Walk(Visitor) {}

func (e *GroupingExpr) Walk(v Visitor) { Walk(v, e.Expression) }

func (e *UnaryExpr) Walk(v Visitor) { Walk(v, e.Right) }

func (e *BinaryExpr) Walk(v Visitor) {
	Walk(v, e.Left)
	Walk(v, e.Right)
}

func (e *LogicalExpr) Walk(v Visitor) {
	Walk(v, e.Left)
	Walk(v, e.Right)
}

func (e *VariableExpr) Walk(Visitor) {}

func (e *AssignExpr) Walk(v Visitor) { Walk(v, e.Value) }

func (e *CallExpr) Walk(v Visitor) {
	Walk(v, e.Callee)
	for _, a := range e.Args {
		Walk(v, a)
	}
}

func (e *GetExpr) Walk(v Visitor) { Walk(v, e.Object) }

func (e *SetExpr) Walk(v Visitor) {
	Walk(v, e.Object)
	Walk(v, e.Value)
}

func (e *ThisExpr) Walk(Visitor) {}

func (e *SuperExpr) Walk(Visitor) {}
