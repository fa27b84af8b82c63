package ast

import "github.com/mna/lox/lang/token"

type (
	// ExpressionStmt evaluates an expression and discards the result.
	ExpressionStmt struct {
		stmtBase
		Expression Expr
	}

	// PrintStmt evaluates an expression and writes its string form.
	PrintStmt struct {
		stmtBase
		Expression Expr
	}

	// VarStmt declares a variable, with an optional initializer.
	VarStmt struct {
		stmtBase
		Name        token.Token
		Initializer Expr // nil if absent
	}

	// BlockStmt is a brace-delimited list of statements forming a new scope.
	BlockStmt struct {
		stmtBase
		Statements []Stmt
	}

	// IfStmt is a conditional with an optional else branch.
	IfStmt struct {
		stmtBase
		Condition Expr
		Then      Stmt
		Else      Stmt // nil if absent
	}

	// WhileStmt is a condition-guarded loop. A desugared "for" loop is
	// represented as a WhileStmt, wrapped in a BlockStmt when the loop has an
	// initializer, see the parser.
	WhileStmt struct {
		stmtBase
		Condition Expr
		Body      Stmt
	}

	// FunctionStmt declares a named function (or, when embedded in a
	// ClassStmt, a method).
	FunctionStmt struct {
		stmtBase
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt returns from the enclosing function, with an optional value.
	ReturnStmt struct {
		stmtBase
		Keyword token.Token
		Value   Expr // nil if absent
	}

	// ClassStmt declares a class, with an optional superclass and a list of
	// methods.
	ClassStmt struct {
		stmtBase
		Name       token.Token
		Superclass *VariableExpr // nil if the class has no superclass
		Methods    []*FunctionStmt
	}
)

func (s *ExpressionStmt) Walk(v Visitor) { Walk(v, s.Expression) }

func (s *PrintStmt) Walk(v Visitor) { Walk(v, s.Expression) }

func (s *VarStmt) Walk(v Visitor) {
	if s.Initializer != nil {
		Walk(v, s.Initializer)
	}
}

func (s *BlockStmt) Walk(v Visitor) {
	for _, st := range s.Statements {
		Walk(v, st)
	}
}

func (s *IfStmt) Walk(v Visitor) {
	Walk(v, s.Condition)
	Walk(v, s.Then)
	if s.Else != nil {
		Walk(v, s.Else)
	}
}

func (s *WhileStmt) Walk(v Visitor) {
	Walk(v, s.Condition)
	Walk(v, s.Body)
}

func (s *FunctionStmt) Walk(v Visitor) {
	for _, st := range s.Body {
		Walk(v, st)
	}
}

func (s *ReturnStmt) Walk(v Visitor) {
	if s.Value != nil {
		Walk(v, s.Value)
	}
}

func (s *ClassStmt) Walk(v Visitor) {
	if s.Superclass != nil {
		Walk(v, s.Superclass)
	}
	for _, m := range s.Methods {
		Walk(v, m)
	}
}
