package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders a statement or expression tree as a parenthesized,
// Lisp-like description, the classic debugging representation for this
// grammar.
type Printer struct {
	Output io.Writer
}

// Print writes the parenthesized form of n to p.Output.
func (p *Printer) Print(n Node) error {
	_, err := io.WriteString(p.Output, Sprint(n))
	return err
}

// Sprint returns the parenthesized form of n.
func Sprint(n Node) string {
	var sb strings.Builder
	print1(&sb, n)
	return sb.String()
}

func print1(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *LiteralExpr:
		sb.WriteString(n.Value.String())
	case *GroupingExpr:
		parenthesize(sb, "group", n.Expression)
	case *UnaryExpr:
		parenthesize(sb, n.Op.Lexeme, n.Right)
	case *BinaryExpr:
		parenthesize(sb, n.Op.Lexeme, n.Left, n.Right)
	case *LogicalExpr:
		parenthesize(sb, n.Op.Lexeme, n.Left, n.Right)
	case *VariableExpr:
		sb.WriteString(n.Name.Lexeme)
	case *AssignExpr:
		parenthesize(sb, "= "+n.Name.Lexeme, n.Value)
	case *CallExpr:
		args := make([]Node, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		for _, a := range n.Args {
			args = append(args, a)
		}
		parenthesize(sb, "call", args...)
	case *GetExpr:
		parenthesize(sb, "get "+n.Name.Lexeme, n.Object)
	case *SetExpr:
		parenthesize(sb, "set "+n.Name.Lexeme, n.Object, n.Value)
	case *ThisExpr:
		sb.WriteString("this")
	case *SuperExpr:
		sb.WriteString("(super " + n.Method.Lexeme + ")")

	case *ExpressionStmt:
		parenthesize(sb, ";", n.Expression)
	case *PrintStmt:
		parenthesize(sb, "print", n.Expression)
	case *VarStmt:
		if n.Initializer != nil {
			parenthesize(sb, "var "+n.Name.Lexeme, n.Initializer)
		} else {
			fmt.Fprintf(sb, "(var %s)", n.Name.Lexeme)
		}
	case *BlockStmt:
		nodes := make([]Node, len(n.Statements))
		for i, s := range n.Statements {
			nodes[i] = s
		}
		parenthesize(sb, "block", nodes...)
	case *IfStmt:
		if n.Else != nil {
			parenthesize(sb, "if", n.Condition, n.Then, n.Else)
		} else {
			parenthesize(sb, "if", n.Condition, n.Then)
		}
	case *WhileStmt:
		parenthesize(sb, "while", n.Condition, n.Body)
	case *FunctionStmt:
		fmt.Fprintf(sb, "(fun %s", n.Name.Lexeme)
		for _, st := range n.Body {
			sb.WriteByte(' ')
			print1(sb, st)
		}
		sb.WriteByte(')')
	case *ReturnStmt:
		if n.Value != nil {
			parenthesize(sb, "return", n.Value)
		} else {
			sb.WriteString("(return)")
		}
	case *ClassStmt:
		fmt.Fprintf(sb, "(class %s", n.Name.Lexeme)
		if n.Superclass != nil {
			fmt.Fprintf(sb, " < %s", n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			sb.WriteByte(' ')
			print1(sb, m)
		}
		sb.WriteByte(')')

	default:
		fmt.Fprintf(sb, "<%T>", n)
	}
}

func parenthesize(sb *strings.Builder, name string, nodes ...Node) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, n := range nodes {
		sb.WriteByte(' ')
		print1(sb, n)
	}
	sb.WriteByte(')')
}
