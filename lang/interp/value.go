// Package interp evaluates a resolved syntax tree: it is the tree-walking
// counterpart to the scanner, parser, and resolver.
package interp

import "strconv"

// Value is the interface implemented by every runtime value a Lox program
// can produce or manipulate.
type Value interface {
	String() string
	Type() string
}

// NilType is the type of nil. Its only legal value is Nil.
type NilType byte

// Nil is the single Value representing the absence of a value.
const Nil = NilType(0)

var _ Value = Nil

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }

// Bool is a boolean value.
type Bool bool

var _ Value = Bool(false)

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) Type() string { return "bool" }

// Number is a double-precision floating point value; Lox has no separate
// integer type.
type Number float64

var _ Value = Number(0)

func (n Number) String() string {
	s := strconv.FormatFloat(float64(n), 'f', -1, 64)
	return s
}
func (Number) Type() string { return "number" }

// String is a Lox string value.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// Callable is implemented by any value that may appear as the callee of a
// call expression: user functions, classes (as constructors), and natives.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// isTruthy implements Lox's truthiness rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	switch vv := v.(type) {
	case NilType:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// isEqual implements Lox's == semantics: nil equals only nil, numbers and
// strings and bools compare by value, everything else (functions, classes,
// instances) compares by identity.
func isEqual(a, b Value) bool {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	switch av := a.(type) {
	case NilType:
		_, ok := b.(NilType)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a Value the way the "print" statement does.
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

