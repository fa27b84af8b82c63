package interp

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/token"
)

// Environment is a single lexical scope's bindings, linked to its enclosing
// scope. The global environment is the root of the chain, with Enclosing
// nil.
type Environment struct {
	Enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment returns a new environment enclosed by parent, or a fresh
// global environment if parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{Enclosing: parent, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to value in this environment, shadowing any binding of
// the same name in an enclosing scope. Redefinition in the same scope is
// allowed, matching Lox's top-level "var a = 1; var a = 2;" behavior.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name starting in this environment and walking out through
// Enclosing scopes.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values.Get(name.Lexeme); ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign sets the value of an existing binding for name, walking out
// through Enclosing scopes, without creating a new binding.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values.Get(name.Lexeme); ok {
		e.values.Put(name.Lexeme, value)
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Ancestor returns the environment distance scopes out from e. distance is
// produced by the resolver and is always valid for the expression it was
// computed for.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt looks up name exactly distance scopes out, as resolved statically.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.Ancestor(distance).values.Get(name)
	return v
}

// AssignAt assigns name exactly distance scopes out, as resolved statically.
func (e *Environment) AssignAt(distance int, name token.Token, value Value) {
	e.Ancestor(distance).values.Put(name.Lexeme, value)
}
