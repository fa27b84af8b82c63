package interp

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/token"
)

// LoxInstance is a runtime instance of a LoxClass: a bag of fields backed by
// a hash map, plus the class it was constructed from for method lookup.
type LoxInstance struct {
	class  *LoxClass
	fields *swiss.Map[string, Value]
}

var _ Value = (*LoxInstance)(nil)

func newLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *LoxInstance) String() string { return i.class.Name + " instance" }
func (i *LoxInstance) Type() string   { return "instance" }

// Get reads a property off the instance: fields take priority over methods,
// and a method lookup is bound to this instance before being returned.
func (i *LoxInstance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if m, ok := i.class.findMethod(name.Lexeme); ok {
		return m.bind(i), nil
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined property '%s'.", name.Lexeme)}
}

// Set assigns a field on the instance, creating it if absent. Lox has no
// notion of declared fields: any name can be set on any instance.
func (i *LoxInstance) Set(name token.Token, value Value) {
	i.fields.Put(name.Lexeme, value)
}
