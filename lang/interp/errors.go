package interp

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a Lox runtime error: an operation that type-checked past
// parsing and resolution but fails at evaluation time (undefined variable,
// wrong operand type, calling a non-callable, wrong arity, missing
// property). Token identifies the offending operator or identifier, for
// line reporting.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack from a "return" statement back to
// the enclosing function call, mirroring the panic/recover pattern the
// parser uses for synchronization. It is never surfaced to callers outside
// this package.
type returnSignal struct {
	value Value
}
