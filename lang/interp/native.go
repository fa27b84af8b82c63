package interp

import "time"

// nativeFunction adapts a Go function to the Callable interface, for
// globals provided by the runtime rather than declared in Lox source.
type nativeFunction struct {
	arity int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

var (
	_ Value    = (*nativeFunction)(nil)
	_ Callable = (*nativeFunction)(nil)
)

func (n *nativeFunction) String() string { return "<native fn>" }
func (n *nativeFunction) Type() string   { return "function" }
func (n *nativeFunction) Arity() int     { return n.arity }
func (n *nativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.fn(in, args)
}

// defineGlobals installs the natives available in every Lox program.
func defineGlobals(env *Environment) {
	env.Define("clock", &nativeFunction{
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return Number(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	})
}
