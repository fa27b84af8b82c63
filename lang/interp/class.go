package interp

// LoxClass is a class declaration's runtime value. Calling a class
// constructs a new LoxInstance.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	methods    map[string]*LoxFunction
}

var (
	_ Value    = (*LoxClass)(nil)
	_ Callable = (*LoxClass)(nil)
)

func newLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, methods: methods}
}

func (c *LoxClass) String() string { return c.Name }
func (c *LoxClass) Type() string   { return "class" }

// findMethod looks up name on c, falling back to the superclass chain.
func (c *LoxClass) findMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

func (c *LoxClass) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *LoxClass) Call(in *Interpreter, args []Value) (Value, error) {
	instance := newLoxInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
