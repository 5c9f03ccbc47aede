package scheme

// Environment is a node in a singly-linked chain of bindings. A normal
// node holds (Sym, Val, Next); a frame marker holds Sym == nil and marks
// the boundary of a lexical scope introduced by function application.
// Closures keep a reference to their defining node; the tail is shared
// structure, never copied.
type Environment struct {
	Sym  *Symbol
	Val  Value
	Next *Environment
}

func (e *Environment) String() string { return Stringify(e, true) }

// isFrameMarker reports whether e is a frame-marker node.
func (e *Environment) isFrameMarker() bool { return e != nil && e.Sym == nil }

// LookFor walks the chain for a binding of key, failing unbound-symbol if
// none exists. Frame markers are never matched.
func (e *Environment) LookFor(key *Symbol) *Environment {
	for env := e; env != nil; env = env.Next {
		if env.Sym == key {
			return env
		}
	}
	panic(UnboundSymbolError(key))
}

// Lookup returns the value bound to key.
func (e *Environment) Lookup(key *Symbol) Value {
	return e.LookFor(key).Val
}

// PrependDefs builds a new environment chain that prepends, in order,
// params[i] -> args[i] for each i, ending in e. It fails arity-mismatch if
// the two lists differ in length.
func (e *Environment) PrependDefs(params, args *Cell) *Environment {
	if params == Nil {
		if args != Nil {
			panic(newError(ArityMismatch, "surplus argument(s): %s", Stringify(args, true)))
		}
		return e
	}
	if args == Nil {
		panic(newError(ArityMismatch, "missing argument(s): %s", Stringify(params, true)))
	}
	sym, ok := params.Car.(*Symbol)
	if !ok {
		panic(TypeMismatchError("lambda parameter list", params.Car))
	}
	return &Environment{sym, args.Car, e.restPrependDefs(params, args)}
}

// restPrependDefs builds the tail of PrependDefs' chain.
func (e *Environment) restPrependDefs(params, args *Cell) *Environment {
	restParams, ok1 := params.Cdr.(*Cell)
	restArgs, ok2 := args.Cdr.(*Cell)
	if !ok1 || !ok2 {
		panic(ImproperList(params))
	}
	return e.PrependDefs(restParams, restArgs)
}

// NewFrame returns a fresh frame-marker node chained above e, delimiting
// the lexical scope a function application introduces.
func NewFrame(e *Environment) *Environment {
	return &Environment{nil, nil, e}
}

// DefineHere inserts a new binding at env's head, preserving env's own
// identity by shifting its current contents one link down before
// overwriting it. The first call expects a frame marker at the head; the
// in-place mutation is what lets a closure captured before later defines
// still observe them through the same *Environment pointer — the
// mechanism that makes internally-defined recursive procedures work.
func DefineHere(env *Environment, sym *Symbol, val Value) {
	env.Next = &Environment{env.Sym, env.Val, env.Next}
	env.Sym = sym
	env.Val = val
}
