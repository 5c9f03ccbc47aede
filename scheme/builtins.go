package scheme

import "fmt"

// ReadHook lets the read intrinsic delegate to whatever reads expressions
// from the configured input stream, without scheme importing the reader
// package that provides it. cmd/tinyscheme wires this up at startup.
// Calling read before it is set panics with a fatal error rather than a
// nil-pointer dereference.
var ReadHook func() Value

func intrinsic(name string, arity int, fn func(*Cell) Value) *Intrinsic {
	return &Intrinsic{Name: name, Arity: arity, Fn: fn}
}

func bind(env *Environment, name string, val Value) *Environment {
	return &Environment{Intern(name), val, env}
}

func bindIntrinsic(env *Environment, name string, arity int, fn func(*Cell) Value) *Environment {
	return bind(env, name, intrinsic(name, arity, fn))
}

func arg(x *Cell, i int) Value {
	for ; i > 0; i-- {
		x = x.Cdr.(*Cell)
	}
	return x.Car
}

// GlobalEnv is the initial global environment, seeded with every
// intrinsic procedure and with call/cc and apply bound to the literal
// keyword symbols themselves (applyFunction unwraps them specially).
var GlobalEnv *Environment

func init() {
	GlobalEnv = buildGlobalEnv()
}

func buildGlobalEnv() *Environment {
	var env *Environment

	env = bindIntrinsic(env, "car", 1, func(x *Cell) Value {
		p, ok := x.Car.(*Cell)
		if !ok || p == Nil {
			panic(TypeMismatchError("car", x.Car))
		}
		return p.Car
	})
	env = bindIntrinsic(env, "cdr", 1, func(x *Cell) Value {
		p, ok := x.Car.(*Cell)
		if !ok || p == Nil {
			panic(TypeMismatchError("cdr", x.Car))
		}
		return p.Cdr
	})
	env = bindIntrinsic(env, "cons", 2, func(x *Cell) Value {
		return &Cell{arg(x, 0), arg(x, 1)}
	})
	env = bindIntrinsic(env, "eq?", 2, func(x *Cell) Value {
		return arg(x, 0) == arg(x, 1)
	})
	env = bindIntrinsic(env, "eqv?", 2, func(x *Cell) Value {
		a, b := arg(x, 0), arg(x, 1)
		if a == b {
			return true
		}
		an, aok := a.(*Number)
		bn, bok := b.(*Number)
		if aok && bok {
			return NumCompare(an, bn) == 0
		}
		return false
	})
	env = bindIntrinsic(env, "pair?", 1, func(x *Cell) Value {
		c, ok := x.Car.(*Cell)
		return ok && c != Nil
	})
	env = bindIntrinsic(env, "null?", 1, func(x *Cell) Value {
		return x.Car == Nil
	})
	env = bindIntrinsic(env, "not", 1, func(x *Cell) Value {
		return x.Car == false
	})
	env = bindIntrinsic(env, "symbol?", 1, func(x *Cell) Value {
		_, ok := x.Car.(*Symbol)
		return ok
	})
	env = bindIntrinsic(env, "eof-object?", 1, func(x *Cell) Value {
		return x.Car == EOF
	})
	env = bindIntrinsic(env, "list", -1, func(x *Cell) Value {
		return x // the evaluator has already built a proper list of the args
	})
	env = bindIntrinsic(env, "display", 1, func(x *Cell) Value {
		fmt.Print(Stringify(x.Car, false))
		return Void
	})
	env = bindIntrinsic(env, "newline", 0, func(x *Cell) Value {
		fmt.Println()
		return Void
	})
	env = bindIntrinsic(env, "read", 0, func(x *Cell) Value {
		if ReadHook == nil {
			panic(Fatal("read: no input stream configured"))
		}
		return ReadHook()
	})
	env = bindIntrinsic(env, "+", 2, func(x *Cell) Value {
		return NumAdd(AsNumber("+", arg(x, 0)), AsNumber("+", arg(x, 1)))
	})
	env = bindIntrinsic(env, "-", 2, func(x *Cell) Value {
		return NumSub(AsNumber("-", arg(x, 0)), AsNumber("-", arg(x, 1)))
	})
	env = bindIntrinsic(env, "*", 2, func(x *Cell) Value {
		return NumMul(AsNumber("*", arg(x, 0)), AsNumber("*", arg(x, 1)))
	})
	env = bindIntrinsic(env, "<", 2, func(x *Cell) Value {
		return NumCompare(AsNumber("<", arg(x, 0)), AsNumber("<", arg(x, 1))) < 0
	})
	env = bindIntrinsic(env, "=", 2, func(x *Cell) Value {
		return NumCompare(AsNumber("=", arg(x, 0)), AsNumber("=", arg(x, 1))) == 0
	})
	env = bindIntrinsic(env, "number?", 1, func(x *Cell) Value {
		_, ok := x.Car.(*Number)
		return ok
	})
	env = bindIntrinsic(env, "error", 2, func(x *Cell) Value {
		panic(UserRaised(arg(x, 0), arg(x, 1)))
	})
	env = bindIntrinsic(env, "globals", 0, func(x *Cell) Value {
		seen := make(map[*Symbol]bool)
		var names *Cell = Nil
		for e := GlobalEnv; e != nil; e = e.Next {
			if e.Sym != nil && !seen[e.Sym] {
				seen[e.Sym] = true
				names = &Cell{e.Sym, names}
			}
		}
		return names
	})
	env = bind(env, "call/cc", CallCC)
	env = bind(env, "apply", Apply)
	return env
}
