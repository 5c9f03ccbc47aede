package scheme

// Evaluate evaluates exp in env using an explicit continuation stack
// instead of the host call stack, so that call/cc can reify "the rest of
// the computation" as a first-class value and self-tail-recursive
// closures run in bounded continuation depth.
//
// Evaluate never swallows an error: a panic always keeps propagating to
// the caller. It only normalises an unexpected Go-level panic (anything
// that isn't already a *Error) into one before re-panicking, so every
// caller of Evaluate observes a *Error.
func Evaluate(exp Value, env *Environment) (result Value) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Error); ok {
				panic(r)
			}
			panic(Fatal(r))
		}
	}()
	k := make(Continuation, 0, 100)
Phase1:
	for {
	Loop1:
		for {
			switch x := exp.(type) {
			case *Cell:
				kar, kdr := x.Car, asCell(x.Cdr)
				switch kar {
				case Quote: // (quote e)
					exp = kdr.Car
					break Loop1
				case If: // (if e1 e2 [e3])
					exp = kdr.Car
					k.Push(ThenOp, kdr.Cdr)
				case Begin: // (begin e...)
					exp = kdr.Car
					if kdr.Cdr != Value(Nil) {
						k.Push(BeginOp, kdr.Cdr)
					}
				case Lambda: // (lambda (v...) e...)
					exp = &Closure{asCell(kdr.Car), asCell(kdr.Cdr), env}
					break Loop1
				case Define: // (define var e)
					sym, ok := kdr.Car.(*Symbol)
					if !ok {
						panic(TypeMismatchError("define", kdr.Car))
					}
					exp = asCell(kdr.Cdr).Car
					k.Push(DefineOp, sym)
				case SetQ: // (set! var e)
					sym, ok := kdr.Car.(*Symbol)
					if !ok {
						panic(TypeMismatchError("set!", kdr.Car))
					}
					node := env.LookFor(sym)
					exp = asCell(kdr.Cdr).Car
					k.Push(SetQOp, node)
				default: // (fun arg...)
					exp = kar
					k.Push(ApplyOp, kdr)
				}
			case *Symbol:
				exp = env.Lookup(x)
				break Loop1
			default: // numbers, #t, #f, strings, closures, Void, EOF, etc.
				break Loop1
			}
		}
	Loop2:
		for {
			if k.Count() == 0 {
				return exp
			}
			op, payload := k.Pop()
			switch op {
			case ThenOp: // payload = (e2 [e3])
				branches := asCell(payload)
				if exp == false {
					if branches.Cdr == Value(Nil) {
						exp = Void
						continue Loop2
					}
					exp = asCell(branches.Cdr).Car // e3
				} else {
					exp = branches.Car // e2
				}
				continue Phase1

			case BeginOp: // payload = (e rest...)
				j := asCell(payload)
				if j.Cdr != Value(Nil) {
					k.Push(BeginOp, j.Cdr)
				}
				exp = j.Car
				continue Phase1

			case DefineOp: // payload = var being defined
				DefineHere(env, payload.(*Symbol), exp)
				exp = Void

			case SetQOp: // payload = the environment node to overwrite
				payload.(*Environment).Val = exp
				exp = Void

			case ApplyOp: // exp = evaluated operator; payload = unevaluated arg exprs
				args := asCell(payload)
				if args == Nil {
					exp, env = applyFunction(exp, Nil, &k, env)
					continue Loop2
				}
				k.Push(ApplyFunOp, exp)
				// The first argument evaluates directly, left to right; the
				// rest are pushed in reverse so each pops in source order
				// (arg2 on top, then arg3, ...), keeping side effects
				// left-to-right.
				rest := reverseList(asCell(args.Cdr))
				for rest != Nil {
					k.Push(EvalArgOp, rest.Car)
					rest = asCell(rest.Cdr)
				}
				exp = args.Car
				k.Push(ConsArgsOp, Nil)
				continue Phase1

			case ConsArgsOp: // payload = args accumulated so far, reversed
				evaluated := &Cell{exp, payload}
				nextOp, nextPayload := k.Pop()
				switch nextOp {
				case EvalArgOp: // nextPayload = the next argument to evaluate
					k.Push(ConsArgsOp, evaluated)
					exp = nextPayload
					continue Phase1
				case ApplyFunOp: // nextPayload = the evaluated operator
					exp, env = applyFunction(nextPayload, reverseList(evaluated), &k, env)
					continue Loop2
				default:
					panic(Fatal("unexpected " + nextOp.String() + " under ConsArgs"))
				}

			case RestoreEnvOp: // payload = the environment to restore
				env = payload.(*Environment)

			default:
				panic(Fatal("bad continuation op " + op.String()))
			}
		}
	}
}

// reverseList returns a reversed copy of a proper list built from fresh
// cells; x itself is not modified.
func reverseList(x *Cell) *Cell {
	rev := Nil
	for x != Nil {
		rev = &Cell{x.Car, rev}
		x = asCell(x.Cdr)
	}
	return rev
}

// asCell asserts that v is a *Cell (including Nil), failing
// improper-list otherwise — used wherever the grammar requires a pair.
func asCell(v Value) *Cell {
	c, ok := v.(*Cell)
	if !ok {
		panic(ImproperList(v))
	}
	return c
}

// applyFunction applies fun to the already-evaluated argument list args,
// returning the resulting (exp, env) the trampoline should continue with.
// call/cc and apply are unwrapped first since both are represented as the
// literal interned symbols that name them, not as a distinct value kind.
func applyFunction(fun Value, args *Cell, k *Continuation, env *Environment) (Value, *Environment) {
	for {
		switch fun {
		case CallCC:
			pushRestoreEnvUnlessTail(k, env)
			fun, args = args.Car, &Cell{k.Snapshot(), Nil}
		case Apply:
			inner, ok := asCell(args.Cdr).Car.(*Cell)
			if !ok {
				panic(TypeMismatchError("apply", asCell(args.Cdr).Car))
			}
			fun, args = args.Car, inner
		default:
			goto dispatch
		}
	}
dispatch:
	switch fn := fun.(type) {
	case *Intrinsic:
		n := Length(args)
		if fn.Arity >= 0 && n != fn.Arity {
			panic(ArityMismatchError(fn.Name, fn.Arity, n))
		}
		return fn.Fn(args), env
	case *Closure:
		pushRestoreEnvUnlessTail(k, env)
		newEnv := NewFrame(fn.Env.PrependDefs(fn.Params, args))
		k.Push(BeginOp, fn.Body)
		return Void, newEnv
	case Continuation:
		k.CopyFrom(fn)
		return args.Car, env
	default:
		panic(NotAProcedureError(fun))
	}
}
