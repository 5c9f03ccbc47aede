// Package scheme implements the evaluator core: the value model, symbol
// table, environment, continuation stack, trampoline evaluator and
// intrinsic registry for a small Scheme with first-class continuations
// and proper tail calls. The lexer/parser and the REPL/file-loader live in
// sibling packages and reach into this one only through the exported
// surface below (Evaluate, GlobalEnv, ReadHook, and the value types).
package scheme

// Value is any Scheme runtime value: nil (the empty list), bool, *Number,
// string, *Symbol, *Cell, *Closure, *Intrinsic, Continuation, or one of
// the two sentinels Void and EOF.
type Value = any

// Cell is a cons cell: a pair of (Car, Cdr). A proper list is a chain of
// Cells ending in Nil; an improper list ends in any other non-Cell value.
type Cell struct {
	Car Value
	Cdr Value
}

// Nil represents the empty list. It is the typed nil *Cell so that type
// switches on *Cell still match it.
var Nil *Cell = nil

func (c *Cell) String() string { return Stringify(c, true) }

// Closure is a lambda expression closed over its defining environment.
type Closure struct {
	Params *Cell // proper list of parameter symbols
	Body   *Cell // list of body expressions
	Env    *Environment
}

func (c *Closure) String() string { return Stringify(c, true) }

// Intrinsic is a named, arity-checked built-in procedure. Arity is fixed
// when >= 0, or -1 for a variadic procedure.
type Intrinsic struct {
	Name  string
	Arity int
	Fn    func(args *Cell) Value
}

func (p *Intrinsic) String() string { return Stringify(p, true) }

type voidType struct{}
type eofType struct{}

// Void is the unique sentinel meaning "no meaningful value": the result
// of set!, define, display and newline.
var Void Value = &voidType{}

// EOF is the unique sentinel returned by the read intrinsic at stream end.
var EOF Value = &eofType{}

// list builds a proper list out of its arguments, rightmost first.
func list(items ...Value) *Cell {
	tail := Nil
	for i := len(items) - 1; i >= 0; i-- {
		tail = &Cell{items[i], tail}
	}
	return tail
}

// Length returns the number of elements in a proper list, failing
// improper-list if a non-nil, non-Cell tail is reached.
func Length(x *Cell) int {
	n := 0
	for x != Nil {
		n++
		cdr, ok := x.Cdr.(*Cell)
		if !ok {
			panic(ImproperList(x))
		}
		x = cdr
	}
	return n
}
