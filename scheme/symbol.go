package scheme

import "sync"

// Symbol is an interned Scheme identifier. Two symbols with the same name
// are the same *Symbol, so identity comparison is a legal equality check.
type Symbol string

var symbols sync.Map // string -> *Symbol

// Intern returns the unique symbol for name, creating it on first use.
func Intern(name string) *Symbol {
	fresh := Symbol(name)
	sym, _ := symbols.LoadOrStore(name, &fresh)
	return sym.(*Symbol)
}

// Special-form keywords. These must be interned before evaluation begins,
// since the trampoline recognises them by identity.
var (
	Quote  = Intern("quote")
	If     = Intern("if")
	Begin  = Intern("begin")
	Lambda = Intern("lambda")
	Define = Intern("define")
	SetQ   = Intern("set!")
	Apply  = Intern("apply")
	CallCC = Intern("call/cc")
)
