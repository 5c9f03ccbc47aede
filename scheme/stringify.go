package scheme

import (
	"fmt"
	"strings"
)

// Stringify renders exp as readable text. Strings are quoted when quote is
// true (the default mode) and raw when false (display mode).
func Stringify(exp Value, quote bool) string {
	switch exp {
	case true:
		return "#t"
	case false:
		return "#f"
	case Void:
		return "#<VOID>"
	case EOF:
		return "#<EOF>"
	}
	switch x := exp.(type) {
	case *Cell:
		return stringifyList(x, quote)
	case *Environment:
		return stringifyEnv(x)
	case *Closure:
		p := Stringify(x.Params, true)
		b := Stringify(x.Body, true)
		e := Stringify(x.Env, true)
		return "#<" + p + ":" + b + ":" + e + ">"
	case *Intrinsic:
		return fmt.Sprintf("#<%s:%d>", x.Name, x.Arity)
	case Continuation:
		ss := make([]string, 0, len(x))
		for _, step := range x {
			ss = append(ss, "<"+step.Op.String()+":"+Stringify(step.Payload, true)+">")
		}
		return "#<" + strings.Join(ss, "\n\t") + ">"
	case *Symbol:
		return string(*x)
	case *Number:
		return stringifyNumber(x)
	case string:
		if quote {
			return fmt.Sprintf("%q", x)
		}
		return x
	}
	return fmt.Sprintf("%v", exp)
}

func stringifyList(x *Cell, quote bool) string {
	if x == Nil {
		return "()"
	}
	parts := make([]string, 0, 8)
	for x != Nil {
		parts = append(parts, Stringify(x.Car, quote))
		if cdr, ok := x.Cdr.(*Cell); ok {
			x = cdr
		} else {
			parts = append(parts, ".", Stringify(x.Cdr, quote))
			break
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// stringifyEnv renders an environment as the sequence of its symbol
// names, outermost (GlobalEnv) last, with "|" marking a frame boundary.
func stringifyEnv(env *Environment) string {
	parts := make([]string, 0, 8)
	for e := env; e != nil; e = e.Next {
		if e == GlobalEnv {
			parts = append(parts, "GlobalEnv")
			break
		}
		if e.Sym == nil {
			parts = append(parts, "|")
			continue
		}
		parts = append(parts, string(*e.Sym))
	}
	return strings.Join(parts, " ")
}
