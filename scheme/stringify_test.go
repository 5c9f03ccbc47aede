package scheme

import "testing"

func TestStringifyAtoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{true, "#t"},
		{false, "#f"},
		{Void, "#<VOID>"},
		{EOF, "#<EOF>"},
		{sym("car"), "car"},
	}
	for _, c := range cases {
		if got := Stringify(c.v, true); got != c.want {
			t.Errorf("Stringify(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestStringifyProperAndDottedLists(t *testing.T) {
	proper := list(NewInt(1), NewInt(2), NewInt(3))
	if got := Stringify(proper, true); got != "(1 2 3)" {
		t.Errorf("Stringify(proper) = %q, want (1 2 3)", got)
	}
	dotted := &Cell{NewInt(1), &Cell{NewInt(2), NewInt(3)}}
	if got := Stringify(dotted, true); got != "(1 2 . 3)" {
		t.Errorf("Stringify(dotted) = %q, want (1 2 . 3)", got)
	}
	if got := Stringify(Nil, true); got != "()" {
		t.Errorf("Stringify(Nil) = %q, want ()", got)
	}
}

func TestStringifyStringQuotingModes(t *testing.T) {
	if got := Stringify("hi", true); got != `"hi"` {
		t.Errorf("quoted Stringify(%q) = %q, want %q", "hi", got, `"hi"`)
	}
	if got := Stringify("hi", false); got != "hi" {
		t.Errorf("display Stringify(%q) = %q, want hi", "hi", got)
	}
}

func TestStringifyIntrinsicAndClosure(t *testing.T) {
	in := intrinsic("foo", 2, func(x *Cell) Value { return Void })
	if got := Stringify(in, true); got != "#<foo:2>" {
		t.Errorf("Stringify(intrinsic) = %q, want #<foo:2>", got)
	}
	clo := &Closure{list(sym("x")), list(sym("x")), GlobalEnv}
	got := Stringify(clo, true)
	if len(got) < 2 || got[0] != '#' || got[1] != '<' {
		t.Errorf("Stringify(closure) = %q, want a #<...> form", got)
	}
}

func TestStringifyEnvMarksFrameBoundaries(t *testing.T) {
	frame := NewFrame(GlobalEnv)
	DefineHere(frame, sym("x"), NewInt(1))
	got := Stringify(frame, true)
	if got == "" {
		t.Fatal("Stringify(env) returned empty string")
	}
	if got != "x | GlobalEnv" {
		t.Errorf("Stringify(env) = %q, want %q", got, "x | GlobalEnv")
	}
}
