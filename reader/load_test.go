package reader

import (
	"os"
	"path/filepath"
	"testing"

	"tinyscheme/scheme"
)

func TestLoadFileEvaluatesEachTopLevelForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.scm")
	src := "(define x 1)\n(define y (+ x 41))\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	env := scheme.NewFrame(scheme.GlobalEnv)
	if err := LoadFile(path, env); err != nil {
		t.Fatalf("LoadFile returned an error: %v", err)
	}
	got := scheme.Evaluate(scheme.Intern("y"), env)
	if scheme.Stringify(got, true) != "42" {
		t.Errorf("y = %s, want 42", scheme.Stringify(got, true))
	}
}

func TestLoadFileMissingFileReturnsError(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.scm"), scheme.NewFrame(scheme.GlobalEnv))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	se, ok := err.(*scheme.Error)
	if !ok || se.Kind != scheme.FatalError {
		t.Fatalf("expected a FatalError, got %v", err)
	}
}

func TestLoadFilePropagatesEvalPanicsAsPanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.scm")
	if err := os.WriteFile(path, []byte("(no-such-procedure)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() {
		r := recover()
		se, ok := r.(*scheme.Error)
		if !ok || se.Kind != scheme.UnboundSymbol {
			t.Fatalf("expected UnboundSymbol panic, got %v", r)
		}
	}()
	LoadFile(path, scheme.NewFrame(scheme.GlobalEnv))
	t.Fatal("expected panic")
}
