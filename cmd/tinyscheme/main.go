// Command tinyscheme is the REPL and file-loader around the scheme
// evaluator, kept deliberately thin so the evaluator core stays
// reusable as a library.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"tinyscheme/reader"
	"tinyscheme/scheme"
)

const (
	historyFileName = ".tinyscheme_history"
	prompt1         = "> "
	prompt2         = "| "
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) >= 1 {
		if err := loadFile(args[0]); err != nil {
			printError(err)
			return 1
		}
		if len(args) < 2 || args[1] != "-" {
			return 0
		}
	}
	return repl()
}

// loadFile recovers any panic LoadFile lets through — a parse failure or
// an evaluation error anywhere in the file — so the caller can report it
// and exit with status 1.
func loadFile(path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*scheme.Error); ok {
				err = se
				return
			}
			err = scheme.Fatal(r)
		}
	}()
	return reader.LoadFile(path, scheme.GlobalEnv)
}

func repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}

	src := &reader.Source{ReadLine: readLine(ln)}

	// The read intrinsic shares the same buffered Source as the top-level
	// loop, so an expression typed ahead of a (read) call is consumed in
	// order rather than dropped.
	scheme.ReadHook = func() scheme.Value {
		exp, ok := src.ReadExpr("", "")
		if !ok {
			return scheme.EOF
		}
		return exp
	}

	for {
		exp, ok, err := func() (exp scheme.Value, ok bool, err error) {
			defer func() {
				if r := recover(); r != nil {
					src.Tokens = nil // drop the rest of the malformed input
					err = r.(*scheme.Error)
				}
			}()
			exp, ok = src.ReadExpr(prompt1, prompt2)
			return exp, ok, nil
		}()
		if err != nil {
			printError(err)
			continue
		}
		if !ok {
			fmt.Println("Goodbye")
			break
		}
		result, err := evalTopLevel(exp)
		if err != nil {
			printError(err)
			continue
		}
		if result != scheme.Void {
			fmt.Println(scheme.Stringify(result, true))
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		f.Close()
	}
	return 0
}

// readLine adapts liner's Prompt to reader.Source's ReadLine hook,
// recording every accepted line in history.
func readLine(ln *liner.State) func(prompt string) (string, bool) {
	return func(prompt string) (string, bool) {
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", false
		}
		ln.AppendHistory(line)
		return line, true
	}
}

// evalTopLevel evaluates one top-level expression, converting any panic
// the evaluator raises into a returned error the REPL can print and
// recover from.
func evalTopLevel(exp scheme.Value) (result scheme.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*scheme.Error); ok {
				err = se
				return
			}
			err = scheme.Fatal(r)
		}
	}()
	return scheme.Evaluate(exp, scheme.GlobalEnv), nil
}

// printError prints err's message, followed by the error's kind in
// brackets when the cause is not a user-error. No continuation-stack dump
// is printed.
func printError(err error) {
	var se *scheme.Error
	if errors.As(err, &se) {
		fmt.Fprintln(os.Stderr, se.Error())
		if se.Kind != scheme.UserError {
			fmt.Fprintln(os.Stderr, "  ["+se.Kind.String()+"]")
		}
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}
