package reader

import (
	"os"

	"tinyscheme/scheme"
)

// LoadFile reads every top-level expression from a file in turn and
// evaluates each one in env, propagating the first error encountered.
func LoadFile(path string, env *scheme.Environment) error {
	file, err := os.Open(path)
	if err != nil {
		return scheme.Fatal(err)
	}
	defer file.Close()
	tokens := SplitTokens(file)
	for len(tokens) != 0 {
		exp := ReadFromTokens(&tokens)
		scheme.Evaluate(exp, env)
	}
	return nil
}
