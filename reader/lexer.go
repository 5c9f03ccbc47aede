// Package reader implements the s-expression lexer/parser: it turns
// source text into the expression trees scheme.Evaluate consumes. It
// depends on scheme for the value types (*scheme.Cell, *scheme.Symbol),
// scheme.Intern / scheme.ParseNumber, the error constructors, and (in
// LoadFile) scheme.Evaluate — never the other way around.
package reader

import (
	"io"
	"text/scanner"
	"unicode"

	"tinyscheme/scheme"
)

// Token is either a rune ('(' , ')' , '\'' ), a string literal, a bool, a
// *scheme.Number, or a *scheme.Symbol.
type Token = any

// SplitTokens splits source text into tokens. Whitespace splits outside
// strings, ;-comments run to end of line, ' expands to (quote ...) at
// read time, parentheses are standalone tokens, and strings are
// double-quoted with no escape processing beyond containing spaces,
// built on text/scanner.
func SplitTokens(src io.Reader) []Token {
	result := make([]Token, 0, 100)
	var scn scanner.Scanner
	scn.Init(src)
	scn.Mode = scanner.ScanIdents | scanner.ScanStrings
	scn.IsIdentRune = func(ch rune, i int) bool {
		return unicode.IsPrint(ch) && ch != ' ' && ch != ';' &&
			ch != '(' && ch != ')' && ch != '\'' && ch != '"'
	}
	scn.Error = func(s *scanner.Scanner, msg string) {
		panic(scheme.ParseFailure("%s at %s", msg, s.Position))
	}
	scn.Whitespace ^= 1 << '\n' // don't skip newlines; they end comments
	scn.Whitespace |= 1 << '\f'

loop:
	for tok := scn.Scan(); tok != scanner.EOF; tok = scn.Scan() {
		switch tok {
		case ';':
			for {
				tok = scn.Scan()
				if tok == scanner.EOF || tok == '\n' {
					continue loop
				}
			}
		case '\n':
			continue loop
		case '(', ')', '\'':
			result = append(result, tok)
		case scanner.String:
			text := scn.TokenText()
			result = append(result, text[1:len(text)-1]) // trim quotes
		case scanner.Ident:
			text := scn.TokenText()
			switch text {
			case "#t":
				result = append(result, true)
			case "#f":
				result = append(result, false)
			default:
				if n, ok := scheme.ParseNumber(text); ok {
					result = append(result, n)
				} else {
					result = append(result, scheme.Intern(text))
				}
			}
		default:
			panic(scheme.ParseFailure("illegal char %q at %s", tok, scn.Position))
		}
	}
	return result
}
