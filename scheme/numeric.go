package scheme

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/nukata/goarith"
)

// Number is the evaluator's numeric value: bounded integer, arbitrary
// precision integer, or double, represented as "smallest that fits".
// The hard part — promoting and narrowing between the integer tiers — is
// goarith's job; Number only tracks whether the value is conceptually the
// float tier, since that is the one distinction goarith's API does not
// hand back to callers and which this evaluator's formatting rule (an
// integral float prints with a trailing ".0") needs to know directly.
type Number struct {
	N       goarith.Number
	IsFloat bool
}

func (n *Number) String() string { return Stringify(n, true) }

// NewInt wraps a bounded integer as a Number.
func NewInt(i int) *Number { return &Number{N: goarith.AsNumber(i), IsFloat: false} }

// NewBigInt wraps an arbitrary-precision integer as a Number.
func NewBigInt(b *big.Int) *Number { return &Number{N: goarith.AsNumber(b), IsFloat: false} }

// NewFloat wraps a double as a Number.
func NewFloat(f float64) *Number { return &Number{N: goarith.AsNumber(f), IsFloat: true} }

// ParseNumber tries a bounded integer, then an arbitrary-precision
// integer, then a float; it fails if text matches none of them.
func ParseNumber(text string) (*Number, bool) {
	if i, err := strconv.ParseInt(text, 0, 32); err == nil {
		return NewInt(int(i)), true
	}
	if b, ok := new(big.Int).SetString(text, 0); ok {
		return NewBigInt(b), true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return NewFloat(f), true
	}
	return nil, false
}

// AsNumber asserts that v is a Number, failing type-mismatch otherwise.
func AsNumber(op string, v Value) *Number {
	n, ok := v.(*Number)
	if !ok {
		panic(TypeMismatchError(op, v))
	}
	return n
}

// NumAdd adds two numbers, promoting to float if either operand is float.
func NumAdd(a, b *Number) *Number {
	return &Number{N: a.N.Add(b.N), IsFloat: a.IsFloat || b.IsFloat}
}

// NumSub subtracts b from a under the same promotion rule as NumAdd.
func NumSub(a, b *Number) *Number {
	return &Number{N: a.N.Sub(b.N), IsFloat: a.IsFloat || b.IsFloat}
}

// NumMul multiplies two numbers under the same promotion rule as NumAdd.
func NumMul(a, b *Number) *Number {
	return &Number{N: a.N.Mul(b.N), IsFloat: a.IsFloat || b.IsFloat}
}

// NumCompare returns -1/0/+1. Mixing a float with an exact integer
// compares by converting the integer to float, accepting the resulting
// precision loss; goarith.Number.Cmp already implements that promotion.
func NumCompare(a, b *Number) int { return a.N.Cmp(b.N) }

// stringifyNumber renders n the way the stringifier needs: goarith
// formats the value itself, and this function only adds the ".0" suffix
// an integral float requires to round-trip textually.
func stringifyNumber(n *Number) string {
	s := fmt.Sprintf("%v", n.N)
	if n.IsFloat && !strings.ContainsAny(s, ".eEnN") {
		return s + ".0"
	}
	return s
}
