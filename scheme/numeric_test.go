package scheme

import (
	"math/big"
	"testing"
)

func TestParseNumberTiers(t *testing.T) {
	cases := []struct {
		text      string
		wantFloat bool
	}{
		{"0", false},
		{"42", false},
		{"-7", false},
		{"99999999999999999999999999999999", false}, // beyond int32, still exact
		{"3.14", true},
		{"123.0", true},
	}
	for _, c := range cases {
		n, ok := ParseNumber(c.text)
		if !ok {
			t.Fatalf("ParseNumber(%q) failed to parse", c.text)
		}
		if n.IsFloat != c.wantFloat {
			t.Errorf("ParseNumber(%q).IsFloat = %v, want %v", c.text, n.IsFloat, c.wantFloat)
		}
	}
}

func TestParseNumberRejectsNonNumeric(t *testing.T) {
	for _, text := range []string{"", "abc", "+-3", "()"} {
		if _, ok := ParseNumber(text); ok {
			t.Errorf("ParseNumber(%q) unexpectedly succeeded", text)
		}
	}
}

func TestNumAddPromotesOnFloat(t *testing.T) {
	a := NewInt(1)
	b := NewFloat(2.5)
	sum := NumAdd(a, b)
	if !sum.IsFloat {
		t.Error("1 + 2.5 should promote to float")
	}
	if NumCompare(sum, NewFloat(3.5)) != 0 {
		t.Errorf("1 + 2.5 = %s, want 3.5", stringifyNumber(sum))
	}
}

func TestNumAddStaysExactForIntegers(t *testing.T) {
	sum := NumAdd(NewInt(40), NewInt(2))
	if sum.IsFloat {
		t.Error("40 + 2 should stay exact")
	}
	if NumCompare(sum, NewInt(42)) != 0 {
		t.Errorf("40 + 2 = %s, want 42", stringifyNumber(sum))
	}
}

func TestNumAddWithBigStaysExact(t *testing.T) {
	big1 := NewBigInt(new(big.Int).Lsh(big.NewInt(1), 100))
	sum := NumAdd(big1, NewInt(1))
	if sum.IsFloat {
		t.Error("big + small should stay exact, not float")
	}
}

func TestCompareMixedPromotesToFloat(t *testing.T) {
	if NumCompare(NewInt(3), NewFloat(3.0)) != 0 {
		t.Error("3 should compare equal to 3.0")
	}
	if NumCompare(NewInt(2), NewFloat(2.5)) >= 0 {
		t.Error("2 should compare less than 2.5")
	}
}

func TestStringifyFloatAppendsDotZero(t *testing.T) {
	n := NewFloat(123)
	if got := stringifyNumber(n); got != "123.0" {
		t.Errorf("stringifyNumber(123.0) = %q, want %q", got, "123.0")
	}
}

func TestStringifyIntHasNoDot(t *testing.T) {
	n := NewInt(123)
	if got := stringifyNumber(n); got != "123" {
		t.Errorf("stringifyNumber(123) = %q, want %q", got, "123")
	}
}
