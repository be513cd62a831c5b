// Package rational implements an exact fraction type over int64 whose
// operations report overflow and division by zero instead of wrapping.
//
// Values are never reduced to lowest terms. Two fractions with different
// representations can still be Equal, since equality is decided by
// cross-multiplication.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	ErrSyntax          = errors.New("rational: invalid syntax")
	ErrZeroDenominator = errors.New("rational: zero denominator")
)

// Rational is the fraction Num/Den. Den may be negative.
type Rational struct {
	Num int64
	Den int64
}

// New returns num/den. It panics if den is zero.
func New(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return Rational{Num: num, Den: den}
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// FromInts converts a slice of integers.
func FromInts(ns []int64) []Rational {
	out := make([]Rational, len(ns))
	for i, n := range ns {
		out[i] = FromInt(n)
	}
	return out
}

// Parse reads "n" or "n/d".
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !hasDen {
		return FromInt(num), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: %q", ErrZeroDenominator, s)
	}
	return Rational{Num: num, Den: den}, nil
}

// Add returns a+b, or false on overflow.
func Add(a, b Rational) (Rational, bool) {
	l, ok1 := mul64(a.Num, b.Den)
	r, ok2 := mul64(b.Num, a.Den)
	den, ok3 := mul64(a.Den, b.Den)
	if !ok1 || !ok2 || !ok3 {
		return Rational{}, false
	}
	num, ok := add64(l, r)
	if !ok {
		return Rational{}, false
	}
	return Rational{Num: num, Den: den}, true
}

// Sub returns a-b, or false on overflow.
func Sub(a, b Rational) (Rational, bool) {
	l, ok1 := mul64(a.Num, b.Den)
	r, ok2 := mul64(b.Num, a.Den)
	den, ok3 := mul64(a.Den, b.Den)
	if !ok1 || !ok2 || !ok3 {
		return Rational{}, false
	}
	num, ok := sub64(l, r)
	if !ok {
		return Rational{}, false
	}
	return Rational{Num: num, Den: den}, true
}

// Mul returns a*b, or false on overflow.
func Mul(a, b Rational) (Rational, bool) {
	num, ok1 := mul64(a.Num, b.Num)
	den, ok2 := mul64(a.Den, b.Den)
	if !ok1 || !ok2 {
		return Rational{}, false
	}
	return Rational{Num: num, Den: den}, true
}

// Div returns a/b, or false when b is zero or the cross-multiplication
// overflows.
func Div(a, b Rational) (Rational, bool) {
	if b.IsZero() {
		return Rational{}, false
	}
	num, ok1 := mul64(a.Num, b.Den)
	den, ok2 := mul64(a.Den, b.Num)
	if !ok1 || !ok2 {
		return Rational{}, false
	}
	return Rational{Num: num, Den: den}, true
}

// Equal reports whether a and b denote the same number.
func Equal(a, b Rational) bool {
	l, ok1 := mul64(a.Num, b.Den)
	r, ok2 := mul64(b.Num, a.Den)
	if ok1 && ok2 {
		return l == r
	}
	bl := new(big.Int).Mul(big.NewInt(a.Num), big.NewInt(b.Den))
	br := new(big.Int).Mul(big.NewInt(b.Num), big.NewInt(a.Den))
	return bl.Cmp(br) == 0
}

func (r Rational) IsZero() bool { return r.Num == 0 }

func (r Rational) IsInt() bool { return r.Den != 0 && r.Num%r.Den == 0 }

// Sign returns -1, 0 or +1 taking the sign of both parts into account.
func (r Rational) Sign() int {
	return sign(r.Num) * sign(r.Den)
}

// Rat converts to a normalized big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(r.Num), big.NewInt(r.Den))
}

func (r Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 wraps back to MinInt64, which the quotient check misses.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}
