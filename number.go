package ratpack

import (
	"github.com/calcpack/ratpack/internal/word"
	"github.com/pkg/errors"
)

// Number is a sign-magnitude arbitrary-precision integer-like value with an
// explicit radix-point exponent: its value is sign * mant * BASE^exp, where
// mant is a nonnegative integer held as BASE-digit words, least-significant
// first. BASE is fixed at 2^32 (see internal/word).
//
// The zero value is not a valid Number; use NewNumber or one of the From*
// constructors. A Number is owned exclusively by its holder; Dup performs a
// deep copy.
type Number struct {
	sign int32
	exp  int32
	mant word.Vector
}

// NewNumber returns the canonical zero Number.
func NewNumber() *Number {
	return &Number{sign: 1}
}

// NumberFromInt32 converts i to a Number.
func NumberFromInt32(i int32) *Number {
	n := &Number{sign: 1}
	if i < 0 {
		n.sign = -1
		n.mant = word.FromUint64(uint64(-int64(i)))
	} else {
		n.mant = word.FromUint64(uint64(i))
	}
	return n
}

// NumberFromUint32 converts u to a Number.
func NumberFromUint32(u uint32) *Number {
	return &Number{sign: 1, mant: word.FromUint64(uint64(u))}
}

// NumberFromSize allocates a zero Number with room for size digits (the
// factory-by-size entry point from the original ABI; Go's slice growth makes
// the size only a capacity hint).
func NumberFromSize(size uint32) *Number {
	n := &Number{sign: 1}
	if size > 0 {
		n.mant = make(word.Vector, 0, size)
	}
	return n
}

// Sign returns the Number's sign (+1 or -1). Zero always carries sign +1.
func (n *Number) Sign() int32 { return n.sign }

// Exp returns the exponent of the radix point.
func (n *Number) Exp() int32 { return n.exp }

// CDigit returns the number of internal-radix digits in the mantissa.
func (n *Number) CDigit() int32 { return int32(word.NumDigits(n.mant)) }

// IsZero reports whether n is exactly zero.
func (n *Number) IsZero() bool { return n.mant.Zero() }

// canon restores the canonical-form invariants: sign=+1 for zero, and the
// mantissa carries no leading zero digits.
func (n *Number) canon() *Number {
	n.mant = word.Trim(n.mant)
	if n.mant.Zero() {
		n.sign = 1
		n.exp = 0
		n.mant = nil
	}
	return n
}

// Set sets n to x and returns n.
func (n *Number) Set(x *Number) *Number {
	n.sign = x.sign
	n.exp = x.exp
	n.mant = x.mant.Clone()
	return n
}

// Dup returns a deep copy of n.
func (n *Number) Dup() *Number {
	return new(Number).Set(n)
}

// Neg sets n to -x and returns n.
func (n *Number) Neg(x *Number) *Number {
	n.Set(x)
	if !n.IsZero() {
		n.sign = -n.sign
	}
	return n
}

// Cmp compares the signed values of a and b: -1, 0, +1.
func (a *Number) Cmp(b *Number) int {
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.sign != b.sign {
		if a.sign < b.sign {
			return -1
		}
		return 1
	}
	mag := cmpMagnitude(a, b)
	if a.sign < 0 {
		mag = -mag
	}
	return mag
}

// cmpMagnitude compares |a| and |b|, aligning exponents first.
func cmpMagnitude(a, b *Number) int {
	au, bu := alignedMantissas(a, b)
	return word.Cmp(au, bu)
}

// alignedMantissas returns a's and b's mantissas scaled to a common (the
// smaller) exponent, so their digit vectors can be compared/combined
// directly. Since a Number's digits are themselves base-BASE words, scaling
// by BASE^k is just prepending k zero words (word.ShiftWords).
func alignedMantissas(a, b *Number) (au, bu word.Vector) {
	if a.exp == b.exp {
		return a.mant, b.mant
	}
	if a.exp > b.exp {
		return word.ShiftWords(a.mant, int(a.exp-b.exp)), b.mant
	}
	return a.mant, word.ShiftWords(b.mant, int(b.exp-a.exp))
}

// ToI32 evaluates n as an int32. Fails with Overflow if n's magnitude
// exceeds the int32 range or if n has a fractional (nonzero negative
// exponent) part that doesn't cleanly scale.
func (n *Number) ToI32() (int32, Condition, error) {
	v, _, err := n.toScaledUint64()
	if err != nil {
		return 0, Overflow, Overflow.GoError()
	}
	if n.sign < 0 {
		if v > 1<<31 {
			return 0, Overflow, Overflow.GoError()
		}
		return int32(-int64(v)), 0, nil
	}
	if v > 1<<31-1 {
		return 0, Overflow, Overflow.GoError()
	}
	return int32(v), 0, nil
}

// ToU64 evaluates n as a uint64. BASE=2^32 makes this a direct two-word read
// once the value is scaled to exp=0, exactly as the original header's
// doc comment for ratpack_rat_to_u64 describes.
func (n *Number) ToU64() (uint64, Condition, error) {
	if n.sign < 0 && !n.IsZero() {
		return 0, InvalidRange, InvalidRange.GoError()
	}
	v, cond, err := n.toScaledUint64()
	if err != nil {
		return 0, cond, err
	}
	return v, 0, nil
}

func (n *Number) toScaledUint64() (uint64, Condition, error) {
	scaled := n.mant
	if n.exp > 0 {
		scaled = word.ShiftWords(scaled, int(n.exp))
	} else if n.exp < 0 {
		hi, lo := word.SplitWords(scaled, -int(n.exp))
		if !lo.Zero() {
			return 0, InvalidRange, errors.New(InvalidRange.String())
		}
		scaled = hi
	}
	v, ok := word.Uint64(scaled)
	if !ok {
		return 0, InvalidRange, errors.New(InvalidRange.String())
	}
	return v, 0, nil
}

// LogRadix returns (cdigit(n)+exp(n)) * digitRatio: the position of the most
// significant user-radix digit, used by precision control (§4.A).
func (n *Number) LogRadix(c *Context) float64 {
	return float64(n.logNum2()) * c.digitRatio
}

// logNum2 is the raw cdigit+exp helper the original header calls lognum2.
func (n *Number) logNum2() int32 {
	return n.CDigit() + n.exp
}
