package ratpack

import (
	"math"

	"github.com/calcpack/ratpack/internal/word"
)

// Context carries the radix and working precision that every Rational
// operation consults, plus a trap mask (Traps) that no operation in this
// package reads, replacing the original library's global tuning state
// (spec §9 Design Notes: the redesign this package adopts).
// A Context also caches the radix/precision-dependent constants (pi and its
// fractions, the internal/external digit ratio) that transcendental
// functions need, mirroring apd.Context's role for decimal rounding.
type Context struct {
	Radix     uint32
	Precision int32
	Traps     Condition

	digitRatio float64

	Pi        *Rational
	PiOver2   *Rational
	PiOver180 *Rational
	PiOver200 *Rational
}

// BaseContext is radix 10, precision 34 (apd.BaseContext's digit count),
// with no traps set.
var BaseContext = NewContext(10, 34)

// NewContext returns a Context at the given radix and precision, with all
// derived constants computed.
func NewContext(radix uint32, precision int32) *Context {
	c := &Context{}
	c.ChangeConstants(radix, precision)
	return c
}

// WithPrecision returns a copy of c at a different working precision,
// recomputing derived constants.
func (c *Context) WithPrecision(precision int32) *Context {
	n := NewContext(c.Radix, precision)
	n.Traps = c.Traps
	return n
}

// WithRadix returns a copy of c at a different radix, recomputing derived
// constants.
func (c *Context) WithRadix(radix uint32) *Context {
	n := NewContext(radix, c.Precision)
	n.Traps = c.Traps
	return n
}

// AllowBitwiseRadix reports whether radix supports the bitwise/shift
// operator family. The original header left this unspecified for
// non-power-of-two radices; this package resolves it (spec §9 Open
// Questions) by allowing exactly the radices whose digits are whole
// multiples of a bit: 2, 8, and 16. Internal storage is already binary
// (BASE=2^32), so the restriction is about what the *external* radix can
// represent one-to-one, not an internal limitation.
func (c *Context) AllowBitwiseRadix(radix uint32) bool {
	switch radix {
	case 2, 8, 16:
		return true
	}
	return false
}

// ChangeConstants resets c to the given radix and precision and recomputes
// every cached constant: digitRatio and the pi family. Named after the
// original header's ratpack_change_constants, which invalidated and rebuilt
// the same bundle on a radix or precision change.
func (c *Context) ChangeConstants(radix uint32, precision int32) {
	c.Radix = radix
	c.Precision = precision
	c.digitRatio = math.Log(float64(word.Base)) / math.Log(float64(radix))

	pi := computePi(c)
	c.Pi = pi

	c.PiOver2 = new(Rational)
	c.Div(c.PiOver2, pi, NewRationalInt(2))

	c.PiOver180 = new(Rational)
	c.Div(c.PiOver180, pi, NewRationalInt(180))

	c.PiOver200 = new(Rational)
	c.Div(c.PiOver200, pi, NewRationalInt(200))
}

// computePi evaluates pi via Machin's formula, pi = 16*atan(1/5) -
// 4*atan(1/239), exactly as the original header's constant-generation
// comment describes. atanReciprocal is a fixed-term Taylor series rather
// than the adaptive convergence loop the public Atan (trig.go) uses: it
// runs once per ChangeConstants call, so a generous fixed term count is
// cheap insurance against under-converging for the arguments Machin's
// formula actually uses (1/5 and 1/239).
func computePi(c *Context) *Rational {
	a5 := atanReciprocal(c, 5)
	a239 := atanReciprocal(c, 239)

	t1 := new(Rational)
	c.Mul(t1, NewRationalInt(16), a5)
	t2 := new(Rational)
	c.Mul(t2, NewRationalInt(4), a239)

	pi := new(Rational)
	c.Sub(pi, t1, t2)
	return pi
}

// atanReciprocal evaluates atan(1/n) = sum_{k>=0} (-1)^k / ((2k+1) * n^(2k+1))
// to a fixed number of terms scaled to the context's precision.
func atanReciprocal(c *Context, n int32) *Rational {
	x, _, _ := NewRationalFrac(1, n)
	xSquared := new(Rational)
	c.Mul(xSquared, x, x)

	sum := NewRationalInt(0)
	power := x.Dup()

	terms := int(c.Precision) + 5
	for k := 0; k < terms; k++ {
		denom := NewRationalInt(int32(2*k + 1))
		term := new(Rational)
		c.Div(term, power, denom)
		if k%2 == 1 {
			c.Sub(sum, sum, term)
		} else {
			c.Add(sum, sum, term)
		}
		next := new(Rational)
		c.Mul(next, power, xSquared)
		power = next
	}
	return sum
}
