package ratpack

import (
	"github.com/calcpack/ratpack/internal/word"
)

// normalizeSign restores the invariant that Q's sign is always +1, folding
// any negative denominator sign into P.
func normalizeSign(r *Rational) *Rational {
	if r.Q.Sign() < 0 {
		r.P.Neg(r.P)
		r.Q.Neg(r.Q)
	}
	return r
}

// Add sets z = x + y (spec §4.C): cross-multiply onto a common denominator,
// then trim to the context's working precision.
func (c *Context) Add(z, x, y *Rational) (Condition, error) {
	np := NumMul(NewNumber(), x.P, y.Q)
	mp := NumMul(NewNumber(), y.P, x.Q)
	z.P = NumAdd(NewNumber(), np, mp)
	z.Q = NumMul(NewNumber(), x.Q, y.Q)
	normalizeSign(z)
	c.Trim(z)
	return 0, nil
}

// Sub sets z = x - y.
func (c *Context) Sub(z, x, y *Rational) (Condition, error) {
	ny := y.Dup()
	ny.Neg(ny)
	return c.Add(z, x, ny)
}

// Mul sets z = x * y.
func (c *Context) Mul(z, x, y *Rational) (Condition, error) {
	z.P = NumMul(NewNumber(), x.P, y.P)
	z.Q = NumMul(NewNumber(), x.Q, y.Q)
	normalizeSign(z)
	c.Trim(z)
	return 0, nil
}

// Div sets z = x / y. Fails DivideByZero if y is zero.
func (c *Context) Div(z, x, y *Rational) (Condition, error) {
	if y.IsZero() {
		return DivideByZero, DivideByZero.GoError()
	}
	z.P = NumMul(NewNumber(), x.P, y.Q)
	z.Q = NumMul(NewNumber(), x.Q, y.P)
	normalizeSign(z)
	c.Trim(z)
	return 0, nil
}

// ratIntFracSplit splits r's magnitude into an integer part (truncated
// toward zero) and a fractional remainder p/q, by first clearing both
// operands' exponents against each other. Both Number mantissas are already
// nonnegative magnitudes, so the split needs no sign handling of its own.
func ratIntFracSplit(r *Rational) (intPart, fracP, fracQ *Number) {
	diff := r.P.Exp() - r.Q.Exp()
	var pMant, qMant word.Vector
	if diff >= 0 {
		pMant = word.ShiftWords(r.P.mant, int(diff))
		qMant = r.Q.mant
	} else {
		pMant = r.P.mant
		qMant = word.ShiftWords(r.Q.mant, int(-diff))
	}
	q, rem := word.QuoRem(pMant, qMant)

	intPart = &Number{sign: r.Sign(), mant: q}
	intPart.canon()
	fracP = &Number{sign: r.Sign(), mant: rem}
	fracP.canon()
	fracQ = &Number{sign: 1, mant: qMant}
	fracQ.canon()
	return intPart, fracP, fracQ
}

// Int sets z to the integer part of x, truncated toward zero (spec §9
// supplemented ops, ratpack_rat_int).
func (c *Context) Int(z, x *Rational) (Condition, error) {
	ip, _, _ := ratIntFracSplit(x)
	z.P = ip
	z.Q = NumberFromInt32(1)
	return 0, nil
}

// Frac sets z to the fractional remainder of x, i.e. x - trunc(x) (spec §9
// supplemented ops, ratpack_rat_frac).
func (c *Context) Frac(z, x *Rational) (Condition, error) {
	_, fp, fq := ratIntFracSplit(x)
	z.P, z.Q = fp, fq
	normalizeSign(z)
	c.Trim(z)
	return 0, nil
}

// Rem sets z = x - trunc(x/y)*y: the truncated remainder, carrying x's sign
// (spec §4.C).
func (c *Context) Rem(z, x, y *Rational) (Condition, error) {
	if y.IsZero() {
		return DivideByZero, DivideByZero.GoError()
	}
	q := new(Rational)
	if cond, err := c.Div(q, x, y); err != nil {
		return cond, err
	}
	qi, _, _ := ratIntFracSplit(q)
	prod := new(Rational)
	c.Mul(prod, &Rational{P: qi, Q: NumberFromInt32(1)}, y)
	return c.Sub(z, x, prod)
}

// Mod sets z = x - floor(x/y)*y: the floored (Euclidean-leaning) remainder,
// carrying y's sign when x and y disagree in sign (spec §4.C).
func (c *Context) Mod(z, x, y *Rational) (Condition, error) {
	if cond, err := c.Rem(z, x, y); err != nil {
		return cond, err
	}
	if !z.IsZero() && z.Sign() != y.Sign() {
		c.Add(z, z, y)
	}
	return 0, nil
}

func isIntegerRational(r *Rational) bool {
	return r.Q.Exp() == 0 && word.Cmp(r.Q.mant, word.FromUint64(1)) == 0
}

// And sets z = x & y, bitwise, for nonnegative integer operands. Fails
// Domain if the context's radix isn't bitwise-eligible (spec §9 Open
// Questions) or either operand isn't a nonnegative integer.
func (c *Context) And(z, x, y *Rational) (Condition, error) {
	if cond, err := c.checkBitwise(x, y); err != nil {
		return cond, err
	}
	z.P = &Number{sign: 1, mant: word.And(x.P.mant, y.P.mant)}
	z.P.canon()
	z.Q = NumberFromInt32(1)
	return 0, nil
}

// Or sets z = x | y.
func (c *Context) Or(z, x, y *Rational) (Condition, error) {
	if cond, err := c.checkBitwise(x, y); err != nil {
		return cond, err
	}
	z.P = &Number{sign: 1, mant: word.Or(x.P.mant, y.P.mant)}
	z.P.canon()
	z.Q = NumberFromInt32(1)
	return 0, nil
}

// Xor sets z = x ^ y.
func (c *Context) Xor(z, x, y *Rational) (Condition, error) {
	if cond, err := c.checkBitwise(x, y); err != nil {
		return cond, err
	}
	z.P = &Number{sign: 1, mant: word.Xor(x.P.mant, y.P.mant)}
	z.P.canon()
	z.Q = NumberFromInt32(1)
	return 0, nil
}

func (c *Context) checkBitwise(x, y *Rational) (Condition, error) {
	if !c.AllowBitwiseRadix(c.Radix) {
		return Domain, Domain.GoError()
	}
	if !isIntegerRational(x) || !isIntegerRational(y) {
		return Domain, Domain.GoError()
	}
	if x.Sign() < 0 || y.Sign() < 0 {
		return Domain, Domain.GoError()
	}
	return 0, nil
}

// Lsh sets z = x << n, for an integer operand (spec §9 supplemented ops). A
// negative x has its magnitude shifted and keeps its sign.
func (c *Context) Lsh(z, x *Rational, n int32) (Condition, error) {
	if !c.AllowBitwiseRadix(c.Radix) || !isIntegerRational(x) {
		return Domain, Domain.GoError()
	}
	z.P = &Number{sign: x.Sign(), mant: word.ShiftLeft(x.P.mant, int(n))}
	z.P.canon()
	z.Q = NumberFromInt32(1)
	return 0, nil
}

// Rsh sets z = x >> n.
func (c *Context) Rsh(z, x *Rational, n int32) (Condition, error) {
	if !c.AllowBitwiseRadix(c.Radix) || !isIntegerRational(x) {
		return Domain, Domain.GoError()
	}
	z.P = &Number{sign: x.Sign(), mant: word.ShiftRight(x.P.mant, int(n))}
	z.P.canon()
	z.Q = NumberFromInt32(1)
	return 0, nil
}

// cmpRational compares x and y by cross-multiplication. Valid because the
// Rational invariant keeps both denominators positive.
func cmpRational(x, y *Rational) int {
	lhs := NumMul(NewNumber(), x.P, y.Q)
	rhs := NumMul(NewNumber(), y.P, x.Q)
	return lhs.Cmp(rhs)
}

// Equ, Neq, Lt, Le, Gt, Ge are the Rational comparison family (spec §4.D).
func (c *Context) Equ(x, y *Rational) bool { return cmpRational(x, y) == 0 }
func (c *Context) Neq(x, y *Rational) bool { return cmpRational(x, y) != 0 }
func (c *Context) Lt(x, y *Rational) bool  { return cmpRational(x, y) < 0 }
func (c *Context) Le(x, y *Rational) bool  { return cmpRational(x, y) <= 0 }
func (c *Context) Gt(x, y *Rational) bool  { return cmpRational(x, y) > 0 }
func (c *Context) Ge(x, y *Rational) bool  { return cmpRational(x, y) >= 0 }

// Inbetween reports whether lo <= x <= hi (spec §4.D).
func (c *Context) Inbetween(x, lo, hi *Rational) bool {
	return cmpRational(x, lo) >= 0 && cmpRational(x, hi) <= 0
}

// GCD sets z to the greatest common divisor of x and y, restricted to
// integer operands; signs are ignored, so the result is the GCD of the
// magnitudes (spec §9 supplemented ops, ratpack_rat_gcd).
func (c *Context) GCD(z, x, y *Rational) (Condition, error) {
	if !isIntegerRational(x) || !isIntegerRational(y) {
		return Domain, Domain.GoError()
	}
	g, cond, err := NumGCD(x.P, y.P)
	if err != nil {
		return cond, err
	}
	z.P = g
	z.Q = NumberFromInt32(1)
	return 0, nil
}

// shiftNumberRight drops k low-order internal-radix digits from n,
// incrementing its exponent to compensate. It never drops every digit: k is
// clamped so at least one digit of magnitude survives.
func shiftNumberRight(n *Number, k int) {
	if k <= 0 || n.IsZero() {
		return
	}
	if max := len(n.mant) - 1; k > max {
		k = max
	}
	if k <= 0 {
		return
	}
	hi, _ := word.SplitWords(n.mant, k)
	n.mant = hi
	n.exp += int32(k)
	n.canon()
}

// Trim bounds r's storage growth by dropping low-order internal-radix digits
// from P and from Q independently, so that each mantissa keeps
// precision/digitRatio+2 internal-radix digits (spec §4.A's trim heuristic).
// Each exponent absorbs its dropped digits, so P and Q each keep their value
// to the working precision. This keeps iterative series (Taylor sums,
// continued divisions) from growing operands without bound.
func (c *Context) Trim(r *Rational) *Rational {
	NumTrim(r.P)
	NumTrim(r.Q)
	keep := int(float64(c.Precision)/c.digitRatio) + 2
	shiftNumberRight(r.P, len(r.P.mant)-keep)
	shiftNumberRight(r.Q, len(r.Q.mant)-keep)
	return r
}

// Flat collapses x's p/q pair into a single decimal Number at the context's
// working precision, returned as z = flat(x)/1 (spec §9 supplemented ops,
// ratpack_rat_flat).
func (c *Context) Flat(z, x *Rational) (Condition, error) {
	n := NewNumber()
	cond, err := NumDiv(n, x.P, x.Q, c)
	if err != nil {
		return cond, err
	}
	z.P = n
	z.Q = NumberFromInt32(1)
	return 0, nil
}
