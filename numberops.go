package ratpack

import (
	"github.com/calcpack/ratpack/internal/word"
	"github.com/pkg/errors"
)

// NumAdd sets z = a + b and returns z. Operands are aligned by exponent
// before combining: if signs agree the mantissas are added directly; if
// signs differ, the smaller magnitude is subtracted from the larger and the
// result inherits the larger's sign (spec §4.A).
func NumAdd(z, a, b *Number) *Number {
	au, bu := alignedMantissas(a, b)
	exp := a.exp
	if b.exp < exp {
		exp = b.exp
	}
	if a.sign == b.sign {
		z.mant = word.Add(au, bu)
		z.sign = a.sign
		z.exp = exp
	} else {
		switch word.Cmp(au, bu) {
		case 0:
			z.mant = nil
			z.sign = 1
			z.exp = 0
		case 1:
			z.mant = word.Sub(au, bu)
			z.sign = a.sign
			z.exp = exp
		default:
			z.mant = word.Sub(bu, au)
			z.sign = b.sign
			z.exp = exp
		}
	}
	return z.canon()
}

// NumSub sets z = a - b and returns z.
func NumSub(z, a, b *Number) *Number {
	nb := b.Dup().Neg(b)
	return NumAdd(z, a, nb)
}

// NumMul sets z = a * b and returns z: schoolbook O(|a|·|b|), exponent is
// exp(a)+exp(b), sign is the XOR of operand signs (spec §4.A).
func NumMul(z, a, b *Number) *Number {
	z.mant = word.Mul(a.mant, b.mant)
	z.exp = a.exp + b.exp
	z.sign = a.sign * b.sign
	return z.canon()
}

// NumMulX is NumMul's hot-path variant: it assumes a and b are already in
// internal radix and skips the radix guards the user-facing Number ops
// perform (spec §4.A's mul_x).
func NumMulX(z, a, b *Number) *Number {
	return NumMul(z, a, b)
}

// NumDiv sets z to the quotient a/b (spec §4.A): a is shifted left by
// cdigit(a)-cdigit(b)+precision/digitRatio+2 BASE-digits (at least 1) and
// divided by b, and the shift is folded into z's exponent. Fails
// DivideByZero if b is zero.
func NumDiv(z, a, b *Number, c *Context) (Condition, error) {
	if b.IsZero() {
		return DivideByZero, DivideByZero.GoError()
	}
	if a.IsZero() {
		z.mant, z.sign, z.exp = nil, 1, 0
		return 0, nil
	}

	wantDigits := int(a.CDigit()) - int(b.CDigit()) + int(float64(c.Precision)/c.digitRatio) + 2
	if wantDigits < 1 {
		wantDigits = 1
	}

	// Scale the dividend up by wantDigits extra BASE-digits so long division
	// yields that many quotient digits, then fold the scaling into exp.
	scaled := word.ShiftWords(a.mant, wantDigits)
	q, _ := word.QuoRem(scaled, b.mant)
	z.mant = q
	z.exp = a.exp - b.exp - int32(wantDigits)
	z.sign = a.sign * b.sign
	z.canon()
	return 0, nil
}

// NumDivX is NumDiv's internal-radix fast path (spec §4.A's div_x), used
// when both operands are already known to be in internal radix.
func NumDivX(z, a, b *Number, precision int32, digitRatio float64) (Condition, error) {
	c := &Context{Precision: precision, digitRatio: digitRatio}
	return NumDiv(z, a, b, c)
}

// NumRem sets z to sign(a)*(|a| - |b|*floor(|a|/|b|)), the truncated
// remainder carrying the dividend's sign (spec §4.A). The magnitudes are
// aligned by exponent and reduced with one long division.
func NumRem(z, a, b *Number) (Condition, error) {
	if b.IsZero() {
		return DivideByZero, DivideByZero.GoError()
	}
	au, bu := alignedMantissas(a, b)
	_, r := word.QuoRem(au, bu)
	z.mant = r
	z.exp = a.exp
	if b.exp < a.exp {
		z.exp = b.exp
	}
	z.sign = a.sign
	z.canon()
	return 0, nil
}

// NumGCD returns the greatest common divisor of a and b via the Euclidean
// algorithm (repeated Rem). Restricted to integer Numbers (Exp()==0 on both
// operands), per spec §9's resolution of num_gcd's applicability.
func NumGCD(a, b *Number) (*Number, Condition, error) {
	if a.exp != 0 || b.exp != 0 {
		return nil, Domain, errors.New(Domain.String())
	}
	x, y := a.Dup(), b.Dup()
	x.sign, y.sign = 1, 1
	for !y.IsZero() {
		r := NewNumber()
		if _, err := NumRem(r, x, y); err != nil {
			setLastError(err.Error())
			return nil, Internal, err
		}
		x, y = y, r
	}
	return x, 0, nil
}

// NumTrim strips trailing zero digits from the mantissa while incrementing
// exp, and leading zero digits while decrementing cdigit (spec §4.A). It is
// called aggressively after non-trivial ops to bound storage; for Number,
// word.Trim already keeps no leading zero words, so NumTrim's job is to push
// out *trailing* (low-order) zero words into the exponent.
func NumTrim(n *Number) *Number {
	i := 0
	for i < len(n.mant) && n.mant[i] == 0 {
		i++
	}
	if i > 0 {
		n.mant = n.mant[i:]
		n.exp += int32(i)
	}
	return n.canon()
}

// NumPowI32 sets z = n^k via binary exponentiation (square-and-multiply),
// averaging 1.5*log2(k) multiplications. Negative k is rejected here; the
// Rational layer handles the reciprocal case. 0^0 is defined as 1 (spec §9
// Open Questions).
func NumPowI32(z, n *Number, k int32) (Condition, error) {
	if k < 0 {
		return Domain, Domain.GoError()
	}
	if k == 0 {
		z.mant, z.sign, z.exp = word.FromUint64(1), 1, 0
		return 0, nil
	}
	result := NumberFromInt32(1)
	base := n.Dup()
	for k > 0 {
		if k&1 == 1 {
			result = NumMul(NewNumber(), result, base)
		}
		k >>= 1
		if k > 0 {
			base = NumMul(NewNumber(), base, base)
		}
	}
	z.Set(result)
	return 0, nil
}

// NumFactorial returns k! for k >= 0; 0! = 1. Negative k fails Domain (spec
// §4.A).
func NumFactorial(k int32) (*Number, Condition, error) {
	if k < 0 {
		return nil, Domain, Domain.GoError()
	}
	if k <= 1 {
		return NumberFromInt32(1), 0, nil
	}
	return NumProduct(1, k)
}

// NumProduct computes the inclusive product of consecutive integers
// start..stop, using divide-and-conquer halving of pairs to keep operand
// sizes balanced (spec §4.A).
func NumProduct(start, stop int32) (*Number, Condition, error) {
	if start > stop {
		return NumberFromInt32(1), 0, nil
	}
	if start == stop {
		return NumberFromInt32(start), 0, nil
	}
	mid := start + (stop-start)/2
	lo, _, err := NumProduct(start, mid)
	if err != nil {
		setLastError(err.Error())
		return nil, Internal, err
	}
	hi, _, err := NumProduct(mid+1, stop)
	if err != nil {
		setLastError(err.Error())
		return nil, Internal, err
	}
	return NumMul(NewNumber(), lo, hi), 0, nil
}
