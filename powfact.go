package ratpack

// PowI sets z = x^k for an integer exponent k (spec §4.A's pow, lifted to
// Rational): negative k takes the reciprocal, 0^0 is defined as 1 (spec §9
// Open Questions).
func (c *Context) PowI(z, x *Rational, k int32) (Condition, error) {
	if k == 0 {
		z.P, z.Q = NumberFromInt32(1), NumberFromInt32(1)
		return 0, nil
	}
	neg := k < 0
	if neg {
		k = -k
	}
	p, cond, err := numPowChecked(x.P, k)
	if err != nil {
		return cond, err
	}
	q, cond, err := numPowChecked(x.Q, k)
	if err != nil {
		return cond, err
	}
	if neg {
		p, q = q, p
	}
	if q.IsZero() {
		return DivideByZero, DivideByZero.GoError()
	}
	z.P, z.Q = p, q
	normalizeSign(z)
	c.Trim(z)
	return 0, nil
}

func numPowChecked(n *Number, k int32) (*Number, Condition, error) {
	z := NewNumber()
	cond, err := NumPowI32(z, n, k)
	return z, cond, err
}

// Sqrt sets z to the nonnegative square root of x via Newton's method
// (x_{k+1} = (x_k + a/x_k)/2), iterated to the context's working precision.
// Fails Domain for negative x (spec §4.G).
func (c *Context) Sqrt(z, x *Rational) (Condition, error) {
	return c.Root(z, x, 2)
}

// Root sets z to the real nth root of x (n >= 1) via Newton's method on
// f(t) = t^n - x: t_{k+1} = t_k - (t_k^n - x)/(n*t_k^(n-1)), equivalently
// t_{k+1} = ((n-1)*t_k + x/t_k^(n-1))/n. Fails Domain for negative x when n
// is even, or for n <= 0 (spec §9 supplemented ops, ratpack_rat_root).
func (c *Context) Root(z, x *Rational, n int32) (Condition, error) {
	if n <= 0 {
		return Domain, Domain.GoError()
	}
	if x.IsZero() {
		z.P, z.Q = NumberFromInt32(0), NumberFromInt32(1)
		return 0, nil
	}
	if x.Sign() < 0 {
		if n%2 == 0 {
			return Domain, Domain.GoError()
		}
	}

	guess := newtonSeed(c, x, n)
	nR := NewRationalInt(n)
	nMinus1 := NewRationalInt(n - 1)

	l := newLoop(c)
	for {
		tPow := new(Rational)
		if cond, err := c.PowI(tPow, guess, n-1); err != nil {
			return cond, err
		}
		frac := new(Rational)
		if cond, err := c.Div(frac, x, tPow); err != nil {
			return cond, err
		}
		sum := new(Rational)
		c.Mul(sum, nMinus1, guess)
		c.Add(sum, sum, frac)
		next := new(Rational)
		if cond, err := c.Div(next, sum, nR); err != nil {
			return cond, err
		}

		delta := new(Rational)
		c.Sub(delta, next, guess)
		guess = next

		if stop, cond := l.doneRational(delta); stop {
			if cond != 0 {
				return cond, cond.GoError()
			}
			break
		}
	}
	z.Set(guess)
	return 0, nil
}

// newtonSeed produces a same-sign, right-order-of-magnitude starting guess
// for Root's iteration: a single power of the radix. Newton's method
// converges quadratically from any same-sign seed, so the seed only needs
// to be in the right ballpark, not accurate.
func newtonSeed(c *Context, x *Rational, n int32) *Rational {
	digits := int32(x.LogRadix(c)/float64(n)) + 1
	if digits < 1 {
		digits = 1
	}
	radixNum := NewRationalInt(int32(c.Radix))
	scaled := new(Rational)
	c.PowI(scaled, radixNum, digits)
	if x.Sign() < 0 {
		scaled.Neg(scaled)
	}
	return scaled
}

// PowComp sets z = x^(p/q): x raised to a rational exponent, computed as
// Root(x^p, q) (spec §9 supplemented ops, ratpack_rat_pow_comp).
func (c *Context) PowComp(z, x *Rational, p, q int32) (Condition, error) {
	if q == 0 {
		return Domain, Domain.GoError()
	}
	if q < 0 {
		p, q = -p, -q
	}
	powed := new(Rational)
	if cond, err := c.PowI(powed, x, p); err != nil {
		return cond, err
	}
	return c.Root(z, powed, q)
}

// Pow sets z = a^b for rational a and b (spec.md §4.G's pow table row): an
// integral b that fits int32 goes straight through PowI. Otherwise, if b has
// an integer numerator and denominator (p/q, both fitting int32), the
// perfect-root path is tried first — (a^p)^(1/q) via PowComp, verified by
// raising the trial back to the q-th power and comparing it to a^p within
// the context's working precision. The result is exact when the root is an
// integer; any other verified root is the Newton approximation from Root.
// If that doesn't verify (or b isn't of
// that shape), a>0 falls back to the transcendental exp(b·ln a); a<0
// without a verified perfect root, or a==0 with b<=0, fails Domain.
func (c *Context) Pow(z, a, b *Rational) (Condition, error) {
	if isIntegerRational(b) {
		if k, _, err := b.P.ToI32(); err == nil {
			return c.PowI(z, a, k)
		}
	}

	if p, _, errP := b.P.ToI32(); errP == nil {
		if q, _, errQ := b.Q.ToI32(); errQ == nil && q != 0 {
			if c.tryPowNumDen(z, a, p, q) {
				return 0, nil
			}
		}
	}

	if a.Sign() > 0 {
		return c.powExpLn(z, a, b)
	}
	if a.IsZero() {
		if b.Sign() > 0 {
			z.P, z.Q = NumberFromInt32(0), NumberFromInt32(1)
			return 0, nil
		}
		return DivideByZero, DivideByZero.GoError()
	}
	return Domain, Domain.GoError()
}

// tryPowNumDen attempts a^(p/q) = (a^p)^(1/q) (spec §9's pow_num_den). If
// the trial root rounded to the nearest integer, raised to the q-th power,
// equals a^p exactly, that integer is the result. Otherwise the trial root
// itself is the result when raising it back to the q-th power matches a^p
// within the context's working precision. It reports
// false, with z untouched, when the root doesn't verify or can't be
// computed at all (e.g. a<0 with q even), so the caller can fall through to
// the transcendental path.
func (c *Context) tryPowNumDen(z, a *Rational, p, q int32) bool {
	trial := new(Rational)
	if _, err := c.PowComp(trial, a, p, q); err != nil {
		return false
	}
	check := new(Rational)
	if _, err := c.PowI(check, trial, q); err != nil {
		return false
	}
	target := new(Rational)
	if _, err := c.PowI(target, a, p); err != nil {
		return false
	}
	half, _, _ := NewRationalFrac(1, 2)
	if trial.Sign() < 0 {
		half.Neg(half)
	}
	rounded := new(Rational)
	c.Add(rounded, trial, half)
	c.Int(rounded, rounded)
	exact := new(Rational)
	if _, err := c.PowI(exact, rounded, q); err == nil && c.Equ(exact, target) {
		z.Set(rounded)
		return true
	}
	diff := new(Rational)
	c.Sub(diff, check, target)
	if diff.IsZero() || diff.LogRadix(c) < -float64(c.Precision)+1 {
		z.Set(trial)
		return true
	}
	return false
}

// powExpLn sets z = exp(b*ln(a)) for a > 0 (spec.md §4.G's pow fallback).
func (c *Context) powExpLn(z, a, b *Rational) (Condition, error) {
	lnA := new(Rational)
	if cond, err := c.Log(lnA, a); err != nil {
		return cond, err
	}
	exponent := new(Rational)
	c.Mul(exponent, b, lnA)
	return c.Exp(z, exponent)
}

// Factorial sets z = n! (spec.md §4.G's rat_fact). Nonnegative integers use
// the exact product NumFactorial; negative integers fail Domain (spec §9
// Open Questions — this package picks Domain over the original's
// POSINFINITY/INDEFINITE ambiguity). Any other real n uses the Gamma-series
// expansion documented in the original header's ratpack_rat_fact doc
// comment (gammaFactorial).
func (c *Context) Factorial(z, n *Rational) (Condition, error) {
	if isIntegerRational(n) {
		if n.Sign() < 0 {
			return Domain, Domain.GoError()
		}
		k, cond, err := n.P.ToI32()
		if err != nil {
			return cond, err
		}
		result, cond, err := NumFactorial(k)
		if err != nil {
			return cond, err
		}
		z.P, z.Q = result, NumberFromInt32(1)
		return 0, nil
	}
	return c.gammaFactorial(z, n)
}

// gammaFactorial evaluates n! for non-integer real n by reducing n into the
// small positive range gammaSeries targets, via the Gamma recurrence
// n! = n*(n-1)! (brings n >= 3/2 down) and n! = (n+1)!/(n+1) (brings n <= 0
// up). Neither direction can divide by zero: n is non-integer here, so the
// shifted values it passes through are never exactly 0 or -1.
func (c *Context) gammaFactorial(z, n *Rational) (Condition, error) {
	one := NewRationalInt(1)
	zero := NewRationalInt(0)
	threeHalves, _, _ := NewRationalFrac(3, 2)

	reduced := n.Dup()
	scale := NewRationalInt(1)

	for c.Ge(reduced, threeHalves) {
		next := new(Rational)
		c.Mul(next, scale, reduced)
		scale = next
		c.Sub(reduced, reduced, one)
	}
	for c.Le(reduced, zero) {
		nextReduced := new(Rational)
		c.Add(nextReduced, reduced, one)
		next := new(Rational)
		if cond, err := c.Div(next, scale, nextReduced); err != nil {
			return cond, err
		}
		scale = next
		reduced = nextReduced
	}

	series, cond, err := gammaSeries(c, reduced)
	if err != nil {
		return cond, err
	}
	// gammaSeries yields Gamma(reduced); reduced! = reduced * Gamma(reduced).
	c.Mul(scale, scale, reduced)
	return c.Mul(z, scale, series)
}

// gammaSeries evaluates Gamma(n) = (n-1)! for n in the small positive range
// gammaFactorial reduces to, via the series documented in the original header's
// ratpack_rat_fact doc comment:
//
//	A^n * sum_{j=0}^{jmax} (A^(2j)/(2j)!) * (1/(n+2j) - A/((n+2j+1)(2j+1)))
//
// where A = ln(Radix^precision/n) + 1, refined once by A += n*ln(A).
func gammaSeries(c *Context, n *Rational) (*Rational, Condition, error) {
	one := NewRationalInt(1)

	lnRadix := new(Rational)
	if cond, err := c.Log(lnRadix, NewRationalInt(int32(c.Radix))); err != nil {
		return nil, cond, err
	}
	lnN := new(Rational)
	if cond, err := c.Log(lnN, n); err != nil {
		return nil, cond, err
	}
	a := new(Rational)
	c.Mul(a, NewRationalInt(c.Precision), lnRadix)
	c.Sub(a, a, lnN)
	c.Add(a, a, one)

	lnA1 := new(Rational)
	if cond, err := c.Log(lnA1, a); err != nil {
		return nil, cond, err
	}
	nLnA1 := new(Rational)
	c.Mul(nLnA1, n, lnA1)
	c.Add(a, a, nLnA1)

	lnA := new(Rational)
	if cond, err := c.Log(lnA, a); err != nil {
		return nil, cond, err
	}
	nLnA := new(Rational)
	c.Mul(nLnA, n, lnA)
	aToN := new(Rational)
	if cond, err := c.Exp(aToN, nLnA); err != nil {
		return nil, cond, err
	}

	aSquared := new(Rational)
	c.Mul(aSquared, a, a)

	sum := NewRationalInt(0)
	aPower := NewRationalInt(1)
	factTwoJ := NewRationalInt(1)
	l := newLoop(c)
	for j := int32(0); ; j++ {
		nPlus2j := new(Rational)
		c.Add(nPlus2j, n, NewRationalInt(2*j))
		invTerm := new(Rational)
		if cond, err := c.Div(invTerm, one, nPlus2j); err != nil {
			return nil, cond, err
		}
		nPlus2jPlus1 := new(Rational)
		c.Add(nPlus2jPlus1, nPlus2j, one)
		denom2 := new(Rational)
		c.Mul(denom2, nPlus2jPlus1, NewRationalInt(2*j+1))
		aOverDenom2 := new(Rational)
		if cond, err := c.Div(aOverDenom2, a, denom2); err != nil {
			return nil, cond, err
		}
		bracket := new(Rational)
		c.Sub(bracket, invTerm, aOverDenom2)

		coeff := new(Rational)
		if cond, err := c.Div(coeff, aPower, factTwoJ); err != nil {
			return nil, cond, err
		}
		term := new(Rational)
		c.Mul(term, coeff, bracket)
		c.Add(sum, sum, term)

		if stop, cond := l.doneRational(term); stop {
			if cond != 0 {
				return nil, cond, cond.GoError()
			}
			break
		}

		nextAPower := new(Rational)
		c.Mul(nextAPower, aPower, aSquared)
		aPower = nextAPower
		nextFact := new(Rational)
		c.Mul(nextFact, factTwoJ, NewRationalInt((2*j+1)*(2*j+2)))
		factTwoJ = nextFact
	}

	result := new(Rational)
	c.Mul(result, aToN, sum)
	return result, 0, nil
}
