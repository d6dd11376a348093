package ratpack

// Exp sets z = e^x via its Taylor series, with argument reduction: x is
// halved until |x| <= 1 (bounding the term count the series needs), the
// series is summed at that reduced argument, and the result is squared back
// up the same number of halvings (spec §4.G).
func (c *Context) Exp(z, x *Rational) (Condition, error) {
	m := 0
	reduced := x.Dup()
	one := NewRationalInt(1)
	two := NewRationalInt(2)
	for {
		abs := reduced.Dup()
		if abs.Sign() < 0 {
			abs.Neg(abs)
		}
		if !c.Gt(abs, one) {
			break
		}
		half := new(Rational)
		c.Div(half, reduced, two)
		reduced = half
		m++
	}

	sum := NewRationalInt(1)
	term := NewRationalInt(1)
	l := newLoop(c)
	for n := int32(1); ; n++ {
		tmp := new(Rational)
		c.Mul(tmp, term, reduced)
		next := new(Rational)
		c.Div(next, tmp, NewRationalInt(n))
		term = next
		c.Add(sum, sum, term)
		if stop, cond := l.doneRational(term); stop {
			if cond != 0 {
				return cond, cond.GoError()
			}
			break
		}
	}

	for i := 0; i < m; i++ {
		squared := new(Rational)
		c.Mul(squared, sum, sum)
		sum = squared
	}
	z.Set(sum)
	return 0, nil
}

// lnSeries evaluates atanh(y) = sum_{k>=0} y^(2k+1)/(2k+1), the series
// Log's argument-reduced form and Ln2 both build on.
func lnSeries(c *Context, y *Rational) (*Rational, Condition, error) {
	ySquared := new(Rational)
	c.Mul(ySquared, y, y)

	sum := NewRationalInt(0)
	power := y.Dup()
	l := newLoop(c)
	for k := int32(0); ; k++ {
		denom := NewRationalInt(2*k + 1)
		term := new(Rational)
		c.Div(term, power, denom)
		c.Add(sum, sum, term)

		next := new(Rational)
		c.Mul(next, power, ySquared)
		power = next

		if stop, cond := l.doneRational(term); stop {
			if cond != 0 {
				return nil, cond, cond.GoError()
			}
			break
		}
	}
	return sum, 0, nil
}

// ln2 returns ln(2) = 2*atanh(1/3), used by Log's power-of-two argument
// reduction.
func ln2(c *Context) (*Rational, Condition, error) {
	y, _, _ := NewRationalFrac(1, 3)
	a, cond, err := lnSeries(c, y)
	if err != nil {
		return nil, cond, err
	}
	r := new(Rational)
	c.Mul(r, NewRationalInt(2), a)
	return r, 0, nil
}

// Log sets z = ln(x) (natural log). x is reduced to [1, 2) by tracking how
// many times it must be halved or doubled, ln is taken there via the atanh
// identity ln(t) = 2*atanh((t-1)/(t+1)), and the reduction's k*ln(2) is
// added back (spec §4.G). Fails Domain for x <= 0.
func (c *Context) Log(z, x *Rational) (Condition, error) {
	if x.IsZero() || x.Sign() < 0 {
		return Domain, Domain.GoError()
	}
	reduced := x.Dup()
	one, two := NewRationalInt(1), NewRationalInt(2)
	k := 0
	for c.Ge(reduced, two) {
		half := new(Rational)
		c.Div(half, reduced, two)
		reduced = half
		k++
	}
	for c.Lt(reduced, one) {
		doubled := new(Rational)
		c.Mul(doubled, reduced, two)
		reduced = doubled
		k--
	}

	num := new(Rational)
	c.Sub(num, reduced, one)
	den := new(Rational)
	c.Add(den, reduced, one)
	y := new(Rational)
	c.Div(y, num, den)

	a, cond, err := lnSeries(c, y)
	if err != nil {
		return cond, err
	}
	twoA := new(Rational)
	c.Mul(twoA, two, a)

	l2, cond, err := ln2(c)
	if err != nil {
		return cond, err
	}
	kTerm := new(Rational)
	c.Mul(kTerm, NewRationalInt(int32(k)), l2)
	return c.Add(z, twoA, kTerm)
}

// Log10 sets z = log10(x) = ln(x)/ln(10) (spec §4.G).
func (c *Context) Log10(z, x *Rational) (Condition, error) {
	lnx := new(Rational)
	if cond, err := c.Log(lnx, x); err != nil {
		return cond, err
	}
	ln10 := new(Rational)
	if cond, err := c.Log(ln10, NewRationalInt(10)); err != nil {
		return cond, err
	}
	return c.Div(z, lnx, ln10)
}
