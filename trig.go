package ratpack

// Angle selects the unit an angle argument or result is expressed in (spec
// §4.G's *_angle variants: radians is the library's native unit, degrees
// and gradians are convenience conversions via the context's cached pi
// fractions).
type Angle int

const (
	Radians Angle = iota
	Degrees
	Gradians
)

// toRadians converts x (in unit a) to radians.
func (c *Context) toRadians(z, x *Rational, a Angle) (Condition, error) {
	switch a {
	case Radians:
		z.Set(x)
		return 0, nil
	case Degrees:
		return c.Mul(z, x, c.PiOver180)
	case Gradians:
		return c.Mul(z, x, c.PiOver200)
	}
	return Domain, Domain.GoError()
}

// fromRadians converts x (in radians) to unit a.
func (c *Context) fromRadians(z, x *Rational, a Angle) (Condition, error) {
	switch a {
	case Radians:
		z.Set(x)
		return 0, nil
	case Degrees:
		return c.Div(z, x, c.PiOver180)
	case Gradians:
		return c.Div(z, x, c.PiOver200)
	}
	return Domain, Domain.GoError()
}

// scale2pi reduces x (radians) into (-pi, pi], the range the sin/cos series
// converge fastest and most accurately over (spec §4.G's scale2pi argument
// reduction).
func (c *Context) scale2pi(z, x *Rational) (Condition, error) {
	twoPi := new(Rational)
	c.Mul(twoPi, NewRationalInt(2), c.Pi)

	reduced := x.Dup()
	q := new(Rational)
	c.Div(q, reduced, twoPi)
	qi, _, _ := ratIntFracSplit(q)
	shift := new(Rational)
	c.Mul(shift, &Rational{P: qi, Q: NumberFromInt32(1)}, twoPi)
	c.Sub(reduced, reduced, shift)

	negPi := c.Pi.Dup()
	negPi.Neg(negPi)
	if c.Gt(reduced, c.Pi) {
		c.Sub(reduced, reduced, twoPi)
	} else if c.Le(reduced, negPi) {
		c.Add(reduced, reduced, twoPi)
	}
	z.Set(reduced)
	return 0, nil
}

// Sin sets z = sin(x), x in the given angle unit, via its Taylor series
// after scale2pi argument reduction (spec §4.G).
func (c *Context) Sin(z, x *Rational, a Angle) (Condition, error) {
	rad := new(Rational)
	if cond, err := c.toRadians(rad, x, a); err != nil {
		return cond, err
	}
	reduced := new(Rational)
	c.scale2pi(reduced, rad)

	xSquared := new(Rational)
	c.Mul(xSquared, reduced, reduced)

	sum := reduced.Dup()
	term := reduced.Dup()
	l := newLoop(c)
	for k := int32(1); ; k++ {
		tmp := new(Rational)
		c.Mul(tmp, term, xSquared)
		denom := NewRationalInt((2*k + 1) * (2 * k))
		next := new(Rational)
		c.Div(next, tmp, denom)
		next.Neg(next)
		term = next
		c.Add(sum, sum, term)
		if stop, cond := l.doneRational(term); stop {
			if cond != 0 {
				return cond, cond.GoError()
			}
			break
		}
	}
	z.Set(sum)
	return 0, nil
}

// Cos sets z = cos(x) via its Taylor series after scale2pi reduction.
func (c *Context) Cos(z, x *Rational, a Angle) (Condition, error) {
	rad := new(Rational)
	if cond, err := c.toRadians(rad, x, a); err != nil {
		return cond, err
	}
	reduced := new(Rational)
	c.scale2pi(reduced, rad)

	xSquared := new(Rational)
	c.Mul(xSquared, reduced, reduced)

	sum := NewRationalInt(1)
	term := NewRationalInt(1)
	l := newLoop(c)
	for k := int32(1); ; k++ {
		tmp := new(Rational)
		c.Mul(tmp, term, xSquared)
		denom := NewRationalInt((2*k - 1) * (2 * k))
		next := new(Rational)
		c.Div(next, tmp, denom)
		next.Neg(next)
		term = next
		c.Add(sum, sum, term)
		if stop, cond := l.doneRational(term); stop {
			if cond != 0 {
				return cond, cond.GoError()
			}
			break
		}
	}
	z.Set(sum)
	return 0, nil
}

// Tan sets z = sin(x)/cos(x). Fails DivideByZero at the series' pole.
func (c *Context) Tan(z, x *Rational, a Angle) (Condition, error) {
	s, cs := new(Rational), new(Rational)
	if cond, err := c.Sin(s, x, a); err != nil {
		return cond, err
	}
	if cond, err := c.Cos(cs, x, a); err != nil {
		return cond, err
	}
	if cs.IsZero() {
		return DivideByZero, DivideByZero.GoError()
	}
	return c.Div(z, s, cs)
}

// Atan sets z = atan(x), with the result in the given angle unit. For
// |x| > 1 it uses the reciprocal identity atan(x) = pi/2 - atan(1/x)
// (x > 0) or -pi/2 - atan(1/x) (x < 0), keeping the series argument within
// [-1, 1] where it converges well; |x| = 1 gives ±pi/4 directly (spec §4.G).
func (c *Context) Atan(z, x *Rational, a Angle) (Condition, error) {
	one := NewRationalInt(1)
	abs := x.Dup()
	if abs.Sign() < 0 {
		abs.Neg(abs)
	}

	// atan(1) = pi/4: the Taylor series at |x|=1 is only conditionally
	// convergent (harmonic-like term decay), so this is resolved directly
	// from the cached pi rather than summed.
	if c.Equ(abs, one) {
		quarter := new(Rational)
		c.Div(quarter, c.PiOver2, NewRationalInt(2))
		if x.Sign() < 0 {
			quarter.Neg(quarter)
		}
		return c.fromRadians(z, quarter, a)
	}

	var rad *Rational
	if c.Gt(abs, one) {
		recip := new(Rational)
		c.Div(recip, one, x)
		series, cond, err := atanSeries(c, recip)
		if err != nil {
			return cond, err
		}
		half := new(Rational)
		if x.Sign() > 0 {
			c.Sub(half, c.PiOver2, series)
		} else {
			negPiOver2 := c.PiOver2.Dup()
			negPiOver2.Neg(negPiOver2)
			c.Sub(half, negPiOver2, series)
		}
		rad = half
	} else {
		series, cond, err := atanSeries(c, x)
		if err != nil {
			return cond, err
		}
		rad = series
	}
	return c.fromRadians(z, rad, a)
}

// atanSeries evaluates atan(y) = sum_{k>=0} (-1)^k y^(2k+1)/(2k+1), for
// |y| <= 1.
func atanSeries(c *Context, y *Rational) (*Rational, Condition, error) {
	ySquared := new(Rational)
	c.Mul(ySquared, y, y)

	sum := NewRationalInt(0)
	power := y.Dup()
	l := newLoop(c)
	for k := int32(0); ; k++ {
		denom := NewRationalInt(2*k + 1)
		term := new(Rational)
		c.Div(term, power, denom)
		if k%2 == 1 {
			c.Sub(sum, sum, term)
		} else {
			c.Add(sum, sum, term)
		}
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

// Asin sets z = asin(x) = atan(x / sqrt(1-x^2)), x in [-1, 1] (spec §4.G).
func (c *Context) Asin(z, x *Rational, a Angle) (Condition, error) {
	one := NewRationalInt(1)
	negOne := NewRationalInt(-1)
	if c.Gt(x, one) || c.Lt(x, negOne) {
		return Domain, Domain.GoError()
	}
	if c.Equ(x, one) {
		return c.fromRadians(z, c.PiOver2, a)
	}
	if c.Equ(x, negOne) {
		neg := c.PiOver2.Dup()
		neg.Neg(neg)
		return c.fromRadians(z, neg, a)
	}

	xSquared := new(Rational)
	c.Mul(xSquared, x, x)
	oneMinusX2 := new(Rational)
	c.Sub(oneMinusX2, one, xSquared)
	denom := new(Rational)
	if cond, err := c.Sqrt(denom, oneMinusX2); err != nil {
		return cond, err
	}
	ratio := new(Rational)
	c.Div(ratio, x, denom)
	return c.Atan(z, ratio, a)
}

// Acos sets z = acos(x) = pi/2 - asin(x) (spec §4.G).
func (c *Context) Acos(z, x *Rational, a Angle) (Condition, error) {
	asin := new(Rational)
	if cond, err := c.Asin(asin, x, a); err != nil {
		return cond, err
	}
	var halfTurn *Rational
	switch a {
	case Degrees:
		halfTurn, _, _ = NewRationalFrac(90, 1)
	case Gradians:
		halfTurn, _, _ = NewRationalFrac(100, 1)
	default:
		halfTurn = c.PiOver2
	}
	return c.Sub(z, halfTurn, asin)
}
