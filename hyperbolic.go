package ratpack

// Sinh sets z = sinh(x) = (e^x - e^-x)/2 (spec §4.G).
func (c *Context) Sinh(z, x *Rational) (Condition, error) {
	ex, enx := new(Rational), new(Rational)
	if cond, err := c.Exp(ex, x); err != nil {
		return cond, err
	}
	negX := x.Dup()
	negX.Neg(negX)
	if cond, err := c.Exp(enx, negX); err != nil {
		return cond, err
	}
	diff := new(Rational)
	c.Sub(diff, ex, enx)
	return c.Div(z, diff, NewRationalInt(2))
}

// Cosh sets z = cosh(x) = (e^x + e^-x)/2.
func (c *Context) Cosh(z, x *Rational) (Condition, error) {
	ex, enx := new(Rational), new(Rational)
	if cond, err := c.Exp(ex, x); err != nil {
		return cond, err
	}
	negX := x.Dup()
	negX.Neg(negX)
	if cond, err := c.Exp(enx, negX); err != nil {
		return cond, err
	}
	sum := new(Rational)
	c.Add(sum, ex, enx)
	return c.Div(z, sum, NewRationalInt(2))
}

// Tanh sets z = sinh(x)/cosh(x).
func (c *Context) Tanh(z, x *Rational) (Condition, error) {
	s, cs := new(Rational), new(Rational)
	if cond, err := c.Sinh(s, x); err != nil {
		return cond, err
	}
	if cond, err := c.Cosh(cs, x); err != nil {
		return cond, err
	}
	return c.Div(z, s, cs)
}

// Asinh sets z = asinh(x) = ln(x + sqrt(x^2+1)) (spec §4.G).
func (c *Context) Asinh(z, x *Rational) (Condition, error) {
	xSquared := new(Rational)
	c.Mul(xSquared, x, x)
	plus1 := new(Rational)
	c.Add(plus1, xSquared, NewRationalInt(1))
	root := new(Rational)
	if cond, err := c.Sqrt(root, plus1); err != nil {
		return cond, err
	}
	sum := new(Rational)
	c.Add(sum, x, root)
	return c.Log(z, sum)
}

// Acosh sets z = acosh(x) = ln(x + sqrt(x^2-1)), x >= 1 (spec §4.G). Fails
// Domain for x < 1.
func (c *Context) Acosh(z, x *Rational) (Condition, error) {
	if c.Lt(x, NewRationalInt(1)) {
		return Domain, Domain.GoError()
	}
	xSquared := new(Rational)
	c.Mul(xSquared, x, x)
	minus1 := new(Rational)
	c.Sub(minus1, xSquared, NewRationalInt(1))
	root := new(Rational)
	if cond, err := c.Sqrt(root, minus1); err != nil {
		return cond, err
	}
	sum := new(Rational)
	c.Add(sum, x, root)
	return c.Log(z, sum)
}

// Atanh sets z = atanh(x) = ln((1+x)/(1-x))/2, |x| < 1 (spec §4.G). Fails
// Domain for |x| >= 1.
func (c *Context) Atanh(z, x *Rational) (Condition, error) {
	one := NewRationalInt(1)
	abs := x.Dup()
	if abs.Sign() < 0 {
		abs.Neg(abs)
	}
	if c.Ge(abs, one) {
		return Domain, Domain.GoError()
	}
	num := new(Rational)
	c.Add(num, one, x)
	den := new(Rational)
	c.Sub(den, one, x)
	ratio := new(Rational)
	c.Div(ratio, num, den)
	ln := new(Rational)
	if cond, err := c.Log(ln, ratio); err != nil {
		return cond, err
	}
	return c.Div(z, ln, NewRationalInt(2))
}
