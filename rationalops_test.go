package ratpack

import "testing"

func ratEqualInts(t *testing.T, r *Rational, p, q int32) {
	t.Helper()
	pi, _, err := r.P.ToI32()
	if err != nil {
		t.Fatalf("P.ToI32: %v", err)
	}
	qi, _, err := r.Q.ToI32()
	if err != nil {
		t.Fatalf("Q.ToI32: %v", err)
	}
	if pi != p || qi != q {
		t.Errorf("= %d/%d, want %d/%d", pi, qi, p, q)
	}
}

func TestRationalAddSubMulDiv(t *testing.T) {
	c := NewContext(10, 30)
	half, _, _ := NewRationalFrac(1, 2)
	third, _, _ := NewRationalFrac(1, 3)

	sum := new(Rational)
	c.Add(sum, half, third)
	ratEqualInts(t, sum, 5, 6)

	diff := new(Rational)
	c.Sub(diff, half, third)
	ratEqualInts(t, diff, 1, 6)

	prod := new(Rational)
	c.Mul(prod, half, third)
	ratEqualInts(t, prod, 1, 6)

	quo := new(Rational)
	c.Div(quo, half, third)
	ratEqualInts(t, quo, 3, 2)
}

func TestRationalDivByZero(t *testing.T) {
	c := NewContext(10, 30)
	zero := NewRationalInt(0)
	one := NewRationalInt(1)
	z := new(Rational)
	if _, err := c.Div(z, one, zero); err == nil {
		t.Fatal("Div by zero: expected error")
	}
}

func TestRationalCompare(t *testing.T) {
	c := NewContext(10, 30)
	a, _, _ := NewRationalFrac(1, 2)
	b, _, _ := NewRationalFrac(2, 3)
	if !c.Lt(a, b) {
		t.Error("1/2 should be < 2/3")
	}
	if !c.Gt(b, a) {
		t.Error("2/3 should be > 1/2")
	}
	if !c.Equ(a, a) {
		t.Error("1/2 should equal itself")
	}
	if !c.Inbetween(a, NewRationalInt(0), NewRationalInt(1)) {
		t.Error("1/2 should be inbetween 0 and 1")
	}
}

func TestRationalIntFrac(t *testing.T) {
	c := NewContext(10, 30)
	x, _, _ := NewRationalFrac(7, 2) // 3.5
	ip, fp := new(Rational), new(Rational)
	c.Int(ip, x)
	c.Frac(fp, x)
	ratEqualInts(t, ip, 3, 1)
	ratEqualInts(t, fp, 1, 2)

	sum := new(Rational)
	c.Add(sum, ip, fp)
	if !c.Equ(sum, x) {
		t.Errorf("Int+Frac = %v, want %v", sum, x)
	}
}

func TestRationalNegativeIntTruncatesTowardZero(t *testing.T) {
	c := NewContext(10, 30)
	x, _, _ := NewRationalFrac(-7, 2) // -3.5
	ip := new(Rational)
	c.Int(ip, x)
	ratEqualInts(t, ip, -3, 1)
}

func TestRationalRemAndMod(t *testing.T) {
	c := NewContext(10, 30)
	a := NewRationalInt(-7)
	b := NewRationalInt(3)

	rem := new(Rational)
	c.Rem(rem, a, b)
	ratEqualInts(t, rem, -1, 1) // truncated remainder carries dividend's sign

	mod := new(Rational)
	c.Mod(mod, a, b)
	ratEqualInts(t, mod, 2, 1) // floored remainder carries divisor's sign
}

func TestRationalGCD(t *testing.T) {
	c := NewContext(10, 30)
	a, b := NewRationalInt(12), NewRationalInt(18)
	z := new(Rational)
	if _, err := c.GCD(z, a, b); err != nil {
		t.Fatalf("GCD: unexpected error %v", err)
	}
	ratEqualInts(t, z, 6, 1)
}

func TestRationalBitwiseRequiresEligibleRadix(t *testing.T) {
	c := NewContext(10, 30)
	a, b := NewRationalInt(6), NewRationalInt(3)
	z := new(Rational)
	if _, err := c.And(z, a, b); err == nil {
		t.Fatal("And at radix 10: expected Domain error")
	}

	c2 := NewContext(16, 30)
	if _, err := c2.And(z, a, b); err != nil {
		t.Fatalf("And at radix 16: unexpected error %v", err)
	}
	ratEqualInts(t, z, 2, 1) // 6 & 3 = 2
}

func TestRationalShift(t *testing.T) {
	c := NewContext(2, 30)
	x := NewRationalInt(1)
	z := new(Rational)
	if _, err := c.Lsh(z, x, 4); err != nil {
		t.Fatalf("Lsh: unexpected error %v", err)
	}
	ratEqualInts(t, z, 16, 1)

	if _, err := c.Rsh(z, z, 4); err != nil {
		t.Fatalf("Rsh: unexpected error %v", err)
	}
	ratEqualInts(t, z, 1, 1)
}
