package ratpack

import "testing"

func TestNewContextComputesPiInRange(t *testing.T) {
	c := NewContext(10, 20)
	three, four := NewRationalInt(3), NewRationalInt(4)
	if !c.Gt(c.Pi, three) || !c.Lt(c.Pi, four) {
		t.Fatalf("Pi should be strictly between 3 and 4")
	}
}

func TestContextPiOverFamily(t *testing.T) {
	c := NewContext(10, 20)
	doubled := new(Rational)
	c.Mul(doubled, c.PiOver2, NewRationalInt(2))
	if !c.Equ(doubled, c.Pi) {
		t.Errorf("2*PiOver2 should equal Pi")
	}

	scaled180 := new(Rational)
	c.Mul(scaled180, c.PiOver180, NewRationalInt(180))
	if !c.Equ(scaled180, c.Pi) {
		t.Errorf("180*PiOver180 should equal Pi")
	}
}

func TestAllowBitwiseRadix(t *testing.T) {
	c := NewContext(10, 20)
	for _, r := range []uint32{2, 8, 16} {
		if !c.AllowBitwiseRadix(r) {
			t.Errorf("AllowBitwiseRadix(%d) = false, want true", r)
		}
	}
	for _, r := range []uint32{3, 10, 36} {
		if c.AllowBitwiseRadix(r) {
			t.Errorf("AllowBitwiseRadix(%d) = true, want false", r)
		}
	}
}

func TestWithPrecisionAndRadix(t *testing.T) {
	c := NewContext(10, 20)
	c2 := c.WithPrecision(40)
	if c2.Precision != 40 || c2.Radix != 10 {
		t.Errorf("WithPrecision: got radix=%d precision=%d, want radix=10 precision=40", c2.Radix, c2.Precision)
	}
	c3 := c.WithRadix(16)
	if c3.Radix != 16 || c3.Precision != 20 {
		t.Errorf("WithRadix: got radix=%d precision=%d, want radix=16 precision=20", c3.Radix, c3.Precision)
	}
}
