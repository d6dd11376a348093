package ratpack

import "testing"

func TestNumberFromInt32RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 42, -42, 1 << 30, -(1 << 30)}
	for _, in := range cases {
		n := NumberFromInt32(in)
		got, cond, err := n.ToI32()
		if err != nil {
			t.Fatalf("ToI32(%d): unexpected error %v (%s)", in, err, cond)
		}
		if got != in {
			t.Errorf("ToI32(NumberFromInt32(%d)) = %d, want %d", in, got, in)
		}
	}
}

func TestNumberCmp(t *testing.T) {
	tests := []struct {
		a, b int32
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, -1},
		{-1, 1, -1},
		{1, -1, 1},
		{-5, -5, 0},
		{-5, -3, -1},
	}
	for _, tt := range tests {
		a, b := NumberFromInt32(tt.a), NumberFromInt32(tt.b)
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNumberNegAndCanon(t *testing.T) {
	n := NumberFromInt32(5)
	n.Neg(n)
	if n.Sign() != -1 {
		t.Fatalf("Neg(5).Sign() = %d, want -1", n.Sign())
	}
	zero := NewNumber()
	zero.Neg(zero)
	if zero.Sign() != 1 {
		t.Errorf("Neg(0).Sign() = %d, want 1 (canonical zero sign)", zero.Sign())
	}
}

func TestNumberIsZero(t *testing.T) {
	if !NewNumber().IsZero() {
		t.Error("NewNumber() should be zero")
	}
	if NumberFromInt32(1).IsZero() {
		t.Error("NumberFromInt32(1) should not be zero")
	}
}
