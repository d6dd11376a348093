package word

import (
	"fmt"
	"math"
	"testing"
)

func TestAddSub(t *testing.T) {
	tests := []struct {
		a, b uint64
	}{
		{0, 0},
		{1, 1},
		{math.MaxUint32, 1},
		{math.MaxUint32, math.MaxUint32},
		{1 << 40, 1 << 40},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d+%d", tc.a, tc.b), func(t *testing.T) {
			a, b := FromUint64(tc.a), FromUint64(tc.b)
			sum := Add(a, b)
			got, ok := Uint64(sum)
			if !ok || got != tc.a+tc.b {
				t.Fatalf("Add(%d,%d) = %v, want %d", tc.a, tc.b, sum, tc.a+tc.b)
			}
			diff := Sub(sum, a)
			got2, ok2 := Uint64(diff)
			if !ok2 || got2 != tc.b {
				t.Fatalf("Sub back = %v, want %d", diff, tc.b)
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct{ a, b uint64 }{
		{0, 5},
		{1, 1},
		{12345, 67890},
		{math.MaxUint32, math.MaxUint32},
		{1 << 32, 1 << 32},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d*%d", tc.a, tc.b), func(t *testing.T) {
			a, b := FromUint64(tc.a), FromUint64(tc.b)
			p := Mul(a, b)
			want := bigMul(tc.a, tc.b)
			if p.String() != want.String() {
				t.Fatalf("Mul(%d,%d) = %v, want %v", tc.a, tc.b, p, want)
			}
		})
	}
}

// bigMul multiplies two uint64 values into a Vector without overflow, used
// only to build expected values for TestMul.
func bigMul(a, b uint64) Vector {
	av := FromUint64(a)
	result := Vector{}
	bi := FromUint64(b)
	for i, d := range bi {
		partial := mulWord(av, d)
		partial = ShiftLeft(partial, i*32)
		result = Add(result, partial)
	}
	return result
}

func TestQuoRem(t *testing.T) {
	tests := []struct{ a, b uint64 }{
		{10, 3},
		{100, 7},
		{0, 5},
		{5, 5},
		{math.MaxUint64, 3},
		{1 << 40, 1 << 20},
		{1<<63 + 7, 1<<32 - 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d/%d", tc.a, tc.b), func(t *testing.T) {
			a, b := FromUint64(tc.a), FromUint64(tc.b)
			q, r := QuoRem(a, b)
			qi, _ := Uint64(q)
			ri, _ := Uint64(r)
			if qi != tc.a/tc.b || ri != tc.a%tc.b {
				t.Fatalf("QuoRem(%d,%d) = %d rem %d, want %d rem %d", tc.a, tc.b, qi, ri, tc.a/tc.b, tc.a%tc.b)
			}
		})
	}
}

func TestQuoRemMultiWord(t *testing.T) {
	// (2^64 + 5) / (2^32 + 1) exercises the multi-word normalize/estimate path.
	dividend := Vector{5, 0, 1} // 5 + 1*2^64
	divisor := Vector{1, 1}     // 2^32 + 1
	q, r := QuoRem(dividend, divisor)
	prod := Mul(q, divisor)
	sum := Add(prod, r)
	if Cmp(sum, dividend) != 0 {
		t.Fatalf("q*b+r = %v, want %v (q=%v r=%v)", sum, dividend, q, r)
	}
	if Cmp(r, divisor) >= 0 {
		t.Fatalf("remainder %v >= divisor %v", r, divisor)
	}
}

func TestShift(t *testing.T) {
	v := FromUint64(1)
	got := ShiftLeft(v, 40)
	want, _ := Uint64(got)
	if want != 1<<40 {
		t.Fatalf("ShiftLeft(1,40) = %d, want %d", want, uint64(1)<<40)
	}
	back := ShiftRight(got, 40)
	x, _ := Uint64(back)
	if x != 1 {
		t.Fatalf("ShiftRight back = %d, want 1", x)
	}
}

func TestCmp(t *testing.T) {
	a := FromUint64(100)
	b := FromUint64(200)
	if Cmp(a, b) >= 0 {
		t.Fatal("expected a < b")
	}
	if Cmp(b, a) <= 0 {
		t.Fatal("expected b > a")
	}
	if Cmp(a, a) != 0 {
		t.Fatal("expected equal")
	}
}

func TestTrim(t *testing.T) {
	v := Vector{1, 2, 0, 0}
	got := Trim(v)
	if len(got) != 2 {
		t.Fatalf("Trim(%v) = %v, want length 2", v, got)
	}
}

func TestBitwise(t *testing.T) {
	a, b := FromUint64(0b1100), FromUint64(0b1010)
	if got, _ := Uint64(And(a, b)); got != 0b1000 {
		t.Fatalf("And = %b, want %b", got, 0b1000)
	}
	if got, _ := Uint64(Or(a, b)); got != 0b1110 {
		t.Fatalf("Or = %b, want %b", got, 0b1110)
	}
	if got, _ := Uint64(Xor(a, b)); got != 0b0110 {
		t.Fatalf("Xor = %b, want %b", got, 0b0110)
	}
}

func TestShiftWordsAndSplitWords(t *testing.T) {
	v := FromUint64(42)
	shifted := ShiftWords(v, 2)
	if len(shifted) != 3 || shifted[0] != 0 || shifted[1] != 0 || shifted[2] != 42 {
		t.Fatalf("ShiftWords(42, 2) = %v, want [0 0 42]", shifted)
	}

	hi, lo := SplitWords(shifted, 2)
	if Cmp(hi, v) != 0 {
		t.Fatalf("SplitWords hi = %v, want %v", hi, v)
	}
	if !lo.Zero() {
		t.Fatalf("SplitWords lo = %v, want zero", lo)
	}
}
