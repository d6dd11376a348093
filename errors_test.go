package ratpack

import "testing"

func TestSetLastErrorFeedsGoError(t *testing.T) {
	setLastError("boom")
	if got := LastError(); got != "boom" {
		t.Fatalf("LastError() = %q, want %q", got, "boom")
	}
	err := Internal.GoError()
	want := "internal failure: boom"
	if err.Error() != want {
		t.Errorf("Internal.GoError() = %q, want %q", err.Error(), want)
	}
}

func TestNumGCDRejectsFractionalOperand(t *testing.T) {
	// NumGCD is restricted to integer Numbers; feeding it a fractional
	// operand fails Domain before the Euclidean loop even starts, so this
	// only confirms the non-integer guard still short-circuits cleanly.
	a := NumberFromInt32(1)
	a.exp = -1
	if _, _, err := NumGCD(a, NumberFromInt32(2)); err == nil {
		t.Fatal("NumGCD with fractional operand: expected Domain error")
	}
}
