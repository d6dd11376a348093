// Package ratpack implements arbitrary-precision rational arithmetic for a
// calculator: exact integer and fractional values, radix-aware parsing and
// formatting (bases 2 through 62), and Taylor-series transcendental
// functions, all threaded through an explicit *Context carrying the working
// radix, precision, and trap mask (see Context), rather than the mutable
// global tuning state the package's C ancestor used.
//
// Number is the sign-magnitude integer-like building block; Rational pairs
// two Numbers as a P/Q fraction and is what most callers use directly.
// Arithmetic on a bare Number is exposed as package-level functions
// (NumAdd, NumMul, ...); Rational arithmetic is exposed as Context methods
// (Context.Add, Context.Mul, ...) since radix and precision bound how far a
// Rational op trims its operands.
//
// Failures are reported as a Condition bitflag alongside a Go error from
// Condition.GoError, mirroring the original library's error taxonomy so
// callers that need the stable numeric codes can switch on Condition
// directly.
package ratpack
