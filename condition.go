package ratpack

import (
	"github.com/pkg/errors"
)

// Condition holds the flags an operation raised. It maps 1:1 onto the
// original C ABI's stable numeric error codes, so a Condition value is safe
// to compare against the documented hex constants directly.
type Condition uint32

// Error codes, stable and part of the package's "ABI" in the sense that
// callers may switch on them directly; numeric values follow the original
// ratpack.h header.
const (
	// DivideByZero is raised when an operation would require dividing by
	// zero to complete.
	DivideByZero Condition = 0x80000000
	// Domain is raised when an input is outside the domain of the function.
	Domain Condition = 0x80000001
	// Indefinite is raised when a result is mathematically undefined (0/0,
	// policy-dependent 0^0 cases, etc).
	Indefinite Condition = 0x80000002
	// PosInfinity is raised when the exact result is +Inf.
	PosInfinity Condition = 0x80000003
	// NegInfinity is raised when the exact result is -Inf.
	NegInfinity Condition = 0x80000004
	// InvalidRange is raised when an input is in the function's domain but
	// outside the range this package can compute an answer for (including a
	// ToU64 conversion that doesn't fit).
	InvalidRange Condition = 0x80000006
	// OutOfMemory is raised when an allocation failed while computing.
	OutOfMemory Condition = 0x80000007
	// Overflow is raised when the bounded conversion ToI32 can't represent
	// the result.
	Overflow Condition = 0x80000008
	// NoResult is raised when an operation has no representable result
	// (e.g. a non-converging series).
	NoResult Condition = 0x80000009
	// Internal is raised for internal failures not otherwise categorized;
	// detail is available via LastError.
	Internal Condition = 0x8000000A
)

var conditionNames = map[Condition]string{
	DivideByZero: "divide by zero",
	Domain:       "domain violation",
	Indefinite:   "indefinite result",
	PosInfinity:  "positive infinity",
	NegInfinity:  "negative infinity",
	InvalidRange: "invalid range",
	OutOfMemory:  "out of memory",
	Overflow:     "overflow",
	NoResult:     "no result",
	Internal:     "internal failure",
}

// Any reports whether r is a failure condition (the zero value means
// success).
func (r Condition) Any() bool { return r != 0 }

// String renders r using the same wording as the original header's doc
// comments.
func (r Condition) String() string {
	if s, ok := conditionNames[r]; ok {
		return s
	}
	return "unknown condition"
}

// GoError converts r into an error, or nil if r is the zero value (success).
// Deterministic input errors (DivideByZero, Domain, Overflow, ...) carry a
// message derived from r alone; Internal additionally consults the last-error
// slot (§4.H) for textual detail.
func (r Condition) GoError() error {
	if r == 0 {
		return nil
	}
	if r == Internal {
		if detail := LastError(); detail != "" {
			return errors.Errorf("%s: %s", r, detail)
		}
	}
	return errors.New(r.String())
}
