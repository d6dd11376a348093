package ratpack

// Rational is the pair of Numbers (P, Q) representing sign(P)*|P| /
// (sign(Q)*|Q|). A Rational exclusively owns its P and Q; Dup performs a deep
// copy. Q is never zero-valued on a well-formed Rational: division by zero is
// a failure mode returned from constructors/ops, never an observable state.
type Rational struct {
	P, Q *Number
}

// NewRationalFromNumbers builds p/q, taking ownership of p and q. Fails
// DivideByZero if q is zero.
func NewRationalFromNumbers(p, q *Number) (*Rational, Condition, error) {
	if q.IsZero() {
		return nil, DivideByZero, DivideByZero.GoError()
	}
	return &Rational{P: p, Q: q}, 0, nil
}

// NewRationalInt builds the rational p/1.
func NewRationalInt(p int32) *Rational {
	return &Rational{P: NumberFromInt32(p), Q: NumberFromInt32(1)}
}

// NewRationalFrac builds the rational p/q as small integers; q must be
// nonzero.
func NewRationalFrac(p, q int32) (*Rational, Condition, error) {
	return NewRationalFromNumbers(NumberFromInt32(p), NumberFromInt32(q))
}

// Sign returns sign(P)*sign(Q): the canonical observable sign of the
// rational (spec §3).
func (r *Rational) Sign() int32 {
	if r.P.IsZero() {
		return 1
	}
	return r.P.Sign() * r.Q.Sign()
}

// IsZero reports whether r's value is exactly zero.
func (r *Rational) IsZero() bool { return r.P.IsZero() }

// Dup returns a deep copy of r.
func (r *Rational) Dup() *Rational {
	return &Rational{P: r.P.Dup(), Q: r.Q.Dup()}
}

// Set sets r to x and returns r.
func (r *Rational) Set(x *Rational) *Rational {
	r.P = x.P.Dup()
	r.Q = x.Q.Dup()
	return r
}

// Neg sets r to -x and returns r.
func (r *Rational) Neg(x *Rational) *Rational {
	r.P = x.P.Dup()
	r.P.Neg(r.P)
	r.Q = x.Q.Dup()
	return r
}

// LogRadix returns num_log_radix(P) - num_log_radix(Q) (spec §9
// supplemented ops, ratpack_rat_log_radix).
func (r *Rational) LogRadix(c *Context) float64 {
	return r.P.LogRadix(c) - r.Q.LogRadix(c)
}
