package ratpack

import "math"

// loop drives a Taylor-series (or similar incremental) computation to
// convergence at the context's working precision, grounded on
// cockroachdb/apd's loop.go: it tracks the previous term's magnitude and
// stops once either the term has shrunk below the target precision or two
// consecutive terms grow (stall detection), reporting NoResult in the latter
// case so a caller can fall back or report the non-convergence rather than
// spin. The magnitude is LogRadix, which moves in whole internal-radix
// digits, so a term whose magnitude is unchanged does not count as a stall.
type loop struct {
	c         *Context
	prevLog   float64
	stalls    int
	maxStalls int
	iteration int
	maxIter   int
}

// newLoop returns a loop bounded to iterate at most maxIter times (a safety
// backstop; well-behaved series converge in O(precision) iterations well
// under this).
func newLoop(c *Context) *loop {
	return &loop{c: c, prevLog: math.Inf(1), maxStalls: 2, maxIter: 100000}
}

// doneRational reports whether the loop should stop, given the Rational
// most recently added into (or used to correct) a running result. It
// returns (stop, Condition): Condition is nonzero only on non-convergence
// (NoResult).
func (l *loop) doneRational(term *Rational) (bool, Condition) {
	if term.IsZero() {
		return l.doneValue(-float64(l.c.Precision) - 1)
	}
	return l.doneValue(term.LogRadix(l.c))
}

// doneValue is the shared stopping rule: converged once the term's
// log-radix magnitude drops below the working precision; stalled (NoResult)
// if two consecutive terms grow before that happens. The small tolerance
// keeps floating-point noise in LogRadix from reading as growth.
func (l *loop) doneValue(logTerm float64) (bool, Condition) {
	l.iteration++
	if logTerm <= -float64(l.c.Precision) {
		return true, 0
	}
	if logTerm > l.prevLog+1e-9 {
		l.stalls++
		if l.stalls >= l.maxStalls {
			return true, NoResult
		}
	} else {
		l.stalls = 0
	}
	l.prevLog = logTerm
	if l.iteration >= l.maxIter {
		return true, NoResult
	}
	return false, 0
}
