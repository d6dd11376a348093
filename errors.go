package ratpack

import "sync"

// lastError is the process-wide last-error slot described in spec §4.H and
// §6: on a failure that originates from the numeric core, an implementation
// may stash additional textual detail here, readable via LastError. It is
// written only by failures reported as Internal (NumGCD, NumProduct); other
// failures and successes leave it unchanged.
//
// The package is single-threaded by design (spec §5) and this slot is not
// part of any hot path, so the mutex is defensive rather than load-bearing:
// it documents the hazard for a caller who shares a Context across
// goroutines anyway, at effectively no cost on the intended single-threaded
// path.
var lastErrorMu sync.Mutex
var lastErrorDetail string

// setLastError records detail for the next LastError call.
func setLastError(detail string) {
	lastErrorMu.Lock()
	lastErrorDetail = detail
	lastErrorMu.Unlock()
}

// LastError returns the textual detail recorded by the most recent Internal
// failure, or "" if none has been recorded. Non-Internal failures do not
// clear it.
func LastError() string {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastErrorDetail
}

// Errors chains Number/Rational operations and records the first failure
// encountered, skipping subsequent calls once set. Designed for call sites
// that perform many operations in a row with a single error check at the
// end, mirroring apd.ErrDecimal.
type Errors struct {
	Cond Condition
	Err  error
}

func (e *Errors) fail(c Condition) {
	if e.Err != nil {
		return
	}
	if err := c.GoError(); err != nil {
		e.Cond = c
		e.Err = err
	}
}

// Add performs z.Add(x, y) and records any error.
func (e *Errors) Add(c *Context, z, x, y *Rational) {
	if e.Err != nil {
		return
	}
	cond, err := c.Add(z, x, y)
	_ = cond
	if err != nil {
		e.Cond, e.Err = cond, err
	}
}

// Sub performs z.Sub(x, y) and records any error.
func (e *Errors) Sub(c *Context, z, x, y *Rational) {
	if e.Err != nil {
		return
	}
	cond, err := c.Sub(z, x, y)
	if err != nil {
		e.Cond, e.Err = cond, err
	}
}

// Mul performs z.Mul(x, y) and records any error.
func (e *Errors) Mul(c *Context, z, x, y *Rational) {
	if e.Err != nil {
		return
	}
	cond, err := c.Mul(z, x, y)
	if err != nil {
		e.Cond, e.Err = cond, err
	}
}

// Quo performs z.Div(x, y) and records any error.
func (e *Errors) Quo(c *Context, z, x, y *Rational) {
	if e.Err != nil {
		return
	}
	cond, err := c.Div(z, x, y)
	if err != nil {
		e.Cond, e.Err = cond, err
	}
}
