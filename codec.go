package ratpack

import (
	"math"
	"strings"

	"github.com/calcpack/ratpack/internal/word"
)

// digitGlyphs are the digit characters for radices 2 through 62: 0-9, then
// A-Z, then a-z. Radices 63 and 64 are rejected with Domain (spec §9 Open
// Questions): beyond 62 there is no further unambiguous single-character
// glyph available without reusing punctuation, so this package draws the
// line there rather than inventing one.
const digitGlyphs = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxRadix is the largest radix this package can parse or format.
const MaxRadix = 62

func digitValue(ch byte) (uint32, bool) {
	i := strings.IndexByte(digitGlyphs, ch)
	if i < 0 {
		return 0, false
	}
	return uint32(i), true
}

func digitGlyph(v uint32) byte {
	return digitGlyphs[v]
}

// parseSignedRadixInt parses an optional sign followed by one or more digits
// of the given radix, returning the decoded value and whether parsing
// succeeded.
func parseSignedRadixInt(s string, radix uint32) (int32, bool) {
	if s == "" {
		return 0, false
	}
	sign := int32(1)
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	var v int64
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= radix {
			return 0, false
		}
		v = v*int64(radix) + int64(d)
		if v > 1<<31-1 {
			return 0, false
		}
	}
	return sign * int32(v), true
}

// formatSignedRadixInt renders v as a signed integer in the given radix,
// using the same digit glyphs ParseRational/FormatNumber use elsewhere.
func formatSignedRadixInt(v int32, radix uint32) string {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = uint64(-int64(v))
	}
	s := formatIntWords(word.FromUint64(mag), radix)
	if neg {
		return "-" + s
	}
	return s
}

// ParseRational parses s as a signed radix-c.Radix number with an optional
// fractional point and an optional exponent, written as '^' followed by a
// signed integer in the same user radix as the mantissa (spec.md §4.E,
// "parse number"), returning the exact Rational it denotes. Unlike a
// base-10-only exponent marker, '^' cannot collide with a mantissa digit
// glyph at any supported radix.
func ParseRational(c *Context, s string) (*Rational, Condition, error) {
	if c.Radix > MaxRadix {
		return nil, Domain, Domain.GoError()
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, Domain, Domain.GoError()
	}

	sign := int32(1)
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	mantissa, exp10 := s, int32(0)
	if i := strings.IndexByte(s, '^'); i >= 0 {
		var expPart string
		mantissa, expPart = s[:i], s[i+1:]
		e, ok := parseSignedRadixInt(expPart, c.Radix)
		if !ok {
			return nil, Domain, Domain.GoError()
		}
		exp10 = e
	}

	intPart, fracPart := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, Domain, Domain.GoError()
	}

	acc := NewNumber()
	radixNum := NumberFromUint32(c.Radix)
	for _, ch := range []byte(intPart + fracPart) {
		d, ok := digitValue(ch)
		if !ok || d >= c.Radix {
			return nil, Domain, Domain.GoError()
		}
		acc = NumMul(NewNumber(), acc, radixNum)
		acc = NumAdd(NewNumber(), acc, NumberFromUint32(d))
	}
	if sign < 0 {
		acc.Neg(acc)
	}

	denomExp := int32(len(fracPart)) - exp10
	r := &Rational{P: acc, Q: NumberFromInt32(1)}
	if denomExp > 0 {
		denom := NewNumber()
		if _, err := NumPowI32(denom, radixNum, denomExp); err != nil {
			return nil, Domain, Domain.GoError()
		}
		r.Q = denom
	} else if denomExp < 0 {
		scale := NewNumber()
		if _, err := NumPowI32(scale, radixNum, -denomExp); err != nil {
			return nil, Domain, Domain.GoError()
		}
		r.P = NumMul(NewNumber(), r.P, scale)
	}
	normalizeSign(r)
	c.Trim(r)
	return r, 0, nil
}

// FormatStyle selects how FormatNumber/FormatRational render a value (spec
// §4.E's "format number" table).
type FormatStyle int

const (
	// FormatFloat renders the natural (non-exponential) form, unless the
	// value's magnitude would need more than fracDigits leading or trailing
	// zeros to do so, in which case it is promoted to FormatScientific.
	FormatFloat FormatStyle = iota
	// FormatScientific renders one digit before the radix point, followed by
	// '^' and a signed exponent.
	FormatScientific
	// FormatEngineering is FormatScientific with the exponent forced to a
	// multiple of 3.
	FormatEngineering
)

// magnitudeWords splits n's mantissa into integer and fractional BASE-word
// vectors at n's radix-point exponent.
func magnitudeWords(n *Number) (intWords, fracWords word.Vector) {
	if n.exp >= 0 {
		return word.ShiftWords(n.mant, int(n.exp)), nil
	}
	return word.SplitWords(n.mant, int(-n.exp))
}

// digitStrings renders n's magnitude as separate integer and fractional
// radix-digit strings, with fracPart limited to fracDigits digits.
func digitStrings(c *Context, n *Number, fracDigits int) (intPart, fracPart string) {
	if n.IsZero() {
		return "0", ""
	}
	intWords, fracWords := magnitudeWords(n)
	intPart = formatIntWords(intWords, c.Radix)
	if len(fracWords) > 0 && fracDigits > 0 {
		fracPart = formatFracWords(fracWords, c.Radix, fracDigits)
	}
	return intPart, fracPart
}

// orderOfMagnitude estimates log_radix(|n|) from the bit length of n's
// leading mantissa word, without doing any radix conversion. It is not
// exact — it only bounds how far pointExponent needs to search for the
// first significant digit of a value smaller than 1, since that search
// can't assume termination in a radix that doesn't evenly divide BASE.
func orderOfMagnitude(n *Number, radix uint32) float64 {
	top := n.mant[len(n.mant)-1]
	bits := 0
	for v := top; v > 0; v >>= 1 {
		bits++
	}
	log2Val := float64((len(n.mant)-1)*32+bits) + float64(n.exp)*32
	return log2Val * math.Ln2 / math.Log(float64(radix))
}

// pointExponent locates n's most significant radix digit and returns its
// exponent (len(intPart)-1 for |n|>=1, or the negative position of the
// first nonzero fractional digit for |n|<1), together with enough of the
// significant-digit string (starting at that digit) to render fracDigits
// digits of mantissa. found is false only when |n|<1 and no nonzero digit
// turned up within the search window sized by orderOfMagnitude plus a
// safety margin — treated as "zero at this precision" by callers.
func pointExponent(c *Context, n *Number, fracDigits int) (exp int, digits string, found bool) {
	intWords, fracWords := magnitudeWords(n)
	intPart := formatIntWords(intWords, c.Radix)
	if intPart != "0" {
		_, fracPart := digitStrings(c, n, fracDigits)
		return len(intPart) - 1, intPart + fracPart, true
	}
	if len(fracWords) == 0 {
		return 0, "", false
	}
	guess := int(math.Ceil(-orderOfMagnitude(n, c.Radix)))
	if guess < 0 {
		guess = 0
	}
	window := guess + fracDigits + 8
	wide := formatFracWords(fracWords, c.Radix, window)
	for i := 0; i < len(wide); i++ {
		if wide[i] != '0' {
			return -(i + 1), wide[i:], true
		}
	}
	return 0, "", false
}

func formatFloatStyle(sign int32, intPart, fracPart string) string {
	var buf strings.Builder
	if sign < 0 {
		buf.WriteByte('-')
	}
	buf.WriteString(intPart)
	if fracPart != "" {
		buf.WriteByte('.')
		buf.WriteString(fracPart)
	}
	return buf.String()
}

// formatExponential renders sign*digits (digits starting at the radix-point
// exponent pointExp, already trimmed to at most maxSig significant digits)
// with leadDigits digits before the radix point, followed by '^' and the
// remaining exponent (spec §4.E's scientific/engineering styles).
func formatExponential(sign int32, digits string, pointExp int, radix uint32, leadDigits, maxSig int) string {
	if maxSig > 0 && len(digits) > maxSig {
		digits = digits[:maxSig]
	}
	for len(digits) < leadDigits {
		digits += "0"
	}
	mantissa, rest := digits[:leadDigits], strings.TrimRight(digits[leadDigits:], "0")
	exp := pointExp - (leadDigits - 1)

	var buf strings.Builder
	if sign < 0 {
		buf.WriteByte('-')
	}
	buf.WriteString(mantissa)
	if rest != "" {
		buf.WriteByte('.')
		buf.WriteString(rest)
	}
	buf.WriteByte('^')
	buf.WriteString(formatSignedRadixInt(int32(exp), radix))
	return buf.String()
}

// FormatNumber renders n in radix c.Radix per the requested style, with up
// to fracDigits digits of precision (spec §4.E's "format number"). Float
// style promotes itself to scientific once the exponent would otherwise need
// more than fracDigits leading or trailing zeros. Fails Domain if c.Radix
// exceeds MaxRadix.
func FormatNumber(c *Context, n *Number, style FormatStyle, fracDigits int) (string, Condition, error) {
	if c.Radix > MaxRadix {
		return "", Domain, Domain.GoError()
	}
	if n.IsZero() {
		return "0", 0, nil
	}

	pointExp, sigDigits, found := pointExponent(c, n, fracDigits)

	effective := style
	if style == FormatFloat && fracDigits > 0 && found && (pointExp >= fracDigits || pointExp <= -fracDigits) {
		effective = FormatScientific
	}

	switch effective {
	case FormatScientific:
		return formatExponential(n.sign, sigDigits, pointExp, c.Radix, 1, fracDigits), 0, nil
	case FormatEngineering:
		shift := ((pointExp % 3) + 3) % 3
		return formatExponential(n.sign, sigDigits, pointExp, c.Radix, shift+1, fracDigits), 0, nil
	default:
		intPart, fracPart := digitStrings(c, n, fracDigits)
		return formatFloatStyle(n.sign, intPart, fracPart), 0, nil
	}
}

func formatIntWords(v word.Vector, radix uint32) string {
	v = word.Trim(v.Clone())
	if len(v) == 0 {
		return "0"
	}
	var digits []byte
	r := Vector1(radix)
	for !v.Zero() {
		q, rem := word.QuoRem(v, r)
		d, _ := word.Uint64(rem)
		digits = append(digits, digitGlyph(uint32(d)))
		v = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// formatFracWords converts a base-word fixed-point fraction (value =
// fracWords / Base^len(fracWords)) to up to n radix digits, by repeatedly
// multiplying by radix and peeling off the integer overflow as the next
// digit: the schoolbook fraction-to-base algorithm.
func formatFracWords(fracWords word.Vector, radix uint32, n int) string {
	k := len(fracWords)
	remaining := fracWords.Clone()
	var digits []byte
	for i := 0; i < n && !remaining.Zero(); i++ {
		prod := word.Mul(remaining, Vector1(radix))
		hi, lo := word.SplitWords(prod, k)
		d, _ := word.Uint64(hi)
		digits = append(digits, digitGlyph(uint32(d)))
		remaining = lo
	}
	return string(digits)
}

// Vector1 returns a single-word Vector holding w.
func Vector1(w uint32) word.Vector { return word.Vector{w} }

// FormatRational renders x at the context's working precision and the
// requested style: P/Q is flattened to a decimal Number first (spec §9's
// ratpack_rat_flat), then rendered with FormatNumber.
func FormatRational(c *Context, x *Rational, style FormatStyle) (string, Condition, error) {
	flat := new(Rational)
	if cond, err := c.Flat(flat, x); err != nil {
		return "", cond, err
	}
	fracDigits := int(c.Precision)
	return FormatNumber(c, flat.P, style, fracDigits)
}
