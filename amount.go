package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch is returned when an operation requires amounts
	// denominated in the same currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidAmount is returned when a value cannot be converted to an
	// exact decimal amount, including values whose integer part leaves no
	// room for the amount places of the currency.
	ErrInvalidAmount = errors.New("invalid amount")

	errAmountOverflow = fmt.Errorf("%w: amount overflow", ErrInvalidAmount)
)

// Amount type represents a monetary amount: an exact decimal value paired
// with a [Currency].
// Its zero value corresponds to "XXX 0", where [XXX] indicates that
// no currency is assigned, and uses the [Default] factory.
//
// Amounts are immutable. Every operation returns a new amount constructed by
// the [Factory] of its receiver, which resolves the storage and display
// precision for the result's currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
//
// Use [Amount.Equal] rather than == to compare amounts: == also compares
// the scale of the value and the factory.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	l10n  int8            // localization override: 0 unset, 1 on, -1 off
	value decimal.Decimal // monetary value
	f     *Factory        // nil means Default()
}

// newAmountUnsafe creates a new amount without checking that the value could
// be padded to the amount places of the currency.
// Values in currencies with zero amount places are truncated toward zero.
func (f *Factory) newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	if places := f.AmountPlaces(c); places == 0 {
		d = d.Trunc(0)
	} else {
		d = d.Pad(places)
	}
	return Amount{curr: c, value: d, f: f}
}

// newAmountSafe creates a new amount and checks the scale.
func (f *Factory) newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	a := f.newAmountUnsafe(c, d)
	if a.Scale() < f.AmountPlaces(c) {
		return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
	}
	return a, nil
}

// factory returns the factory of the amount.
func (a Amount) factory() *Factory {
	if a.f == nil {
		return Default()
	}
	return a.f
}

// New converts a value of any supported type to an amount.
// The value can be a [decimal.Decimal], an [Amount] (only its value is used),
// any signed or unsigned integer, a float32 or float64, or a decimal string.
// Floats are converted via their shortest round-trip text representation,
// so New("USD", 0.1) is exactly 0.1.
// An empty currency selects [XXX].
//
// New returns an error if:
//   - the currency code is not known ([ErrUnknownCurrency]);
//   - the value is of an unsupported type, is malformed, or is a special
//     float value such as NaN or Inf ([ErrInvalidAmount]);
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Factory.AmountPlaces]) digits.
func (f *Factory) New(curr string, amount any) (Amount, error) {
	// Currency
	c, err := parseAmountCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := toDecimal(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %T: %w", amount, err)
	}
	// Amount
	return f.newAmountSafe(c, d)
}

// New is like [Factory.New] using the [Default] factory.
func New(curr string, amount any) (Amount, error) {
	return Default().New(curr, amount)
}

// parseAmountCurr parses the currency of an amount constructor.
// An empty code selects [XXX].
func parseAmountCurr(curr string) (Currency, error) {
	if curr == "" {
		return XXX, nil
	}
	c, err := ParseCurr(curr)
	if err != nil {
		return XXX, fmt.Errorf("parsing currency: %w", err)
	}
	return c, nil
}

// toDecimal converts the supported numeric types to a decimal.
func toDecimal(v any) (decimal.Decimal, error) {
	var s string
	switch v := v.(type) {
	case decimal.Decimal:
		return v, nil
	case Amount:
		return v.Decimal(), nil
	case int:
		return decimal.New(int64(v), 0)
	case int8:
		return decimal.New(int64(v), 0)
	case int16:
		return decimal.New(int64(v), 0)
	case int32:
		return decimal.New(int64(v), 0)
	case int64:
		return decimal.New(v, 0)
	case uint:
		s = strconv.FormatUint(uint64(v), 10)
	case uint8:
		s = strconv.FormatUint(uint64(v), 10)
	case uint16:
		s = strconv.FormatUint(uint64(v), 10)
	case uint32:
		s = strconv.FormatUint(uint64(v), 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidAmount, v)
		}
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidAmount, v)
		}
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		s = v
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: type %T is not supported", ErrInvalidAmount, v)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return d, nil
}

// NewAmount builds the amount coef / 10^scale, padded to the amount places
// of the currency.
//
//	NewAmount("USD", 1999, 2) // USD 19.99
//
// It fails with [ErrUnknownCurrency] for an unknown code and with
// [ErrInvalidAmount] for a scale outside [0, decimal.MaxScale] or a value that
// does not fit once padded: with 2 amount places at most 17 integer digits
// remain.
func (f *Factory) NewAmount(curr string, coef int64, scale int) (Amount, error) {
	// Currency
	c, err := parseAmountCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w: %w", ErrInvalidAmount, err)
	}
	// Amount
	a, err := f.newAmountSafe(c, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// NewAmount is like [Factory.NewAmount] using the [Default] factory.
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	return Default().NewAmount(curr, coef, scale)
}

// MustNewAmount is like [NewAmount] but panics on error.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal pairs an already parsed currency with a decimal value.
// It fails with [ErrInvalidAmount] when the value cannot be padded to the
// amount places of the currency.
func (f *Factory) NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return f.newAmountSafe(curr, amount)
}

// NewAmountFromDecimal is like [Factory.NewAmountFromDecimal] using the [Default] factory.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return Default().NewAmountFromDecimal(curr, amount)
}

// NewAmountFromInt64 builds the amount whole + frac / 10^scale, the layout of
// the units and nanos fields of google.type.Money.
// The parts must share a sign and frac / 10^scale must lie within (-1, 1);
// otherwise [ErrInvalidAmount] is returned.
func (f *Factory) NewAmountFromInt64(curr string, whole, frac int64, scale int) (Amount, error) {
	// Currency
	c, err := parseAmountCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := decimal.NewFromInt64(whole, frac, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting integers: %w: %w", ErrInvalidAmount, err)
	}
	// Amount
	return f.newAmountSafe(c, d)
}

// NewAmountFromInt64 is like [Factory.NewAmountFromInt64] using the [Default] factory.
func NewAmountFromInt64(curr string, whole, frac int64, scale int) (Amount, error) {
	return Default().NewAmountFromInt64(curr, whole, frac, scale)
}

// NewAmountFromMinorUnits builds an amount from a count of minor units such
// as cents. The unit size is the ISO 4217 scale of the currency, not its
// amount places, so NewAmountFromMinorUnits("JPY", 5) is JPY 5 and
// NewAmountFromMinorUnits("BHD", 5) is BHD 0.005.
func (f *Factory) NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	// Currency
	c, err := parseAmountCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	// Amount
	return f.newAmountSafe(c, d)
}

// NewAmountFromMinorUnits is like [Factory.NewAmountFromMinorUnits] using the [Default] factory.
func NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	return Default().NewAmountFromMinorUnits(curr, units)
}

// NewAmountFromFloat64 builds an amount from the shortest decimal text that
// round-trips to the float, so 0.1 becomes exactly 0.1 rather than the binary
// approximation. NaN and infinities fail with [ErrInvalidAmount].
func (f *Factory) NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	// Float
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidAmount, amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	// Amount
	a, err := f.ParseAmount(curr, s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// NewAmountFromFloat64 is like [Factory.NewAmountFromFloat64] using the [Default] factory.
func NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	return Default().NewAmountFromFloat64(curr, amount)
}

// ParseAmount builds an amount from a currency code and a decimal string
// such as "-12.50". Malformed strings fail with [ErrInvalidAmount].
func (f *Factory) ParseAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := parseAmountCurr(curr)
	if err != nil {
		return Amount{}, err
	}
	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w: %w", ErrInvalidAmount, err)
	}
	// Amount
	return f.newAmountSafe(c, d)
}

// ParseAmount is like [Factory.ParseAmount] using the [Default] factory.
func ParseAmount(curr, amount string) (Amount, error) {
	return Default().ParseAmount(curr, amount)
}

// MustParseAmount is like [Factory.ParseAmount] but panics if any of the strings
// cannot be parsed.
func (f *Factory) MustParseAmount(curr, amount string) Amount {
	a, err := f.ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// MustParseAmount is like [ParseAmount] but panics on error.
// It is meant for package-level variables and tests.
func MustParseAmount(curr, amount string) Amount {
	return Default().MustParseAmount(curr, amount)
}

// Factory returns the factory that created the amount.
func (a Amount) Factory() *Factory {
	return a.factory()
}

// AmountPlaces returns the number of fractional digits the amount is stored with,
// as resolved for its currency by its factory.
// When it is 0, the value is truncated toward zero at construction.
func (a Amount) AmountPlaces() int {
	return a.factory().AmountPlaces(a.Curr())
}

// DisplayPlaces returns the number of fractional digits used to render the amount,
// as resolved for its currency by its factory.
func (a Amount) DisplayPlaces() int {
	return a.factory().DisplayPlaces(a.Curr())
}

// MinorUnits returns the amount as a count of minor units at the ISO 4217
// scale of the currency, rounding half to even when the amount has more
// digits: USD 5.678 is 568.
// ok is false when the count does not fit an int64.
func (a Amount) MinorUnits() (units int64, ok bool) {
	whole, frac, ok := a.value.Int64(a.curr.Scale())
	if !ok {
		return 0, false
	}
	scale := a.curr.Scale()
	p := int64(1)
	for i := 0; i < scale; i++ {
		p *= 10
	}
	if whole > math.MaxInt64/p || whole < math.MinInt64/p {
		return 0, false
	}
	units = whole * p
	if (frac > 0 && units > math.MaxInt64-frac) || (frac < 0 && units < math.MinInt64-frac) {
		return 0, false
	}
	return units + frac, true
}

// Float64 returns the nearest float64, rounding half to even.
// Every call logs a deprecation warning through the factory logger.
//
// Deprecated: floats cannot hold most decimal fractions exactly; use
// [Amount.Decimal] instead.
func (a Amount) Float64() (f float64, ok bool) {
	a.factory().warnDeprecated("Float64 on an Amount is deprecated, use Decimal instead", a)
	return a.value.Float64()
}

// Int64 splits the amount into whole and fractional integers at the given
// scale, so that a = whole + frac / 10^scale. It is the inverse of
// [NewAmountFromInt64]; ok is false when the parts do not fit an int64.
func (a Amount) Int64(scale int) (whole, frac int64, ok bool) {
	return a.value.Int64(scale)
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns -1, 0 or +1 depending on the sign of the amount.
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsNeg reports whether the amount is below zero.
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos reports whether the amount is above zero.
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// IsZero reports whether the amount is zero, whatever its scale.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsOne reports whether the amount is 1 or -1.
func (a Amount) IsOne() bool {
	return a.value.IsOne()
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// Abs returns the amount without its sign.
func (a Amount) Abs() Amount {
	return a.with(a.value.Abs())
}

// Neg returns the amount with the opposite sign.
func (a Amount) Neg() Amount {
	return a.with(a.value.Neg())
}

// CopySign returns amount a with the sign of b. Zero counts as positive and
// the currency of b is ignored.
func (a Amount) CopySign(b Amount) Amount {
	return a.with(a.value.CopySign(b.value))
}

// with rebuilds the amount around d through its factory.
func (a Amount) with(d decimal.Decimal) Amount {
	return a.factory().newAmountUnsafe(a.curr, d)
}

// Add returns the (possibly rounded) sum of amounts a and b.
//
// When amounts are denominated in different currencies and the factory of a
// has auto-conversion enabled, b is first converted into the currency of a
// with the factory's [Converter].
//
// Add returns an error if:
//   - amounts are denominated in different currencies and are not converted
//     ([ErrCurrencyMismatch]);
//   - the converter fails (its error is wrapped);
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Amount.AmountPlaces]) digits.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a.raw(), b.raw(), err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	f := a.factory()
	b, err := f.maybeConvert(b, a.Curr())
	if err != nil {
		return Amount{}, err
	}
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	c, d, e := a.Curr(), a.Decimal(), b.Decimal()
	d, err = d.AddExact(e, f.AmountPlaces(c))
	if err != nil {
		return Amount{}, err
	}
	return f.newAmountSafe(c, d)
}

// Sub returns the (possibly rounded) difference between amounts a and b.
// Currencies are reconciled in the same way as in [Amount.Add].
//
// Sub returns an error if:
//   - amounts are denominated in different currencies and are not converted
//     ([ErrCurrencyMismatch]);
//   - the converter fails (its error is wrapped);
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Amount.AmountPlaces]) digits.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a.raw(), b.raw(), err)
	}
	return c, nil
}

// SubAbs returns the (possibly rounded) absolute difference between amounts a and b.
// It fails in the same cases as [Amount.Sub].
func (a Amount) SubAbs(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [abs(%v - %v)]: %w", a.raw(), b.raw(), err)
	}
	return c.Abs(), nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	f := a.factory()
	b, err := f.maybeConvert(b, a.Curr())
	if err != nil {
		return Amount{}, err
	}
	if !a.SameCurr(b) {
		return Amount{}, ErrCurrencyMismatch
	}
	c, d, e := a.Curr(), a.Decimal(), b.Decimal()
	d, err = d.SubExact(e, f.AmountPlaces(c))
	if err != nil {
		return Amount{}, err
	}
	return f.newAmountSafe(c, d)
}

// Mul returns the (possibly rounded) product of amount a and the dimensionless factor e.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Amount.AmountPlaces]) digits.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a.raw(), e, err)
	}
	return c, nil
}

func (a Amount) mul(e decimal.Decimal) (Amount, error) {
	f := a.factory()
	c, d := a.Curr(), a.Decimal()
	d, err := d.MulExact(e, f.AmountPlaces(c))
	if err != nil {
		return Amount{}, err
	}
	return f.newAmountSafe(c, d)
}

// Quo returns the (possibly rounded) quotient of amount a and the dimensionless divisor e.
// See also methods [Amount.QuoRem] and [Amount.Split].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Amount.AmountPlaces]) digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, err := a.quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a.raw(), e, err)
	}
	return c, nil
}

func (a Amount) quo(e decimal.Decimal) (Amount, error) {
	f := a.factory()
	c, d := a.Curr(), a.Decimal()
	d, err := d.QuoExact(e, f.AmountPlaces(c))
	if err != nil {
		return Amount{}, err
	}
	return f.newAmountSafe(c, d)
}

// QuoRem returns the quotient q and remainder r of amount a and divisor e
// such that a = e * q + r, where q has scale equal to the amount places of
// its currency and the sign of the reminder r is the same as the sign of a.
// See also methods [Amount.Quo] and [Amount.Split].
//
// QuoRem returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (a Amount) QuoRem(e decimal.Decimal) (q, r Amount, err error) {
	q, r, err = a.quoRem(e)
	if err != nil {
		return Amount{}, Amount{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", a.raw(), e, a.raw(), e, err)
	}
	return q, r, nil
}

func (a Amount) quoRem(e decimal.Decimal) (q, r Amount, err error) {
	// Quotient
	q, err = a.Quo(e)
	if err != nil {
		return Amount{}, Amount{}, err
	}

	// T-Division
	q = q.TruncToCurr()

	// Reminder
	r, err = q.Mul(e)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	r, err = a.Sub(r)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	return q, r, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
// See also methods [Amount.Quo] and [Amount.QuoRem].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a.raw(), parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	// Parts
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}
	if !par.IsPos() {
		return nil, fmt.Errorf("number of parts must be positive")
	}

	// Quotient
	quo, err := a.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(a.Scale())

	// Reminder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = a.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp := rem.ULP().CopySign(rem)

	res := make([]Amount, parts)
	for i := 0; i < parts; i++ {
		res[i] = quo
		// Reminder distribution
		if !rem.IsZero() {
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
			res[i], err = res[i].Add(ulp)
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// One returns 1 in the currency and at the scale of amount a.
func (a Amount) One() Amount {
	return a.with(a.value.One())
}

// Zero returns 0 in the currency and at the scale of amount a.
func (a Amount) Zero() Amount {
	return a.with(a.value.Zero())
}

// ULP returns the unit in the last place of amount a: the smallest positive
// step at its scale.
func (a Amount) ULP() Amount {
	return a.with(a.value.ULP())
}

// The rounding methods below build their result with the factory of a, so
// values are padded back to the amount places of the currency and truncated
// when those places are 0.

// Ceil rounds the amount toward positive infinity to the given scale.
func (a Amount) Ceil(scale int) Amount {
	return a.with(a.value.Ceil(scale))
}

// CeilToCurr is Ceil to the amount places of the currency.
func (a Amount) CeilToCurr() Amount {
	return a.Ceil(a.AmountPlaces())
}

// Floor rounds the amount toward negative infinity to the given scale.
func (a Amount) Floor(scale int) Amount {
	return a.with(a.value.Floor(scale))
}

// FloorToCurr is Floor to the amount places of the currency.
func (a Amount) FloorToCurr() Amount {
	return a.Floor(a.AmountPlaces())
}

// Trunc rounds the amount toward zero to the given scale.
func (a Amount) Trunc(scale int) Amount {
	return a.with(a.value.Trunc(scale))
}

// TruncToCurr is Trunc to the amount places of the currency.
func (a Amount) TruncToCurr() Amount {
	return a.Trunc(a.AmountPlaces())
}

// Round rounds the amount half to even to the given scale.
// Rounding twice to the same scale gives the same amount.
//
//	USD 2.345 -> USD 2.34
//	USD 2.355 -> USD 2.36
func (a Amount) Round(scale int) Amount {
	return a.with(a.value.Round(scale))
}

// RoundToCurr is Round to the amount places of the currency.
func (a Amount) RoundToCurr() Amount {
	return a.Round(a.AmountPlaces())
}

// Quantize rescales amount a to the scale of b, ignoring the currency of b.
func (a Amount) Quantize(b Amount) Amount {
	return a.Rescale(b.Scale())
}

// Rescale rounds or zero-pads the amount to exactly the given scale.
func (a Amount) Rescale(scale int) Amount {
	return a.with(a.value.Rescale(scale))
}

// Trim drops trailing zeros down to the given scale, never going below the
// amount places of the currency.
func (a Amount) Trim(scale int) Amount {
	return a.with(a.value.Trim(max(scale, a.AmountPlaces())))
}

// TrimToCurr is Trim to the amount places of the currency.
func (a Amount) TrimToCurr() Amount {
	return a.Trim(a.AmountPlaces())
}

// SameCurr reports whether amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// SameScale reports whether amounts have the same scale.
func (a Amount) SameScale(b Amount) bool {
	return a.Scale() == b.Scale()
}

// SameScaleAsCurr reports whether the scale of the amount equals the amount
// places of its currency.
func (a Amount) SameScaleAsCurr() bool {
	return a.Scale() == a.AmountPlaces()
}

// Equal reports whether amounts have the same currency and numeric value.
// Scales are ignored, so USD 1.0 equals USD 1.00, and amounts in different
// currencies are never equal, even when a converter is configured.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.value.Cmp(b.value) == 0
}

// Cmp compares amounts numerically and returns -1, 0 or +1.
// Amounts are never converted for comparison: different currencies give
// [ErrCurrencyMismatch].
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a.raw(), b.raw(), ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// Less reports whether a < b. See [Amount.Cmp] for the error.
func (a Amount) Less(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Min returns the smaller of the amounts, or a when they are equal.
// See [Amount.Cmp] for the error.
func (a Amount) Min(b Amount) (Amount, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return Amount{}, err
	}
	if c > 0 {
		return b, nil
	}
	return a, nil
}

// Max returns the larger of the amounts, or a when they are equal.
// See [Amount.Cmp] for the error.
func (a Amount) Max(b Amount) (Amount, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return Amount{}, err
	}
	if c < 0 {
		return b, nil
	}
	return a, nil
}

// Clamp limits amount a to the range [lo, hi].
//
// Clamp returns an error if the currencies differ or lo is above hi.
func (a Amount) Clamp(lo, hi Amount) (Amount, error) {
	c, err := lo.Cmp(hi)
	if err != nil {
		return Amount{}, err
	}
	if c > 0 {
		return Amount{}, fmt.Errorf("clamping %v to [%v, %v]: invalid range", a.raw(), lo.raw(), hi.raw())
	}
	if a, err = a.Max(lo); err != nil {
		return Amount{}, err
	}
	return a.Min(hi)
}

// Localized returns a copy of the amount with an explicit localization
// override, taking precedence over [Config.UseL10N].
func (a Amount) Localized(on bool) Amount {
	a.l10n = -1
	if on {
		a.l10n = 1
	}
	return a
}

// IsLocalized reports whether the amount is rendered with locale-aware
// formatting: the override set by [Amount.Localized] if any, otherwise
// [Config.UseL10N] of its factory.
func (a Amount) IsLocalized() bool {
	switch a.l10n {
	case 1:
		return true
	case -1:
		return false
	default:
		return a.factory().l10n
	}
}

// raw returns the unlocalized "USD 10.00" representation used in errors.
func (a Amount) raw() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// GoString implements the [fmt.GoStringer] interface and returns
// a Go-syntax representation of the amount.
// When the display places of the currency are 0, the value is shown truncated.
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (a Amount) GoString() string {
	d := a.Decimal()
	if a.DisplayPlaces() == 0 {
		d = d.Trunc(0)
	}
	return fmt.Sprintf("money.MustParseAmount(%q, %q)", a.Curr().Code(), d.String())
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                       |
//	| ------ | ----------- | --------------------------------- |
//	| %s, %v | US$5.68     | Rendered amount, see String       |
//	| %q     | "US$5.68"   | Quoted rendered amount            |
//	| %#v    |             | Go syntax, see GoString           |
//	| %f     | 5.678       | Amount                            |
//	| %d     | 568         | Amount in minor units             |
//	| %c     | USD         | Currency                          |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags and precision are supported by %f and %d.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 'V':
		if state.Flag('#') {
			writePadded(state, a.GoString())
			return
		}
		writePadded(state, a.String())
	case 's', 'S':
		writePadded(state, a.String())
	case 'q', 'Q':
		writePadded(state, `"`+a.String()+`"`)
	case 'c', 'C':
		writePadded(state, a.Curr().Code())
	case 'f', 'F':
		fmt.Fprintf(state, fmt.FormatString(state, 'f'), a.Decimal())
	case 'd', 'D':
		units, ok := a.MinorUnits()
		if !ok {
			fmt.Fprintf(state, "%%!%c(money.Amount=%s)", verb, a.raw())
			return
		}
		fmt.Fprintf(state, fmt.FormatString(state, 'd'), units)
	default:
		fmt.Fprintf(state, "%%!%c(money.Amount=%s)", verb, a.raw())
	}
}
