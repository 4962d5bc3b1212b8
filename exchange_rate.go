package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate converts amounts in one direction, from base to quote:
// "EUR/USD 1.25" turns EUR 8 into USD 10.
// Its zero value is "XXX/XXX 0", which converts nothing.
// Rates are immutable and the scale of the value is never below the sum of the
// ISO scales of the pair, see [ExchangeRate.SameScaleAsCurr].
type ExchangeRate struct {
	base  Currency
	quote Currency
	value decimal.Decimal // quote units per base unit
}

// pairScale is the minimum scale of a rate between base and quote.
func pairScale(base, quote Currency) int {
	return base.Scale() + quote.Scale()
}

// NewExchRate builds the rate base/quote, zero-padding it to the pair scale:
// USD/EUR 1.2 becomes USD/EUR 1.2000.
// The rate must be positive, and exactly 1 when base equals quote. A rate
// whose integer part leaves no room for the pair scale is rejected.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	switch {
	case !rate.IsPos():
		return ExchangeRate{}, fmt.Errorf("rate %v/%v %v: must be positive", base, quote, rate)
	case base == quote && !rate.IsOne():
		return ExchangeRate{}, fmt.Errorf("rate %v/%v %v: must be 1 for the same currency", base, quote, rate)
	}
	scale := pairScale(base, quote)
	if rate = rate.Pad(scale); rate.Scale() < scale {
		return ExchangeRate{}, fmt.Errorf("rate %v/%v %v: at most %v integer digits fit", base, quote, rate, decimal.MaxPrec-scale)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate is [NewExchRate] over currency codes and a decimal string.
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("constructing rate: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics on error.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency converted from.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency converted to.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate as a decimal.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// Mul returns an exchange rate with the same base and quote currencies,
// but with the rate multiplied by a positive factor e.
//
// Mul returns an error if factor e is not positive or if the result
// overflows.
func (r ExchangeRate) Mul(e decimal.Decimal) (ExchangeRate, error) {
	if !e.IsPos() {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: factor must be positive", r, e)
	}
	d, err := r.value.MulExact(e, pairScale(r.base, r.quote))
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return NewExchRate(r.Base(), r.Quote(), d)
}

// CanConv reports whether [ExchangeRate.Conv] accepts the amount: it must be
// in the base currency of a usable rate.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.Base() &&
		r.Base() != XXX &&
		r.Quote() != XXX &&
		r.value.IsPos()
}

// Conv returns the amount converted from the base currency to the quote currency.
// The result is constructed by the factory of b.
//
// Conv returns [ErrCurrencyMismatch] if the base currency of the exchange rate
// does not match the currency of the given amount.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b.raw(), r, ErrCurrencyMismatch)
	}
	f := b.factory()
	d, err := r.value.MulExact(b.Decimal(), f.AmountPlaces(r.Quote()))
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b.raw(), r, err)
	}
	return f.newAmountSafe(r.Quote(), d)
}

// Inv returns the inverse of the exchange rate.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d := r.value
	if d.IsZero() {
		return ExchangeRate{}, fmt.Errorf("inverting %v: zero rate does not have an inverse", r)
	}
	q, err := d.One().Quo(d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.Quote(), r.Base(), q)
}

// SameCurr reports whether both rates convert between the same pair.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.Base() == r.Base() && q.Quote() == r.Quote()
}

// SameScale reports whether both rates have the same scale.
func (r ExchangeRate) SameScale(q ExchangeRate) bool {
	return q.Scale() == r.Scale()
}

// SameScaleAsCurr reports whether the rate has exactly the pair scale.
func (r ExchangeRate) SameScaleAsCurr() bool {
	return r.Scale() == pairScale(r.base, r.quote)
}

// Prec returns the number of digits of the rate.
func (r ExchangeRate) Prec() int {
	return r.value.Prec()
}

// Scale returns the number of fractional digits of the rate.
func (r ExchangeRate) Scale() int {
	return r.value.Scale()
}

// IsZero reports whether the rate is zero, which only the zero value is.
func (r ExchangeRate) IsZero() bool {
	return r.value.IsZero()
}

// IsOne reports whether the rate is 1.
func (r ExchangeRate) IsOne() bool {
	return r.value.IsOne()
}

// Round rounds the rate half to even, never below the pair scale.
// It fails when the rate rounds to zero.
func (r ExchangeRate) Round(scale int) (ExchangeRate, error) {
	scale = max(scale, pairScale(r.base, r.quote))
	return NewExchRate(r.Base(), r.Quote(), r.value.Round(scale))
}

// RoundToCurr rounds the rate to the pair scale.
func (r ExchangeRate) RoundToCurr() (ExchangeRate, error) {
	return r.Round(pairScale(r.base, r.quote))
}

// String returns the rate as "USD/EUR 1.2000".
func (r ExchangeRate) String() string {
	return r.Base().String() + "/" + r.Quote().String() + " " + r.value.String()
}

// Format supports these verbs:
//
//	%s, %v  USD/EUR 1.2345
//	%q      "USD/EUR 1.2345"
//	%c      USD/EUR
//	%f      1.2345, with flags and precision as for [decimal.Decimal]
//
// Width and the '-' flag pad every verb except %f.
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, r.String())
	case 'q', 'Q':
		writePadded(state, `"`+r.String()+`"`)
	case 'c', 'C':
		writePadded(state, r.Base().String()+"/"+r.Quote().String())
	case 'f', 'F':
		fmt.Fprintf(state, fmt.FormatString(state, 'f'), r.value)
	default:
		fmt.Fprintf(state, "%%!%c(money.ExchangeRate=%s)", verb, r.String())
	}
}
