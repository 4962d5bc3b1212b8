// Package exchange converts amounts between currencies using exchange rates
// looked up from a pluggable source.
// A [Converter] can be installed on a [money.Factory] with [money.WithConverter]
// to enable automatic conversion in additive operations.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pago46/money"
)

// ErrNoRate is returned when no exchange rate is known for a currency pair.
var ErrNoRate = errors.New("no exchange rate")

// Rates maps quote currencies to the exchange rates from a single base currency.
type Rates map[money.Currency]money.ExchangeRate

// LookupFunc for looking up exchange rates for a base currency.
// Implementations must be concurrency-safe when invoked.
// Returned rates must be safe for concurrent reads.
type LookupFunc func(ctx context.Context, base money.Currency) (Rates, error)

// StaticLookup returns a lookup serving a fixed table of exchange rates.
// Inverse rates are derived for every pair unless the table lists them explicitly.
//
// StaticLookup returns an error if a rate cannot be inverted or if a pair is listed twice.
func StaticLookup(rates ...money.ExchangeRate) (LookupFunc, error) {
	table := map[money.Currency]Rates{}
	put := func(r money.ExchangeRate) {
		if table[r.Base()] == nil {
			table[r.Base()] = Rates{}
		}
		table[r.Base()][r.Quote()] = r
	}
	for _, r := range rates {
		if _, ok := table[r.Base()][r.Quote()]; ok {
			return nil, fmt.Errorf("static rates: duplicate pair %v/%v", r.Base(), r.Quote())
		}
		put(r)
	}
	for _, r := range rates {
		if _, ok := table[r.Quote()][r.Base()]; ok {
			continue
		}
		inv, err := r.Inv()
		if err != nil {
			return nil, fmt.Errorf("static rates: %w", err)
		}
		put(inv)
	}
	return func(_ context.Context, base money.Currency) (Rates, error) {
		rates, ok := table[base]
		if !ok {
			return nil, fmt.Errorf("%w: base currency %v", ErrNoRate, base)
		}
		return rates, nil
	}, nil
}

// Converter converts amounts with exchange rates returned by a [LookupFunc].
// It implements [money.Converter] and is safe for concurrent use when
// its lookup is.
type Converter struct {
	// lookup to lookup exchange rates. lookup must be concurrency-safe
	lookup LookupFunc

	// ctx is the parent context of every lookup
	ctx context.Context

	// timeout bounds a single lookup, 0 means no bound
	timeout time.Duration
}

// Option configures a [Converter].
type Option func(*Converter)

// WithContext sets the parent context of lookups made by [Converter.Convert].
// The default is [context.Background].
func WithContext(ctx context.Context) Option {
	return func(c *Converter) {
		c.ctx = ctx
	}
}

// WithTimeout bounds the duration of a single lookup.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		c.timeout = d
	}
}

// NewConverter constructs a valid Converter.
func NewConverter(lookup LookupFunc, opts ...Option) *Converter {
	c := &Converter{
		lookup: lookup,
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert implements [money.Converter] using the parent context of the converter.
func (c *Converter) Convert(a money.Amount, to money.Currency) (money.Amount, error) {
	return c.ConvertContext(c.ctx, a, to)
}

// ConvertContext converts amount a into currency to with the current exchange rate.
// As a side-effect the cache of exchange rates might be updated.
//
// ConvertContext returns [ErrNoRate] if the lookup knows no rate for the pair.
func (c *Converter) ConvertContext(ctx context.Context, a money.Amount, to money.Currency) (money.Amount, error) {
	if a.Curr() == to {
		return a, nil
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	r, err := c.Rate(ctx, a.Curr(), to)
	if err != nil {
		return money.Amount{}, err
	}
	b, err := r.Conv(a)
	if err != nil {
		return money.Amount{}, fmt.Errorf("convert [%v] to [%v]: %w", a.Curr(), to, err)
	}
	return b, nil
}

// Rate returns the exchange rate from base to quote.
func (c *Converter) Rate(ctx context.Context, base, quote money.Currency) (money.ExchangeRate, error) {
	rates, err := c.lookup(ctx, base)
	if err != nil {
		return money.ExchangeRate{}, fmt.Errorf("convert from [%v]: %w", base, err)
	}
	r, ok := rates[quote]
	if !ok {
		return money.ExchangeRate{}, fmt.Errorf("convert from [%v] to [%v]: %w", base, quote, ErrNoRate)
	}
	return r, nil
}
