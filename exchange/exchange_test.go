package exchange_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pago46/money"
	"github.com/pago46/money/exchange"
)

func staticLookup(t *testing.T) exchange.LookupFunc {
	t.Helper()
	lookup, err := exchange.StaticLookup(
		money.MustParseExchRate("EUR", "USD", "1.25"),
		money.MustParseExchRate("USD", "JPY", "150"),
	)
	require.NoError(t, err)
	return lookup
}

func TestStaticLookup(t *testing.T) {
	lookup := staticLookup(t)
	ctx := context.Background()

	rates, err := lookup(ctx, money.EUR)
	require.NoError(t, err)
	assert.Equal(t, "EUR/USD 1.2500", rates[money.USD].String())

	rates, err = lookup(ctx, money.USD)
	require.NoError(t, err)
	assert.Equal(t, "USD/EUR 0.8000", rates[money.EUR].String())
	assert.Equal(t, "USD/JPY 150.00", rates[money.JPY].String())

	_, err = lookup(ctx, money.GBP)
	assert.ErrorIs(t, err, exchange.ErrNoRate)
}

func TestStaticLookup_ExplicitInverse(t *testing.T) {
	lookup, err := exchange.StaticLookup(
		money.MustParseExchRate("EUR", "USD", "1.25"),
		money.MustParseExchRate("USD", "EUR", "0.79"),
	)
	require.NoError(t, err)

	rates, err := lookup(context.Background(), money.USD)
	require.NoError(t, err)
	assert.Equal(t, "USD/EUR 0.7900", rates[money.EUR].String())
}

func TestStaticLookup_Duplicate(t *testing.T) {
	_, err := exchange.StaticLookup(
		money.MustParseExchRate("EUR", "USD", "1.25"),
		money.MustParseExchRate("EUR", "USD", "1.26"),
	)
	assert.Error(t, err)
}

func TestConverter_Convert(t *testing.T) {
	c := exchange.NewConverter(staticLookup(t), exchange.WithTimeout(time.Second))

	got, err := c.Convert(money.MustParseAmount("USD", "10"), money.EUR)
	require.NoError(t, err)
	assert.Equal(t, money.EUR, got.Curr())
	assert.True(t, got.Equal(money.MustParseAmount("EUR", "8")), "got %v", got.Decimal())

	same := money.MustParseAmount("USD", "10")
	got, err = c.Convert(same, money.USD)
	require.NoError(t, err)
	assert.Equal(t, same, got)

	_, err = c.Convert(money.MustParseAmount("EUR", "10"), money.JPY)
	assert.ErrorIs(t, err, exchange.ErrNoRate)
}

func TestConverter_LookupError(t *testing.T) {
	boom := errors.New("boom")
	c := exchange.NewConverter(func(context.Context, money.Currency) (exchange.Rates, error) {
		return nil, boom
	})
	_, err := c.Convert(money.MustParseAmount("USD", "10"), money.EUR)
	assert.ErrorIs(t, err, boom)
}

func TestConverter_Timeout(t *testing.T) {
	c := exchange.NewConverter(func(ctx context.Context, _ money.Currency) (exchange.Rates, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, exchange.WithTimeout(time.Millisecond))

	_, err := c.Convert(money.MustParseAmount("USD", "10"), money.EUR)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConverter_AutoConvert(t *testing.T) {
	cfg := money.DefaultConfig()
	cfg.AutoConvert = true
	f := money.MustNewFactory(cfg, money.WithConverter(exchange.NewConverter(staticLookup(t))))

	a := f.MustParseAmount("USD", "10")
	b := f.MustParseAmount("EUR", "8")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(f.MustParseAmount("USD", "20")), "got %v", sum.Decimal())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.IsZero(), "got %v", diff.Decimal())

	_, err = a.Add(f.MustParseAmount("GBP", "1"))
	assert.ErrorIs(t, err, exchange.ErrNoRate)
}

func TestNewLoggingConverter(t *testing.T) {
	var buf bytes.Buffer
	c := exchange.NewLoggingConverter(log.NewLogfmtLogger(&buf), exchange.NewConverter(staticLookup(t)))

	_, err := c.Convert(money.MustParseAmount("USD", "10"), money.EUR)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "method=convert")
	assert.Contains(t, out, "from=USD")
	assert.Contains(t, out, "to=EUR")
	assert.Contains(t, out, "err=null")
}
