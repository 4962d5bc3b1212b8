package money

import (
	"errors"
	"fmt"
	"testing"

	"github.com/govalues/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	// The zero value cannot be created with NewExchRate or ParseExchRate,
	// so individual properties are checked instead.
	if got.Base() != XXX {
		t.Errorf("ExchangeRate{}.Base() = %v, want %v", got.Base(), XXX)
	}
	if got.Quote() != XXX {
		t.Errorf("ExchangeRate{}.Quote() = %v, want %v", got.Quote(), XXX)
	}
	if !got.IsZero() {
		t.Errorf("ExchangeRate{}.IsZero() = false, want true")
	}
	if got.CanConv(Amount{}) {
		t.Errorf("ExchangeRate{}.CanConv(Amount{}) = true, want false")
	}
}

func TestNewExchRate(t *testing.T) {
	tests := []struct {
		base, quote Currency
		rate        string
		wantOk      bool
	}{
		{USD, EUR, "1.2000", true},
		{USD, EUR, "-1.2000", false},
		{USD, EUR, "0", false},
		{USD, USD, "0.9999", false},
		{USD, USD, "1.0000", true},
		{USD, USD, "1.0001", false},
		{USD, JPY, "100000000000000000", false},
		{USD, EUR, "1000000000000000", false},
		{USD, OMR, "100000000000000", false},
	}
	for _, tt := range tests {
		rate := decimal.MustParse(tt.rate)
		_, err := NewExchRate(tt.base, tt.quote, rate)
		if !tt.wantOk && err == nil {
			t.Errorf("NewExchRate(%v, %v, %v) did not fail", tt.base, tt.quote, rate)
		}
		if tt.wantOk && err != nil {
			t.Errorf("NewExchRate(%v, %v, %v) failed: %v", tt.base, tt.quote, rate, err)
		}
	}
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote, rate string
			want              string
		}{
			{"USD", "JPY", "132", "USD/JPY 132.00"},
			{"USD", "EUR", "1.2", "USD/EUR 1.2000"},
			{"usd", "omr", "0.38", "USD/OMR 0.38000"},
			{"EUR", "USD", "1.123456", "EUR/USD 1.123456"},
		}
		for _, tt := range tests {
			got, err := ParseExchRate(tt.base, tt.quote, tt.rate)
			if err != nil {
				t.Errorf("ParseExchRate(%q, %q, %q) failed: %v", tt.base, tt.quote, tt.rate, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("ParseExchRate(%q, %q, %q) = %v, want %v", tt.base, tt.quote, tt.rate, s, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote, rate string
		}{
			"base":     {"UUU", "USD", "1"},
			"quote":    {"USD", "UUU", "1"},
			"rate":     {"USD", "EUR", "abc"},
			"negative": {"USD", "EUR", "-1"},
			"same":     {"USD", "USD", "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := ParseExchRate(tt.base, tt.quote, tt.rate); err == nil {
					t.Errorf("ParseExchRate(%q, %q, %q) did not fail", tt.base, tt.quote, tt.rate)
				}
			})
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"UUU\", \"USD\", \"1\") did not panic")
			}
		}()
		MustParseExchRate("UUU", "USD", "1")
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := MustParseExchRate("USD", "JPY", "133.27")
		got, err := r.Conv(MustParseAmount("USD", "200"))
		if err != nil {
			t.Fatalf("%v.Conv failed: %v", r, err)
		}
		if got.Curr() != JPY || got.Decimal().String() != "26654.0000" {
			t.Errorf("%v.Conv(USD 200.00) = %v, want JPY 26654.0000", r, got.raw())
		}
	})

	t.Run("factory", func(t *testing.T) {
		f := newTestFactory(t, zeroYen)
		r := MustParseExchRate("USD", "JPY", "133.27")
		got, err := r.Conv(f.MustParseAmount("USD", "1.50"))
		if err != nil {
			t.Fatalf("%v.Conv failed: %v", r, err)
		}
		if got.Factory() != f {
			t.Errorf("%v.Conv result uses another factory", r)
		}
		if s := got.Decimal().String(); s != "199" {
			t.Errorf("%v.Conv(USD 1.50) = %v, want 199", r, s)
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("USD", "EUR", "0.9")
		_, err := r.Conv(MustParseAmount("EUR", "1"))
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("%v.Conv(EUR 1.00) = %v, want %v", r, err, ErrCurrencyMismatch)
		}
	})
}

func TestExchangeRate_Mul(t *testing.T) {
	r := MustParseExchRate("USD", "EUR", "1.2")
	got, err := r.Mul(decimal.MustNew(2, 0))
	if err != nil {
		t.Fatalf("%v.Mul(2) failed: %v", r, err)
	}
	if s := got.String(); s != "USD/EUR 2.4000" {
		t.Errorf("%v.Mul(2) = %v, want USD/EUR 2.4000", r, s)
	}
	for _, e := range []decimal.Decimal{decimal.Zero, decimal.MustNew(-1, 0)} {
		if _, err := r.Mul(e); err == nil {
			t.Errorf("%v.Mul(%v) did not fail", r, e)
		}
	}
}

func TestExchangeRate_Inv(t *testing.T) {
	tests := []struct {
		base, quote, rate string
		want              string
	}{
		{"EUR", "USD", "1.25", "USD/EUR 0.8000"},
		{"USD", "JPY", "100", "JPY/USD 0.01"},
		{"USD", "USD", "1", "USD/USD 1.0000"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.base, tt.quote, tt.rate)
		got, err := r.Inv()
		if err != nil {
			t.Errorf("%v.Inv() failed: %v", r, err)
			continue
		}
		if s := got.String(); s != tt.want {
			t.Errorf("%v.Inv() = %v, want %v", r, s, tt.want)
		}
	}
	if _, err := (ExchangeRate{}).Inv(); err == nil {
		t.Errorf("ExchangeRate{}.Inv() did not fail")
	}
}

func TestExchangeRate_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := MustParseExchRate("USD", "EUR", "0.912345")
		tests := []struct {
			scale int
			want  string
		}{
			{6, "USD/EUR 0.912345"},
			{5, "USD/EUR 0.91234"},
			{4, "USD/EUR 0.9123"},
			{0, "USD/EUR 0.9123"},
		}
		for _, tt := range tests {
			got, err := r.Round(tt.scale)
			if err != nil {
				t.Errorf("%v.Round(%v) failed: %v", r, tt.scale, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("%v.Round(%v) = %v, want %v", r, tt.scale, s, tt.want)
			}
		}
		got, err := r.RoundToCurr()
		if err != nil || !got.SameScaleAsCurr() {
			t.Errorf("%v.RoundToCurr() = %v, %v, want scale 4", r, got, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("JPY", "USD", "0.004")
		if _, err := r.RoundToCurr(); err == nil {
			t.Errorf("%v.RoundToCurr() did not fail", r)
		}
	})
}

func TestExchangeRate_Properties(t *testing.T) {
	r := MustParseExchRate("USD", "EUR", "1.23456")
	q := MustParseExchRate("USD", "EUR", "1.2")
	if !r.SameCurr(q) {
		t.Errorf("%v.SameCurr(%v) = false, want true", r, q)
	}
	if r.SameScale(q) {
		t.Errorf("%v.SameScale(%v) = true, want false", r, q)
	}
	if r.SameScaleAsCurr() {
		t.Errorf("%v.SameScaleAsCurr() = true, want false", r)
	}
	if !q.SameScaleAsCurr() {
		t.Errorf("%v.SameScaleAsCurr() = false, want true", q)
	}
	if r.Prec() != 6 || r.Scale() != 5 {
		t.Errorf("%v.Prec(), Scale() = %v, %v, want 6, 5", r, r.Prec(), r.Scale())
	}
	if r.IsOne() || !MustParseExchRate("USD", "USD", "1").IsOne() {
		t.Errorf("IsOne() is wrong")
	}
	if r.Decimal().String() != "1.23456" {
		t.Errorf("%v.Decimal() = %v, want 1.23456", r, r.Decimal())
	}
}

func TestExchangeRate_Format(t *testing.T) {
	r := MustParseExchRate("USD", "EUR", "1.2")
	tests := []struct {
		format, want string
	}{
		{"%v", "USD/EUR 1.2000"},
		{"%s", "USD/EUR 1.2000"},
		{"%16s", "  USD/EUR 1.2000"},
		{"%-16s|", "USD/EUR 1.2000  |"},
		{"%q", `"USD/EUR 1.2000"`},
		{"%c", "USD/EUR"},
		{"%f", "1.2000"},
		{"%.2f", "1.20"},
		{"%b", "%!b(money.ExchangeRate=USD/EUR 1.2000)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, r); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, r, got, tt.want)
		}
	}
}
