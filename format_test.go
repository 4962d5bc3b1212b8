package money

import (
	"testing"
)

func TestAmount_String(t *testing.T) {
	t.Run("localized", func(t *testing.T) {
		tests := []struct {
			curr, amount, want string
		}{
			{"USD", "1234.5", "$1,234.50"},
			{"USD", "-5", "-$5.00"},
			{"USD", "0.005", "$0.00"},
			{"USD", "0.015", "$0.02"},
			{"USD", "1234567.891", "$1,234,567.89"},
			{"EUR", "1234.5", "€1,234.50"},
			{"OMR", "1", "OMR 1.00"},
			{"XXX", "1", "1.00 XXX"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.curr, tt.amount)
			if got := a.String(); got != tt.want {
				t.Errorf("ParseAmount(%q, %q).String() = %q, want %q", tt.curr, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("unlocalized", func(t *testing.T) {
		tests := []struct {
			curr, amount, want string
		}{
			{"USD", "1234.5", "US$1,234.50"},
			{"USD", "-10", "-US$10.00"},
			{"GBP", "999", "£999.00"},
			{"JPY", "1000", "¥1,000.00"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.curr, tt.amount).Localized(false)
			if got := a.String(); got != tt.want {
				t.Errorf("ParseAmount(%q, %q).String() = %q, want %q", tt.curr, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("display places", func(t *testing.T) {
		f := newTestFactory(t, func(c *Config) {
			zeroYen(c)
			c.DecimalPlacesPerCurrency["OMR"] = 3
			c.DisplayDecimalPlacesPerCurrency["OMR"] = 3
			c.DisplayDecimalPlacesPerCurrency["USD"] = 0
			c.UseL10N = false
		})
		tests := []struct {
			curr, amount, want string
		}{
			{"JPY", "1234.99", "¥1,234"},
			{"OMR", "1.2345", "OMR 1.234"},
			{"USD", "10.99", "US$10"},
			{"USD", "-10.99", "-US$10"},
			{"EUR", "10.999", "€11.00"},
		}
		for _, tt := range tests {
			a := f.MustParseAmount(tt.curr, tt.amount)
			if got := a.String(); got != tt.want {
				t.Errorf("ParseAmount(%q, %q).String() = %q, want %q", tt.curr, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("factory language", func(t *testing.T) {
		f := newTestFactory(t, func(c *Config) { c.LanguageCode = "de" })
		a := f.MustParseAmount("EUR", "1234.5")
		if got, want := a.String(), "1.234,50 €"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
		if got, want := a.Localized(false).String(), "€1,234.50"; got != want {
			t.Errorf("Localized(false).String() = %q, want %q", got, want)
		}
	})
}

func TestAmount_StringLocale(t *testing.T) {
	tests := []struct {
		curr, amount, lang, want string
	}{
		{"EUR", "1234.5", "de", "1.234,50 €"},
		{"EUR", "1234.5", "de-DE", "1.234,50 €"},
		{"EUR", "1234567.891", "fr-FR", "1 234 567,89 €"},
		{"EUR", "-1234.5", "fr", "-1 234,50 €"},
		{"EUR", "1234.5", "nl", "€ 1.234,50"},
		{"CHF", "1234.5", "de-CH", "CHF 1'234.50"},
		{"BRL", "1234.5", "pt-BR", "R$ 1.234,50"},
		{"PLN", "1234.5", "pl", "1 234,50 zł"},
		{"USD", "1234.5", "", "$1,234.50"},
		{"USD", "1234.5", "en-US", "$1,234.50"},
		{"USD", "1234.5", "xx", "US$1,234.50"},
		{"USD", "1234.5", "de", "US$1.234,50"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		if got := a.StringLocale(tt.lang); got != tt.want {
			t.Errorf("ParseAmount(%q, %q).StringLocale(%q) = %q, want %q", tt.curr, tt.amount, tt.lang, got, tt.want)
		}
	}
}

func TestAmount_HTML(t *testing.T) {
	f := newTestFactory(t, func(c *Config) { c.LanguageCode = "fr" })
	swiss := newTestFactory(t, func(c *Config) { c.LanguageCode = "de-ch" })
	markup := newTestFactory(t, nil, WithFormats(NewFormats(map[string]LocaleFormat{
		"EN_US": {Definition: defaultDefinition, Signs: map[Currency]Sign{
			USD: {Prefix: "<b>$</b>"},
			EUR: {Suffix: " A&B"},
		}},
	})))
	tests := []struct {
		a    Amount
		want string
	}{
		{f.MustParseAmount("EUR", "1234.5"), "1&nbsp;234,50&nbsp;€"},
		{swiss.MustParseAmount("CHF", "1234.5"), "CHF&nbsp;1&#39;234.50"},
		{markup.MustParseAmount("USD", "5"), "&lt;b&gt;$&lt;/b&gt;5.00"},
		{markup.MustParseAmount("EUR", "5"), "5.00&nbsp;A&amp;B"},
		{MustParseAmount("USD", "5"), "$5.00"},
		{MustParseAmount("OMR", "5").Localized(false), "OMR&nbsp;5.00"},
	}
	for _, tt := range tests {
		if got := string(tt.a.HTML()); got != tt.want {
			t.Errorf("%v.HTML() = %q, want %q", tt.a.raw(), got, tt.want)
		}
	}
}

func TestFormats(t *testing.T) {
	fm := NewFormats(map[string]LocaleFormat{
		"en_us": {Definition: defaultDefinition, Signs: map[Currency]Sign{USD: {Prefix: "$"}}},
		"ar_xx": {
			Definition: Definition{GroupSize: 3, GroupSep: ",", DecimalSep: ".", NegativeSign: "(", TrailingNegativeSign: ")"},
		},
	})

	if !fm.Has("EN_US") || !fm.Has("en_us") || !fm.Has(DefaultLocale) {
		t.Errorf("Locales() = %v, want EN_US and DEFAULT", fm.Locales())
	}
	if got, want := fm.Locales(), []string{"AR_XX", DefaultLocale, "EN_US"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("Locales() = %v, want %v", got, want)
	}

	a := MustParseAmount("USD", "-1234.5")
	tests := []struct {
		places int
		locale string
		want   string
	}{
		{2, "EN_US", "-$1,234.50"},
		{0, "EN_US", "-$1,234"},
		{3, "EN_US", "-$1,234.500"},
		{2, "AR_XX", "(US$1,234.50)"},
		{2, "", "-US$1,234.50"},
		{2, "ZZ_ZZ", "-US$1,234.50"},
	}
	for _, tt := range tests {
		if got := fm.Render(a, tt.places, tt.locale); got != tt.want {
			t.Errorf("Render(%v, %v, %q) = %q, want %q", a.raw(), tt.places, tt.locale, got, tt.want)
		}
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		s    string
		size int
		want string
	}{
		{"1", 3, "1"},
		{"123", 3, "123"},
		{"1234", 3, "1,234"},
		{"123456", 3, "123,456"},
		{"1234567", 3, "1,234,567"},
		{"1234567", 0, "1234567"},
		{"123456", 2, "12,34,56"},
	}
	for _, tt := range tests {
		if got := group(tt.s, tt.size, ","); got != tt.want {
			t.Errorf("group(%q, %v) = %q, want %q", tt.s, tt.size, got, tt.want)
		}
	}
}
