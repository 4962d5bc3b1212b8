package money

import (
	"html/template"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLocale is the key of the formatting definition used when no locale
// is resolved or localization is disabled.
const DefaultLocale = "DEFAULT"

// Definition describes how numbers are written in a locale.
type Definition struct {
	GroupSize            int    // digits per group in the integer part, 0 disables grouping
	GroupSep             string // separator between groups
	DecimalSep           string // separator between integer and fractional parts
	NegativeSign         string // written before negative amounts
	TrailingNegativeSign string // written after negative amounts
}

// Sign is the text written around the number for a currency in a locale,
// for example Sign{Prefix: "$"} or Sign{Suffix: " €"}.
type Sign struct {
	Prefix string
	Suffix string
}

// LocaleFormat is the formatting definition of a locale together with the
// currency signs specific to it.
// Currencies missing from Signs use the signs of [DefaultLocale].
type LocaleFormat struct {
	Definition
	Signs map[Currency]Sign
}

// Formats is an immutable table of locale formatting definitions keyed by
// upper-cased locale names such as "EN_US".
// It is safe for concurrent use by multiple goroutines.
type Formats struct {
	locales map[string]LocaleFormat
}

var defaultDefinition = Definition{
	GroupSize:    3,
	GroupSep:     ",",
	DecimalSep:   ".",
	NegativeSign: "-",
}

// NewFormats returns a formatting table for the given locales.
// Locale names are case-insensitive. If the table has no [DefaultLocale] entry,
// one using "," grouping, "." decimals and currency symbols is added.
func NewFormats(locales map[string]LocaleFormat) *Formats {
	fm := &Formats{locales: make(map[string]LocaleFormat, len(locales)+1)}
	for name, lf := range locales {
		signs := make(map[Currency]Sign, len(lf.Signs))
		for c, s := range lf.Signs {
			signs[c] = s
		}
		lf.Signs = signs
		fm.locales[strings.ToUpper(name)] = lf
	}
	if _, ok := fm.locales[DefaultLocale]; !ok {
		fm.locales[DefaultLocale] = LocaleFormat{Definition: defaultDefinition}
	}
	return fm
}

// DefaultFormats returns the built-in formatting table.
func DefaultFormats() *Formats {
	comma := Definition{GroupSize: 3, GroupSep: ".", DecimalSep: ",", NegativeSign: "-"}
	space := Definition{GroupSize: 3, GroupSep: " ", DecimalSep: ",", NegativeSign: "-"}
	euroSuffix := map[Currency]Sign{EUR: {Suffix: " €"}}
	return NewFormats(map[string]LocaleFormat{
		DefaultLocale: {Definition: defaultDefinition},
		"EN_US": {Definition: defaultDefinition, Signs: map[Currency]Sign{
			USD: {Prefix: "$"},
		}},
		"EN_GB": {Definition: defaultDefinition, Signs: map[Currency]Sign{
			GBP: {Prefix: "£"},
		}},
		"FR_FR": {Definition: space, Signs: euroSuffix},
		"DE_DE": {Definition: comma, Signs: euroSuffix},
		"DE_CH": {
			Definition: Definition{GroupSize: 3, GroupSep: "'", DecimalSep: ".", NegativeSign: "-"},
			Signs:      map[Currency]Sign{CHF: {Prefix: "CHF "}},
		},
		"ES_ES": {Definition: comma, Signs: euroSuffix},
		"IT_IT": {Definition: comma, Signs: euroSuffix},
		"NL_NL": {Definition: comma, Signs: map[Currency]Sign{EUR: {Prefix: "€ "}}},
		"PT_BR": {Definition: comma, Signs: map[Currency]Sign{BRL: {Prefix: "R$ "}}},
		"PT_PT": {Definition: space, Signs: euroSuffix},
		"PL_PL": {Definition: space, Signs: map[Currency]Sign{PLN: {Suffix: " zł"}, EUR: {Suffix: " €"}}},
		"SV_SE": {Definition: space, Signs: map[Currency]Sign{SEK: {Suffix: " kr"}, EUR: {Suffix: " €"}}},
		"JA_JP": {Definition: defaultDefinition, Signs: map[Currency]Sign{JPY: {Prefix: "¥"}}},
		"RU_RU": {Definition: space, Signs: map[Currency]Sign{RUB: {Suffix: " ₽"}, EUR: {Suffix: " €"}}},
	})
}

// Has reports whether the table holds a definition for the locale.
// The lookup is case-insensitive.
func (fm *Formats) Has(locale string) bool {
	_, ok := fm.locales[strings.ToUpper(locale)]
	return ok
}

// Locales returns the sorted names of the locales in the table.
func (fm *Formats) Locales() []string {
	names := make([]string, 0, len(fm.locales))
	for name := range fm.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fm *Formats) definition(locale string) Definition {
	if lf, ok := fm.locales[strings.ToUpper(locale)]; ok {
		return lf.Definition
	}
	return fm.locales[DefaultLocale].Definition
}

// sign returns the sign of the currency in the locale, falling back to the
// default locale and finally to the symbol or code of the currency.
func (fm *Formats) sign(locale string, c Currency) Sign {
	if s, ok := fm.locales[strings.ToUpper(locale)].Signs[c]; ok {
		return s
	}
	if s, ok := fm.locales[DefaultLocale].Signs[c]; ok {
		return s
	}
	sym := c.Symbol()
	if sym == "" {
		return Sign{Suffix: " " + c.Code()}
	}
	if r, _ := utf8.DecodeLastRuneInString(sym); unicode.IsLetter(r) {
		sym += " "
	}
	return Sign{Prefix: sym}
}

// Render writes the amount with the given number of fractional digits using
// the definition of the locale, or of [DefaultLocale] when the locale is
// empty or unknown.
// With places equal to 0 the value is truncated toward zero, otherwise it is
// rounded half to even and zero-padded.
func (fm *Formats) Render(a Amount, places int, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	def := fm.definition(locale)
	sign := fm.sign(locale, a.Curr())

	d := a.Decimal()
	if places == 0 {
		d = d.Trunc(0)
	} else {
		d = d.Rescale(places)
	}
	neg := d.Sign() < 0

	digits := d.Abs().String()
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	if neg {
		b.WriteString(def.NegativeSign)
	}
	b.WriteString(sign.Prefix)
	b.WriteString(group(whole, def.GroupSize, def.GroupSep))
	if frac != "" {
		b.WriteString(def.DecimalSep)
		b.WriteString(frac)
	}
	b.WriteString(sign.Suffix)
	if neg {
		b.WriteString(def.TrailingNegativeSign)
	}
	return b.String()
}

// group inserts sep between every size digits of s, counting from the right.
func group(s string, size int, sep string) string {
	if size <= 0 || len(s) <= size {
		return s
	}
	var b strings.Builder
	head := len(s) % size
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += size {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+size])
	}
	return b.String()
}

// String implements the [fmt.Stringer] interface and returns the amount
// rendered with its display places.
// When the amount is localized (see [Amount.IsLocalized]), the locale resolved
// for the factory's language is used, otherwise the [DefaultLocale] definition.
//
//	US$1,234.50  unlocalized
//	$1,234.50    en-us
//	1.234,50 €   de (EUR)
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	f := a.factory()
	locale := ""
	if a.IsLocalized() {
		locale = f.formats.Resolve(f.lang)
	}
	return f.formats.Render(a, a.DisplayPlaces(), locale)
}

// StringLocale returns the amount rendered for the requested language, as
// resolved by [ResolveLocale]. An empty language selects the factory's
// language. The localization override of the amount is ignored.
func (a Amount) StringLocale(lang string) string {
	f := a.factory()
	return f.formats.Render(a, a.DisplayPlaces(), ResolveLocale(lang, f.lang, f.formats))
}

// HTML returns the rendered amount escaped for embedding in an HTML document.
// Spaces are replaced with no-break spaces so that the currency sign and the
// digits are never wrapped onto different lines.
func (a Amount) HTML() template.HTML {
	s := template.HTMLEscapeString(a.String())
	//nolint:gosec
	return template.HTML(strings.ReplaceAll(s, " ", "&nbsp;"))
}
