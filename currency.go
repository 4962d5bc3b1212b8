package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency is an [ISO 4217] currency known to the registry generated in
// currency_data.go. Its zero value is [XXX], "no currency".
//
// The value is an index into read-only lookup tables, so it is comparable
// with == and safe to share between goroutines. Persist [Currency.Code], not
// the index: indices follow the order of the generated tables.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ErrUnknownCurrency is returned when a currency code is not found in the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ParseCurr looks up a currency by its alphabetic code, in any case, or by
// its numeric code: "USD", "usd" and "840" all give [USD].
// Anything else fails with [ErrUnknownCurrency].
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[strings.ToUpper(curr)]
	if !ok {
		return XXX, fmt.Errorf("%w %q", ErrUnknownCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics on unknown codes.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Currencies returns all currencies known to the registry, ordered by index.
// The sentinel currencies [XXX] and [XTS] come first.
func Currencies() []Currency {
	currs := make([]Currency, len(codeLookup))
	for i := range currs {
		currs[i] = Currency(i) //nolint:gosec
	}
	return currs
}

// String returns the alphabetic code.
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON accepts a quoted code as understood by [ParseCurr].
// null leaves the currency unchanged.
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON writes the quoted alphabetic code.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Code() + `"`), nil
}

// UnmarshalText parses the code with [ParseCurr], which lets currencies be
// map keys in YAML and JSON documents.
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText writes the alphabetic code.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan reads a currency code column; see [sql.Scanner].
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		*c = XXX
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value stores the currency as its alphabetic code.
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format prints the code for %c, %s and %v and the quoted code for %q.
// Width and the '-' flag pad the output; other verbs print %!verb(...).
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	switch verb {
	case 'q', 'Q':
		text = `"` + text + `"`
	case 's', 'S', 'v', 'V', 'c', 'C':
		// as is
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, text)
		return
	}
	writePadded(state, text)
}

// writePadded writes text honouring the width and '-' flag of the state.
func writePadded(state fmt.State, text string) {
	width := len([]rune(text))
	if w, ok := state.Width(); ok && w > width {
		pad := strings.Repeat(" ", w-width)
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}
	//nolint:errcheck
	state.Write([]byte(text))
}

// Scale returns the ISO 4217 minor unit exponent: 0 for JPY, 2 for USD,
// 3 for OMR. It sizes minor units and exchange rates only; the digits kept
// by an [Amount] come from its factory, see [Amount.AmountPlaces].
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Num returns the numeric ISO 4217 code, such as "978" for EUR.
func (c Currency) Num() string {
	return numLookup[c]
}

// Code returns the alphabetic ISO 4217 code. It is never empty.
func (c Currency) Code() string {
	return codeLookup[c]
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	return nameLookup[c]
}

// Symbol returns the locale-independent display symbol of the currency,
// such as "US$" or "€".
// Currencies without a symbol, such as [XXX], return an empty string.
func (c Currency) Symbol() string {
	return symbolLookup[c]
}
