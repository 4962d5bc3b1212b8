/*
Package money implements currency-aware monetary values with configurable
precision and locale-aware rendering.
It leverages the [decimal] package for exact decimal arithmetic and combines it
with a [Currency] for representing ISO 4217 currencies.

# Features

  - Immutable monetary values, safe for concurrent use by multiple goroutines
  - Exact construction from decimals, integers, decimal strings and floats
  - Configurable storage and display precision, globally and per currency
  - Arithmetic that rejects mixed currencies or converts them on request
  - Deferred expressions for values that are evaluated by a persistence layer
  - Locale-aware rendering with per-locale currency signs
  - Conversion of monetary values using exchange rates

# Representation

An [Amount] consists of a [Currency], a [decimal.Decimal] value and a reference
to the [Factory] that created it.
The Currency is implemented as an integer index into in-memory arrays holding
the code, numeric code, ISO scale, name and symbol of every known currency.

# Configuration

A [Factory] captures a [Config]: the number of fractional digits amounts are
stored with (amount places), the number used to render them (display places),
the conversion policy, the default language and whether localization is on.
Configurations can be loaded from YAML with [LoadConfig].
The package-level constructors use the [Default] factory, which can be replaced
once at start-up with [SetDefault].

Amount places default to 2 for every currency. When they resolve to 0 for a
currency, amounts in that currency are truncated toward zero at construction.

# Operations

Amounts support Add, Sub, Mul, Quo, QuoRem and Split.
Additive operations require the same currency. When the factory has
auto-conversion enabled and a [Converter], the second operand is converted into
the currency of the first one; the exchange subpackage provides a converter
backed by cached exchange rates.
[Amount.Apply] combines an amount with any supported operand, including
[Deferred] expressions such as the column references of the expr subpackage.

# Rendering

[Amount.String] renders the amount with its display places. When localization
is on, the locale is resolved from the factory language against a table of
[Formats]; otherwise the DEFAULT definition is used.

# Errors

Errors are returned, not panicked, by every operation that can fail.
Sentinel errors [ErrUnknownCurrency], [ErrCurrencyMismatch], [ErrInvalidAmount]
and [ErrInvalidOperand] can be matched with [errors.Is].
Functions prefixed with Must panic instead and are meant for initialization of
global variables.
*/
package money
