package money

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Converter converts an amount into another currency.
// It is consulted by [Amount.Add] and [Amount.Sub] only when the factory
// was created with [Config.AutoConvert] enabled and the currencies differ.
// Errors returned by Convert are propagated to the caller unchanged
// in identity (wrapped with %w).
type Converter interface {
	Convert(a Amount, to Currency) (Amount, error)
}

// ConverterFunc is an adapter to allow the use of ordinary functions as converters.
type ConverterFunc func(a Amount, to Currency) (Amount, error)

// Convert calls f(a, to).
func (f ConverterFunc) Convert(a Amount, to Currency) (Amount, error) {
	return f(a, to)
}

// Factory captures the configuration used to construct and render amounts:
// storage and display precision, the conversion policy, the default language
// and the locale formatting definitions.
// Every [Amount] keeps a reference to the factory that created it, and every
// operation on the amount constructs its result through the same factory.
//
// A Factory is immutable and safe for concurrent use by multiple goroutines.
type Factory struct {
	places      int
	placesPer   map[Currency]int
	display     int
	displayPer  map[Currency]int
	autoConvert bool
	lang        string
	l10n        bool
	conv        Converter
	formats     *Formats
	logger      log.Logger
}

// Option configures optional collaborators of a [Factory].
type Option func(*Factory)

// WithConverter sets the converter used when auto-conversion is enabled.
func WithConverter(c Converter) Option {
	return func(f *Factory) {
		f.conv = c
	}
}

// WithLogger sets the logger used for deprecation warnings.
func WithLogger(logger log.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithFormats sets the locale formatting definitions used for rendering.
func WithFormats(formats *Formats) Option {
	return func(f *Factory) {
		f.formats = formats
	}
}

// NewFactory validates the configuration and returns a factory capturing it.
// Without options, the factory has no converter, renders with [DefaultFormats]
// and logs to standard error in logfmt.
func NewFactory(cfg Config, opts ...Option) (*Factory, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	display := cfg.DecimalPlaces
	if cfg.DisplayDecimalPlaces != nil {
		display = *cfg.DisplayDecimalPlaces
	}
	f := &Factory{
		places:      cfg.DecimalPlaces,
		placesPer:   resolveOverrides(cfg.DecimalPlacesPerCurrency),
		display:     display,
		displayPer:  resolveOverrides(cfg.DisplayDecimalPlacesPerCurrency),
		autoConvert: cfg.AutoConvert,
		lang:        cfg.LanguageCode,
		l10n:        cfg.UseL10N,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.formats == nil {
		f.formats = DefaultFormats()
	}
	if f.logger == nil {
		f.logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	}
	return f, nil
}

// MustNewFactory is like [NewFactory] but panics if the configuration is invalid.
func MustNewFactory(cfg Config, opts ...Option) *Factory {
	f, err := NewFactory(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("NewFactory(%+v) failed: %v", cfg, err))
	}
	return f
}

var defaultFactory atomic.Pointer[Factory]

func init() {
	defaultFactory.Store(MustNewFactory(DefaultConfig()))
}

// Default returns the package default factory.
// It is used by the package-level constructors and by the zero [Amount].
func Default() *Factory {
	return defaultFactory.Load()
}

// SetDefault replaces the package default factory and returns the previous one.
// It is meant to be called once during start-up. Amounts created before the call
// keep the factory they were created with.
// Passing nil restores a factory built from [DefaultConfig].
func SetDefault(f *Factory) *Factory {
	if f == nil {
		f = MustNewFactory(DefaultConfig())
	}
	return defaultFactory.Swap(f)
}

// AmountPlaces returns the number of fractional digits amounts in the given
// currency are stored with.
func (f *Factory) AmountPlaces(c Currency) int {
	if places, ok := f.placesPer[c]; ok {
		return places
	}
	return f.places
}

// DisplayPlaces returns the number of fractional digits amounts in the given
// currency are rendered with.
func (f *Factory) DisplayPlaces(c Currency) int {
	if places, ok := f.displayPer[c]; ok {
		return places
	}
	return f.display
}

// AutoConvert reports whether additive operations convert mismatched currencies.
func (f *Factory) AutoConvert() bool {
	return f.autoConvert
}

// LanguageCode returns the language used when none is requested explicitly.
func (f *Factory) LanguageCode() string {
	return f.lang
}

// Formats returns the locale formatting definitions used for rendering.
func (f *Factory) Formats() *Formats {
	return f.formats
}

// maybeConvert converts b into currency c when the conversion policy allows it.
// Amounts already in currency c are returned as is.
func (f *Factory) maybeConvert(b Amount, c Currency) (Amount, error) {
	if b.Curr() == c || !f.autoConvert || f.conv == nil {
		return b, nil
	}
	conv, err := f.conv.Convert(b, c)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v: %w", b.raw(), c, err)
	}
	return conv, nil
}

func (f *Factory) warnDeprecated(msg string, a Amount) {
	//nolint:errcheck
	level.Warn(f.logger).Log("msg", msg, "amount", a.raw(), "deprecated", true)
}
