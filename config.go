package money

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/govalues/decimal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Default values for optional configuration fields.
const (
	DefaultDecimalPlaces = 2
	DefaultLanguageCode  = "en-us"
)

// Config holds the settings consumed by a [Factory].
// Per-currency maps are keyed by ISO 4217 codes; a currency missing from a map
// uses the corresponding global default.
//
// A Config is usually built with [DefaultConfig] or loaded with [LoadConfig]:
//
//	decimal_places: 2
//	decimal_places_per_currency:
//	  JPY: 0
//	display_decimal_places_per_currency:
//	  BHD: 3
//	auto_convert: false
//	language_code: en-us
//	use_l10n: true
type Config struct {
	// DecimalPlaces is the number of fractional digits amounts are stored with.
	DecimalPlaces int `yaml:"decimal_places"`
	// DecimalPlacesPerCurrency overrides DecimalPlaces for individual currencies.
	DecimalPlacesPerCurrency map[string]int `yaml:"decimal_places_per_currency"`
	// DisplayDecimalPlaces is the number of fractional digits used for rendering.
	// When nil, DecimalPlaces is used.
	DisplayDecimalPlaces *int `yaml:"display_decimal_places"`
	// DisplayDecimalPlacesPerCurrency overrides DisplayDecimalPlaces for individual currencies.
	DisplayDecimalPlacesPerCurrency map[string]int `yaml:"display_decimal_places_per_currency"`
	// AutoConvert enables conversion of the second operand of Add and Sub
	// through the factory's Converter when currencies differ.
	AutoConvert bool `yaml:"auto_convert"`
	// LanguageCode is the language used when no language is requested explicitly.
	LanguageCode string `yaml:"language_code"`
	// UseL10N enables locale-aware rendering for amounts without an explicit override.
	UseL10N bool `yaml:"use_l10n"`
}

// DefaultConfig returns the configuration used by the package default factory.
func DefaultConfig() Config {
	return Config{
		DecimalPlaces: DefaultDecimalPlaces,
		LanguageCode:  DefaultLanguageCode,
		UseL10N:       true,
	}
}

// LoadConfig reads a YAML config file, expands ${VAR} environment variables,
// applies defaults for missing fields and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig is like [LoadConfig] but reads the YAML document from data.
func ParseConfig(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LanguageCode == "" {
		c.LanguageCode = DefaultLanguageCode
	}
}

// Validate checks that decimal places are within the supported range,
// that override maps only name known currencies and that the language code
// is a well-formed BCP 47 tag.
func (c Config) Validate() error {
	if err := validatePlaces("decimal_places", c.DecimalPlaces); err != nil {
		return err
	}
	if c.DisplayDecimalPlaces != nil {
		if err := validatePlaces("display_decimal_places", *c.DisplayDecimalPlaces); err != nil {
			return err
		}
	}
	if err := validateOverrides("decimal_places_per_currency", c.DecimalPlacesPerCurrency); err != nil {
		return err
	}
	if err := validateOverrides("display_decimal_places_per_currency", c.DisplayDecimalPlacesPerCurrency); err != nil {
		return err
	}
	if c.LanguageCode == "" {
		return errors.New("language_code is required")
	}
	if _, err := language.Parse(c.LanguageCode); err != nil {
		return fmt.Errorf("language_code %q: %w", c.LanguageCode, err)
	}
	return nil
}

// maxPlaces keeps at least one integer digit within [decimal.MaxPrec].
const maxPlaces = decimal.MaxPrec - 1

func validatePlaces(key string, places int) error {
	if places < 0 || places > maxPlaces {
		return fmt.Errorf("%s must be between 0 and %d, got %d", key, maxPlaces, places)
	}
	return nil
}

func validateOverrides(key string, overrides map[string]int) error {
	codes := make([]string, 0, len(overrides))
	for code := range overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if _, err := ParseCurr(code); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if err := validatePlaces(key+"."+code, overrides[code]); err != nil {
			return err
		}
	}
	return nil
}

// resolveOverrides converts a validated override map to currency keys.
func resolveOverrides(overrides map[string]int) map[Currency]int {
	m := make(map[Currency]int, len(overrides))
	for code, places := range overrides {
		m[MustParseCurr(code)] = places
	}
	return m
}
