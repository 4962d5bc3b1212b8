package money

import (
	"strings"

	"golang.org/x/text/language"
)

// ResolveLocale returns the locale of the formatting table that best matches
// the requested language, or an empty string when the amount should be
// rendered with the [DefaultLocale] definition.
// An empty request is replaced with defaultLang.
// See [Formats.Resolve] for the matching rules.
func ResolveLocale(lang, defaultLang string, fm *Formats) string {
	if lang == "" {
		lang = defaultLang
	}
	return fm.Resolve(lang)
}

// Resolve matches a BCP 47 language tag against the table:
//
//  1. the tag is canonicalized to a locale name, "en-us" becomes "en_US"
//     and "fr" stays "fr";
//  2. if the upper-cased locale is in the table, it is returned ("EN_US");
//  3. otherwise the language doubled as a region is tried ("FR_FR");
//  4. otherwise an empty string is returned.
//
// Resolve is deterministic and has no side effects.
func (fm *Formats) Resolve(lang string) string {
	locale := toLocale(lang)
	if locale == "" {
		return ""
	}
	if up := strings.ToUpper(locale); fm.Has(up) && up != DefaultLocale {
		return up
	}
	base, _, _ := strings.Cut(locale, "_")
	if doubled := strings.ToUpper(base + "_" + base); fm.Has(doubled) {
		return doubled
	}
	return ""
}

// toLocale converts a language tag to a locale name: the base language,
// followed by the region when the tag names one explicitly.
// Tags that cannot be parsed only have dashes replaced with underscores.
func toLocale(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ReplaceAll(lang, "-", "_")
	}
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		return base.String() + "_" + region.String()
	}
	return base.String()
}
