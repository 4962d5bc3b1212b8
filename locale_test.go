package money

import "testing"

func TestFormats_Resolve(t *testing.T) {
	fm := NewFormats(map[string]LocaleFormat{
		"EN_US": {Definition: defaultDefinition},
		"FR_FR": {Definition: defaultDefinition},
		"de_at": {Definition: defaultDefinition},
	})
	tests := []struct {
		lang, want string
	}{
		{"en-us", "EN_US"},
		{"en-US", "EN_US"},
		{"EN_us", "EN_US"},
		{"fr", "FR_FR"},
		{"fr-CA", "FR_FR"},
		{"de-AT", "DE_AT"},
		{"de", ""},
		{"en", ""},
		{"", ""},
		{"default", ""},
		{"not a tag", ""},
	}
	for _, tt := range tests {
		if got := fm.Resolve(tt.lang); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.lang, got, tt.want)
		}
		// Resolution is deterministic.
		if again := fm.Resolve(tt.lang); again != tt.want {
			t.Errorf("Resolve(%q) = %q on the second call, want %q", tt.lang, again, tt.want)
		}
	}
}

func TestResolveLocale(t *testing.T) {
	fm := DefaultFormats()
	tests := []struct {
		lang, defaultLang, want string
	}{
		{"", "en-us", "EN_US"},
		{"", "fr", "FR_FR"},
		{"de", "en-us", "DE_DE"},
		{"ja", "en-us", ""},
		{"ja-JP", "en-us", "JA_JP"},
		{"pt", "en-us", "PT_PT"},
		{"pt-BR", "en-us", "PT_BR"},
		{"sv-SE", "en-us", "SV_SE"},
		{"zh", "en-us", ""},
	}
	for _, tt := range tests {
		if got := ResolveLocale(tt.lang, tt.defaultLang, fm); got != tt.want {
			t.Errorf("ResolveLocale(%q, %q) = %q, want %q", tt.lang, tt.defaultLang, got, tt.want)
		}
	}
}

func TestToLocale(t *testing.T) {
	tests := []struct {
		lang, want string
	}{
		{"en-us", "en_US"},
		{"EN-GB", "en_GB"},
		{"fr", "fr"},
		{" de ", "de"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := toLocale(tt.lang); got != tt.want {
			t.Errorf("toLocale(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
