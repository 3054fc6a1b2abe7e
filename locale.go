package localize

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale canonicalizes a locale identifier at configuration intake.
// Identifiers that parse as BCP 47 tags take the canonical tag form;
// everything else is kept opaque apart from underscore/whitespace cleanup.
func normalizeLocale(locale string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if trimmed == "" {
		return ""
	}
	if tag, err := language.Parse(trimmed); err == nil {
		if value := tag.String(); value != "" && value != "und" {
			return value
		}
	}
	return trimmed
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}
