package localize

import "strings"

// LocaleSegment is the well-known marker inside output file name templates
// that is replaced with a locale name.
const LocaleSegment = "[locale]"

// ResolveFileName replaces every locale segment in a file name template with
// either the single configured locale (fast path) or the opaque file name
// placeholder when several locales exist. Resolving an already-resolved name
// is a no-op: the replacement never reintroduces the segment.
func ResolveFileName(template string, locales []string) string {
	if len(locales) == 1 {
		return strings.ReplaceAll(template, LocaleSegment, locales[0])
	}
	return strings.ReplaceAll(template, LocaleSegment, FileNamePlaceholder)
}

// LocalizeFileName substitutes the file name placeholder with a concrete
// locale name. Names without the placeholder pass through unchanged.
func LocalizeFileName(name, locale string) string {
	return strings.ReplaceAll(name, FileNamePlaceholder, locale)
}

// AssertFileNameTemplate checks that a template can produce distinguishable
// per-locale outputs. Builds targeting more than one locale must abort
// immediately when this fails.
func AssertFileNameTemplate(template string, locales []string) error {
	if len(locales) <= 1 {
		return nil
	}
	if !strings.Contains(template, LocaleSegment) {
		return ErrLocaleSegmentMissing
	}
	return nil
}
