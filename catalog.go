package localize

import "sort"

// Catalog maps string keys to localized text for one locale.
type Catalog map[string]string

// Catalogs maps a locale name to its catalog.
type Catalogs map[string]Catalog

// CatalogSet is an immutable snapshot of every configured locale catalog.
// Catalogs never change for the duration of a build, so the set clones its
// input once at construction and is safe for concurrent reads afterwards.
type CatalogSet struct {
	catalogs Catalogs
	flat     map[string]string
	locales  []string
}

// NewCatalogSet builds an immutable snapshot from the given catalogs.
func NewCatalogSet(data Catalogs) *CatalogSet {
	if len(data) == 0 {
		return &CatalogSet{catalogs: make(Catalogs)}
	}

	catalogs := make(Catalogs, len(data))
	locales := make([]string, 0, len(data))

	for locale, catalog := range data {
		code := normalizeLocale(locale)
		if code == "" {
			continue
		}
		clone := make(Catalog, len(catalog))
		for key, value := range catalog {
			clone[key] = value
		}
		catalogs[code] = clone
		locales = append(locales, code)
	}

	// make locales deterministic
	sort.Strings(locales)

	return &CatalogSet{
		catalogs: catalogs,
		locales:  locales,
	}
}

// NewFlatCatalogSet builds a snapshot from the flattened catalog variant:
// each locale maps to a single literal used for every key.
func NewFlatCatalogSet(literals map[string]string) *CatalogSet {
	if len(literals) == 0 {
		return &CatalogSet{catalogs: make(Catalogs)}
	}

	flat := make(map[string]string, len(literals))
	locales := make([]string, 0, len(literals))
	for locale, literal := range literals {
		code := normalizeLocale(locale)
		if code == "" {
			continue
		}
		flat[code] = literal
		locales = append(locales, code)
	}
	sort.Strings(locales)

	return &CatalogSet{flat: flat, locales: locales}
}

// Lookup returns the localized text for locale/key and ok=false when the
// locale's catalog does not contain the key.
func (s *CatalogSet) Lookup(locale, key string) (string, bool) {
	if s == nil {
		return "", false
	}
	if s.flat != nil {
		literal, ok := s.flat[locale]
		return literal, ok
	}
	catalog, ok := s.catalogs[locale]
	if !ok {
		return "", false
	}
	value, ok := catalog[key]
	return value, ok
}

// Has reports whether the locale's catalog contains the key.
func (s *CatalogSet) Has(locale, key string) bool {
	_, ok := s.Lookup(locale, key)
	return ok
}

// Locales returns all locale names in the set, sorted alphabetically.
func (s *CatalogSet) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

func (s *CatalogSet) hasLocale(locale string) bool {
	if s == nil {
		return false
	}
	for _, candidate := range s.locales {
		if candidate == locale {
			return true
		}
	}
	return false
}

// Keys returns the union of keys declared across all catalogs, sorted. The
// flattened variant declares no keys.
func (s *CatalogSet) Keys() []string {
	if s == nil || len(s.catalogs) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	for _, catalog := range s.catalogs {
		for key := range catalog {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
