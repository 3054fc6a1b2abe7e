package localize

import "sync"

// Outcome is the cached validation result for one string key.
type Outcome struct {
	Key            string
	MissingLocales []string
}

// Valid reports whether every configured locale's catalog contains the key.
func (o Outcome) Valid() bool {
	return len(o.MissingLocales) == 0
}

// Validator checks requested string keys against every configured locale's
// catalog. Results are memoized per key: the cache is append-only and
// authoritative for the lifetime of one build, so a key is reported at most
// once no matter how many call sites reference it. Multiple module
// compilation tasks may validate different keys concurrently; all access is
// serialized through one mutex.
type Validator struct {
	mu    sync.Mutex
	cache map[string]Outcome
	used  map[string]struct{}

	catalogs      *CatalogSet
	locales       []string
	failOnMissing bool
	diags         *Diagnostics
}

func newValidator(cfg *Config) *Validator {
	return &Validator{
		cache:         make(map[string]Outcome),
		used:          make(map[string]struct{}),
		catalogs:      cfg.Catalogs,
		locales:       cfg.Locales,
		failOnMissing: cfg.FailOnMissing,
		diags:         cfg.diags,
	}
}

// Validate returns the outcome for a key, computing and reporting it on
// first use. Under the fail-on-missing policy a missing key returns a
// *MissingKeyError; otherwise a warning is recorded once and substitution
// later falls back to the bare key.
func (v *Validator) Validate(key string) (Outcome, error) {
	if v == nil {
		return Outcome{Key: key}, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.used[key] = struct{}{}

	outcome, cached := v.cache[key]
	if !cached {
		outcome = Outcome{Key: key}
		for _, locale := range v.locales {
			if !v.catalogs.Has(locale, key) {
				outcome.MissingLocales = append(outcome.MissingLocales, locale)
			}
		}
		v.cache[key] = outcome

		if !outcome.Valid() && !v.failOnMissing {
			v.diags.Warn(Warning{
				Kind:    WarnMissingKey,
				Key:     key,
				Locales: outcome.MissingLocales,
			})
		}
	}

	if !outcome.Valid() && v.failOnMissing {
		return outcome, &MissingKeyError{Key: key, Locales: outcome.MissingLocales}
	}
	return outcome, nil
}

// reportUnused warns once for every catalog key never validated during the
// build. Called at end of build, behind the warn-on-unused switch.
func (v *Validator) reportUnused() {
	if v == nil {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for _, key := range v.catalogs.Keys() {
		if _, ok := v.used[key]; ok {
			continue
		}
		v.diags.Warn(Warning{Kind: WarnUnusedKey, Key: key})
	}
}
