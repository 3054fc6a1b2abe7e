package localize

import "fmt"

// defaultFunctionName is the call expression treated as a translation
// request when no names are configured.
const defaultFunctionName = "__"

// Config captures the localization setup for one build. It is consumed once,
// at construction, and read-only afterwards.
type Config struct {
	Catalogs          *CatalogSet
	Locales           []string
	FunctionNames     []string
	FailOnMissing     bool
	WarnOnUnused      bool
	SourceMapLocales  []string
	FileNameTemplates []string

	loader    Loader
	diags     *Diagnostics
	validator *Validator
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds and validates a Config. Configuration errors are fatal
// and abort before any compilation proceeds.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{diags: NewDiagnostics()}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Catalogs == nil && cfg.loader != nil {
		set, err := NewCatalogSetFromLoader(cfg.loader)
		if err != nil {
			return nil, err
		}
		cfg.Catalogs = set
	}

	if cfg.Catalogs == nil || len(cfg.Catalogs.Locales()) == 0 {
		return nil, ErrNoCatalogs
	}

	if len(cfg.Locales) == 0 {
		cfg.Locales = cfg.Catalogs.Locales()
	} else {
		cfg.Locales = normalizeLocales(cfg.Locales)
		for _, locale := range cfg.Locales {
			if !cfg.Catalogs.hasLocale(locale) {
				return nil, fmt.Errorf("localize: locale %q has no catalog", locale)
			}
		}
	}

	if len(cfg.SourceMapLocales) > 0 {
		cfg.SourceMapLocales = normalizeLocales(cfg.SourceMapLocales)
		configured := make(map[string]struct{}, len(cfg.Locales))
		for _, locale := range cfg.Locales {
			configured[locale] = struct{}{}
		}
		for _, locale := range cfg.SourceMapLocales {
			if _, ok := configured[locale]; !ok {
				return nil, fmt.Errorf("localize: source map locale %q is not a configured locale", locale)
			}
		}
	}

	for _, template := range cfg.FileNameTemplates {
		if err := AssertFileNameTemplate(template, cfg.Locales); err != nil {
			return nil, fmt.Errorf("%w: %q", err, template)
		}
	}

	if len(cfg.FunctionNames) == 0 {
		cfg.FunctionNames = []string{defaultFunctionName}
	}

	cfg.validator = newValidator(cfg)

	return cfg, nil
}

// WithCatalogs registers the locale catalogs for this build.
func WithCatalogs(data Catalogs) Option {
	return func(c *Config) error {
		c.Catalogs = NewCatalogSet(data)
		return nil
	}
}

// WithFlatCatalogs registers the flattened catalog variant: one literal per
// locale, used for every key.
func WithFlatCatalogs(literals map[string]string) Option {
	return func(c *Config) error {
		c.Catalogs = NewFlatCatalogSet(literals)
		return nil
	}
}

// WithLoader defers catalog construction to a Loader.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.loader = loader
		return nil
	}
}

// WithLocales restricts the build to a subset of the catalog locales.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithFunctionNames sets the call expressions that request a string key.
func WithFunctionNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			if name == "" {
				continue
			}
			c.FunctionNames = append(c.FunctionNames, name)
		}
		return nil
	}
}

// WithFailOnMissing makes a missing catalog key abort the build instead of
// recording a warning.
func WithFailOnMissing() Option {
	return func(c *Config) error {
		c.FailOnMissing = true
		return nil
	}
}

// WithWarnOnUnused reports catalog keys never referenced by compiled code.
func WithWarnOnUnused() Option {
	return func(c *Config) error {
		c.WarnOnUnused = true
		return nil
	}
}

// WithFileNameTemplates registers the host's output file name templates
// (top-level and chunk names) so their [locale] segment is asserted before
// the build proceeds. A multi-locale build cannot produce distinguishable
// outputs without it and aborts at construction.
func WithFileNameTemplates(templates ...string) Option {
	return func(c *Config) error {
		c.FileNameTemplates = append(c.FileNameTemplates, templates...)
		return nil
	}
}

// WithSourceMapLocales narrows which locales receive source maps.
func WithSourceMapLocales(locales ...string) Option {
	return func(c *Config) error {
		c.SourceMapLocales = append(c.SourceMapLocales, locales...)
		return nil
	}
}

// MultiLocale reports whether placeholders are in play for this build.
func (cfg *Config) MultiLocale() bool {
	return cfg != nil && len(cfg.Locales) > 1
}

// MapLocales returns the locales whose artifacts carry source maps. Defaults
// to every configured locale.
func (cfg *Config) MapLocales() []string {
	if cfg == nil {
		return nil
	}
	if len(cfg.SourceMapLocales) > 0 {
		out := make([]string, len(cfg.SourceMapLocales))
		copy(out, cfg.SourceMapLocales)
		return out
	}
	out := make([]string, len(cfg.Locales))
	copy(out, cfg.Locales)
	return out
}

// IsTranslationFunction reports whether a call expression name requests a
// string key.
func (cfg *Config) IsTranslationFunction(name string) bool {
	if cfg == nil {
		return false
	}
	for _, candidate := range cfg.FunctionNames {
		if candidate == name {
			return true
		}
	}
	return false
}

// Diagnostics exposes the warning collector shared by every phase of the
// build.
func (cfg *Config) Diagnostics() *Diagnostics {
	if cfg == nil {
		return nil
	}
	return cfg.diags
}

// Validator exposes the per-key validation cache.
func (cfg *Config) Validator() *Validator {
	if cfg == nil {
		return nil
	}
	return cfg.validator
}

// Finish runs end-of-build reporting. Hosts call it once, after the last
// compilation and localization work has completed.
func (cfg *Config) Finish() {
	if cfg == nil {
		return
	}
	if cfg.WarnOnUnused {
		cfg.validator.reportUnused()
	}
}
