package localize

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	base := []Option{WithCatalogs(Catalogs{
		"en": {"greet": "Hello", "bye": "Bye"},
		"fr": {"greet": "Bonjour"},
	})}
	cfg, err := NewConfig(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func TestValidateKeyPresentEverywhere(t *testing.T) {
	cfg := newTestConfig(t)

	outcome, err := cfg.Validator().Validate("greet")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !outcome.Valid() {
		t.Fatalf("expected valid outcome, missing %v", outcome.MissingLocales)
	}
	if len(cfg.Diagnostics().Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", cfg.Diagnostics().Warnings())
	}
}

func TestValidateMissingKeyWarnsOnce(t *testing.T) {
	cfg := newTestConfig(t)

	for i := 0; i < 3; i++ {
		outcome, err := cfg.Validator().Validate("bye")
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if diff := cmp.Diff([]string{"fr"}, outcome.MissingLocales); diff != "" {
			t.Fatalf("MissingLocales mismatch (-want +got):\n%s", diff)
		}
	}

	warnings := cfg.Diagnostics().Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning for repeated key, got %d", len(warnings))
	}
	if warnings[0].Kind != WarnMissingKey || warnings[0].Key != "bye" {
		t.Fatalf("unexpected warning: %+v", warnings[0])
	}
}

func TestValidateFailOnMissing(t *testing.T) {
	cfg := newTestConfig(t, WithFailOnMissing())

	_, err := cfg.Validator().Validate("bye")
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
	if missing.Key != "bye" || len(missing.Locales) != 1 || missing.Locales[0] != "fr" {
		t.Fatalf("unexpected error detail: %+v", missing)
	}

	// The cached outcome keeps failing on reuse and records no warning.
	if _, err := cfg.Validator().Validate("bye"); err == nil {
		t.Fatal("repeated validation must keep failing")
	}
	if len(cfg.Diagnostics().Warnings()) != 0 {
		t.Fatalf("fail-fast must not also warn: %v", cfg.Diagnostics().Warnings())
	}
}

func TestValidateUnknownKey(t *testing.T) {
	cfg := newTestConfig(t)

	outcome, err := cfg.Validator().Validate("farewell")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "fr"}, outcome.MissingLocales); diff != "" {
		t.Fatalf("MissingLocales mismatch (-want +got):\n%s", diff)
	}
}

func TestReportUnusedKeys(t *testing.T) {
	cfg := newTestConfig(t, WithWarnOnUnused())

	if _, err := cfg.Validator().Validate("greet"); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cfg.Finish()

	var unused []string
	for _, w := range cfg.Diagnostics().Warnings() {
		if w.Kind == WarnUnusedKey {
			unused = append(unused, w.Key)
		}
	}
	if diff := cmp.Diff([]string{"bye"}, unused); diff != "" {
		t.Fatalf("unused keys mismatch (-want +got):\n%s", diff)
	}
}

func TestReportUnusedDisabledByDefault(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Finish()

	if warnings := cfg.Diagnostics().Warnings(); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}
