package localize

import "sync"

// WarningKind classifies a non-fatal diagnostic.
type WarningKind string

const (
	// WarnMissingKey: a referenced key is absent from one or more catalogs.
	WarnMissingKey WarningKind = "missing-key"
	// WarnConfusingUsage: a translation call with an unsupported shape was
	// left untransformed.
	WarnConfusingUsage WarningKind = "confusing-usage"
	// WarnUnusedKey: a catalog declares a key never referenced by compiled
	// code.
	WarnUnusedKey WarningKind = "unused-key"
)

// Warning is one non-fatal diagnostic surfaced to the host build.
type Warning struct {
	Kind    WarningKind
	Key     string
	Locales []string
	Source  string
	Message string
}

// Diagnostics accumulates warnings from concurrent compilation and
// localization tasks. Fatal conditions are returned as errors instead and
// never pass through here.
type Diagnostics struct {
	mu       sync.Mutex
	warnings []Warning
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Warn records one warning. Safe for concurrent use.
func (d *Diagnostics) Warn(w Warning) {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.warnings = append(d.warnings, w)
	d.mu.Unlock()
}

// Warnings returns a snapshot of everything recorded so far.
func (d *Diagnostics) Warnings() []Warning {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}
