package localize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCatalogs indicates the build was configured without any locale catalogs.
var ErrNoCatalogs = errors.New("localize: no locale catalogs configured")

// ErrLocaleSegmentMissing indicates a file name template that cannot produce
// distinguishable per-locale outputs.
var ErrLocaleSegmentMissing = errors.New("localize: file name template is missing the [locale] segment")

// ErrInvalidSourceMap marks a source map payload that could not be decoded.
var ErrInvalidSourceMap = errors.New("localize: invalid source map")

// MissingKeyError aborts the build when the fail-on-missing policy is set.
type MissingKeyError struct {
	Key     string
	Locales []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("localize: key %q is missing from locales [%s]", e.Key, strings.Join(e.Locales, ", "))
}
