package localize

import "strings"

// PlaceholderLocation is one decoded placeholder occurrence inside a
// specific artifact snapshot. Offsets are byte offsets into that snapshot
// and cover the whole token, prefix through suffix.
type PlaceholderLocation struct {
	Key   string
	Start int
	End   int
}

// ScanResult holds every placeholder found in one artifact's text.
type ScanResult struct {
	// Strings are the decoded string-key placeholders, in text order.
	Strings []PlaceholderLocation
	// FileNames are the start offsets of file name placeholders, in text
	// order. The token is fixed width and carries no payload.
	FileNames []int
}

// Empty reports whether the scan found nothing to rewrite.
func (r ScanResult) Empty() bool {
	return len(r.Strings) == 0 && len(r.FileNames) == 0
}

// Locate scans a finished text artifact for every embedded placeholder. The
// text is treated as an immutable snapshot; concurrent calls on independent
// texts are safe.
//
// Prefix matches that are truncated (no suffix delimiter before end of
// text) or whose span does not decode are discarded silently: arbitrary
// code may coincidentally contain the prefix bytes.
func Locate(text string) ScanResult {
	var result ScanResult

	from := 0
	for {
		idx := strings.Index(text[from:], StringPlaceholderPrefix)
		if idx < 0 {
			break
		}
		start := from + idx
		payloadStart := start + len(StringPlaceholderPrefix)

		rel := strings.Index(text[payloadStart:], placeholderSuffix)
		if rel < 0 {
			// Truncated placeholder at end of text; cannot be rewritten.
			break
		}

		key, ok := decodeKeyPayload(text[payloadStart : payloadStart+rel])
		if !ok {
			from = start + 1
			continue
		}

		end := payloadStart + rel + len(placeholderSuffix)
		result.Strings = append(result.Strings, PlaceholderLocation{
			Key:   key,
			Start: start,
			End:   end,
		})
		from = end
	}

	from = 0
	for {
		idx := strings.Index(text[from:], FileNamePlaceholder)
		if idx < 0 {
			break
		}
		result.FileNames = append(result.FileNames, from+idx)
		from += idx + len(FileNamePlaceholder)
	}

	return result
}
