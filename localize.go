package localize

import (
	"fmt"
	"sort"
	"strings"
)

// LocalizedArtifact is the output of localizing one artifact for one locale.
type LocalizedArtifact struct {
	Name string
	Text string
	Map  *SourceMap
}

// spanEdit replaces text[start:end) with replacement. Spans are computed
// against original offsets and applied as one coherent set over the
// original text, never against re-scanned intermediate text.
type spanEdit struct {
	start       int
	end         int
	replacement string
}

// Localizer rewrites placeholder spans to one locale's content. Localize is
// a pure function of its inputs; a single Localizer may serve every
// (artifact, locale) pair concurrently.
type Localizer struct {
	catalogs *CatalogSet
}

func NewLocalizer(catalogs *CatalogSet) *Localizer {
	return &Localizer{catalogs: catalogs}
}

// Localize builds the locale variant of one artifact. String placeholders
// become the JSON-escaped localized value (the bare key when the locale's
// catalog lacks it), file name placeholders become the locale name. When an
// original map is supplied, a new map is regenerated against the edited
// text, chained to the original so debugging tools still reach authored
// source.
func (l *Localizer) Localize(locale, name string, scan ScanResult, text string, original *SourceMap) (LocalizedArtifact, error) {
	edits := make([]spanEdit, 0, len(scan.Strings)+len(scan.FileNames))

	for _, loc := range scan.Strings {
		value, ok := l.catalogs.Lookup(locale, loc.Key)
		if !ok {
			value = loc.Key
		}
		edits = append(edits, spanEdit{
			start:       loc.Start,
			end:         loc.End,
			replacement: jsonEscape(value),
		})
	}

	for _, start := range scan.FileNames {
		edits = append(edits, spanEdit{
			start:       start,
			end:         start + len(FileNamePlaceholder),
			replacement: locale,
		})
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	localized, err := applyEdits(text, edits)
	if err != nil {
		return LocalizedArtifact{}, err
	}

	out := LocalizedArtifact{Name: name, Text: localized}

	if original != nil {
		remapped, err := rebaseSourceMap(original, text, edits, name)
		if err != nil {
			return LocalizedArtifact{}, err
		}
		out.Map = remapped
	}

	return out, nil
}

func applyEdits(text string, edits []spanEdit) (string, error) {
	var sb strings.Builder
	cursor := 0
	for _, edit := range edits {
		if edit.start < cursor || edit.end > len(text) {
			return "", fmt.Errorf("localize: placeholder span [%d,%d) is out of order or out of range", edit.start, edit.end)
		}
		sb.WriteString(text[cursor:edit.start])
		sb.WriteString(edit.replacement)
		cursor = edit.end
	}
	sb.WriteString(text[cursor:])
	return sb.String(), nil
}

// lineEdit is a spanEdit projected onto its line in the original text.
// Placeholder tokens and their replacements never contain newlines, so
// every edit stays within one line and the map's line structure survives.
type lineEdit struct {
	startCol int
	endCol   int
	delta    int
}

// rebaseSourceMap regenerates the original map for the edited text. Columns
// after an edited span shift by the span's length delta; positions inside a
// replaced span have no finer-grained mapping than the span itself and
// clamp to its start.
func rebaseSourceMap(original *SourceMap, text string, edits []spanEdit, file string) (*SourceMap, error) {
	lines, err := decodeMappings(original.Mappings)
	if err != nil {
		return nil, err
	}

	byLine := make(map[int][]lineEdit)
	line, lineStart := 0, 0
	cursor := 0
	for _, edit := range edits {
		for cursor < edit.start {
			if text[cursor] == '\n' {
				line++
				lineStart = cursor + 1
			}
			cursor++
		}
		byLine[line] = append(byLine[line], lineEdit{
			startCol: edit.start - lineStart,
			endCol:   edit.end - lineStart,
			delta:    len(edit.replacement) - (edit.end - edit.start),
		})
	}

	for i, segments := range lines {
		lineEdits, ok := byLine[i]
		if !ok {
			continue
		}

		next := 0
		shift := 0
		for j := range segments {
			col := segments[j].genCol
			for next < len(lineEdits) && col >= lineEdits[next].endCol {
				shift += lineEdits[next].delta
				next++
			}
			if next < len(lineEdits) && col >= lineEdits[next].startCol {
				segments[j].genCol = lineEdits[next].startCol + shift
				continue
			}
			segments[j].genCol = col + shift
		}
	}

	out := original.clone()
	out.File = file
	out.Mappings = encodeMappings(lines)
	return out, nil
}
