package localize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLocateFindsEveryPlaceholder(t *testing.T) {
	keys := []string{"greet", "bye", "home.title"}

	var sb strings.Builder
	var want []PlaceholderLocation
	for i, key := range keys {
		sb.WriteString(fmt.Sprintf("var v%d = \"", i))
		start := sb.Len()
		token := EncodeKey(key)
		sb.WriteString(token)
		want = append(want, PlaceholderLocation{Key: key, Start: start, End: start + len(token)})
		sb.WriteString("\";\n")
	}

	result := Locate(sb.String())
	if diff := cmp.Diff(want, result.Strings); diff != "" {
		t.Fatalf("Strings mismatch (-want +got):\n%s", diff)
	}
	if len(result.FileNames) != 0 {
		t.Fatalf("unexpected file name markers: %v", result.FileNames)
	}
}

func TestLocateDiscardsFalsePositives(t *testing.T) {
	// The raw prefix bytes followed by non-decoding content must yield
	// nothing, silently.
	text := "if (x) { " + StringPlaceholderPrefix + "???" + placeholderSuffix + " }"

	result := Locate(text)
	if !result.Empty() {
		t.Fatalf("expected no locations, got %+v", result)
	}
}

func TestLocateDiscardsTruncated(t *testing.T) {
	token := EncodeKey("greet")
	text := "var v = \"" + strings.TrimSuffix(token, placeholderSuffix)

	result := Locate(text)
	if !result.Empty() {
		t.Fatalf("truncated placeholder must be discarded, got %+v", result)
	}
}

func TestLocateFalsePositiveBeforeRealMatch(t *testing.T) {
	// An incidental prefix directly before a genuine token must not mask it.
	text := StringPlaceholderPrefix + "%%" + EncodeKey("greet")

	result := Locate(text)
	if len(result.Strings) != 1 || result.Strings[0].Key != "greet" {
		t.Fatalf("expected the genuine token only, got %+v", result.Strings)
	}
}

func TestLocateFileNamePlaceholders(t *testing.T) {
	text := "import(\"./chunk." + FileNamePlaceholder + ".js\");\nfetch(\"/assets/" + FileNamePlaceholder + "/data.json\");"

	result := Locate(text)
	if len(result.FileNames) != 2 {
		t.Fatalf("expected 2 markers, got %v", result.FileNames)
	}
	for _, start := range result.FileNames {
		if text[start:start+len(FileNamePlaceholder)] != FileNamePlaceholder {
			t.Fatalf("offset %d does not point at a marker", start)
		}
	}
}

func TestLocateMixedPlaceholders(t *testing.T) {
	text := "a(\"" + EncodeKey("greet") + "\", \"" + FileNamePlaceholder + "\");"

	result := Locate(text)
	if len(result.Strings) != 1 || len(result.FileNames) != 1 {
		t.Fatalf("expected one of each, got %+v", result)
	}
}

func TestLocateEmptyText(t *testing.T) {
	if result := Locate(""); !result.Empty() {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
