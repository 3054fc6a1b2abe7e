package localize

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	keys := []string{
		"greet",
		"home.title",
		"hello world",
		"with\"quotes\"",
		"back\\slash",
		"line\nbreak",
		"dollar$sign",
		"ключ.приветствие",
		"挨拶",
		"emoji 🌍 key",
	}

	for _, key := range keys {
		token := EncodeKey(key)
		got, ok := DecodeKey(token)
		if !ok || got != key {
			t.Fatalf("DecodeKey(EncodeKey(%q)) = %q,%v", key, got, ok)
		}
	}
}

func TestEncodeKeyTokenShape(t *testing.T) {
	token := EncodeKey("dollar$sign")

	if !strings.HasPrefix(token, StringPlaceholderPrefix) {
		t.Fatalf("token %q missing prefix %q", token, StringPlaceholderPrefix)
	}
	if strings.Count(token, placeholderSuffix) != 1 || !strings.HasSuffix(token, placeholderSuffix) {
		t.Fatalf("suffix delimiter must appear exactly once, at the end: %q", token)
	}
	if strings.ContainsAny(token, "\"\\\n") {
		t.Fatalf("token %q is not safe inside a string literal", token)
	}
}

func TestEncodeKeyDeterministic(t *testing.T) {
	if EncodeKey("greet") != EncodeKey("greet") {
		t.Fatal("tokens for the same key must be byte-identical")
	}
}

func TestDecodeKeyRejectsInvalid(t *testing.T) {
	tests := []string{
		"",
		"not a token",
		StringPlaceholderPrefix + placeholderSuffix,         // empty payload
		StringPlaceholderPrefix + "???" + placeholderSuffix, // bad alphabet
		StringPlaceholderPrefix + "Z0FjZQ",                  // missing suffix
		strings.TrimSuffix(EncodeKey("greet"), placeholderSuffix), // truncated
		"x" + EncodeKey("greet"), // leading garbage
	}

	for _, token := range tests {
		if got, ok := DecodeKey(token); ok {
			t.Fatalf("DecodeKey(%q) = %q, want invalid", token, got)
		}
	}
}

func TestFileNamePlaceholderDistinct(t *testing.T) {
	if strings.HasPrefix(FileNamePlaceholder, StringPlaceholderPrefix) {
		t.Fatal("file name placeholder must not collide with the string-key family")
	}
	if FileNamePlaceholder != ResolveFileName(LocaleSegment, []string{"en", "fr"}) {
		t.Fatal("multi-locale file name resolution must use the fixed marker")
	}
}
