package localize

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Placeholder tokens are the wire format between the compile phase and the
// late rewrite pass. The prefix is derived from a fixed salt so that tokens
// for the same key are byte-identical wherever they recur within a build,
// and so that the prefix bytes have no practical chance of appearing in
// ordinary code by accident.
const (
	placeholderSalt   = "go-localize/placeholder"
	placeholderSuffix = "$"

	// saltDigestLen is the number of hex characters kept from the salt hash.
	saltDigestLen = 12
)

var (
	// StringPlaceholderPrefix opens a string-key placeholder token. The key
	// payload follows, terminated by the suffix delimiter.
	StringPlaceholderPrefix = "@i18n." + saltDigest(placeholderSalt) + "."

	// FileNamePlaceholder stands in for the [locale] file name segment when
	// more than one locale is configured. It is fixed width and carries no
	// payload: the segment is always simply the locale name.
	FileNamePlaceholder = "@i18n." + saltDigest(placeholderSalt+"/filename") + placeholderSuffix
)

func saltDigest(salt string) string {
	sum := sha1.Sum([]byte(salt))
	return hex.EncodeToString(sum[:])[:saltDigestLen]
}

// EncodeKey wraps a string key into a placeholder token safe to embed as the
// content of a string literal. The payload is a base64 (raw URL alphabet)
// transform of the key, so arbitrary displayable text round-trips and the
// suffix delimiter can never occur inside the payload.
func EncodeKey(key string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(key))
	return StringPlaceholderPrefix + payload + placeholderSuffix
}

// DecodeKey recovers the string key from a full placeholder token. It returns
// ok=false for anything that does not round-trip through EncodeKey; callers
// probing candidate spans must treat that as "not a placeholder", not as an
// error.
func DecodeKey(token string) (string, bool) {
	if !strings.HasPrefix(token, StringPlaceholderPrefix) || !strings.HasSuffix(token, placeholderSuffix) {
		return "", false
	}
	payload := token[len(StringPlaceholderPrefix) : len(token)-len(placeholderSuffix)]
	return decodeKeyPayload(payload)
}

func decodeKeyPayload(payload string) (string, bool) {
	if payload == "" {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	// Reject non-canonical payloads: decode must be the exact inverse of
	// encode over the full key alphabet.
	if base64.RawURLEncoding.EncodeToString(raw) != payload {
		return "", false
	}
	return string(raw), true
}
