package domain

import (
	"crypto/sha1"
	"encoding/base64"
	"strconv"
	"strings"
)

// hashLen is how many base64 characters of the SHA-1 digest are kept.
// 27 characters cover the full 160 bits without the padding.
const hashLen = 27

// ETag represents an entity-tag as specified by RFC 9110, section 8.8.3.
type ETag struct {
	// Tag is the entity-tag's opaque-tag, without the surrounding double-quotes.
	Tag string

	// Weak specifies if this is a weak entity-tag.
	Weak bool
}

// Fingerprint derives a strong entity-tag from a serialized representation.
// The tag has the form <length in hex>-<truncated base64 SHA-1>, so equal
// input always gives an equal tag.
func Fingerprint(b []byte) ETag {
	sum := sha1.Sum(b)
	hash := base64.StdEncoding.EncodeToString(sum[:])[:hashLen]
	return ETag{
		Tag: strconv.FormatInt(int64(len(b)), 16) + "-" + hash,
	}
}

// String renders e as a header value, e.g. "3f-abc" or W/"3f-abc".
func (e ETag) String() string {
	s := e.Tag
	if !strings.HasPrefix(s, `"`) && !strings.HasSuffix(s, `"`) {
		s = `"` + s + `"`
	}
	if e.Weak {
		s = "W/" + s
	}
	return s
}

// Matches reports whether header carries exactly this entity-tag.
// Comparison is on the raw header value; lists and "*" are not interpreted.
func (e ETag) Matches(header string) bool {
	return header != "" && header == e.String()
}
