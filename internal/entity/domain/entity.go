package domain

import (
	"bytes"
	"encoding/json"
)

const (
	DefaultSeedID   = "89d0b04f-41a1-4bd2-8bfb-6ee656843d8b"
	DefaultSeedName = "Evil Buu"
)

// Entity is the single resource served by the API.
// Field order matters: it fixes the key order of the serialized form,
// and the serialized form is what gets fingerprinted.
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewEntity creates an entity with the given id and name
func NewEntity(id, name string) Entity {
	return Entity{
		ID:   id,
		Name: name,
	}
}

// WithName returns a copy of e with the name replaced. The id is kept.
func (e Entity) WithName(name string) Entity {
	e.Name = name
	return e
}

// Marshal returns the canonical JSON form of e: keys in declaration order,
// no HTML escaping, U+2028 and U+2029 left raw, and no trailing newline.
// These are the bytes JSON.stringify produces for the same value.
func (e Entity) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw UTF-8. An escape preceded by an odd number of
// backslashes is a literal "\u2028" in the source string and is kept.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+5 < len(b) && b[i+1] == 'u' && b[i+2] == '2' && b[i+3] == '0' && b[i+4] == '2' &&
			(b[i+5] == '8' || b[i+5] == '9') && precedingBackslashes(b, i)%2 == 0 {
			if b[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, b[i])
	}
	return out
}

func precedingBackslashes(b []byte, i int) int {
	n := 0
	for j := i - 1; j >= 0 && b[j] == '\\'; j-- {
		n++
	}
	return n
}

// ETag fingerprints the canonical form of e.
func (e Entity) ETag() (ETag, error) {
	b, err := e.Marshal()
	if err != nil {
		return ETag{}, err
	}
	return Fingerprint(b), nil
}
