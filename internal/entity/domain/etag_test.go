package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestETag_String(t *testing.T) {
	tests := []struct {
		eTag     ETag
		wantETag string
	}{
		{
			eTag:     ETag{Tag: "foo"},
			wantETag: `"foo"`,
		},
		{
			eTag:     ETag{Tag: "bar", Weak: true},
			wantETag: `W/"bar"`,
		},
		{
			eTag:     ETag{Tag: `"baz"`},
			wantETag: `"baz"`,
		},
	}

	for _, test := range tests {
		t.Run(test.wantETag, func(t *testing.T) {
			is := is.New(t)
			is.Equal(test.eTag.String(), test.wantETag)
		})
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  `"0-2jmj7l5rSw0yVb/vlWAYkK/YBwk"`,
		},
		{
			name:  "seed entity",
			input: `{"id":"89d0b04f-41a1-4bd2-8bfb-6ee656843d8b","name":"Evil Buu"}`,
			want:  `"3f-PvFGsFdnzXZeuwFMcp7h0o2+SGc"`,
		},
		{
			name:  "renamed entity",
			input: `{"id":"89d0b04f-41a1-4bd2-8bfb-6ee656843d8b","name":"Goku"}`,
			want:  `"3b-ky0KyWYTLZI64fX9Ci5F/Bxt40w"`,
		},
		{
			name:  "raw line separator",
			input: "{\"id\":\"X\",\"name\":\"a\u2028b\"}",
			want:  `"19-nyhlpaIVt7W+mPwA+Zm3//ynEU8"`,
		},
		{
			name:  "raw paragraph separator",
			input: "{\"id\":\"X\",\"name\":\"a\u2029b\"}",
			want:  `"19-/uljH0nhaX9l9pkJQB7yEqTQdOE"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(Fingerprint([]byte(test.input)).String(), test.want)
		})
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	is := is.New(t)

	e := NewEntity(DefaultSeedID, DefaultSeedName)
	first, err := e.ETag()
	is.NoErr(err)
	second, err := e.ETag()
	is.NoErr(err)

	is.Equal(first, second)
	is.True(!first.Weak)
}

func TestFingerprint_ChangesWithName(t *testing.T) {
	is := is.New(t)

	base := NewEntity(DefaultSeedID, DefaultSeedName)
	baseTag, err := base.ETag()
	is.NoErr(err)

	seen := map[string]bool{baseTag.String(): true}
	for i := 0; i < 100; i++ {
		tag, err := base.WithName(fmt.Sprintf("name-%d", i)).ETag()
		is.NoErr(err)
		is.True(!seen[tag.String()]) // tag collision
		seen[tag.String()] = true
	}
}

func TestFingerprint_HeaderSafe(t *testing.T) {
	is := is.New(t)

	tag, err := NewEntity("id", "line\nbreak\t\u0000").ETag()
	is.NoErr(err)

	for _, r := range tag.String() {
		is.True(r > 0x20 && r < 0x7f) // control or non-ASCII character in tag
	}
}

func TestETag_Matches(t *testing.T) {
	tag := ETag{Tag: "3f-abc"}

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "exact", header: `"3f-abc"`, want: true},
		{name: "empty", header: "", want: false},
		{name: "unquoted", header: "3f-abc", want: false},
		{name: "weak", header: `W/"3f-abc"`, want: false},
		{name: "list", header: `"3f-abc", "other"`, want: false},
		{name: "wildcard", header: "*", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(tag.Matches(test.header), test.want)
		})
	}
}

func TestConflictError(t *testing.T) {
	is := is.New(t)

	current := NewEntity("id", "Goku")
	tag, err := current.ETag()
	is.NoErr(err)

	var err2 error = &ConflictError{Expected: `"stale"`, Current: current, ETag: tag}
	is.True(errors.Is(err2, ErrPreconditionFailed))

	var conflict *ConflictError
	is.True(errors.As(err2, &conflict))
	is.Equal(conflict.Current, current)
}
