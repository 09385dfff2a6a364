package application

import "mime"

// Media types accepted for POST bodies.
const (
	MediaTypeJSON = "application/json"
	MediaTypeText = "text/plain"
)

// MediaType returns the media type of a Content-Type header value without
// its parameters, or "" when the value does not parse.
func MediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

// SupportedMediaType reports whether a POST body of this media type can be decoded.
func SupportedMediaType(mediaType string) bool {
	return mediaType == MediaTypeJSON || mediaType == MediaTypeText
}
