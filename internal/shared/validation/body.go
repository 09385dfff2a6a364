package validation

import (
	"encoding/json"
)

// ObjectSchema describes a JSON object body: the string properties it
// must carry and whether any other property is tolerated.
type ObjectSchema struct {
	Required                  []string
	AllowAdditionalProperties bool
}

// wholeValue is the problems key used for problems about the body itself.
const wholeValue = ""

// DecodeText reports the problem with a plain text body: it is read as a
// string, which is never an object.
func (s ObjectSchema) DecodeText(body []byte) error {
	return NewValidationError(map[string]string{
		wholeValue: "must be object",
	}, "body")
}

// DecodeObject checks body against s and returns the required string
// properties. Problems are reported as a *ValidationError rooted at "body".
func (s ObjectSchema) DecodeObject(body []byte) (map[string]string, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewValidationError(map[string]string{
			wholeValue: "must be valid JSON",
		}, "body")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, NewValidationError(map[string]string{
			wholeValue: "must be object",
		}, "body")
	}

	problems := make(map[string]string)
	values := make(map[string]string, len(s.Required))
	required := make(map[string]bool, len(s.Required))

	for _, field := range s.Required {
		required[field] = true

		v, exists := obj[field]
		if !exists {
			problems[field] = "is required"
			continue
		}
		str, ok := v.(string)
		if !ok {
			problems[field] = "must be string"
			continue
		}
		values[field] = str
	}

	if !s.AllowAdditionalProperties {
		for field := range obj {
			if !required[field] {
				problems[field] = "is not allowed"
			}
		}
	}

	if len(problems) > 0 {
		return nil, NewValidationError(problems, "body")
	}
	return values, nil
}
