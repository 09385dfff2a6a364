package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type ValidationError struct {
	Path     string
	Problems map[string]string
}

func NewValidationError(problems map[string]string, path ...string) *ValidationError {
	return &ValidationError{strings.Join(path, "."), problems}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation errors found in '%s':\n", e.Path)
	for _, field := range e.Fields() {
		fmt.Fprintf(&b, "  %s: %s\n", field, e.Problems[field])
	}
	return b.String()
}

func (e *ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Fields returns the fields with problems in sorted order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Message summarizes the first problem as "<path>/<field> <problem>", or
// "<path> <problem>" when the problem is about the whole value.
func (e *ValidationError) Message() string {
	fields := e.Fields()
	if len(fields) == 0 {
		return e.Path + " is invalid"
	}

	field := fields[0]
	subject := e.Path
	if field != "" {
		subject = subject + "/" + field
	}
	return subject + " " + e.Problems[field]
}

func (e *ValidationError) PrependPath(path string) *ValidationError {
	e.Path = fmt.Sprint(path, ".", e.Path)
	return e
}

type Validator interface {
	// Returns a map of field and human readable explanation of what's wrong
	Valid(ctx context.Context) (problems map[string]string)
}

// Validate runs v and wraps any problems in a ValidationError at path.
func Validate(ctx context.Context, v Validator, path ...string) error {
	problems := v.Valid(ctx)
	if len(problems) > 0 {
		return NewValidationError(problems, path...)
	}
	return nil
}
