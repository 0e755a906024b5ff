package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message turns a binding error into a single readable sentence. It returns
// false when err carries no validator field errors (malformed JSON, for one).
func Message(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", false
	}
	e := verrs[0]
	return describeTag(jsonName(e), e.Tag(), e.Param()), true
}

// RequiredFields reports whether err failed only on the given required fields
func RequiredFields(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return false
	}
	for _, e := range verrs {
		if e.Tag() != "required" {
			return false
		}
	}
	return true
}

func describeTag(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required."
	case "gte":
		return field + " must be at least " + param + "."
	case "lte":
		return field + " must be at most " + param + "."
	case "email":
		return field + " must be a valid email address."
	case "oneof":
		return field + " must be one of: " + param + "."
	default:
		return field + " validation failed: " + tag + "."
	}
}

// jsonName maps the Go field name to the snake_case key clients send.
func jsonName(e validator.FieldError) string {
	var b strings.Builder
	name := e.Field()
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' && !(name[i-1] >= 'A' && name[i-1] <= 'Z') {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
