// Package validator wraps go-playground/validator with the field naming and
// message formats used by the certified copies API: violations are reported
// against snake_case json paths with Java-bean-style constraint messages
// ("must not be null", "must be greater than or equal to 1", ...).
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Violation is a single constraint violation keyed by its json path.
type Violation struct {
	// Field is the leaf field name (json tag), e.g. "quantity".
	Field string
	// Path is the full snake_case json path from the request root,
	// e.g. "item_options.filing_history_documents[0].filing_history_id".
	Path string
	// Message is the human-readable constraint message.
	Message string
}

// Violations converts a validation error into a slice of Violations in
// struct declaration order (the order the validator evaluates fields).
// Returns nil for nil or non-validation errors.
func Violations(err error) []Violation {
	var ve validator.ValidationErrors
	if err == nil || !isValidationErrors(err, &ve) {
		return nil
	}
	out := make([]Violation, 0, len(ve))
	for _, e := range ve {
		out = append(out, Violation{
			Field:   e.Field(),
			Path:    fieldPath(e),
			Message: violationMessage(e),
		})
	}
	return out
}

// SortedViolations returns Violations sorted by json path for deterministic
// output regardless of evaluation order.
func SortedViolations(err error) []Violation {
	vs := Violations(err)
	sort.Slice(vs, func(i, j int) bool { return vs[i].Path < vs[j].Path })
	return vs
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

// fieldPath strips the root struct name from the validator namespace, leaving
// the json path of the violated field.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// violationMessage renders the constraint message for a field error in the
// upstream API's message style.
func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must not be null"
	case "gt":
		if e.Kind() == reflect.Slice {
			return "must not be empty"
		}
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "min":
		return fmt.Sprintf("size must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("size must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	default:
		return fmt.Sprintf("failed constraint '%s'", e.Tag())
	}
}
