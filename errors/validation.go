package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Keyword names the constraint kind a diagnostic reports. Schema keywords use
// their JSON Schema spelling so diagnostics line up with exported rule trees.
type Keyword string

const (
	// ErrSchemaNotLoaded indicates validation was attempted without a compiled schema.
	ErrSchemaNotLoaded Keyword = "schema-not-loaded"
	// ErrDecode indicates the candidate document could not be decoded.
	ErrDecode Keyword = "decode"

	// KeywordType indicates the value has the wrong JSON type.
	KeywordType Keyword = "type"
	// KeywordConst indicates the value differs from the required constant.
	KeywordConst Keyword = "const"
	// KeywordEnum indicates the value is not one of the allowed values.
	KeywordEnum Keyword = "enum"
	// KeywordFormat indicates a string failed a named format check.
	KeywordFormat Keyword = "format"
	// KeywordPattern indicates a string did not match a regular expression.
	KeywordPattern Keyword = "pattern"
	// KeywordMinLength indicates a string is shorter than allowed.
	KeywordMinLength Keyword = "minLength"
	// KeywordMinimum indicates a number is below the lower bound.
	KeywordMinimum Keyword = "minimum"
	// KeywordMinItems indicates an array has fewer items than allowed.
	KeywordMinItems Keyword = "minItems"
	// KeywordContains indicates no array item matched the contains rule.
	KeywordContains Keyword = "contains"
	// KeywordRequired indicates a required property is missing.
	KeywordRequired Keyword = "required"
	// KeywordPropertyNames indicates a property name failed its rule.
	KeywordPropertyNames Keyword = "propertyNames"
	// KeywordAdditionalProperties indicates an undeclared property is present.
	KeywordAdditionalProperties Keyword = "additionalProperties"
	// KeywordDependencies indicates a property is present without its companions.
	KeywordDependencies Keyword = "dependencies"
	// KeywordOneOf indicates zero or several oneOf branches matched.
	KeywordOneOf Keyword = "oneOf"
	// KeywordDiscriminator indicates the union tag is missing or unknown.
	KeywordDiscriminator Keyword = "discriminator"
)

// Validation describes one schema violation: the failing instance location,
// the keyword that rejected it and keyword-specific parameters.
//
//nolint:errname // public API name mirrors validator error objects.
type Validation struct {
	Keyword      string         `json:"keyword"`
	Message      string         `json:"message"`
	InstancePath string         `json:"instancePath"`
	SchemaPath   string         `json:"schemaPath,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Keywords returns the keyword of every entry in order.
func (v ValidationList) Keywords() []string {
	out := make([]string, len(v))
	for i := range v {
		out[i] = v[i].Keyword
	}
	return out
}

// Error formats the validation for display, including keyword, message and path.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Keyword, v.Message))
	if v.InstancePath != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.InstancePath))
	}
	if v.SchemaPath != "" {
		b.WriteString(fmt.Sprintf(" (schema: %s)", v.SchemaPath))
	}
	return b.String()
}

// Param returns a parameter as a string, or "" when absent.
func (v *Validation) Param(name string) string {
	if v == nil || v.Params == nil {
		return ""
	}
	val, ok := v.Params[name]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// NewValidation builds a Validation with a keyword, message, and optional path.
func NewValidation(keyword Keyword, msg, path string) Validation {
	return Validation{Keyword: string(keyword), Message: msg, InstancePath: path}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(keyword Keyword, path, format string, args ...any) Validation {
	return NewValidation(keyword, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation errors from an error returned by validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
