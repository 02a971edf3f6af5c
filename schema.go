// Package schema defines the neume network data contracts: music tracks and
// their provenance, crawler configuration and worker messages. Definitions are
// declarative rule trees that export as JSON Schema draft-07 documents and
// compile into validators producing ordered diagnostics.
package schema

//go:generate go run ./cmd/neume-schema mimetypes --out mimetypes_gen.go --package schema

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/neume-network/schema/errors"
	"github.com/neume-network/schema/internal/validator"
	"github.com/neume-network/schema/rule"
)

// ErrUnknownSchema is returned when a definition name is not registered.
var ErrUnknownSchema = stderrors.New("unknown schema")

// Schema wraps a compiled definition with convenience methods.
type Schema struct {
	name string
	rule *rule.Rule
	v    *validator.Validator
}

// Compile compiles the named definition.
func Compile(name string, opts ...CompileOption) (*Schema, error) {
	r, ok := Definition(name)
	if !ok {
		return nil, fmt.Errorf("compile schema %s: %w", name, ErrUnknownSchema)
	}
	s, err := compileRule(name, r, opts)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return s, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(name string, opts ...CompileOption) *Schema {
	s, err := Compile(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// CompileRule compiles an arbitrary rule tree. The rule is copied, so later
// edits to r do not affect the returned schema.
func CompileRule(r *rule.Rule, opts ...CompileOption) (*Schema, error) {
	if r == nil {
		return nil, fmt.Errorf("compile schema: nil rule")
	}
	return compileRule("", r.Clone(), opts)
}

func compileRule(name string, r *rule.Rule, opts []CompileOption) (*Schema, error) {
	cfg := resolveOptions(opts)
	v, err := validator.New(r, validator.Options{Formats: cfg.formats, FailFast: cfg.failFast})
	if err != nil {
		return nil, err
	}
	return &Schema{name: name, rule: r, v: v}, nil
}

// Name returns the definition name, empty for schemas built by CompileRule.
func (s *Schema) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Rule returns a copy of the compiled rule tree.
func (s *Schema) Rule() *rule.Rule {
	if s == nil {
		return nil
	}
	return s.rule.Clone()
}

// Check evaluates a JSON-shaped value and returns the diagnostics in
// evaluation order.
func (s *Schema) Check(value any) (bool, errors.ValidationList) {
	if s == nil || s.v == nil {
		return false, errors.ValidationList{errors.NewValidation(errors.ErrSchemaNotLoaded, "schema not loaded", "")}
	}
	out := s.v.Validate(value)
	return len(out) == 0, out
}

// ValidateValue validates value. Values that are not already JSON-shaped
// (structs, typed maps and slices) are round-tripped through encoding/json
// first. The returned error is an errors.ValidationList when the value does
// not conform.
func (s *Schema) ValidateValue(value any) error {
	if !isJSONShaped(value) {
		normalized, err := normalize(value)
		if err != nil {
			return errors.ValidationList{errors.NewValidation(errors.ErrDecode, err.Error(), "")}
		}
		value = normalized
	}
	if ok, out := s.Check(value); !ok {
		return out
	}
	return nil
}

// Validate validates a JSON document.
func (s *Schema) Validate(r io.Reader) error {
	if s == nil || s.v == nil {
		return errors.ValidationList{errors.NewValidation(errors.ErrSchemaNotLoaded, "schema not loaded", "")}
	}
	if r == nil {
		return errors.ValidationList{errors.NewValidation(errors.ErrDecode, "nil reader", "")}
	}
	value, err := decodeJSON(r)
	if err != nil {
		return errors.ValidationList{errors.NewValidation(errors.ErrDecode, err.Error(), "")}
	}
	if ok, out := s.Check(value); !ok {
		return out
	}
	return nil
}

// ValidateFile validates a JSON file.
func (s *Schema) ValidateFile(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open json file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close json file %s: %w", path, closeErr)
		}
	}()

	return s.Validate(f)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json: trailing data after document")
	}
	return value, nil
}

func normalize(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	return decodeJSON(bytes.NewReader(data))
}

func isJSONShaped(value any) bool {
	switch v := value.(type) {
	case nil, bool, string, float64, json.Number:
		return true
	case []any:
		for _, item := range v {
			if !isJSONShaped(item) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, item := range v {
			if !isJSONShaped(item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
