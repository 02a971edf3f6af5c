package schema

import (
	"encoding/json"
	"fmt"

	"github.com/neume-network/schema/rule"
)

const (
	// DraftURI identifies the JSON Schema dialect of every exported document.
	DraftURI = "http://json-schema.org/draft-07/schema#"
	// BundleID is the $id of the aggregated export.
	BundleID = "https://neume.network/schema/all.json"
)

// Bundle aggregates every definition under its stable name.
//
// The message definition carries the OpenAPI style "discriminator" keyword
// next to its oneOf. It is not part of draft-07: Ajv accepts it only with the
// discriminator option enabled (new Ajv({discriminator: true})), and strict
// mode rejects it otherwise. Every branch declares its tag as a required
// const property, as that option expects.
type Bundle struct {
	Schema      string                `json:"$schema"`
	ID          string                `json:"$id"`
	Definitions map[string]*rule.Rule `json:"definitions"`
}

// All returns a freshly copied bundle of every definition.
func All() Bundle {
	b := Bundle{
		Schema:      DraftURI,
		ID:          BundleID,
		Definitions: make(map[string]*rule.Rule, len(defs.order)),
	}
	for _, name := range defs.order {
		b.Definitions[name] = defs.rules[name].Clone()
	}
	return b
}

// MarshalIndent renders the bundle as indented JSON. Definitions are keyed
// in sorted order and properties keep their declared order, so the output is
// stable across runs.
func (b Bundle) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}
	return append(data, '\n'), nil
}

// Document renders one named definition as a standalone draft-07 document.
// The message document needs a consumer that understands "discriminator";
// see Bundle.
func Document(name string) ([]byte, error) {
	r, ok := Definition(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	doc := struct {
		Schema string `json:"$schema"`
		*rule.Rule
	}{Schema: DraftURI, Rule: r}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return append(data, '\n'), nil
}
