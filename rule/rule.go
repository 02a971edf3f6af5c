package rule

// Rule is one node of a declarative validation tree. Field names follow JSON
// Schema draft-07 keywords so a Rule marshals to a document any draft-07
// validator accepts; the zero Rule accepts every value.
type Rule struct {
	Comment              string              `json:"$comment,omitempty"`
	Type                 Types               `json:"type,omitempty"`
	Const                any                 `json:"const,omitempty"`
	Enum                 []any               `json:"enum,omitempty"`
	Format               string              `json:"format,omitempty"`
	Pattern              string              `json:"pattern,omitempty"`
	Minimum              *float64            `json:"minimum,omitempty"`
	MinLength            *int                `json:"minLength,omitempty"`
	MinItems             *int                `json:"minItems,omitempty"`
	Items                *Items              `json:"items,omitempty"`
	Contains             *Rule               `json:"contains,omitempty"`
	Properties           Properties          `json:"properties,omitempty"`
	PatternProperties    Properties          `json:"patternProperties,omitempty"`
	PropertyNames        *Rule               `json:"propertyNames,omitempty"`
	AdditionalProperties *bool               `json:"additionalProperties,omitempty"`
	Dependencies         map[string][]string `json:"dependencies,omitempty"`
	Discriminator        *Discriminator      `json:"discriminator,omitempty"`
	OneOf                []*Rule             `json:"oneOf,omitempty"`
	Required             []string            `json:"required,omitempty"`
}

// Discriminator names the property whose constant value selects a oneOf branch.
type Discriminator struct {
	PropertyName string `json:"propertyName"`
}

// Property is one named entry of an ordered property map.
type Property struct {
	Name string
	Rule *Rule
}

// Prop builds a Property.
func Prop(name string, r *Rule) Property {
	return Property{Name: name, Rule: r}
}

// Properties keeps declaration order, which drives both JSON output and the
// order diagnostics are reported in.
type Properties []Property

// Get returns the rule registered under name.
func (p Properties) Get(name string) (*Rule, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Rule, true
		}
	}
	return nil, false
}

// Names returns the property names in declaration order.
func (p Properties) Names() []string {
	out := make([]string, len(p))
	for i, prop := range p {
		out[i] = prop.Name
	}
	return out
}

// Items is either a single rule applied to every element or a tuple of rules
// applied by position.
type Items struct {
	Each  *Rule
	Tuple []*Rule
}

// Each applies r to every array element.
func Each(r *Rule) *Items {
	return &Items{Each: r}
}

// Tuple applies rules to the leading array elements by position.
func Tuple(rules ...*Rule) *Items {
	return &Items{Tuple: rules}
}

// Types is the "type" keyword. A single entry encodes as a bare string.
type Types []string

// Type builds a Types value.
func Type(names ...string) Types {
	return Types(names)
}

// Has reports whether name is listed.
func (t Types) Has(name string) bool {
	for _, n := range t {
		if n == name {
			return true
		}
	}
	return false
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}
