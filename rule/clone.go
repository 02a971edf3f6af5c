package rule

import "maps"

// Clone returns a deep copy of r. Definitions embed sub-rules through Clone so
// later edits to a shared rule never reach a parent that already captured it.
func (r *Rule) Clone() *Rule {
	if r == nil {
		return nil
	}
	out := *r
	out.Type = cloneStrings(r.Type)
	out.Const = cloneValue(r.Const)
	if r.Enum != nil {
		out.Enum = make([]any, len(r.Enum))
		for i, v := range r.Enum {
			out.Enum[i] = cloneValue(v)
		}
	}
	if r.Minimum != nil {
		out.Minimum = Float(*r.Minimum)
	}
	if r.MinLength != nil {
		out.MinLength = Int(*r.MinLength)
	}
	if r.MinItems != nil {
		out.MinItems = Int(*r.MinItems)
	}
	if r.AdditionalProperties != nil {
		out.AdditionalProperties = Bool(*r.AdditionalProperties)
	}
	out.Items = r.Items.clone()
	out.Contains = r.Contains.Clone()
	out.PropertyNames = r.PropertyNames.Clone()
	out.Properties = r.Properties.clone()
	out.PatternProperties = r.PatternProperties.clone()
	if r.Dependencies != nil {
		out.Dependencies = make(map[string][]string, len(r.Dependencies))
		for k, deps := range r.Dependencies {
			out.Dependencies[k] = cloneStrings(deps)
		}
	}
	if r.Discriminator != nil {
		d := *r.Discriminator
		out.Discriminator = &d
	}
	out.OneOf = cloneRules(r.OneOf)
	out.Required = cloneStrings(r.Required)
	return &out
}

func (p Properties) clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for i, prop := range p {
		out[i] = Property{Name: prop.Name, Rule: prop.Rule.Clone()}
	}
	return out
}

func (it *Items) clone() *Items {
	if it == nil {
		return nil
	}
	return &Items{Each: it.Each.Clone(), Tuple: cloneRules(it.Tuple)}
}

func cloneRules(rules []*Rule) []*Rule {
	if rules == nil {
		return nil
	}
	out := make([]*Rule, len(rules))
	for i, r := range rules {
		out[i] = r.Clone()
	}
	return out
}

func cloneStrings[S ~[]string](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := maps.Clone(val)
		for k, inner := range out {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
