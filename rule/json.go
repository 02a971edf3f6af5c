package rule

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes properties as an object in declaration order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, fmt.Errorf("encode property name %q: %w", prop.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if prop.Rule == nil {
			buf.WriteString("{}")
			continue
		}
		val, err := json.Marshal(prop.Rule)
		if err != nil {
			return nil, fmt.Errorf("encode property %q: %w", prop.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keeping document order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode properties: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode properties: expected object, got %v", tok)
	}

	var out Properties
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode properties: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode properties: expected name, got %v", tok)
		}
		r := new(Rule)
		if err := dec.Decode(r); err != nil {
			return fmt.Errorf("decode property %q: %w", name, err)
		}
		out = append(out, Property{Name: name, Rule: r})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode properties: %w", err)
	}
	*p = out
	return nil
}

// MarshalJSON encodes a single type as a string and several as an array.
func (t Types) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts a string or an array of strings.
func (t *Types) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = Types{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("decode type: %w", err)
	}
	*t = Types(many)
	return nil
}

// MarshalJSON encodes the single-rule form as an object and the tuple form as an array.
func (it Items) MarshalJSON() ([]byte, error) {
	if it.Tuple != nil {
		return json.Marshal(it.Tuple)
	}
	if it.Each == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(it.Each)
}

// UnmarshalJSON accepts either items form.
func (it *Items) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tuple []*Rule
		if err := json.Unmarshal(trimmed, &tuple); err != nil {
			return fmt.Errorf("decode items: %w", err)
		}
		*it = Items{Tuple: tuple}
		return nil
	}
	each := new(Rule)
	if err := json.Unmarshal(trimmed, each); err != nil {
		return fmt.Errorf("decode items: %w", err)
	}
	*it = Items{Each: each}
	return nil
}

// Parse decodes a JSON rule document.
func Parse(data []byte) (*Rule, error) {
	r := new(Rule)
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rule: %w", err)
	}
	return r, nil
}
