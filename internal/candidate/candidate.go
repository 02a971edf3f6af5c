// Package candidate reads documents to validate from JSON or YAML sources and
// normalizes them into the value shapes the validator walks.
package candidate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Format is a candidate serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a user supplied format name. An empty name returns
// fallback.
func ParseFormat(name string, fallback Format) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return fallback, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("candidate format: unsupported value %q", name)
}

// FormatFor picks a format from a file extension. Anything that is not YAML
// is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a single document from r.
func Decode(r io.Reader, f Format) (any, error) {
	switch f {
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON, "":
		return decodeJSON(r)
	}
	return nil, fmt.Errorf("decode candidate: unsupported format %q", f)
}

// Load reads the candidate at path, or stdin when path is Stdin. The format
// override wins over the extension when set.
func Load(path string, override Format, stdin io.Reader) (any, error) {
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		f := override
		if f == "" {
			f = FormatJSON
		}
		v, err := Decode(stdin, f)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return v, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidate %s: %w", path, err)
	}
	f := override
	if f == "" {
		f = FormatFor(path)
	}
	v, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("read candidate %s: %w", path, err)
	}
	return v, nil
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after document")
	}
	return v, nil
}

func decodeYAML(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode yaml: empty document")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode yaml: multiple documents")
	}
	return Normalize(v)
}

// Normalize converts decoded YAML into JSON-shaped values: string keyed
// maps, []any, json.Number for numbers and RFC 3339 strings for timestamps.
func Normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, json.Number:
		return val, nil
	case int:
		return json.Number(strconv.Itoa(val)), nil
	case int64:
		return json.Number(strconv.FormatInt(val, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(val, 10)), nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil, fmt.Errorf("number %v has no JSON form", val)
		}
		return json.Number(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", k)
			}
			n, err := Normalize(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}
