package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neume-network/schema/errors"
	"github.com/neume-network/schema/internal/format"
	"github.com/neume-network/schema/rule"
)

func mustNew(t *testing.T, r *rule.Rule, opts ...Options) *Validator {
	t.Helper()
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	v, err := New(r, o)
	require.NoError(t, err)
	return v
}

func decode(t *testing.T, doc string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(doc), &v))
	return v
}

func TestTypeMismatchStopsNode(t *testing.T) {
	v := mustNew(t, &rule.Rule{Type: rule.Type("string"), Format: "uri", Pattern: "^x"})
	got := v.Validate(12.0)
	require.Len(t, got, 1)
	assert.Equal(t, "type", got[0].Keyword)
	assert.Equal(t, "string", got[0].Params["type"])
	assert.Equal(t, "#/type", got[0].SchemaPath)
}

func TestIntegerAndNullableTypes(t *testing.T) {
	v := mustNew(t, &rule.Rule{Type: rule.Type("integer", "null")})
	assert.Nil(t, v.Validate(3.0))
	assert.Nil(t, v.Validate(json.Number("42")))
	assert.Nil(t, v.Validate(7))
	assert.Nil(t, v.Validate(nil))
	got := v.Validate(2.5)
	require.Len(t, got, 1)
	assert.Equal(t, "must be integer,null", got[0].Message)
}

func TestRequiredAndPropertiesOrder(t *testing.T) {
	r := &rule.Rule{
		Type: rule.Type("object"),
		Properties: rule.Properties{
			rule.Prop("b", &rule.Rule{Type: rule.Type("string")}),
			rule.Prop("a", &rule.Rule{Type: rule.Type("string")}),
		},
		Required: []string{"c", "d"},
	}
	v := mustNew(t, r)
	got := v.Validate(decode(t, `{"a": 1, "b": 2}`))
	require.Len(t, got, 4)
	assert.Equal(t, []string{"required", "required", "type", "type"}, got.Keywords())
	assert.Equal(t, "c", got[0].Params["missingProperty"])
	assert.Equal(t, "/b", got[2].InstancePath)
	assert.Equal(t, "/a", got[3].InstancePath)
	assert.Equal(t, "#/properties/b/type", got[2].SchemaPath)
}

func TestFailFastReportsFirstOnly(t *testing.T) {
	r := &rule.Rule{Type: rule.Type("object"), Required: []string{"a", "b"}}
	v := mustNew(t, r, Options{FailFast: true})
	got := v.Validate(map[string]any{})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Params["missingProperty"])
}

func TestFormatAndPattern(t *testing.T) {
	r := &rule.Rule{
		Type: rule.Type("object"),
		Properties: rule.Properties{
			rule.Prop("gateway", &rule.Rule{Type: rule.Type("string"), Format: "uri", Pattern: "^https?://[^/]+/(ipfs|ipns)/"}),
		},
	}
	v := mustNew(t, r)
	assert.Nil(t, v.Validate(decode(t, `{"gateway": "https://ipfs.io/ipfs/"}`)))

	got := v.Validate(decode(t, `{"gateway": "bitcoin://abc"}`))
	require.Len(t, got, 1)
	assert.Equal(t, "pattern", got[0].Keyword)
	assert.Equal(t, "/gateway", got[0].InstancePath)

	got = v.Validate(decode(t, `{"gateway": "not a uri"}`))
	require.Len(t, got, 2)
	assert.Equal(t, []string{"format", "pattern"}, got.Keywords())
	assert.Equal(t, "uri", got[0].Params["format"])
}

func TestUnknownFormatIsCompileError(t *testing.T) {
	_, err := New(&rule.Rule{Format: "email"}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "email"`)
}

func TestInvalidPatternIsCompileError(t *testing.T) {
	_, err := New(&rule.Rule{Pattern: "("}, Options{})
	require.Error(t, err)
	_, err = New(&rule.Rule{PatternProperties: rule.Properties{rule.Prop("[", &rule.Rule{})}}, Options{})
	require.Error(t, err)
}

func TestUnknownTypeIsCompileError(t *testing.T) {
	_, err := New(&rule.Rule{Type: rule.Type("float")}, Options{})
	require.Error(t, err)
}

func TestNilRule(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)

	var v *Validator
	got := v.Validate("x")
	require.Len(t, got, 1)
	assert.Equal(t, string(errors.ErrSchemaNotLoaded), got[0].Keyword)
}

func TestCustomFormats(t *testing.T) {
	v := mustNew(t, &rule.Rule{Format: "even"}, Options{Formats: format.Registry{
		"even": func(s string) bool { return len(s)%2 == 0 },
	}})
	assert.Nil(t, v.Validate("ab"))
	assert.NotNil(t, v.Validate("abc"))
}

func TestConstEnumMinimum(t *testing.T) {
	r := &rule.Rule{
		Type: rule.Type("object"),
		Properties: rule.Properties{
			rule.Prop("type", &rule.Rule{Const: "ipfs"}),
			rule.Prop("unit", &rule.Rule{Enum: []any{"second", "minute", "hour", "day"}}),
			rule.Prop("blockNumber", &rule.Rule{Type: rule.Type("integer"), Minimum: rule.Float(0)}),
			rule.Prop("name", &rule.Rule{Type: rule.Type("string"), MinLength: rule.Int(2)}),
		},
	}
	v := mustNew(t, r)
	assert.Nil(t, v.Validate(decode(t, `{"type":"ipfs","unit":"hour","blockNumber":0,"name":"ab"}`)))

	got := v.Validate(decode(t, `{"type":"arweave","unit":"week","blockNumber":-1,"name":"a"}`))
	assert.Equal(t, []string{"const", "enum", "minimum", "minLength"}, got.Keywords())
	assert.Equal(t, "must be >= 0", got[2].Message)
}

func TestArrayKeywords(t *testing.T) {
	r := &rule.Rule{
		Type:     rule.Type("array"),
		MinItems: rule.Int(1),
		Items:    rule.Each(&rule.Rule{Type: rule.Type("object"), Required: []string{"mimetype"}}),
		Contains: &rule.Rule{
			Properties: rule.Properties{rule.Prop("mimetype", &rule.Rule{Type: rule.Type("string"), Pattern: `^audio\/`})},
			Required:   []string{"mimetype"},
		},
	}
	v := mustNew(t, r)

	got := v.Validate([]any{})
	assert.Equal(t, []string{"minItems", "contains"}, got.Keywords())

	got = v.Validate(decode(t, `[{"mimetype":"video/mp4"}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "contains", got[0].Keyword)
	assert.Equal(t, "", got[0].InstancePath)
	assert.Equal(t, "#/contains", got[0].SchemaPath)

	assert.Nil(t, v.Validate(decode(t, `[{"mimetype":"video/mp4"},{"mimetype":"audio/mp3"}]`)))

	got = v.Validate(decode(t, `[{"mimetype":"audio/mp3"},{}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "/1", got[0].InstancePath)
}

func TestTupleItems(t *testing.T) {
	r := &rule.Rule{Type: rule.Type("array"), Items: rule.Tuple(&rule.Rule{Type: rule.Type("string")})}
	v := mustNew(t, r)
	assert.Nil(t, v.Validate(decode(t, `["path/to/file", 1, true]`)))
	got := v.Validate(decode(t, `[1234, 1234]`))
	require.Len(t, got, 1)
	assert.Equal(t, "/0", got[0].InstancePath)
	assert.Equal(t, "must be string", got[0].Message)
}

func TestPatternPropertiesPropertyNamesDependencies(t *testing.T) {
	r := &rule.Rule{
		Type:          rule.Type("object"),
		PropertyNames: &rule.Rule{Format: "uri"},
		PatternProperties: rule.Properties{
			rule.Prop("^.*$", &rule.Rule{
				Type: rule.Type("object"),
				Properties: rule.Properties{
					rule.Prop("requestsPerUnit", &rule.Rule{Type: rule.Type("number")}),
					rule.Prop("unit", &rule.Rule{Enum: []any{"second"}}),
				},
				Dependencies: map[string][]string{
					"requestsPerUnit": {"unit"},
					"unit":            {"requestsPerUnit"},
				},
				AdditionalProperties: rule.Bool(false),
			}),
		},
	}
	v := mustNew(t, r)
	assert.Nil(t, v.Validate(decode(t, `{"https://a.example":{"requestsPerUnit":1,"unit":"second"}}`)))

	got := v.Validate(decode(t, `{"https://a.example":{"requestsPerUnit":1,"extra":true}}`))
	assert.Equal(t, []string{"additionalProperties", "dependencies"}, got.Keywords())
	assert.Equal(t, "/https:~1~1a.example", got[0].InstancePath)
	assert.Equal(t, "extra", got[0].Params["additionalProperty"])
	assert.Equal(t, "unit", got[1].Params["missingProperty"])

	got = v.Validate(decode(t, `{"not a uri":{}}`))
	assert.Equal(t, []string{"format", "propertyNames"}, got.Keywords())
	assert.Equal(t, "not a uri", got[1].Params["propertyName"])
}

func variant(tag string, required ...string) *rule.Rule {
	return &rule.Rule{
		Type: rule.Type("object"),
		Properties: rule.Properties{
			rule.Prop("type", &rule.Rule{Const: tag}),
			rule.Prop("url", &rule.Rule{Type: rule.Type("string")}),
		},
		Required: append([]string{"type"}, required...),
	}
}

func TestOneOf(t *testing.T) {
	r := &rule.Rule{OneOf: []*rule.Rule{variant("a", "url"), variant("b")}}
	v := mustNew(t, r)
	assert.Nil(t, v.Validate(decode(t, `{"type":"a","url":"x"}`)))

	got := v.Validate(decode(t, `{"type":"c"}`))
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, "oneOf", last.Keyword)
	assert.Nil(t, last.Params["passingSchemas"])

	both := mustNew(t, &rule.Rule{OneOf: []*rule.Rule{{Type: rule.Type("string")}, {MinLength: rule.Int(1)}}})
	got = both.Validate("x")
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 1}, got[0].Params["passingSchemas"])
}

func TestDiscriminator(t *testing.T) {
	r := &rule.Rule{
		Type:          rule.Type("object"),
		Discriminator: &rule.Discriminator{PropertyName: "type"},
		OneOf:         []*rule.Rule{variant("a", "url"), variant("b")},
		Required:      []string{"type"},
	}
	v := mustNew(t, r)
	assert.Nil(t, v.Validate(decode(t, `{"type":"b"}`)))

	got := v.Validate(decode(t, `{"type":"a"}`))
	require.Len(t, got, 1)
	assert.Equal(t, "required", got[0].Keyword)
	assert.Equal(t, "#/oneOf/0/required", got[0].SchemaPath)

	got = v.Validate(decode(t, `{"type":"zzz"}`))
	require.Len(t, got, 1)
	assert.Equal(t, "discriminator", got[0].Keyword)
	assert.Equal(t, "mapping", got[0].Params["error"])

	got = v.Validate(decode(t, `{"type":1}`))
	require.Len(t, got, 1)
	assert.Equal(t, "tag", got[0].Params["error"])
}

func TestDiscriminatorCompileErrors(t *testing.T) {
	_, err := New(&rule.Rule{Discriminator: &rule.Discriminator{PropertyName: "type"}}, Options{})
	require.Error(t, err)

	_, err = New(&rule.Rule{
		Discriminator: &rule.Discriminator{PropertyName: "type"},
		OneOf:         []*rule.Rule{variant("a"), variant("a")},
	}, Options{})
	require.Error(t, err)

	_, err = New(&rule.Rule{
		Discriminator: &rule.Discriminator{PropertyName: "type"},
		OneOf:         []*rule.Rule{{Type: rule.Type("object")}},
	}, Options{})
	require.Error(t, err)
}

func TestDeterministicOrdering(t *testing.T) {
	r := &rule.Rule{
		Type:                 rule.Type("object"),
		AdditionalProperties: rule.Bool(false),
	}
	doc := decode(t, `{"z":1,"a":2,"m":3,"b":4}`)
	first := mustNew(t, r).Validate(doc)
	for range 10 {
		again := mustNew(t, r).Validate(doc)
		require.Equal(t, first, again)
	}
	params := make([]string, len(first))
	for i, d := range first {
		params[i] = d.Param("additionalProperty")
	}
	assert.Equal(t, []string{"a", "b", "m", "z"}, params)
}

func TestEqual(t *testing.T) {
	assert.True(t, equal(1, 1.0))
	assert.True(t, equal(json.Number("2"), 2.0))
	assert.True(t, equal(map[string]any{"a": []any{1.0}}, map[string]any{"a": []any{1}}))
	assert.False(t, equal(map[string]any{"a": 1}, map[string]any{"b": 1}))
	assert.False(t, equal("1", 1))
	assert.True(t, equal(nil, nil))
}
