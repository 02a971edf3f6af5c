package schema

import "github.com/neume-network/schema/rule"

// Worker message kinds, the values of the "type" tag.
const (
	KindHTTPS   = "https"
	KindGraphQL = "graphql"
	KindJSONRPC = "json-rpc"
	KindIPFS    = "ipfs"
	KindArweave = "arweave"
	KindExit    = "exit"
)

var httpMethods = []any{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD"}

func kindTag(kind string) *rule.Rule {
	return &rule.Rule{Type: rule.Type("string"), Const: kind}
}

func headers() *rule.Rule {
	return &rule.Rule{
		Type: rule.Type("object"),
		PatternProperties: rule.Properties{
			rule.Prop("^.*$", str()),
		},
	}
}

func timeout() *rule.Rule {
	return &rule.Rule{Type: rule.Type("integer"), Minimum: rule.Float(0)}
}

func gateway(pattern string) *rule.Rule {
	return &rule.Rule{Type: rule.Type("string"), Format: "uri", Pattern: pattern}
}

// envelope lays out the slots every executable message shares. extra
// properties sit between the commissioner and the options.
func (c *catalogue) envelope(kind string, options *rule.Rule, extra rule.Properties, required ...string) *rule.Rule {
	props := rule.Properties{
		rule.Prop("type", kindTag(kind)),
		rule.Prop("version", c.spread(NameVersion)),
		rule.Prop("commissioner", str()),
	}
	props = append(props, extra...)
	props = append(props,
		rule.Prop("options", options),
		rule.Prop("results", &rule.Rule{Type: rule.Type("object", "array", "string", "null")}),
		rule.Prop("error", &rule.Rule{Type: rule.Type("string", "null")}),
	)
	req := append([]string{"type", "version"}, required...)
	req = append(req, "options")
	return object(props, req...)
}

func addMessages(c *catalogue) {
	c.add(NameRetry, object(rule.Properties{
		rule.Prop("retries", &rule.Rule{Type: rule.Type("integer"), Minimum: rule.Float(0)}),
	}, "retries"))

	c.add(NameHTTPS, c.envelope(KindHTTPS, object(rule.Properties{
		rule.Prop("url", uri()),
		rule.Prop("method", &rule.Rule{Type: rule.Type("string"), Enum: httpMethods}),
		rule.Prop("body", str()),
		rule.Prop("headers", headers()),
		rule.Prop("timeout", timeout()),
		rule.Prop("retry", c.spread(NameRetry)),
	}, "url", "method"), nil))

	c.add(NameGraphQL, c.envelope(KindGraphQL, object(rule.Properties{
		rule.Prop("url", uri()),
		rule.Prop("body", str()),
		rule.Prop("headers", headers()),
		rule.Prop("timeout", timeout()),
		rule.Prop("retry", c.spread(NameRetry)),
	}, "url", "body"), nil))

	c.add(NameJSONRPC, c.envelope(KindJSONRPC, object(rule.Properties{
		rule.Prop("url", uri()),
		rule.Prop("headers", headers()),
		rule.Prop("timeout", timeout()),
		rule.Prop("retry", c.spread(NameRetry)),
	}, "url"), rule.Properties{
		rule.Prop("method", str()),
		rule.Prop("params", &rule.Rule{Type: rule.Type("array")}),
	}, "method", "params"))

	c.add(NameIPFS, c.envelope(KindIPFS, object(rule.Properties{
		rule.Prop("uri", uri()),
		rule.Prop("gateway", gateway(`^https?://[^/]+/(ipfs|ipns)/`)),
		rule.Prop("timeout", timeout()),
		rule.Prop("retry", c.spread(NameRetry)),
	}, "uri", "gateway"), nil))

	c.add(NameArweave, c.envelope(KindArweave, object(rule.Properties{
		rule.Prop("uri", uri()),
		rule.Prop("gateway", gateway(`^https?://`)),
		rule.Prop("timeout", timeout()),
		rule.Prop("retry", c.spread(NameRetry)),
	}, "uri", "gateway"), nil))

	exit := object(rule.Properties{
		rule.Prop("type", kindTag(KindExit)),
		rule.Prop("version", c.spread(NameVersion)),
	}, "type", "version")
	exit.AdditionalProperties = rule.Bool(false)
	c.add(NameExit, exit)

	c.add(NameMessage, &rule.Rule{
		Type:          rule.Type("object"),
		Required:      []string{"type"},
		Discriminator: &rule.Discriminator{PropertyName: "type"},
		OneOf: []*rule.Rule{
			c.spread(NameHTTPS),
			c.spread(NameGraphQL),
			c.spread(NameJSONRPC),
			c.spread(NameIPFS),
			c.spread(NameArweave),
			c.spread(NameExit),
		},
	})
}
