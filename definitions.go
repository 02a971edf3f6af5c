package schema

import "github.com/neume-network/schema/rule"

const (
	// semverPattern is the suggested expression from https://semver.org.
	semverPattern = `^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`
	addressPattern = `^0x[a-fA-F0-9]{40}$`
	txHashPattern  = `^0x[a-fA-F0-9]{64}$`
	audioPattern   = `^audio\/`
)

func str() *rule.Rule {
	return &rule.Rule{Type: rule.Type("string")}
}

func uri() *rule.Rule {
	return &rule.Rule{Type: rule.Type("string"), Format: "uri"}
}

func address() *rule.Rule {
	return &rule.Rule{Type: rule.Type("string"), Pattern: addressPattern}
}

func object(props rule.Properties, required ...string) *rule.Rule {
	return &rule.Rule{Type: rule.Type("object"), Properties: props, Required: required}
}

func arrayOf(item *rule.Rule, minItems int) *rule.Rule {
	r := &rule.Rule{Type: rule.Type("array"), Items: rule.Each(item)}
	if minItems > 0 {
		r.MinItems = rule.Int(minItems)
	}
	return r
}

// catalogue holds the named definitions. Parents embed children through
// spread, a deep copy taken when the parent is defined.
type catalogue struct {
	rules map[string]*rule.Rule
	order []string
}

func (c *catalogue) add(name string, r *rule.Rule) {
	if c.rules == nil {
		c.rules = make(map[string]*rule.Rule)
	}
	c.rules[name] = r
	c.order = append(c.order, name)
}

func (c *catalogue) spread(name string) *rule.Rule {
	r, ok := c.rules[name]
	if !ok {
		panic("schema: spread of undefined rule " + name)
	}
	return r.Clone()
}

func buildCatalogue() *catalogue {
	c := &catalogue{}

	c.add(NameVersion, &rule.Rule{Type: rule.Type("string"), Pattern: semverPattern})

	// https://eips.ethereum.org/EIPS/eip-721
	c.add(NameERC721Metadata, object(rule.Properties{
		rule.Prop("name", str()),
		rule.Prop("description", str()),
		rule.Prop("image", uri()),
	}, "name", "description", "image"))

	c.add(NameTransaction, object(rule.Properties{
		rule.Prop("from", address()),
		rule.Prop("to", address()),
		rule.Prop("blockNumber", &rule.Rule{Type: rule.Type("integer"), Minimum: rule.Float(0)}),
		rule.Prop("transactionHash", &rule.Rule{Type: rule.Type("string"), Pattern: txHashPattern}),
	}, "from", "to", "blockNumber", "transactionHash"))

	c.add(NameToken, object(rule.Properties{
		rule.Prop("id", str()),
		rule.Prop("uri", uri()),
		rule.Prop("owners", arrayOf(c.spread(NameTransaction), 1)),
	}, "id", "uri", "owners"))

	c.add(NameERC721, object(rule.Properties{
		rule.Prop("version", c.spread(NameVersion)),
		rule.Prop("createdAt", &rule.Rule{OneOf: []*rule.Rule{{
			Comment: "Referring to Ethereum block numbers",
			Type:    rule.Type("integer"),
			Minimum: rule.Float(0),
		}}}),
		rule.Prop("owner", &rule.Rule{
			Type:    rule.Type("string"),
			Pattern: addressPattern,
			Comment: "EIP-173 or EIP-5313 owner of the collection's contract.",
		}),
		rule.Prop("address", address()),
		rule.Prop("tokens", arrayOf(c.spread(NameToken), 1)),
		rule.Prop("metadata", c.spread(NameERC721Metadata)),
	}, "version", "createdAt", "address", "tokens", "metadata"))

	c.add(NameArtist, object(rule.Properties{
		rule.Prop("version", c.spread(NameVersion)),
		rule.Prop("name", str()),
	}, "version", "name"))

	c.add(NamePlatform, object(rule.Properties{
		rule.Prop("version", c.spread(NameVersion)),
		rule.Prop("name", str()),
		rule.Prop("uri", uri()),
	}, "version", "name", "uri"))

	c.add(NameManifestation, object(rule.Properties{
		rule.Prop("version", c.spread(NameVersion)),
		rule.Prop("uri", uri()),
		rule.Prop("mimetype", &rule.Rule{Type: rule.Type("string"), Pattern: mimetypePattern}),
	}, "version", "uri", "mimetype"))

	manifestations := arrayOf(c.spread(NameManifestation), 1)
	manifestations.Contains = object(rule.Properties{
		rule.Prop("mimetype", &rule.Rule{Type: rule.Type("string"), Pattern: audioPattern}),
	}, "mimetype")
	c.add(NameManifestations, manifestations)

	c.add(NameTrack, object(rule.Properties{
		rule.Prop("version", c.spread(NameVersion)),
		rule.Prop("title", str()),
		// https://datatracker.ietf.org/doc/html/rfc3339#appendix-A
		rule.Prop("duration", &rule.Rule{Type: rule.Type("string"), Format: "duration"}),
		rule.Prop("artist", c.spread(NameArtist)),
		rule.Prop("platform", c.spread(NamePlatform)),
		rule.Prop("erc721", c.spread(NameERC721)),
		rule.Prop("manifestations", c.spread(NameManifestations)),
	}, "manifestations", "version", "title", "artist", "platform", "erc721"))

	c.add(NameConfig, object(rule.Properties{
		rule.Prop("queue", object(rule.Properties{
			rule.Prop("options", object(rule.Properties{
				rule.Prop("concurrent", &rule.Rule{Type: rule.Type("integer")}),
			}, "concurrent")),
		}, "options")),
		rule.Prop("endpoints", &rule.Rule{
			Type:          rule.Type("object"),
			PropertyNames: &rule.Rule{Format: "uri"},
			PatternProperties: rule.Properties{
				rule.Prop("^.*$", &rule.Rule{
					Type: rule.Type("object"),
					Properties: rule.Properties{
						rule.Prop("requestsPerUnit", &rule.Rule{Type: rule.Type("number")}),
						rule.Prop("unit", &rule.Rule{Enum: []any{"second", "minute", "hour", "day"}}),
						rule.Prop("timeout", &rule.Rule{Type: rule.Type("number")}),
					},
					Dependencies: map[string][]string{
						"requestsPerUnit": {"unit"},
						"unit":            {"requestsPerUnit"},
					},
					AdditionalProperties: rule.Bool(false),
				}),
			},
		}),
	}, "queue"))

	// The first transformer argument is the path of the file it processes.
	step := object(rule.Properties{
		rule.Prop("name", str()),
		rule.Prop("extractor", object(rule.Properties{
			rule.Prop("args", &rule.Rule{Type: rule.Type("array")}),
		})),
		rule.Prop("transformer", object(rule.Properties{
			rule.Prop("args", &rule.Rule{Type: rule.Type("array"), Items: rule.Tuple(str())}),
		})),
	}, "name")
	c.add(NameCrawlPath, arrayOf(arrayOf(step, 0), 1))

	addMessages(c)
	return c
}
