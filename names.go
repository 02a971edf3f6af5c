package schema

import (
	"cmp"
	"slices"

	"github.com/neume-network/schema/rule"
)

// Stable definition names. They key the bundle export and Compile.
const (
	NameVersion        = "version"
	NameERC721Metadata = "ERC721Metadata"
	NameTransaction    = "transaction"
	NameToken          = "token"
	NameERC721         = "ERC721"
	NameArtist         = "artist"
	NamePlatform       = "platform"
	NameManifestation  = "manifestation"
	NameManifestations = "manifestations"
	NameTrack          = "track"
	NameConfig         = "config"
	NameCrawlPath      = "crawlPath"
	NameRetry          = "retry"
	NameHTTPS          = "https"
	NameGraphQL        = "graphql"
	NameJSONRPC        = "json-rpc"
	NameIPFS           = "ipfs"
	NameArweave        = "arweave"
	NameExit           = "exit"
	NameMessage        = "message"
)

var descriptions = map[string]string{
	NameVersion:        "semantic version string",
	NameERC721Metadata: "ERC-721 metadata JSON (name, description, image)",
	NameTransaction:    "on-chain transfer of a token",
	NameToken:          "minted token with its ownership history",
	NameERC721:         "ERC-721 collection a track was minted in",
	NameArtist:         "artist credited on a track",
	NamePlatform:       "platform a track was published on",
	NameManifestation:  "one retrievable rendition of a work",
	NameManifestations: "non-empty list of manifestations with at least one audio entry",
	NameTrack:          "music track aggregate",
	NameConfig:         "crawler configuration",
	NameCrawlPath:      "ordered crawl strategy steps",
	NameRetry:          "retry policy for worker requests",
	NameHTTPS:          "worker message: HTTPS request",
	NameGraphQL:        "worker message: GraphQL request",
	NameJSONRPC:        "worker message: JSON-RPC call",
	NameIPFS:           "worker message: IPFS fetch through a gateway",
	NameArweave:        "worker message: Arweave fetch through a gateway",
	NameExit:           "worker message: shutdown sentinel",
	NameMessage:        "any worker message, dispatched on type",
}

var defs = buildCatalogue()

// Entry describes one named definition.
type Entry struct {
	Name        string
	Description string
}

// Names returns every definition name in definition order.
func Names() []string {
	return slices.Clone(defs.order)
}

// Entries returns every definition with its description, sorted by name.
func Entries() []Entry {
	out := make([]Entry, 0, len(defs.order))
	for _, name := range defs.order {
		out = append(out, Entry{Name: name, Description: descriptions[name]})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Definition returns a copy of the named rule. Callers may modify the copy
// freely.
func Definition(name string) (*rule.Rule, bool) {
	r, ok := defs.rules[name]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// MimetypePattern returns the anchored expression matching every media type
// selected when mimetypes_gen.go was generated.
func MimetypePattern() string {
	return mimetypePattern
}
