package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURI(t *testing.T) {
	valid := []string{
		"https://example.com/song",
		"https://www.sound.xyz",
		"ipfs://Qme7ss3ARVgxv6rXqVPiikMJ8u2NLgmgszg13pYrDKEoiu",
		"ar://ltmVC0dpe7_KxFHj0-S7mdvXSfmcJOec4_OfjwSzLRk/1",
		"bitcoin://abc",
		"mailto:someone@example.com",
		"https://eth-mainnet.alchemyapi.io",
	}
	for _, s := range valid {
		assert.True(t, URI(s), s)
	}

	invalid := []string{
		"",
		"false formatting",
		"arweave.net/",
		"/relative/path",
		"1http://example.com",
		"https://example.com:/x",
	}
	for _, s := range invalid {
		assert.False(t, URI(s), s)
	}
}

func TestURIReference(t *testing.T) {
	assert.True(t, URIReference("/relative/path"))
	assert.True(t, URIReference("https://example.com"))
	assert.False(t, URIReference("has space"))
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	for _, name := range []string{"uri", "uri-reference", "duration", "date-time", "date", "uuid", "hostname", "regex"} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok := reg.Lookup("email")
	assert.False(t, ok)

	duration, _ := reg.Lookup("duration")
	assert.True(t, duration("PT2M1S"))
	assert.False(t, duration("invalid duration"))
}

func TestScalarFormats(t *testing.T) {
	assert.True(t, DateTime("2022-03-01T10:00:00Z"))
	assert.False(t, DateTime("2022-03-01"))
	assert.True(t, Date("2022-03-01"))
	assert.False(t, Date("2022-13-01"))
	assert.True(t, UUID("0f8fad5b-d9cb-469f-a165-70867728950e"))
	assert.False(t, UUID("urn:uuid:0f8fad5b-d9cb-469f-a165-70867728950e"))
	assert.True(t, Hostname("ipfs.io"))
	assert.False(t, Hostname("-bad-.io"))
	assert.True(t, Regex("^audio"))
	assert.False(t, Regex("("))
}
