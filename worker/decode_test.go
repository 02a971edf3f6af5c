package worker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neume-network/schema/errors"
)

func TestDecodeVariants(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind Kind
	}{
		{
			name: "https",
			doc:  `{"type":"https","version":"0.0.1","options":{"url":"https://api.example.com/tracks","method":"GET","timeout":3000,"retry":{"retries":2}},"results":null,"error":null}`,
			kind: KindHTTPS,
		},
		{
			name: "graphql",
			doc:  `{"type":"graphql","version":"0.0.1","commissioner":"soundxyz","options":{"url":"https://api.thegraph.com/subgraphs/name/x","body":"{ tracks { id } }"}}`,
			kind: KindGraphQL,
		},
		{
			name: "json-rpc",
			doc:  `{"type":"json-rpc","version":"0.0.1","method":"eth_blockNumber","params":[],"options":{"url":"https://cloudflare-eth.com"}}`,
			kind: KindJSONRPC,
		},
		{
			name: "ipfs",
			doc:  `{"type":"ipfs","version":"0.0.1","options":{"uri":"ipfs://QmQNgT6xhpjE7xj4LNXkCMsFx4yJ8aMnRyW5TMR3o8jzMk","gateway":"https://ipfs.io/ipfs/"}}`,
			kind: KindIPFS,
		},
		{
			name: "arweave",
			doc:  `{"type":"arweave","version":"0.0.1","options":{"uri":"ar://1J0cnpPyZ4T3DZKPqjxnvqIWBgAdFaurPZdxUcuGvtc","gateway":"https://arweave.net/"}}`,
			kind: KindArweave,
		},
		{
			name: "exit",
			doc:  `{"type":"exit","version":"0.0.1"}`,
			kind: KindExit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, msg.Kind())
		})
	}
}

func TestDecodeFields(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"https","version":"0.0.1","commissioner":"catalog",` +
		`"options":{"url":"https://api.example.com","method":"POST","body":"{}","headers":{"Content-Type":"application/json"},"retry":{"retries":3}},` +
		`"results":{"ok":true},"error":"timeout"}`))
	require.NoError(t, err)

	req, ok := msg.(HTTPS)
	require.True(t, ok)
	assert.Equal(t, "catalog", req.Commissioner)
	assert.Equal(t, "POST", req.Options.Method)
	assert.Equal(t, "application/json", req.Options.Headers["Content-Type"])
	require.NotNil(t, req.Options.Retry)
	assert.Equal(t, 3, req.Options.Retry.Retries)
	assert.JSONEq(t, `{"ok":true}`, string(req.Results))
	assert.True(t, req.Failed())
	assert.Equal(t, "timeout", *req.Error)

	msg, err = Decode([]byte(`{"type":"json-rpc","version":"0.0.1","method":"eth_getBlockByNumber","params":["0x1",false],"options":{"url":"https://cloudflare-eth.com"}}`))
	require.NoError(t, err)
	call := msg.(JSONRPC)
	assert.Equal(t, "eth_getBlockByNumber", call.Method)
	assert.Equal(t, []any{"0x1", false}, call.Params)
	assert.False(t, call.Failed())
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		keywords []string
	}{
		{
			name:     "bad gateway",
			doc:      `{"type":"ipfs","version":"0.0.1","options":{"uri":"ipfs://Qm","gateway":"https://ipfs.io/"}}`,
			keywords: []string{"pattern"},
		},
		{
			name:     "unknown type",
			doc:      `{"type":"smtp","version":"0.0.1"}`,
			keywords: []string{"discriminator"},
		},
		{
			name:     "exit with payload",
			doc:      `{"type":"exit","version":"0.0.1","commissioner":"x"}`,
			keywords: []string{"additionalProperties"},
		},
		{
			name:     "graphql without body",
			doc:      `{"type":"graphql","version":"0.0.1","options":{"url":"https://api.thegraph.com"}}`,
			keywords: []string{"required"},
		},
		{
			name:     "not json",
			doc:      `{"type":`,
			keywords: []string{"decode"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, msg)
			list, ok := errors.AsValidations(err)
			require.True(t, ok)
			assert.Equal(t, tt.keywords, errors.ValidationList(list).Keywords())
		})
	}
}

func TestEncodeSetsTypeTag(t *testing.T) {
	data, err := Encode(IPFS{
		Envelope: Envelope{Version: "0.0.1"},
		Options: GatewayOptions{
			URI:     "ipfs://QmQNgT6xhpjE7xj4LNXkCMsFx4yJ8aMnRyW5TMR3o8jzMk",
			Gateway: "https://ipfs.io/ipfs/",
		},
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "ipfs", fields["type"])

	msg, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/", msg.(IPFS).Options.Gateway)
}

func TestEncodeValidates(t *testing.T) {
	_, err := Encode(Arweave{
		Envelope: Envelope{Version: "0.0.1"},
		Options:  GatewayOptions{URI: "ar://x", Gateway: "arweave.net"},
	})
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, "/options/gateway", list[0].InstancePath)

	_, err = Encode(nil)
	require.Error(t, err)
}

func TestEncodeExit(t *testing.T) {
	data, err := Encode(NewExit("0.0.1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"exit","version":"0.0.1"}`, string(data))
}
