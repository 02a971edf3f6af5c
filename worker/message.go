// Package worker provides typed worker messages. Each variant mirrors one
// branch of the message definition and round-trips through Decode and Encode.
package worker

import (
	"encoding/json"

	"github.com/neume-network/schema"
)

// Kind is the value of a message's "type" tag.
type Kind string

const (
	KindHTTPS   Kind = schema.KindHTTPS
	KindGraphQL Kind = schema.KindGraphQL
	KindJSONRPC Kind = schema.KindJSONRPC
	KindIPFS    Kind = schema.KindIPFS
	KindArweave Kind = schema.KindArweave
	KindExit    Kind = schema.KindExit
)

// Message is implemented by every variant.
type Message interface {
	Kind() Kind
}

// Envelope carries the fields shared by executable messages. Results and
// Error stay empty until a worker has run the request.
type Envelope struct {
	Type         Kind            `json:"type"`
	Version      string          `json:"version"`
	Commissioner string          `json:"commissioner,omitempty"`
	Results      json.RawMessage `json:"results,omitempty"`
	Error        *string         `json:"error,omitempty"`
}

// Failed reports whether the worker recorded an error.
func (e Envelope) Failed() bool {
	return e.Error != nil
}

// Retry configures how often a failed request is repeated.
type Retry struct {
	Retries int `json:"retries"`
}

// RequestOptions are the transport options shared by URL based requests.
type RequestOptions struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Timeout int               `json:"timeout,omitempty"`
	Retry   *Retry            `json:"retry,omitempty"`
}

// HTTPSOptions configures an HTTPS request.
type HTTPSOptions struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Body    string            `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Timeout int               `json:"timeout,omitempty"`
	Retry   *Retry            `json:"retry,omitempty"`
}

// GraphQLOptions configures a GraphQL request. Body holds the query document.
type GraphQLOptions struct {
	URL     string            `json:"url"`
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
	Timeout int               `json:"timeout,omitempty"`
	Retry   *Retry            `json:"retry,omitempty"`
}

// GatewayOptions configures a content fetch through an IPFS or Arweave gateway.
type GatewayOptions struct {
	URI     string `json:"uri"`
	Gateway string `json:"gateway"`
	Timeout int    `json:"timeout,omitempty"`
	Retry   *Retry `json:"retry,omitempty"`
}

// HTTPS is a plain HTTPS request.
type HTTPS struct {
	Envelope
	Options HTTPSOptions `json:"options"`
}

// GraphQL is a GraphQL query.
type GraphQL struct {
	Envelope
	Options GraphQLOptions `json:"options"`
}

// JSONRPC is an Ethereum style JSON-RPC call.
type JSONRPC struct {
	Envelope
	Method  string         `json:"method"`
	Params  []any          `json:"params"`
	Options RequestOptions `json:"options"`
}

// IPFS fetches content addressed data through an IPFS gateway.
type IPFS struct {
	Envelope
	Options GatewayOptions `json:"options"`
}

// Arweave fetches a transaction's data through an Arweave gateway.
type Arweave struct {
	Envelope
	Options GatewayOptions `json:"options"`
}

// Exit asks a worker to shut down.
type Exit struct {
	Type    Kind   `json:"type"`
	Version string `json:"version"`
}

func (HTTPS) Kind() Kind   { return KindHTTPS }
func (GraphQL) Kind() Kind { return KindGraphQL }
func (JSONRPC) Kind() Kind { return KindJSONRPC }
func (IPFS) Kind() Kind    { return KindIPFS }
func (Arweave) Kind() Kind { return KindArweave }
func (Exit) Kind() Kind    { return KindExit }
