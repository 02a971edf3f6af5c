package worker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/neume-network/schema"
)

var messageSchema = sync.OnceValues(func() (*schema.Schema, error) {
	return schema.Compile(schema.NameMessage)
})

// Decode validates data against the message definition and unmarshals it
// into the variant selected by its type tag. Validation failures are returned
// as an errors.ValidationList.
func Decode(data []byte) (Message, error) {
	s, err := messageSchema()
	if err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	if err := s.Validate(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	var msg Message
	switch head.Type {
	case KindHTTPS:
		msg, err = unmarshal[HTTPS](data)
	case KindGraphQL:
		msg, err = unmarshal[GraphQL](data)
	case KindJSONRPC:
		msg, err = unmarshal[JSONRPC](data)
	case KindIPFS:
		msg, err = unmarshal[IPFS](data)
	case KindArweave:
		msg, err = unmarshal[Arweave](data)
	case KindExit:
		msg, err = unmarshal[Exit](data)
	default:
		return nil, fmt.Errorf("decode message: unhandled type %q", head.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s message: %w", head.Type, err)
	}
	return msg, nil
}

func unmarshal[T Message](data []byte) (Message, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode marshals m with its type tag set from m.Kind and validates the
// result against the message definition.
func Encode(m Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("encode message: nil message")
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Kind(), err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Kind(), err)
	}
	tag, err := json.Marshal(m.Kind())
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Kind(), err)
	}
	fields["type"] = tag
	if data, err = json.Marshal(fields); err != nil {
		return nil, fmt.Errorf("encode %s message: %w", m.Kind(), err)
	}

	s, err := messageSchema()
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	if err := s.Validate(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// NewExit returns the shutdown sentinel for the given message version.
func NewExit(version string) Exit {
	return Exit{Type: KindExit, Version: version}
}
