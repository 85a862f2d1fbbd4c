// Package jsonenc selects the JSON codec used for cache persistence and the
// export utilities. The stdlib encoder is the default; goccy is available for
// callers that want the faster encoder.
package jsonenc

import (
	stdjson "encoding/json"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Codec marshals and unmarshals JSON documents.
type Codec interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// New returns the codec registered under name ("stdlib" or "goccy").
func New(name string) (Codec, error) {
	switch name {
	case "", "stdlib":
		return stdlibCodec{}, nil
	case "goccy":
		return goccyCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown json codec %q", name)
	}
}

type stdlibCodec struct{}

func (stdlibCodec) Marshal(v any) ([]byte, error) { return stdjson.Marshal(v) }
func (stdlibCodec) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return stdjson.MarshalIndent(v, prefix, indent)
}
func (stdlibCodec) Unmarshal(data []byte, v any) error { return stdjson.Unmarshal(data, v) }

type goccyCodec struct{}

func (goccyCodec) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }
func (goccyCodec) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}
func (goccyCodec) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
