package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Mesh values marshal cleanly: data arrays carry a type discriminator so a
// decoded mesh round-trips with the same concrete array types. For custom
// encodings (e.g. protobuf/msgpack), implement Codec and pass it wherever
// a Codec is accepted.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
var Default Codec = JSON{}
