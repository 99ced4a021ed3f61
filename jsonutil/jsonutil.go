package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// api mirrors encoding/json semantics (sorted map keys, HTML escaping,
// compacted Marshaler output) while keeping sonic's throughput.
var api = sonic.ConfigStd

// numberAPI is api with numbers decoded into any kept as json.Number, so
// integers beyond 2^53 survive a decode.
var numberAPI = sonic.Config{
	EscapeHTML:       true,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
	UseNumber:        true,
}.Froze()

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent is like Marshal but applies prefix and indent to the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// UnmarshalNumbers is like Unmarshal but decodes numbers held in interface
// values as json.Number instead of float64.
func UnmarshalNumbers(data []byte, v any) error {
	return numberAPI.Unmarshal(data, v)
}

// Encode writes the JSON encoding of v to w followed by a newline.
func Encode(w io.Writer, v any) error {
	return api.NewEncoder(w).Encode(v)
}

// Decode reads the next JSON value from r and stores it in v.
func Decode(r io.Reader, v any) error {
	return api.NewDecoder(r).Decode(v)
}

// ToValue converts v into its generic JSON representation (maps, slices,
// strings, json.Number, bool or nil). Numbers keep their exact text. It
// fails when v cannot be encoded.
func ToValue(v any) (any, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := UnmarshalNumbers(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
