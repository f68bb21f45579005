package codec

import gojson "github.com/goccy/go-json"

// GoJSON is the Default codec, backed by github.com/goccy/go-json.
//
// Output is byte-for-byte compatible with JSON for element sequences, so a
// snapshot written with either codec decodes with the other.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return "go-json" }
