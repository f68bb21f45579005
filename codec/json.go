package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - JSON is portable and human-readable; snapshots encoded with it can be
//   inspected with any JSON tool once decompressed.
// - Integers beyond 2^53 lose precision when decoded into interface values.
//
// If you need custom encoding, implement Codec and pass it to the snapshot
// or tablestore options.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-written snapshots. Existing snapshots are
// self-describing and are decoded with the codec named in their header.
var Default Codec = GoJSON{}
