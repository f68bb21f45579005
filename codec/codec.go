// Package codec centralizes the encoding of array elements.
//
// Snapshots store the codec name in their header and are decoded with the
// codec of that name, so persisted bytes stay readable after the default
// changes. Renaming a codec is a breaking change.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by the snapshot format, which stores the codec name in its
// header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	case "binary":
		return Binary{}, true
	default:
		return nil, false
	}
}

// Names returns the names of the built-in codecs.
func Names() []string {
	return []string{"binary", "cbor", "go-json", "json"}
}
