package blobstore

import "strings"

// KeyPrefix maps blob names to object keys below a root prefix, for stores
// that keep blobs in a flat key space.
type KeyPrefix string

// NewKeyPrefix returns the KeyPrefix for root. Leading and trailing
// slashes are ignored; an empty root maps names to themselves.
func NewKeyPrefix(root string) KeyPrefix {
	root = strings.Trim(root, "/")
	if root == "" {
		return ""
	}
	return KeyPrefix(root + "/")
}

// Key returns the object key of name.
func (p KeyPrefix) Key(name string) string { return string(p) + name }

// Name returns the blob name of key and whether key lies below p.
func (p KeyPrefix) Name(key string) (string, bool) {
	name, ok := strings.CutPrefix(key, string(p))
	return name, ok && name != ""
}
