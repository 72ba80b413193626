package props

import "unique"

// Key identifies a property. Keys shaped like identifiers are interned so
// that the many lookups of a render share one canonical copy.
type Key struct {
	handle unique.Handle[string]
	raw    string
}

// NewKey returns the canonical key for name.
func NewKey(name string) Key {
	if isIdentifier(name) {
		return Key{handle: unique.Make(name)}
	}
	return Key{raw: name}
}

// String returns the key text.
func (k Key) String() string {
	if k.raw != "" || k.handle == (unique.Handle[string]{}) {
		return k.raw
	}
	return k.handle.Value()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
