package dataview

import "strings"

// sanitizeKey maps an object key to a valid XML Name (spec §4.3 "Key
// sanitization"). It returns the sanitized name and whether it differs from
// the original key (callers store the original in a key attribute only when
// it does).
func sanitizeKey(key string) (name string, changed bool) {
	if key == "" {
		return "_", true
	}
	var b strings.Builder
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9', r == '.', r == '-':
			if i == 0 {
				b.WriteByte('_')
				b.WriteRune(r)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteByte('_')
		}
	}
	name = b.String()
	return name, name != key
}
