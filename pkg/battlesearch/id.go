package battlesearch

import "strings"

// ID is a normalized Showdown user id. Equality is the only meaningful
// operation on it.
type ID string

// ToID keeps only ASCII letters and digits from name and lowercases them.
// ToID(ToID(s)) == ToID(s) for every s.
func ToID(name string) ID {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return ID(b.String())
}
