package component

import "strings"

// Separator joins hierarchical identifiers: "<unit>_<element>_<member>".
// Identifiers may themselves contain the separator; resolvers disambiguate
// by the longest known prefix.
const Separator = "_"

// Path is a parsed hierarchical address: the separator-split segments of an
// identifier, in order. A nil Path addresses the receiving component itself.
type Path []string

// Parse splits a flat identifier into its Path segments.
// Parse("") returns nil. Complexity: O(len(id)).
func Parse(id string) Path {
	if id == "" {
		return nil
	}

	return strings.Split(id, Separator)
}

// String joins the segments back into the flat identifier form.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Prefixed returns name with prefix prepended per the framework naming
// convention, "<prefix>_<name>". A name already carrying that exact prefix
// is returned unchanged, which keeps prefixing idempotent when a component
// is mounted more than once.
func Prefixed(prefix, name string) string {
	full := prefix + Separator
	if strings.HasPrefix(name, full) {
		return name
	}

	return full + name
}
