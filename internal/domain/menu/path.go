package menu

import "strings"

// pathSeparator joins segments in the textual form of a Path.
const pathSeparator = "/"

// Segments are opaque and may themselves contain the separator, so the
// textual form escapes "%" and "/" inside each segment.
var (
	segmentEscaper   = strings.NewReplacer("%", "%25", "/", "%2F")
	segmentUnescaper = strings.NewReplacer("%2F", "/", "%2f", "/", "%25", "%")
)

// Path is an ordered sequence of opaque segment identifiers locating a
// position in the host menu tree.
type Path []string

// ParsePath is the inverse of Path.String. An empty string yields an empty path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	segments := strings.Split(s, pathSeparator)
	for i, seg := range segments {
		segments[i] = segmentUnescaper.Replace(seg)
	}
	return Path(segments)
}

// Child returns a new path with segment appended. The receiver is never
// aliased, so sibling children built from the same parent stay independent.
func (p Path) Child(segment string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, segment)
}

// Equal reports whether both paths have the same segments in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the escaped segments with "/".
func (p Path) String() string {
	escaped := make([]string, len(p))
	for i, seg := range p {
		escaped[i] = segmentEscaper.Replace(seg)
	}
	return strings.Join(escaped, pathSeparator)
}
