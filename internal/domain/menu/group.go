package menu

import "strings"

// groupOrderDelimiter separates the group bucket from the order hint.
const groupOrderDelimiter = "@"

// ParseGroup splits a "group@order" specifier on its first '@'. Everything
// after that delimiter, further '@' included, is the order. A nil or empty
// field yields the ungrouped bucket with no order. The order is returned as
// given; the host registry interprets it.
func ParseGroup(field *string) (group string, order *string) {
	if field == nil || *field == "" {
		return "", nil
	}

	before, after, found := strings.Cut(*field, groupOrderDelimiter)
	if !found {
		return before, nil
	}
	return before, &after
}
