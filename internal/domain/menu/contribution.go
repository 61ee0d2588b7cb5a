package menu

import "sort"

// Item is a single menu item a plugin contributes under a location.
// Group optionally carries "group@order"; nil means ungrouped.
type Item struct {
	Command string
	Group   *string
}

// Contributions maps plugin-declared location tokens to the items contributed
// there. Tokens are not guaranteed to be known; item order is significant.
type Contributions map[string][]Item

// Locations returns the location tokens in sorted order.
func (c Contributions) Locations() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ItemCount returns the total number of items across all locations.
func (c Contributions) ItemCount() int {
	n := 0
	for _, items := range c {
		n += len(items)
	}
	return n
}
