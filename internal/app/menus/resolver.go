package menus

import (
	"sort"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// Compile-time check that Resolver implements ports.LocationResolver.
var _ ports.LocationResolver = (*Resolver)(nil)

// Resolver maps location tokens to host menu paths over a closed table.
type Resolver struct {
	table map[string]menu.Path
}

// NewResolver copies table so the caller cannot extend the resolver later.
func NewResolver(table map[string]menu.Path) *Resolver {
	cp := make(map[string]menu.Path, len(table))
	for token, path := range table {
		cp[token] = append(menu.Path(nil), path...)
	}
	return &Resolver{table: cp}
}

// Resolve returns the path for token. Unknown tokens return (nil, false).
// The returned path is a copy.
func (r *Resolver) Resolve(token string) (menu.Path, bool) {
	path, ok := r.table[token]
	if !ok {
		return nil, false
	}
	return append(menu.Path(nil), path...), true
}

// Tokens returns every known token in sorted order.
func (r *Resolver) Tokens() []string {
	tokens := make([]string, 0, len(r.table))
	for token := range r.table {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// TableFromConfig converts configured segment lists into menu paths.
func TableFromConfig(locations map[string][]string) map[string]menu.Path {
	table := make(map[string]menu.Path, len(locations))
	for token, segments := range locations {
		table[token] = append(menu.Path(nil), segments...)
	}
	return table
}
