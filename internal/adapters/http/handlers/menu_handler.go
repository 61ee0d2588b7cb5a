package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/domain"
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// MenuHandler serves read-only views of locations and the host menu tree.
type MenuHandler struct {
	resolver ports.LocationResolver
	reader   ports.MenuReader
}

// NewMenuHandler creates a new MenuHandler. reader may be nil when the menu
// tree lives in a remote host; GetMenu is then not routed.
func NewMenuHandler(resolver ports.LocationResolver, reader ports.MenuReader) *MenuHandler {
	return &MenuHandler{resolver: resolver, reader: reader}
}

// CanReadMenus reports whether the host menu tree is readable.
func (h *MenuHandler) CanReadMenus() bool {
	return h.reader != nil
}

// ListLocations handles GET /api/v1/locations.
func (h *MenuHandler) ListLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToLocationListResponse(h.resolver))
}

// GetMenu handles GET /api/v1/menus?path=a/b or ?location=editor/context.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	path, err := h.menuPath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()
	writeJSON(w, http.StatusOK, dto.ToMenuResponse(path, h.reader.Actions(ctx, path), h.reader.Groups(ctx, path)))
}

func (h *MenuHandler) menuPath(r *http.Request) (menu.Path, error) {
	q := r.URL.Query()

	if token := q.Get("location"); token != "" {
		path, ok := h.resolver.Resolve(token)
		if !ok {
			return nil, fmt.Errorf("location %q: %w", token, domain.ErrUnknownLocation)
		}
		return path, nil
	}

	if !q.Has("path") {
		return nil, &domain.ValidationError{
			Fields: map[string]string{"path": "path or location is required"},
		}
	}
	return menu.ParsePath(q.Get("path")), nil
}
