package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/mocks"
)

func newContributionHandler(t *testing.T) (*handlers.ContributionHandler, *mocks.MockContributionService) {
	t.Helper()
	svc := mocks.NewMockContributionService(t)
	return handlers.NewContributionHandler(svc), svc
}

func contributionRequest(t *testing.T, pluginID string, body any) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plugins/"+url.PathEscape(pluginID)+"/menus", jsonBody(t, body))
	return withChiParams(req, map[string]string{"pluginId": pluginID})
}

func TestContributeMenus_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newContributionHandler(t)

	want := menu.Contributions{
		"editor/context": {
			{Command: "file.open", Group: stringPtr("navigation@1")},
			{Command: "file.close"},
		},
		"bogus/location": {{Command: "noop"}},
	}
	svc.EXPECT().HandleMenus(mock.Anything, "acme.tools", want).Once()

	rec := httptest.NewRecorder()
	h.ContributeMenus(rec, contributionRequest(t, "acme.tools", map[string]any{
		"editor/context": []map[string]any{
			{"command": "file.open", "group": "navigation@1"},
			{"command": "file.close"},
		},
		"bogus/location": []map[string]any{{"command": "noop"}},
	}))

	requireStatus(t, rec, http.StatusAccepted)
	resp := decodeJSON[dto.ContributionAcceptedResponse](t, rec)
	if resp.Plugin != "acme.tools" {
		t.Errorf("Plugin = %q, want %q", resp.Plugin, "acme.tools")
	}
	if resp.Locations != 2 {
		t.Errorf("Locations = %d, want 2", resp.Locations)
	}
	if resp.Items != 3 {
		t.Errorf("Items = %d, want 3", resp.Items)
	}
}

func TestContributeMenus_EmptySet(t *testing.T) {
	t.Parallel()
	h, svc := newContributionHandler(t)

	svc.EXPECT().HandleMenus(mock.Anything, "p", menu.Contributions{}).Once()

	rec := httptest.NewRecorder()
	h.ContributeMenus(rec, contributionRequest(t, "p", map[string]any{}))

	requireStatus(t, rec, http.StatusAccepted)
}

func TestContributeMenus_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newContributionHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plugins/p/menus", bytes.NewBufferString("{not json"))
	req = withChiParams(req, map[string]string{"pluginId": "p"})

	rec := httptest.NewRecorder()
	h.ContributeMenus(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestContributeMenus_MissingCommandDoesNotRejectSiblings(t *testing.T) {
	t.Parallel()
	h, svc := newContributionHandler(t)

	want := menu.Contributions{
		"editor/context":   {{Command: "file.open", Group: stringPtr("navigation@1")}},
		"explorer/context": {{Command: ""}},
	}
	svc.EXPECT().HandleMenus(mock.Anything, "p", want).Once()

	rec := httptest.NewRecorder()
	h.ContributeMenus(rec, contributionRequest(t, "p", map[string]any{
		"editor/context":   []map[string]any{{"command": "file.open", "group": "navigation@1"}},
		"explorer/context": []map[string]any{{"command": ""}},
	}))

	requireStatus(t, rec, http.StatusAccepted)
	resp := decodeJSON[dto.ContributionAcceptedResponse](t, rec)
	if resp.Items != 2 {
		t.Errorf("Items = %d, want 2", resp.Items)
	}
}

func TestContributeMenus_BlankPluginID(t *testing.T) {
	t.Parallel()
	h, _ := newContributionHandler(t)

	rec := httptest.NewRecorder()
	h.ContributeMenus(rec, contributionRequest(t, " ", map[string]any{}))

	requireStatus(t, rec, http.StatusBadRequest)
}
