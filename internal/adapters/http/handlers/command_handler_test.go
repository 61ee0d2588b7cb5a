package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/plugin-menus/mocks"
)

func newCommandHandler(t *testing.T) (*handlers.CommandHandler, *mocks.MockCommandRegistry) {
	t.Helper()
	registry := mocks.NewMockCommandRegistry(t)
	return handlers.NewCommandHandler(registry), registry
}

func TestListCommands(t *testing.T) {
	t.Parallel()
	h, registry := newCommandHandler(t)

	registry.EXPECT().Commands(mock.Anything).Return([]string{"file.close", "file.open"})

	rec := httptest.NewRecorder()
	h.ListCommands(rec, httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.CommandListResponse](t, rec)
	if resp.Count != 2 || resp.Commands[0] != "file.close" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRegisterCommand_Created(t *testing.T) {
	t.Parallel()
	h, registry := newCommandHandler(t)

	registry.EXPECT().RegisterCommand(mock.Anything, "file.open").Return(nil).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", jsonBody(t, map[string]string{"id": "file.open"}))
	h.RegisterCommand(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.CommandResponse](t, rec)
	if resp.ID != "file.open" {
		t.Errorf("ID = %q, want %q", resp.ID, "file.open")
	}
}

func TestRegisterCommand_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newCommandHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", jsonBody(t, map[string]string{}))
	h.RegisterCommand(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegisterCommand_RegistryError(t *testing.T) {
	t.Parallel()
	h, registry := newCommandHandler(t)

	registry.EXPECT().RegisterCommand(mock.Anything, "x").Return(errors.New("boom"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", jsonBody(t, map[string]string{"id": "x"}))
	h.RegisterCommand(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}
