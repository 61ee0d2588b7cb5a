package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
)

// hostResponse builds a host reply. A body starting with "{" is sent as
// application/problem+json.
func hostResponse(status int, body string) *http.Response {
	header := http.Header{}
	if strings.HasPrefix(body, "{") {
		header.Set("Content-Type", "application/problem+json")
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantSubstr string
	}{
		{
			name:       "unknown command by detail",
			status:     http.StatusConflict,
			body:       `{"status":409,"detail":"registering action: command not registered"}`,
			wantErr:    domain.ErrCommandNotRegistered,
			wantSubstr: "registering action",
		},
		{
			name:    "unknown command by problem type",
			status:  http.StatusNotFound,
			body:    `{"type":"https://host.example/problems/command-not-registered","status":404,"detail":"no such command git.commit"}`,
			wantErr: domain.ErrCommandNotRegistered,
		},
		{
			name:    "unknown command from another menu service",
			status:  http.StatusConflict,
			body:    `{"type":"urn:plugin-menus:problem:command-not-registered","status":409,"detail":"git.push"}`,
			wantErr: domain.ErrCommandNotRegistered,
		},
		{
			name:       "plain 404",
			status:     http.StatusNotFound,
			body:       `{"status":404,"detail":"menu editor_context_menu not found"}`,
			wantErr:    domain.ErrNotFound,
			wantSubstr: "menu editor_context_menu not found",
		},
		{
			name:       "plain 409",
			status:     http.StatusConflict,
			body:       "",
			wantErr:    domain.ErrConflict,
			wantSubstr: "Conflict",
		},
		{
			name:    "400 without field errors",
			status:  http.StatusBadRequest,
			body:    "bad",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "422 without field errors",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":"path must not be empty"}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "host throttled past retries",
			status:  http.StatusTooManyRequests,
			wantErr: domain.ErrUnavailable,
		},
		{
			name:       "host restarting",
			status:     http.StatusServiceUnavailable,
			body:       "Service Unavailable",
			wantErr:    domain.ErrUnavailable,
			wantSubstr: "Service Unavailable",
		},
		{
			name:    "bad gateway",
			status:  http.StatusBadGateway,
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(hostResponse(tt.status, tt.body))

			require.ErrorIs(t, got, tt.wantErr)
			if tt.wantSubstr != "" {
				assert.Contains(t, got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	body := `{
		"status": 422,
		"detail": "validation failed",
		"errors": [
			{"location": "body.command_id", "message": "is required"},
			{"location": "body.order", "message": "must be a string"},
			{"location": "path", "message": "must not be empty"}
		]
	}`

	got := TranslateHTTPError(hostResponse(http.StatusUnprocessableEntity, body))

	require.ErrorIs(t, got, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, got, &verr)
	assert.Equal(t, map[string]string{
		"command_id": "is required",
		"order":      "must be a string",
		"path":       "must not be empty",
	}, verr.Fields)
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(hostResponse(http.StatusTeapot, ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrCommandNotRegistered, domain.ErrUnavailable,
	} {
		assert.False(t, errors.Is(got, sentinel), "418 must not map to %v", sentinel)
	}
	assert.Contains(t, got.Error(), "418")
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusConflict,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
	}

	assert.ErrorIs(t, TranslateHTTPError(resp), domain.ErrConflict)
}
