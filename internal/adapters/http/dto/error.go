package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
)

// Problem types for failures a client can act on. Everything else is
// about:blank.
const (
	ProblemTypeBlank                = "about:blank"
	ProblemTypeCommandNotRegistered = "urn:plugin-menus:problem:command-not-registered"
	ProblemTypeUnknownLocation      = "urn:plugin-menus:problem:unknown-location"
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemMappings is checked in order; the first sentinel err wraps decides
// the status and problem type. ErrCommandNotRegistered precedes ErrConflict
// so a more specific type wins when both are wrapped.
var problemMappings = []struct {
	sentinel error
	status   int
	typ      string
}{
	{domain.ErrValidation, http.StatusBadRequest, ProblemTypeBlank},
	{domain.ErrUnknownLocation, http.StatusNotFound, ProblemTypeUnknownLocation},
	{domain.ErrNotFound, http.StatusNotFound, ProblemTypeBlank},
	{domain.ErrCommandNotRegistered, http.StatusConflict, ProblemTypeCommandNotRegistered},
	{domain.ErrConflict, http.StatusConflict, ProblemTypeBlank},
	{domain.ErrUnavailable, http.StatusBadGateway, ProblemTypeBlank},
}

// NewErrorResponse describes err as a problem for request r. Errors that
// wrap no domain sentinel are a 500.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, typ := http.StatusInternalServerError, ProblemTypeBlank
	for _, m := range problemMappings {
		if errors.Is(err, m.sentinel) {
			status, typ = m.status, m.typ
			break
		}
	}

	resp := ErrorResponse{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes NewErrorResponse(r, err) as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes an RFC 9457 response for a status that has no domain
// error behind it, such as a request timeout.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     ProblemTypeBlank,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// fieldDetails lists validation failures by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return strings.Compare(a.Location, b.Location) })
	return details
}
