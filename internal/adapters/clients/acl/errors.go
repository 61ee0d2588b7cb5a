// Package acl keeps the remote host menu registry's wire protocol out of
// the domain. The wire DTO and its translator live in acl/hostmenu; status
// and problem-body mapping lives here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
)

// maxErrorBodySize caps how much of a problem body is read.
const maxErrorBodySize = 1 << 20

// problemTypeCommandNotRegistered is the suffix of the problem type a host
// uses for an action whose command it does not know.
const problemTypeCommandNotRegistered = "command-not-registered"

// problem is the subset of an RFC 9457 body the translation looks at.
type problem struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a host error response to a domain error, reading
// an application/problem+json body when there is one:
//
//	404, 409 naming the command  -> domain.ErrCommandNotRegistered
//	404                          -> domain.ErrNotFound
//	400, 422 with field errors   -> *domain.ValidationError
//	400, 422                     -> domain.ErrValidation
//	409                          -> domain.ErrConflict
//	429, 5xx                     -> domain.ErrUnavailable
//
// A 429 only reaches here once the client's retries are spent.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch code := resp.StatusCode; {
	case (code == http.StatusNotFound || code == http.StatusConflict) && p.namesMissingCommand():
		sentinel = domain.ErrCommandNotRegistered
	case code == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(p.Errors) > 0 {
			return p.validationError()
		}
		sentinel = domain.ErrValidation
	case code == http.StatusConflict:
		sentinel = domain.ErrConflict
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// namesMissingCommand matches the problem type, or the sentinel's text in
// the detail for hosts that only set a detail.
func (p problem) namesMissingCommand() bool {
	return strings.HasSuffix(p.Type, problemTypeCommandNotRegistered) ||
		strings.Contains(p.Detail, domain.ErrCommandNotRegistered.Error())
}

// validationError keys field messages by location minus the "body." prefix.
func (p problem) validationError() *domain.ValidationError {
	fields := make(map[string]string, len(p.Errors))
	for _, e := range p.Errors {
		fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// readProblem decodes a problem body, yielding the zero problem when the
// response has none or it does not parse.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}
