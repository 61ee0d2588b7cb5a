package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/plugin-menus/internal/platform/httpclient"
)

// Requester runs JSON calls against one host through an httpclient.Client
// and turns unexpected responses into domain errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
	newKey func() string
}

// NewRequester returns a Requester that mints UUID v4 idempotency keys.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger, newKey: uuid.NewString}
}

// Post sends reqBody as JSON to path under the client's base URL with a
// fresh Idempotency-Key, so the transport may replay it. Any status other
// than wantStatus goes through TranslateHTTPError; otherwise the body is
// decoded into respBody when it is non-nil.
func (r *Requester) Post(ctx context.Context, path string, wantStatus int, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling POST body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating POST request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpclient.HeaderIdempotencyKey, r.newKey())

	return r.execute(ctx, req, wantStatus, respBody)
}

func (r *Requester) execute(ctx context.Context, req *http.Request, wantStatus int, respBody any) error {
	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", cerr))
			}
		}()
	}

	// Do returns the last response alongside an error when retries ran out on
	// a retryable status; the response says more than the retry error.
	if resp == nil || (err != nil && resp.StatusCode == wantStatus) {
		r.logger.ErrorContext(ctx, "host request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode != wantStatus {
		translated := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected host status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
			slog.Any("error", translated),
		)
		return translated
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
