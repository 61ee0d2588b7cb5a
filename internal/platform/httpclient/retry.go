package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/plugin-menus/internal/platform/logging"
)

// HeaderIdempotencyKey marks a non-idempotent request as safe to replay.
// The receiving host deduplicates attempts carrying the same key.
const HeaderIdempotencyKey = "Idempotency-Key"

// jitterFraction spreads each backoff by up to ±25%.
const jitterFraction = 0.25

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// backoff is the jittered delay before retry number attempt (1 is the first
// retry). The exponential base is capped at maxInterval before jitter.
func (cfg retryConfig) backoff(attempt int) time.Duration {
	base := math.Min(
		float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)),
		float64(cfg.maxInterval),
	)
	jittered := base * (1 + jitterFraction*(2*secureRandFloat64()-1))
	return time.Duration(math.Max(jittered, 0))
}

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. Requests that are not replayable get exactly one attempt. The
// final response is stored in *resp with its body unread, including when
// every attempt returned a retryable status; *attempts counts what was sent.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response, attempts *int) error {
	if c.retryCfg.maxAttempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}
	limit := 1
	if replayable(req) {
		limit = c.retryCfg.maxAttempts
	}
	if err := rewindable(req); err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := 0; attempt < limit; attempt++ {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, limit, hint, lastErr); err != nil {
				return err
			}
			if err := rewind(req); err != nil {
				return err
			}
		}
		*attempts = attempt + 1

		r, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			if !isRetryable(err) {
				return err
			}
			lastErr, hint = err, 0
		case !isRetryableStatus(r.StatusCode):
			*resp = r
			return nil
		case attempt == limit-1:
			*resp = r
			return fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
			hint = retryAfter(r.Header.Get("Retry-After"), time.Now(), c.retryCfg.maxInterval)
			// Drain so the connection can be reused for the next attempt.
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		}
	}
	return lastErr
}

// rewindable makes sure req.GetBody can produce the body again, buffering
// it when the request was built from a plain reader.
func rewindable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	req.ContentLength = int64(len(buf))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.Body, _ = req.GetBody()
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// waitForRetry logs the upcoming attempt at warn and sleeps for the backoff,
// or for the server's Retry-After hint when that is longer.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt, maxAttempts int, hint time.Duration, lastErr error) error {
	delay := max(c.retryCfg.backoff(attempt), hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// secureRandFloat64 returns a uniform float64 in [0, 1) from the top 53 bits
// of a crypto/rand word.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// retryAfter parses a Retry-After value (delta seconds or an HTTP date)
// relative to now and caps it at limit. Missing or malformed values yield 0.
func retryAfter(value string, now time.Time, limit time.Duration) time.Duration {
	if value == "" {
		return 0
	}

	var d time.Duration
	if secs, err := strconv.Atoi(value); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		d = at.Sub(now)
	}

	return min(max(d, 0), limit)
}

// isRetryable reports whether a transport error is worth another attempt.
// Everything is, except the caller giving up.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus is true for 429 and every 5xx.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// replayable reports whether req may be sent more than once: idempotent
// methods always are, other methods only with an idempotency key.
func replayable(req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return req.Header.Get(HeaderIdempotencyKey) != ""
	}
}
