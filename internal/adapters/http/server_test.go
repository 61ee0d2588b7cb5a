package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/plugin-menus/internal/adapters/http"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var testServerConfig = config.ServerConfig{
	Host:         "127.0.0.1",
	Port:         9090,
	ReadTimeout:  5 * time.Second,
	WriteTimeout: 5 * time.Second,
	IdleTimeout:  30 * time.Second,
}

// serve runs s on a loopback listener and returns its base URL and the
// channel Serve's result arrives on.
func serve(t *testing.T, s *adapthttp.Server) (string, <-chan error) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()
	return "http://" + ln.Addr().String(), errCh
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig, http.NotFoundHandler(), nil)
	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

func TestServer_ServesUntilShutdown(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"locations":[]}`)
	}), discardLogger())
	baseURL, errCh := serve(t, s)

	resp, err := http.Get(baseURL + "/api/v1/locations")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations":[]}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}

func TestServer_ShutdownWaitsForInFlight(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	s := adapthttp.NewServer(testServerConfig, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusAccepted)
	}), discardLogger())
	baseURL, errCh := serve(t, s)

	status := make(chan int, 1)
	go func() {
		resp, err := http.Post(baseURL+"/api/v1/plugins/git/menus", "application/json", http.NoBody)
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()
	<-entered

	shutdown := make(chan error, 1)
	go func() { shutdown <- s.Shutdown(context.Background()) }()

	select {
	case err := <-shutdown:
		t.Fatalf("Shutdown returned %v with a request in flight", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.Equal(t, http.StatusAccepted, <-status)
	assert.NoError(t, <-shutdown)
	assert.NoError(t, <-errCh)
}

func TestServer_ShutdownRunsHooksInOrder(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig, http.NotFoundHandler(), discardLogger())

	var order []string
	s.OnShutdown(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "hooks share the default shutdown deadline")
		order = append(order, "drain registrations")
		return nil
	})
	errFlush := errors.New("flush failed")
	s.OnShutdown(func(context.Context) error {
		order = append(order, "flush telemetry")
		return errFlush
	})

	_, errCh := serve(t, s)

	assert.ErrorIs(t, s.Shutdown(context.Background()), errFlush)
	assert.Equal(t, []string{"drain registrations", "flush telemetry"}, order)
	assert.NoError(t, <-errCh)
}

func TestServer_StartReportsListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	port := ln.Addr().(*net.TCPAddr).Port
	cfg := testServerConfig
	cfg.Port = port

	err = adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger()).Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}
