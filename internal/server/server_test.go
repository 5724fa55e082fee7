package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/handler"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "9.9.9" }

func newTestServer(t *testing.T) *server {
	t.Helper()

	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: stubAppInfo{}}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":5000"}, logger.Nop())
	require.ErrorIs(t, err, errNoAPIHandler)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoAPIHandler)
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoAddress)
}

func TestNewServer_Timeouts(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, 5*time.Second, srv.httpServer.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.httpServer.server.WriteTimeout)
}

func TestServer_RunServesUntilContextDone(t *testing.T) {
	srv := newTestServer(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx, l) }()

	resp, err := http.Get(fmt.Sprintf("http://%s/api/version", l.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(fmt.Sprintf("http://%s/api/version", l.Addr()))
	assert.Error(t, err)
}

func TestServer_RunReportsListenerFailure(t *testing.T) {
	srv := newTestServer(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, l.Close())

	err = srv.run(context.Background(), l)
	require.Error(t, err)
}
