package server

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/logging"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	srv, err := NewWithLogger(cfg, logging.NewNop())
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoutesWired(t *testing.T) {
	srv := newTestServer(t, config.Default())
	t.Cleanup(func() { srv.Close() })

	for _, path := range []string{"/health", "/desktop", "/windows", "/icons", "/dock", "/menus", "/launchpad", "/metrics", "/metrics/json"} {
		w := get(t, srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestBoundsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Desktop.Width = 800
	cfg.Desktop.Height = 600
	srv := newTestServer(t, cfg)
	t.Cleanup(func() { srv.Close() })

	w := get(t, srv, "/desktop")
	var body struct {
		Bounds struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"bounds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 800, body.Bounds.Width)
	assert.Equal(t, 600, body.Bounds.Height)
}

func TestCustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"about": {"id": "about", "title": "About"},
		"dock": [{"id": "notes", "name": "Notes", "icon": "sticky-note", "title": "Notes", "content": "notes"}]
	}`), 0o644))

	cfg := config.Default()
	cfg.Desktop.Catalog = path
	srv := newTestServer(t, cfg)
	t.Cleanup(func() { srv.Close() })

	assert.Len(t, srv.Desktop().Dock(), 1)
}

func TestMissingCatalogFails(t *testing.T) {
	cfg := config.Default()
	cfg.Desktop.Catalog = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewWithLogger(cfg, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}

func TestServeAndClose(t *testing.T) {
	srv := newTestServer(t, config.Default())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, srv.Close())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Close")
	}
}
