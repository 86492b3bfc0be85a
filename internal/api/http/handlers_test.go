package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/desktop"
	"github.com/GriffinCanCode/WebDesk/backend/internal/infrastructure/monitoring"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router *gin.Engine
	desk   *desktop.Desktop
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	desk, err := desktop.New(cat, desktop.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(desk.Shutdown)

	r := gin.New()
	NewHandlers(desk, nil).Register(r)
	NewMetricsHandlers(monitoring.NewMetrics()).Register(r)
	return &fixture{router: r, desk: desk}
}

func (f *fixture) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	code, body := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
}

func TestLaunchFocusClose(t *testing.T) {
	f := newFixture(t)

	code, body := f.do(t, http.MethodPost, "/windows", map[string]any{
		"id":      "notes",
		"title":   "Notes",
		"content": map[string]any{"kind": "notes"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["applied"])
	win := body["window"].(map[string]any)
	assert.Equal(t, float64(11), win["z_index"])
	assert.Equal(t, true, win["is_active"])

	f.do(t, http.MethodPost, "/windows", map[string]any{"id": "finder", "title": "Finder"})

	_, body = f.do(t, http.MethodPost, "/windows/notes/focus", nil)
	assert.Equal(t, true, body["applied"])
	_, body = f.do(t, http.MethodPost, "/windows/notes/focus", nil)
	assert.Equal(t, false, body["applied"], "already focused")

	_, body = f.do(t, http.MethodGet, "/windows", nil)
	windows := body["windows"].([]any)
	require.Len(t, windows, 2)
	assert.Equal(t, "notes", windows[1].(map[string]any)["id"])

	code, body = f.do(t, http.MethodDelete, "/windows/notes", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["applied"])
	assert.Nil(t, f.desk.Snapshot().FocusedID)
}

func TestUnknownIDsAreNoops(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{
		"/windows/ghost/focus",
		"/windows/ghost/minimize",
		"/windows/ghost/maximize",
		"/icons/ghost/select",
		"/icons/ghost/open",
		"/dock/ghost/activate",
	} {
		code, body := f.do(t, http.MethodPost, path, nil)
		assert.Equal(t, http.StatusOK, code, path)
		assert.Equal(t, false, body["applied"], path)
	}

	code, body := f.do(t, http.MethodDelete, "/windows/ghost", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["applied"])

	code, body = f.do(t, http.MethodPost, "/launchpad/launch", map[string]any{"name": "Netscape"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["applied"])
}

func TestBadInput(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/windows", map[string]any{"title": "no id"}},
		{http.MethodPost, "/windows", map[string]any{"id": "bad id", "title": "x"}},
		{http.MethodPost, "/windows", map[string]any{"id": "x", "title": "x", "size": map[string]any{"width": 0, "height": 10}}},
		{http.MethodPost, "/windows/notes/drag", map[string]any{"x": 10}},
		{http.MethodPut, "/windows/notes/title", map[string]any{}},
		{http.MethodPut, "/desktop/bounds", map[string]any{"width": 0, "height": 100}},
		{http.MethodPost, "/menus/invoke", map[string]any{"menu": "File"}},
		{http.MethodPost, "/windows/bad%20id/focus", nil},
	}

	for _, tt := range tests {
		code, _ := f.do(t, tt.method, tt.path, tt.body)
		assert.Equal(t, http.StatusBadRequest, code, "%s %s", tt.method, tt.path)
	}
}

func TestDragWindowClamps(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/windows", map[string]any{"id": "notes", "title": "Notes"})

	_, body := f.do(t, http.MethodPost, "/windows/notes/drag", map[string]any{"x": -300, "y": 5000})
	assert.Equal(t, true, body["applied"])
	pos := body["position"].(map[string]any)
	assert.Equal(t, float64(0), pos["x"])
	assert.Equal(t, float64(692-480), pos["y"])
}

func TestDockAndMenus(t *testing.T) {
	f := newFixture(t)

	_, body := f.do(t, http.MethodPost, "/dock/launchpad/activate", nil)
	assert.Equal(t, "/launchpad-interface", body["navigate"])
	assert.Equal(t, false, body["applied"])

	_, body = f.do(t, http.MethodPost, "/dock/finder/activate", nil)
	assert.Equal(t, true, body["launched"])

	_, body = f.do(t, http.MethodGet, "/dock", nil)
	entries := body["dock"].([]any)
	assert.Equal(t, true, entries[0].(map[string]any)["running"])

	_, body = f.do(t, http.MethodPost, "/menus/invoke", map[string]any{"menu": "File", "label": "Close Window"})
	assert.Equal(t, true, body["applied"])
	assert.Empty(t, f.desk.Windows())

	code, body := f.do(t, http.MethodPost, "/menus/invoke", map[string]any{"menu": "File", "label": "Teleport"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["applied"])

	_, body = f.do(t, http.MethodGet, "/menus", nil)
	assert.Len(t, body["menus"], 7)
}

func TestIconsAndFolders(t *testing.T) {
	f := newFixture(t)

	_, body := f.do(t, http.MethodPost, "/icons/docs-folder/select", nil)
	assert.Equal(t, true, body["applied"])

	_, body = f.do(t, http.MethodPost, "/icons/docs-folder/open", nil)
	win := body["window"].(map[string]any)
	assert.Equal(t, "folder-window-docs-folder", win["id"])

	code, body := f.do(t, http.MethodGet, "/folders/folder-window-docs-folder/items?q=jpg", nil)
	require.Equal(t, http.StatusOK, code)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Sunset.jpg", items[0].(map[string]any)["name"])

	_, body = f.do(t, http.MethodPost, "/folders/folder-window-docs-folder/items/file-img1/select", nil)
	assert.Equal(t, true, body["applied"])

	_, body = f.do(t, http.MethodPost, "/folders/folder-window-docs-folder/items/file-img1/open", nil)
	assert.Equal(t, "file-window-file-img1", body["window"].(map[string]any)["id"])

	code, _ = f.do(t, http.MethodGet, "/folders/notes/items", nil)
	assert.Equal(t, http.StatusNotFound, code)

	_, body = f.do(t, http.MethodPost, "/desktop/deselect", nil)
	assert.Equal(t, true, body["applied"])

	_, body = f.do(t, http.MethodPost, "/icons/notes-file/drag", map[string]any{"x": 40, "y": 100})
	assert.Equal(t, true, body["applied"])
}

func TestLaunchpad(t *testing.T) {
	f := newFixture(t)

	_, body := f.do(t, http.MethodGet, "/launchpad?q=shell", nil)
	apps := body["apps"].([]any)
	require.Len(t, apps, 1)
	assert.Equal(t, "Terminal", apps[0].(map[string]any)["name"])

	_, body = f.do(t, http.MethodPost, "/launchpad/launch", map[string]any{"name": "Terminal"})
	assert.Equal(t, "app-terminal", body["window"].(map[string]any)["id"])
}

func TestDesktopSnapshotAndBounds(t *testing.T) {
	f := newFixture(t)

	_, body := f.do(t, http.MethodPut, "/desktop/bounds", map[string]any{"x": 0, "y": 28, "width": 800, "height": 600})
	assert.Equal(t, true, body["applied"])

	_, body = f.do(t, http.MethodGet, "/desktop", nil)
	bounds := body["bounds"].(map[string]any)
	assert.Equal(t, float64(800), bounds["width"])
	assert.Len(t, body["icons"], 3)
	assert.NotEmpty(t, body["clock"])
}

func TestSetTitle(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/windows", map[string]any{"id": "notes", "title": "Notes"})

	_, body := f.do(t, http.MethodPut, "/windows/notes/title", map[string]any{"title": "Groceries"})
	assert.Equal(t, true, body["applied"])
	s, _ := f.desk.Window("notes")
	assert.Equal(t, "Groceries", s.Title)
}

func TestMetricsEndpoints(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "webdesk_uptime_seconds")

	code, body := f.do(t, http.MethodGet, "/metrics/json", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "total_requests")
}
