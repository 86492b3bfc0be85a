package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"

	"github.com/GriffinCanCode/WebDesk/backend/internal/domain/desktop"
	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

// DefaultTimeout bounds every request
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client talks to a running desktop server
type Client struct {
	resty *resty.Client
}

// New creates a client for baseURL
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", "deskctl/1.0").
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
	return &Client{resty: r}
}

// do sends one request and returns the raw JSON body
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := c.resty.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		var payload struct {
			Error string `json:"error"`
		}
		_ = sonic.Unmarshal(resp.Body(), &payload)
		return nil, &APIError{Status: resp.StatusCode(), Message: payload.Error}
	}
	return resp.Body(), nil
}

// Health returns the health report
func (c *Client) Health(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/health", nil)
}

// Desktop fetches and decodes the full snapshot
func (c *Client) Desktop(ctx context.Context) (desktop.Snapshot, error) {
	var snap desktop.Snapshot
	body, err := c.do(ctx, http.MethodGet, "/desktop", nil)
	if err != nil {
		return snap, err
	}
	if err := sonic.Unmarshal(body, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Windows lists open windows
func (c *Client) Windows(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/windows", nil)
}

// Launch opens or refocuses a window
func (c *Client) Launch(ctx context.Context, req types.LaunchRequest) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/windows", req)
}

// WindowCommand runs focus, minimize or maximize on a window
func (c *Client) WindowCommand(ctx context.Context, id, action string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/windows/"+url.PathEscape(id)+"/"+action, nil)
}

// Close closes a window
func (c *Client) Close(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, "/windows/"+url.PathEscape(id), nil)
}

// Drag commits a window drag release at x, y
func (c *Client) Drag(ctx context.Context, id string, x, y int) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/windows/"+url.PathEscape(id)+"/drag", types.DragRequest{X: &x, Y: &y})
}

// Icons lists desktop icons
func (c *Client) Icons(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/icons", nil)
}

// OpenIcon opens a desktop icon
func (c *Client) OpenIcon(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/icons/"+url.PathEscape(id)+"/open", nil)
}

// Dock lists dock entries
func (c *Client) Dock(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/dock", nil)
}

// ActivateDock clicks a dock entry
func (c *Client) ActivateDock(ctx context.Context, id string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/dock/"+url.PathEscape(id)+"/activate", nil)
}

// Menus lists the menu bar
func (c *Client) Menus(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/menus", nil)
}

// InvokeMenu fires a menu entry
func (c *Client) InvokeMenu(ctx context.Context, menu, label string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/menus/invoke", types.MenuRequest{Menu: menu, Label: label})
}

// Launchpad searches launcher apps
func (c *Client) Launchpad(ctx context.Context, term string) ([]byte, error) {
	path := "/launchpad"
	if term != "" {
		path += "?q=" + url.QueryEscape(term)
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// LaunchFromLaunchpad opens a launcher app by name
func (c *Client) LaunchFromLaunchpad(ctx context.Context, name string) ([]byte, error) {
	return c.do(ctx, http.MethodPost, "/launchpad/launch", types.LaunchpadRequest{Name: name})
}
