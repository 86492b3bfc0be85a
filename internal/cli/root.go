package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/WebDesk/backend/internal/client"
)

// App holds the global flags shared by every command
type App struct {
	Server  string
	Pretty  bool
	Timeout time.Duration
}

func (a *App) client() *client.Client {
	return client.New(a.Server, a.Timeout)
}

func (a *App) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// print writes a JSON body, indented when --pretty is set
func (a *App) print(w io.Writer, body []byte) error {
	if a.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err == nil {
			body = buf.Bytes()
		}
	}
	body = bytes.TrimRight(body, "\n")
	_, err := fmt.Fprintln(w, string(body))
	return err
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// NewRootCmd builds the deskctl command tree
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "deskctl",
		Short:        "Drive a running WebDesk server",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Show what is on screen
  deskctl status

  # Click the Finder dock icon
  deskctl dock finder

  # Fire a menu entry
  deskctl menu Window Minimize
`),
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("DESKCTL_SERVER", "http://localhost:8000"), "Server base URL")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", client.DefaultTimeout, "Request timeout")

	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newHealthCmd(app))
	cmd.AddCommand(newWindowsCmd(app))
	cmd.AddCommand(newLaunchCmd(app))
	for _, action := range []string{"focus", "minimize", "maximize"} {
		cmd.AddCommand(newWindowActionCmd(app, action))
	}
	cmd.AddCommand(newCloseCmd(app))
	cmd.AddCommand(newDragCmd(app))
	cmd.AddCommand(newIconsCmd(app))
	cmd.AddCommand(newDockCmd(app))
	cmd.AddCommand(newMenuCmd(app))
	cmd.AddCommand(newLaunchpadCmd(app))

	return cmd
}
