package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/WebDesk/backend/internal/shared/types"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the desktop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.client().Desktop(app.ctx(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			focused := "-"
			if snap.FocusedID != nil {
				focused = *snap.FocusedID
			}
			fmt.Fprintf(out, "version %d  clock %q  focused %s\n", snap.Version, snap.Clock, focused)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tZ\tPOSITION\tSIZE\tSTATE")
			for _, w := range snap.Windows {
				state := "open"
				switch {
				case w.Minimized:
					state = "minimized"
				case w.Maximized:
					state = "maximized"
				}
				if w.Active {
					state += ",active"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d,%d\t%dx%d\t%s\n",
					w.ID, w.Title, w.ZIndex, w.Position.X, w.Position.Y, w.Size.Width, w.Size.Height, state)
			}
			return tw.Flush()
		},
	}
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().Health(app.ctx(cmd))
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newWindowsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List open windows in paint order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().Windows(app.ctx(cmd))
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newLaunchCmd(app *App) *cobra.Command {
	var (
		title, icon, kind, ref string
		width, height          int
	)

	cmd := &cobra.Command{
		Use:   "launch <id>",
		Short: "Open a window or refocus it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.LaunchRequest{
				ID:      args[0],
				Title:   title,
				Icon:    icon,
				Content: types.Content{Kind: types.ContentKind(kind), Ref: ref},
			}
			if req.Title == "" {
				req.Title = args[0]
			}
			if width > 0 && height > 0 {
				req.Size = &types.Size{Width: width, Height: height}
			}

			body, err := app.client().Launch(app.ctx(cmd), req)
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Window title (defaults to the id)")
	cmd.Flags().StringVar(&icon, "icon", "", "Title-bar icon")
	cmd.Flags().StringVar(&kind, "content", string(types.ContentGeneric), "Content kind")
	cmd.Flags().StringVar(&ref, "ref", "", "Content reference")
	cmd.Flags().IntVar(&width, "width", 0, "Window width")
	cmd.Flags().IntVar(&height, "height", 0, "Window height")
	return cmd
}

func newWindowActionCmd(app *App, action string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: "Send " + action + " to a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().WindowCommand(app.ctx(cmd), args[0], action)
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().Close(app.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newDragCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drag <id> <x> <y>",
		Short: "Release a window drag at x, y",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}

			body, err := app.client().Drag(app.ctx(cmd), args[0], x, y)
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newIconsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List desktop icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().Icons(app.ctx(cmd))
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "open <id>",
		Short: "Open a desktop icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().OpenIcon(app.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	})
	return cmd
}

func newDockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dock [id]",
		Short: "List the dock, or click an entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.client()
			var (
				body []byte
				err  error
			)
			if len(args) == 0 {
				body, err = c.Dock(app.ctx(cmd))
			} else {
				body, err = c.ActivateDock(app.ctx(cmd), args[0])
			}
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newMenuCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [menu label]",
		Short: "List the menu bar, or fire an entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or <menu> <label>, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.client()
			var (
				body []byte
				err  error
			)
			if len(args) == 0 {
				body, err = c.Menus(app.ctx(cmd))
			} else {
				body, err = c.InvokeMenu(app.ctx(cmd), args[0], args[1])
			}
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}
}

func newLaunchpadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launchpad [term]",
		Short: "Search launcher apps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			body, err := app.client().Launchpad(app.ctx(cmd), term)
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "open <name>",
		Short: "Launch an app by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := app.client().LaunchFromLaunchpad(app.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return app.print(cmd.OutOrStdout(), body)
		},
	})
	return cmd
}
