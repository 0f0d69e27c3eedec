package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/listkeeper/internal/controller"
	"github.com/idilsaglam/listkeeper/internal/model"
	"github.com/idilsaglam/listkeeper/internal/store"
	"github.com/idilsaglam/listkeeper/internal/ui"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append an item (at least 5 characters)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withController(cmd.Context(), func(c *controller.Controller) error {
				it, err := c.Add(strings.Join(args, " "))
				if err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", c.Len()))
				app.log.Debug("added", "id", it.ID)
				return nil
			})
		},
	}
}

func newLsCmd(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items in order",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return errUsage(fmt.Errorf("unknown format %q (want text or json)", format))
			}
			return app.withController(cmd.Context(), func(c *controller.Controller) error {
				items := c.Items()
				if format == "json" {
					b, err := store.Encode(items)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
					return err
				}
				ui.Panel(cmd.OutOrStdout(), listLines(items))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|json)")
	return cmd
}

func newRmCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Delete an item (asks first unless --yes)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return app.withController(cmd.Context(), func(c *controller.Controller) error {
				confirm := controller.Confirmed
				if !yes {
					text := ""
					if n >= 0 && n < c.Len() {
						text = c.Items()[n].Text
					}
					confirm = app.confirmer(cmd, text)
				}
				deleted, err := c.Delete(n, confirm)
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
				ui.OK(cmd.OutOrStdout(), "removed")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <text...>",
		Short: "Replace an item's text",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return app.withController(cmd.Context(), func(c *controller.Controller) error {
				if _, err := c.BeginEdit(n); err != nil {
					return err
				}
				if err := c.CommitEdit(strings.Join(args[1:], " ")); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "edited")
				return nil
			})
		},
	}
}

func newSortCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort items alphabetically",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withController(cmd.Context(), func(c *controller.Controller) error {
				if err := c.Sort(); err != nil {
					return err
				}
				ui.OK(cmd.OutOrStdout(), "sorted")
				return nil
			})
		},
	}
}

func newMvCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move the item at <from> so it ends up at position <to>",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return app.withController(cmd.Context(), func(c *controller.Controller) error {
				moved, err := c.Reorder(from, to)
				if err != nil {
					return err
				}
				if !moved {
					fmt.Fprintln(cmd.OutOrStdout(), "unchanged")
					return nil
				}
				ui.OK(cmd.OutOrStdout(), "moved")
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "listkeeper %s\n", Version)
		},
	}
}

// parseIndex turns a 1-based position into a 0-based index. Range checks are
// the controller's.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errUsage(fmt.Errorf("not a number: %s", s))
	}
	return n - 1, nil
}

func listLines(items []model.Item) []string {
	t := ui.Current()
	decorated := 0
	for _, it := range items {
		if it.Decorated {
			decorated++
		}
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			t.Title.Render("List"),
			t.Accent.Render(t.Icon), decorated,
			t.Accent.Render("Total"), len(items)),
		"",
	}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		icon := " "
		if it.Decorated {
			icon = t.Accent.Render(t.Icon)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), icon, ui.Truncate(ui.Sanitize(it.Text), 80)))
	}
	lines = append(lines, "", t.Muted.Render(`Tip: add with listkeeper add "Buy oat milk"`))
	return lines
}
