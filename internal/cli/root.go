// Package cli is the listkeeper command line: a cobra tree whose root launches
// the interactive list and whose subcommands script the same operations.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/idilsaglam/listkeeper/internal/config"
	"github.com/idilsaglam/listkeeper/internal/controller"
	"github.com/idilsaglam/listkeeper/internal/logging"
	"github.com/idilsaglam/listkeeper/internal/store"
	"github.com/idilsaglam/listkeeper/internal/store/badgerstore"
	"github.com/idilsaglam/listkeeper/internal/store/jsonstore"
	"github.com/idilsaglam/listkeeper/internal/store/sqlitestore"
	"github.com/idilsaglam/listkeeper/internal/tui"
	"github.com/idilsaglam/listkeeper/internal/ui"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

type App struct {
	ConfigPath string
	Data       string
	Backend    string
	Key        string
	LogLevel   string
	Theme      string

	cfg      config.Config
	log      *slog.Logger
	closeLog func() error

	// confirm replaces the interactive delete prompt. Tests set it.
	confirm func(cmd *cobra.Command, text string) controller.Confirmer
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	return newRootCmd(app)
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "listkeeper",
		Short:         "A small persistent list with drag-and-drop reordering",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		Example: strings.TrimSpace(`
  # Start the interactive list
  listkeeper

  # Scriptable commands
  listkeeper add "Buy oat milk"
  listkeeper ls --format json
  listkeeper mv 3 1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errUsage(err)
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("LISTKEEPER_CONFIG", ""), "Path to config.yaml (default: $XDG_CONFIG_HOME/listkeeper/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.Data, "data", "", "Data directory (overrides store.dir)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend (json|sqlite|badger|memory)")
	cmd.PersistentFlags().StringVar(&app.Key, "key", "", "Key the list is stored under (default: interactiveList)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Color theme (classic|neon|mono)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newSortCmd(app))
	cmd.AddCommand(newMvCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the command line and returns the process exit code. Errors are
// reported on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return report(cmd.ExecuteContext(ctx), stderr)
}

func report(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	ui.Fail(stderr, err.Error())
	var ierr *controller.IndexError
	if errors.As(err, &ierr) {
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Hint: run `listkeeper ls` to see valid indexes"))
	}
	return ExitCode(err)
}

// setup resolves configuration (file, then environment, then flags) and
// builds the logger.
func (app *App) setup(cmd *cobra.Command) error {
	path := app.ConfigPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Store.Dir, app.Data)
	override(&cfg.Store.Backend, app.Backend)
	override(&cfg.Store.Key, app.Key)
	override(&cfg.Log.Level, app.LogLevel)
	override(&cfg.UI.Theme, app.Theme)
	if err := cfg.Validate(); err != nil {
		return errUsage(err)
	}
	app.cfg = cfg

	// The alt-screen owns the terminal; the TUI only logs to a file.
	interactive := cmd == cmd.Root()
	var fallback io.Writer = cmd.ErrOrStderr()
	if interactive {
		fallback = nil
	}
	log, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File, fallback)
	if err != nil {
		return err
	}
	app.log, app.closeLog = log, closeLog

	ui.SetTheme(cfg.UI.Theme, interactive || ui.IsTerminal(cmd.OutOrStdout()))
	app.log.Debug("config resolved", "path", path, "backend", cfg.Store.Backend, "dir", cfg.Store.Dir)
	return nil
}

func (app *App) teardown() error {
	if app.closeLog == nil {
		return nil
	}
	return app.closeLog()
}

// openStore opens the configured backend. The caller closes the Store.
func openStore(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (*store.Store, error) {
	var (
		blob store.Blob
		err  error
	)
	switch cfg.Backend {
	case config.BackendSQLite:
		blob, err = sqlitestore.Open(ctx, cfg.Dir)
	case config.BackendBadger:
		blob, err = badgerstore.Open(badgerstore.Config{
			Path:       filepath.Join(cfg.Dir, "badger"),
			SyncWrites: true,
			Logger:     log.With("component", "badger"),
		})
	case config.BackendMemory:
		blob = store.NewMemory()
	default:
		blob, err = jsonstore.Open(cfg.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	return store.New(blob, cfg.Key, log), nil
}

// withController opens the store, builds a controller over it and hands it to
// fn. The store is closed when fn returns.
func (app *App) withController(ctx context.Context, fn func(*controller.Controller) error) (err error) {
	tag := language.Und
	if app.cfg.Locale != "" {
		if tag, err = language.Parse(app.cfg.Locale); err != nil {
			return errUsage(fmt.Errorf("invalid locale %q: %w", app.cfg.Locale, err))
		}
	}
	st, err := openStore(ctx, app.cfg.Store, app.log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
	}()
	ctrl := controller.New(st,
		controller.WithLogger(app.log),
		controller.WithLocale(tag),
	)
	return fn(ctrl)
}

func runTUI(cmd *cobra.Command, app *App) error {
	return app.withController(cmd.Context(), func(ctrl *controller.Controller) error {
		return tui.Run(ctrl, tui.Options{
			MessageTimeout: app.cfg.UI.MessageTimeout,
			Mouse:          app.cfg.UI.Mouse,
			Logger:         app.log,
		})
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
