package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/chuwg/change-work/internal/cli"
	"github.com/chuwg/change-work/internal/constants"
	apperrors "github.com/chuwg/change-work/internal/errors"
	"github.com/chuwg/change-work/internal/logger"
	"github.com/chuwg/change-work/internal/storage"
	"github.com/chuwg/change-work/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Store   string `help:"Shared store location: a JSON file path, a SQLite .db path, or a redis:// URL. Redis URLs must NOT embed credentials; use the OS keyring instead." default:"~/.config/change/widget_store.json"`

	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive widget view." default:"1"`
	Status cli.StatusCmd `cmd:"" help:"Show today's shift."`
	Timer  cli.TimerCmd  `cmd:"" help:"Show the shift countdown."`
	Week   cli.WeekCmd   `cmd:"" help:"Show the week strip."`
	Health cli.HealthCmd `cmd:"" help:"Show energy and sleep metrics."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Energy struct {
		Record  cli.EnergyRecordCmd  `cmd:"" help:"Record an energy level (1-5)." default:"1"`
		Pending cli.EnergyPendingCmd `cmd:"" help:"List queued energy records."`
	} `cmd:"" help:"Record and inspect energy levels."`
	Notify struct {
		Reconcile cli.NotifyReconcileCmd `cmd:"" help:"Rebuild today's shift notifications." default:"1"`
		Pending   cli.NotifyPendingCmd   `cmd:"" help:"List scheduled notifications."`
		Dispatch  cli.NotifyDispatchCmd  `cmd:"" help:"Deliver due notifications."`
	} `cmd:"" help:"Manage shift notifications."`
	Daemon  cli.DaemonCmd  `cmd:"" help:"Run the notification daemon."`
	Publish cli.PublishCmd `cmd:"" hidden:"" help:"Publish today's shift into the store (used for testing)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Shift timing and notification engine for shift workers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	var store storage.Provider
	var configDir string
	switch {
	case strings.HasPrefix(CLI.Store, "redis://") || strings.HasPrefix(CLI.Store, "rediss://"):
		if storage.HasEmbeddedCredentials(CLI.Store) {
			fmt.Fprintln(os.Stderr, "Error: redis URLs with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Store the password in the OS keyring and pass the URL without it.")
			os.Exit(1)
		}
		store = storage.NewRedisStore(CLI.Store)
		configDir = defaultConfigDir()
	case strings.HasSuffix(CLI.Store, ".db"):
		path := utils.ExpandPath(CLI.Store)
		store = storage.NewSQLiteStore(path)
		configDir = filepath.Dir(path)
	default:
		path := utils.ExpandPath(CLI.Store)
		store = storage.NewJSONStore(path)
		configDir = filepath.Dir(path)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	if err := store.Init(); err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:     store,
		Reader:    storage.NewReader(store),
		ConfigDir: configDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

func defaultConfigDir() string {
	return filepath.Dir(utils.ExpandPath(constants.DefaultStorePath))
}
