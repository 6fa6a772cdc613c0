package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-wellness/internal/app"
	"github.com/comitanigiacomo/kanso-wellness/internal/config"
	"github.com/comitanigiacomo/kanso-wellness/internal/logger"
)

var version = "dev"

var (
	noColor     bool
	jsonOutput  bool
	verbose     bool
	storeDriver string
	sqlitePath  string

	current *app.App
)

// openApp is replaced in tests to share one in-memory store across commands.
var openApp = func(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if storeDriver != "" {
		cfg.Store.Driver = storeDriver
	}
	if sqlitePath != "" {
		cfg.Store.SQLitePath = sqlitePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !verbose {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = "console"

	log, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, cfg, log)
}

var rootCmd = &cobra.Command{
	Use:           "kansoctl",
	Short:         "Track habits, moods and wellness from the terminal",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsApp(cmd) {
			return nil
		}
		a, err := openApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		current = a
		return nil
	},
}

// closeApp releases the store opened for the last command. cobra skips
// post-run hooks when RunE fails, so run calls this on every path.
func closeApp() error {
	if current == nil {
		return nil
	}
	err := current.Close()
	current = nil
	return err
}

func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, closeApp())
}

// needsApp is false for cobra's own help and completion commands.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version":
		return false
	}
	return cmd.Runnable()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "override STORE_DRIVER (memory, sqlite, postgres, redis)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "db", "", "override SQLITE_PATH")

	rootCmd.AddCommand(habitCmd, moodCmd, waterCmd, meditateCmd, goalCmd,
		statsCmd, calendarCmd, dashboardCmd, reportCmd, milestonesCmd, pinCmd, prefsCmd,
		searchCmd, clearDataCmd)
}

func main() {
	if err := run(context.Background()); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
