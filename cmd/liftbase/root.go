package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"liftbase"
	"liftbase/internal/config"
	"liftbase/internal/logging"
)

var (
	cfgPath string
	dbPath  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "liftbase",
	Short: "Manage an exercise catalog database",
	Long: `Liftbase is a command-line tool for an embedded exercise catalog.
It stores exercises (name, muscle groups, equipment, difficulty) in a local
SQLite database and supports adding, looking up, listing, and deleting them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environment variables win.
		_ = godotenv.Load()

		var err error
		if cfgPath != "" {
			cfg, _, err = config.LoadFromPath(cfgPath)
		} else {
			cfg, _, err = config.Load()
		}
		if err != nil {
			return err
		}

		initCLILogging(cfg)
		return nil
	},
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the catalog database (overrides config)")
}

// initCLILogging applies the configured level unless $LIFTBASE_LOG is set,
// which always wins.
func initCLILogging(cfg *config.Config) {
	if os.Getenv(logging.EnvLevel) != "" {
		logging.InitFromEnv()
		return
	}
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logging.Init(level)
}

// openRepo opens the configured catalog store. Callers must Close it.
func openRepo() (*liftbase.Repository, error) {
	path := cfg.DatabasePath()
	if dbPath != "" {
		path = dbPath
	}

	logger := logging.Component("repository")
	return liftbase.OpenRepositoryWithOptions(path, liftbase.Options{
		MaxConns:       cfg.Database.MaxConns,
		AcquireTimeout: time.Duration(cfg.Database.AcquireTimeout),
		Logger:         &logger,
	})
}
