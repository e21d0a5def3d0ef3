package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/itsmostafa/cornerstones/internal/config"
	"github.com/itsmostafa/cornerstones/internal/docs"
	"github.com/itsmostafa/cornerstones/internal/logging"
	"github.com/itsmostafa/cornerstones/internal/progress"
	"github.com/itsmostafa/cornerstones/internal/version"
)

// localVisitor scopes progress recorded from the command line.
const localVisitor = "local"

var configPath string
var sourcePath string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "cornerstones",
	Short: "Render a structured reference document with progress tracking",
	Long: `Cornerstones turns a single markdown-like reference document into one page
per top-level section. Bullet lists of links become link grids, other bullet
lists become checklists whose progress is saved across sessions.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("cornerstones %s\n", version.String()))

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().StringVarP(&sourcePath, "source", "s", "", "Path to the document (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	source *docs.Source
}

func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if sourcePath != "" {
		cfg.Source = sourcePath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	return &app{
		cfg:    cfg,
		logger: logger,
		source: docs.NewSource(cfg.Source, cfg.Cache, logger),
	}, nil
}

func (a *app) openStore() (progress.Store, error) {
	store, err := progress.Open(a.cfg.Progress.Backend, a.cfg.Progress.Path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().
		Str("backend", a.cfg.Progress.Backend).
		Str("path", a.cfg.Progress.Path).
		Msg("opened progress store")
	return store, nil
}
