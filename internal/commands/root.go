// Package commands is the cobra surface of the finsight CLI. Command
// bodies stay thin: they parse flags, build the shared runtime and call
// the controllers in internal/app.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/app"
	"github.com/finsight-dev/finsight/internal/buildinfo"
	"github.com/finsight-dev/finsight/internal/chart"
	"github.com/finsight-dev/finsight/internal/config"
	"github.com/finsight-dev/finsight/internal/session"
	"github.com/finsight-dev/finsight/internal/ui"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	baseURL    string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "finsight",
		Short:   "Asisten keuangan UMKM di terminal",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to finsight.yaml (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "override the backend API root")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log every API request")

	rootCmd.AddCommand(newLoginCommand(opts))
	rootCmd.AddCommand(newRegisterCommand(opts))
	rootCmd.AddCommand(newLogoutCommand(opts))
	rootCmd.AddCommand(newDashboardCommand(opts))
	rootCmd.AddCommand(newTxCommand(opts))
	rootCmd.AddCommand(newAnalyzeCommand(opts))
	rootCmd.AddCommand(newPredictCommand(opts))
	rootCmd.AddCommand(newRecommendCommand(opts))
	rootCmd.AddCommand(newCommunityCommand(opts))
	rootCmd.AddCommand(newProfileCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newUICommand(opts))

	return rootCmd
}

// runtime is the wired-up client: controllers plus their collaborators.
type runtime struct {
	app       *app.App
	analyzer  *app.Analyzer
	community *app.Community
	nav       *app.Nav
}

// newRuntime loads config and durable state and wires the controllers.
func newRuntime(opts *rootOptions) (*runtime, error) {
	stateDir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = filepath.Join(stateDir, "finsight.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}

	store := session.NewStore(stateDir)
	if err := store.Load(); err != nil {
		return nil, err
	}
	sess := session.New()

	level := zerolog.WarnLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	a := &app.App{
		Config:  cfg,
		Session: sess,
		Store:   store,
		API:     api.NewClient(cfg.BaseURL, cfg.Timeout(), sess, logger),
		Charts:  chart.NewRegistry(),
		Notify:  ui.NewNotifier(os.Stderr),
		Out:     os.Stdout,
		In:      os.Stdin,
	}
	community := app.NewCommunity(a)
	return &runtime{
		app:       a,
		analyzer:  app.NewAnalyzer(a),
		community: community,
		nav:       app.NewNav(a, community),
	}, nil
}

// newAuthedRuntime builds the runtime and restores the saved session. It
// fails when no valid session exists, pointing the user at `finsight login`.
func newAuthedRuntime(ctx context.Context, opts *rootOptions) (*runtime, error) {
	rt, err := newRuntime(opts)
	if err != nil {
		return nil, err
	}
	if _, ok := rt.app.Bootstrap(ctx); !ok {
		return nil, errors.New("sesi tidak ditemukan, jalankan: finsight login")
	}
	return rt, nil
}
