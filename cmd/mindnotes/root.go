package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AndrivA89/mindnotes/internal/app"
	"github.com/AndrivA89/mindnotes/internal/config"
	"github.com/AndrivA89/mindnotes/internal/domain"
	"github.com/AndrivA89/mindnotes/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:           "mindnotes",
	Short:         "Notes with optional AI summaries",
	Long:          `MindNotes keeps short colored notes for a single local user and can summarize them locally or through a hosted model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		level := cfg.Log.Level
		if verbose {
			level = zerolog.LevelDebugValue
		}
		build := logging.New().FromWriter(os.Stderr).Level(level).Console(true)
		if cfg.Log.File != "" {
			build = build.FromPath(cfg.Log.File)
		}
		logger, err = build.Make()
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger == nil {
			return nil
		}
		return logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.mindnotes/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// withApp opens the configured stores for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return fn(ctx, a)
}

// withSession is withApp for commands that need a signed-in user.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		ctx, _, err := a.SignIn(ctx)
		if errors.Is(err, domain.ErrNoSession) {
			return errors.New("not logged in, run `mindnotes login` first")
		}
		if err != nil {
			return err
		}
		return fn(ctx, a)
	})
}
