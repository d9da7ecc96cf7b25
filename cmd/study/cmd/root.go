package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/templui/studytracker/internal/app"
	"github.com/templui/studytracker/internal/config"
	"github.com/templui/studytracker/internal/logger"
	"github.com/templui/studytracker/internal/view"
)

// session holds the app opened for one command invocation.
type session struct {
	storeDriver string
	storePath   string
	verbose     bool

	app *app.App
}

// RootCmd builds the study command tree.
func RootCmd() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:           "study",
		Short:         "Track study hours against per-subject goals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.storeDriver, "store", "", "Store driver: memory, file, sqlite, pgx, redis, s3 (default: $STORE_DRIVER or file)")
	rootCmd.PersistentFlags().StringVar(&s.storePath, "path", "", "Directory for the file store (default: $STORE_PATH or ./data)")
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		addCmd(s),
		logCmd(s),
		goalCmd(s),
		rmCmd(s),
		lsCmd(s),
		sortCmd(s),
		resetCmd(s),
		totalCmd(s),
		exportCmd(s),
		themeCmd(s),
	)

	return rootCmd
}

func (s *session) open(ctx context.Context, stderr io.Writer) error {
	cfg := config.Load()
	if s.storeDriver != "" {
		cfg.StoreDriver = s.storeDriver
	}
	if s.storePath != "" {
		cfg.StorePath = s.storePath
	}

	logger.Init(stderr, logger.Options{
		Dev:       true,
		Quiet:     !s.verbose,
		SentryDSN: cfg.SentryDSN,
		Env:       cfg.AppEnv,
	})

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	s.app = a
	return nil
}

func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	logger.Flush()
	return err
}

// printNotifications writes the messages recorded during a command, such
// as the goal completion message.
func printNotifications(w io.Writer, rec *view.Recorder) {
	for _, in := range rec.Instructions() {
		if in.Kind == view.KindNotify {
			fmt.Fprintln(w, in.Message)
		}
	}
}
