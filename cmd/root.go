package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/inovacc/libris/internal/application"
	"github.com/inovacc/libris/internal/cli"
	"github.com/inovacc/libris/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var useTUI bool

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "An interactive library catalog",
	Long: `Libris is an interactive console for a small in-memory library.

Pick one of the fixed accounts and work from its menu:
  Librarian (Admin)  add, remove, search and list books
  Bob, Steve         borrow, check in and search books

The catalog holds at most 5 books and lives only as long as the process.
Menu choices may be typed as their number or their name.

Examples:
  libris
  libris --tui
  libris --log-level=debug --json 2>libris.log`,
	Version:      application.Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

func runSession(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr(), logOptions)
	app := application.New(logger)

	var opts []session.Option

	if useTUI {
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			opts = append(opts, session.WithPicker(cli.Picker{Accounts: app.Accounts}))
		} else {
			logger.Warn("--tui ignored: stdin is not a terminal")
		}
	}

	return session.New(app, cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(cmd.Context())
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	addLogFlags(rootCmd.PersistentFlags(), &logOptions)
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Choose the account from an interactive list")
}
