package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the operator CLI. Commands that touch the database
// load the same configuration as the API server.
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "easyrentctl",
		Short:         "Operate an EasyRent server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, ok := logLevels[logLevel]
			if !ok {
				level = slog.LevelInfo
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(validateCmd(), journalCmd(), invitesCmd())
	return root
}
