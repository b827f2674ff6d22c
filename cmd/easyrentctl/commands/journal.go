package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"easyrent-server/cmd/api/wire"
)

func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect and repair submission journals",
	}
	cmd.AddCommand(journalSweepCmd())
	return cmd
}

func journalSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Undo the completed steps of failed submissions past the grace period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := wire.InitializeJournalSweepJob()
			if err != nil {
				return err
			}
			if err := job.Execute(cmd.Context()); err != nil {
				return err
			}
			slog.Info("journal sweep finished")
			return nil
		},
	}
}
