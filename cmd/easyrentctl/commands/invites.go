package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"easyrent-server/cmd/api/wire"
)

func invitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invites",
		Short: "Manage tenant invites",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "expire",
		Short: "Mark pending invites past their expiry as expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := wire.InitializeInviteExpiryJob()
			if err != nil {
				return err
			}
			if err := job.Execute(cmd.Context()); err != nil {
				return err
			}
			slog.Info("invite expiry finished")
			return nil
		},
	})
	return cmd
}
