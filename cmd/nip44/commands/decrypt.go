package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <peer> <payload|->",
		Short: "Decrypt a payload from a peer; \"-\" reads the payload from stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			payload, err := messageArg(cmd, args[1:])
			if err != nil {
				return err
			}
			pt, err := appCtx.Messages.Open(passphrase, args[0], strings.TrimSpace(payload))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pt)
			return nil
		},
	}
}
