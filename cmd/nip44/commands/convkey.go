package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func convkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convkey <peer>",
		Short: "Print the conversation key shared with a peer (alias or hex pubkey)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			ck, err := appCtx.Messages.ConversationKey(passphrase, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(ck[:]))
			return nil
		},
	}
}
