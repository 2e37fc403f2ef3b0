package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <peer> <message|->",
		Short: "Encrypt a message for a peer; \"-\" reads the message from stdin",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			msg, err := messageArg(cmd, args[1:])
			if err != nil {
				return err
			}
			payload, err := appCtx.Messages.Seal(passphrase, args[0], msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}
}

// messageArg joins the remaining arguments, or reads stdin when the only
// argument is "-".
func messageArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(b), "\n"), nil
	}
	return strings.Join(args, " "), nil
}
