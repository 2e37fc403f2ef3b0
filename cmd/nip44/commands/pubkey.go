package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nip44/internal/crypto"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print identity public key and fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			id, err := appCtx.Identity.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			crypto.Wipe(id.Private[:])
			fmt.Fprintf(cmd.OutOrStdout(), "Public key:  %s\nFingerprint: %s\n", id.Public, crypto.Fingerprint(id.Public))
			return nil
		},
	}
}
