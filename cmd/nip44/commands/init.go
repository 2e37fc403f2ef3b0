package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"nip44/internal/crypto"
	"nip44/internal/domain"
	"nip44/internal/store"
)

func initCmd() *cobra.Command {
	var (
		importHex string
		force     bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate or import identity keys and store them securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			if !force {
				if _, err := appCtx.Identity.LoadIdentity(passphrase); !errors.Is(err, store.ErrNoIdentity) {
					return errors.New("identity already exists; pass --force to replace it")
				}
			}

			var (
				fp  domain.Fingerprint
				err error
			)
			if importHex != "" {
				var priv domain.PrivateKey
				priv, err = crypto.ParsePrivateKey(importHex)
				if err != nil {
					return err
				}
				_, fp, err = appCtx.Identity.ImportIdentity(passphrase, priv)
				crypto.Wipe(priv[:])
			} else {
				_, fp, err = appCtx.Identity.GenerateIdentity(passphrase)
			}
			if err != nil {
				return err
			}
			appCtx.Messages.Forget()
			appCtx.Log.Info().Str("fingerprint", fp.String()).Msg("identity stored")

			fmt.Fprintf(cmd.OutOrStdout(), "Identity created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
	cmd.Flags().StringVar(&importHex, "import", "", "import an existing hex private key")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing identity")
	return cmd
}
