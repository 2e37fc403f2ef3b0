package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nip44/internal/app"
)

const passphraseEnv = "NIP44_PASSPHRASE"

var (
	home       string
	passphrase string
	logLevel   string
	cacheSize  int
	appCtx     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nip44",
		Short:         "Encrypt and decrypt NIP-44 v2 direct messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".nip44")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if passphrase == "" {
				passphrase = os.Getenv(passphraseEnv)
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("cache-size") {
				cfg.CacheSize = cacheSize
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.nip44)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the identity (or $"+passphraseEnv+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().IntVar(&cacheSize, "cache-size", 0, "conversation keys kept in memory (overrides config)")

	root.AddCommand(
		initCmd(),
		pubkeyCmd(),
		contactCmd(),
		convkeyCmd(),
		encryptCmd(),
		decryptCmd(),
	)
	return root
}

var errNoPassphrase = errors.New("passphrase required (-p or $" + passphraseEnv + ")")

func requirePassphrase() error {
	if passphrase == "" {
		return errNoPassphrase
	}
	return nil
}
