package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage peer aliases",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <alias> <pubkey-hex>",
			Short: "Add or replace a contact",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := appCtx.Contacts.AddContact(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", c.Alias, c.Public)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List contacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				contacts, err := appCtx.Contacts.ListContacts()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, c := range contacts {
					fmt.Fprintf(tw, "%s\t%s\n", c.Alias, c.Public)
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "rm <alias>",
			Short: "Remove a contact",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return appCtx.Contacts.RemoveContact(args[0])
			},
		},
	)
	return cmd
}
