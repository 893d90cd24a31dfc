package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

func newAccountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts a snapshot must contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			programID, err := a.programID()
			if err != nil {
				return err
			}
			keys, err := quote.NewService(programID).AccountsToUpdate()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				out := make([]string, 0, len(keys))
				for _, k := range keys {
					out = append(out, k.String())
				}
				return writeJSON(w, out)
			}
			for _, k := range keys {
				fmt.Fprintln(w, k)
			}
			return nil
		},
	}
}
