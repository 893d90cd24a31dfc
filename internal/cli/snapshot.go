package cli

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the Hylo accounts over RPC and write them as a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			programID, err := a.programID()
			if err != nil {
				return err
			}
			accounts, err := a.loadAccounts(commandContext(cmd), quote.NewService(programID), "")
			if err != nil {
				return err
			}
			data, err := sonic.Marshal(domain.NewSnapshot(accounts))
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d accounts to %s\n", len(accounts), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write; stdout when empty")
	return cmd
}
