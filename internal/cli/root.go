// Package cli implements the quoter command line.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/services"
)

const (
	keyRPCURL     = "rpc_url"
	keyProgramID  = "program_id"
	keyRPCTimeout = "rpc_timeout"
	keyLogLevel   = "log_level"
)

// app carries settings shared by every subcommand.
type app struct {
	v       *viper.Viper
	jsonOut bool
	noSpin  bool
}

func (a *app) programID() (solana.PublicKey, error) {
	id, err := solana.PublicKeyFromBase58(a.v.GetString(keyProgramID))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid program id: %w", err)
	}
	return id, nil
}

// NewRootCmd builds the command tree. Settings resolve from flags, then HYLO_* env vars.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("HYLO")
	a.v.AutomaticEnv()
	a.v.SetDefault(keyProgramID, common.HyloExchangeProgramID.String())
	a.v.SetDefault(keyRPCTimeout, 10*time.Second)
	a.v.SetDefault(keyLogLevel, "WARN")

	root := &cobra.Command{
		Use:   "quoter",
		Short: "Quote Hylo mints, redeems and swaps",
		Long: `quoter prices exact-in Hylo operations between hyUSD, xSOL, JitoSOL and hyloSOL.

Accounts come from a JSON snapshot file or a live RPC endpoint.

Examples:
  quoter accounts
  quoter snapshot --rpc https://api.mainnet-beta.solana.com -o hylo.json
  quoter quote --in JitoSOL --out hyUSD --amount 1000000000 --snapshot hylo.json
  HYLO_RPC_URL=https://api.mainnet-beta.solana.com quoter quote --in xSOL --out hyUSD --amount 1000000`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			services.SetGlobalLevel(a.v.GetString(keyLogLevel))
		},
	}

	flags := root.PersistentFlags()
	flags.String("rpc", "", "Solana RPC endpoint (env HYLO_RPC_URL)")
	flags.String("program-id", "", "Hylo exchange program id (env HYLO_PROGRAM_ID)")
	flags.Duration("timeout", 0, "RPC fetch timeout (env HYLO_RPC_TIMEOUT)")
	flags.String("log-level", "", "DEBUG, INFO, WARN or ERROR (env HYLO_LOG_LEVEL)")
	flags.BoolVarP(&a.jsonOut, "json", "j", false, "Output in JSON format")
	flags.BoolVar(&a.noSpin, "no-spinner", false, "Disable the progress spinner")

	for key, flag := range map[string]string{
		keyRPCURL:     "rpc",
		keyProgramID:  "program-id",
		keyRPCTimeout: "timeout",
		keyLogLevel:   "log-level",
	} {
		// viper only prefers a bound flag once it has been set, so empty defaults fall through to env
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newQuoteCmd(a),
		newAccountsCmd(a),
		newSnapshotCmd(a),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
