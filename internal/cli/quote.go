package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/hxuan190/hylo-quote-engine/internal/adapters/blockchain"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

type quoteOptions struct {
	in       string
	out      string
	amount   uint64
	snapshot string
}

func newQuoteCmd(a *app) *cobra.Command {
	var opts quoteOptions
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote an exact-in operation",
		Long: `Quote an exact-in mint, redeem or swap.

--in and --out take a symbol (hyUSD, xSOL, JitoSOL, hyloSOL) or a base58 mint.
--amount is in the input token's smallest units.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, a, opts)
		},
	}
	cmd.Flags().StringVar(&opts.in, "in", "", "input token symbol or mint (required)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output token symbol or mint (required)")
	cmd.Flags().Uint64Var(&opts.amount, "amount", 0, "input amount in smallest units (required)")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "JSON account snapshot file; fetched over RPC when empty")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func runQuote(cmd *cobra.Command, a *app, opts quoteOptions) error {
	in, ok := domain.TokenBySymbol(opts.in)
	if !ok {
		return fmt.Errorf("%w: unknown token %q", domain.ErrUnsupportedPair, opts.in)
	}
	out, ok := domain.TokenBySymbol(opts.out)
	if !ok {
		return fmt.Errorf("%w: unknown token %q", domain.ErrUnsupportedPair, opts.out)
	}
	programID, err := a.programID()
	if err != nil {
		return err
	}
	svc := quote.NewService(programID)
	ctx := commandContext(cmd)

	accounts, err := a.loadAccounts(ctx, svc, opts.snapshot)
	if err != nil {
		return err
	}

	q, err := svc.Quote(ctx, domain.QuoteParams{
		Amount:     opts.amount,
		InputMint:  in.Mint,
		OutputMint: out.Mint,
	}, accounts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if a.jsonOut {
		return writeJSON(w, q)
	}
	feeToken, _ := domain.TokenByMint(q.FeeMint)
	fmt.Fprintln(w, title(fmt.Sprintf("%s -> %s", in.Symbol, out.Symbol)))
	printField(w, "in", fmt.Sprintf("%s %s", in.Amount(q.InAmount), in.Symbol))
	printField(w, "out", fmt.Sprintf("%s %s", out.Amount(q.OutAmount), out.Symbol))
	printField(w, "fee", fmt.Sprintf("%s %s", feeToken.Amount(q.FeeAmount), feeToken.Symbol))
	printField(w, "fee pct", q.FeePct.Shift(2).StringFixed(4)+"%")
	return nil
}

// loadAccounts reads the snapshot file when given, otherwise fetches the accounts over RPC.
func (a *app) loadAccounts(ctx context.Context, svc *quote.Service, snapshotPath string) (domain.AccountMap, error) {
	if snapshotPath != "" {
		return readSnapshot(snapshotPath)
	}

	url := a.v.GetString(keyRPCURL)
	if url == "" {
		return nil, errors.New("either --snapshot or --rpc is required")
	}
	keys, err := svc.AccountsToUpdate()
	if err != nil {
		return nil, err
	}
	fetcher := blockchain.NewAccountFetcher(rpc.New(url), a.v.GetDuration(keyRPCTimeout))
	var accounts domain.AccountMap
	err = a.withSpinner("Fetching Hylo accounts...", func() error {
		accounts, err = fetcher.Fetch(ctx, keys)
		return err
	})
	return accounts, err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func readSnapshot(path string) (domain.AccountMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snapshot domain.Snapshot
	if err := sonic.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidSnapshot, path, err)
	}
	return snapshot.AccountMap()
}
