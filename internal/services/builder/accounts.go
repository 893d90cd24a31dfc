// Package builder derives protocol addresses and the account metas a host attaches to a swap.
package builder

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
)

var ErrMissingSwapAccount = errors.New("missing swap account")

// AccountsToUpdate lists every account the protocol state is hydrated from.
func AccountsToUpdate(programID solana.PublicKey) ([]solana.PublicKey, error) {
	state, err := HyloStatePDA(programID)
	if err != nil {
		return nil, err
	}
	keys := []solana.PublicKey{state, domain.HyUSD.Mint, domain.XSOL.Mint}
	for _, lst := range domain.LSTs {
		header, err := LstHeaderPDA(programID, lst.Mint)
		if err != nil {
			return nil, err
		}
		vault, err := LstVaultPDA(programID, lst.Mint)
		if err != nil {
			return nil, err
		}
		keys = append(keys, header, vault)
	}
	return keys, nil
}

// BuildSwapAccounts returns the account metas for a swap over pair.
// Pairs without an LST leg reference the first LST header, which the program reads for pricing.
func BuildSwapAccounts(programID solana.PublicKey, pair domain.Pair, params *domain.SwapParams) ([]*solana.AccountMeta, error) {
	if params.TokenTransferAuthority.IsZero() {
		return nil, errors.Join(ErrMissingSwapAccount, errors.New("token transfer authority"))
	}
	if params.SourceTokenAccount.IsZero() || params.DestinationTokenAccount.IsZero() {
		return nil, errors.Join(ErrMissingSwapAccount, errors.New("user token account"))
	}

	state, err := HyloStatePDA(programID)
	if err != nil {
		return nil, err
	}
	lst, ok := pair.LST()
	if !ok {
		lst = domain.LSTs[0]
	}
	header, err := LstHeaderPDA(programID, lst.Mint)
	if err != nil {
		return nil, err
	}
	vault, err := LstVaultPDA(programID, lst.Mint)
	if err != nil {
		return nil, err
	}

	return []*solana.AccountMeta{
		solana.Meta(params.TokenTransferAuthority).SIGNER(),
		solana.Meta(params.SourceTokenAccount).WRITE(),
		solana.Meta(params.DestinationTokenAccount).WRITE(),
		solana.Meta(pair.In.Mint).WRITE(),
		solana.Meta(pair.Out.Mint).WRITE(),
		solana.Meta(state),
		solana.Meta(header),
		solana.Meta(vault).WRITE(),
		solana.Meta(common.TokenProgramID),
		solana.Meta(programID),
	}, nil
}
