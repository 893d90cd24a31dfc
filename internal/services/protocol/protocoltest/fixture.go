// Package protocoltest builds encoded account snapshots for exercising the protocol state.
package protocoltest

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/hxuan190/hylo-quote-engine/internal/adapters/accountmap"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/services/builder"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol"
)

type LST struct {
	PriceInSol uint64
	Reserve    uint64
	// Vault overrides the vault address written into the header; zero means the vault PDA.
	Vault solana.PublicKey
}

// Fixture describes a protocol snapshot in raw magnitudes.
type Fixture struct {
	ProgramID        solana.PublicKey
	SolUsd           uint64
	Fees             protocol.Fees
	StablecoinSupply uint64
	LevercoinSupply  uint64
	LSTs             map[solana.PublicKey]LST
}

// Default is a solvent snapshot:
//   - SOL at $150, JitoSOL at 1.2 SOL with 1000 in reserve, hyloSOL at 1.05 SOL with 500 in reserve
//   - $258,750 collateral against 100,000 hyUSD and 79,375 xSOL, so xSOL NAV is exactly $2
func Default() Fixture {
	return Fixture{
		ProgramID: common.HyloExchangeProgramID,
		SolUsd:    15_000_000_000,
		Fees: protocol.Fees{
			StablecoinMint:   10,
			StablecoinRedeem: 20,
			LevercoinMint:    30,
			LevercoinRedeem:  40,
			Swap:             25,
		},
		StablecoinSupply: 100_000_000_000,
		LevercoinSupply:  79_375_000_000,
		LSTs: map[solana.PublicKey]LST{
			domain.JitoSOL.Mint: {PriceInSol: 1_200_000_000, Reserve: 1_000_000_000_000},
			domain.HyloSOL.Mint: {PriceInSol: 1_050_000_000, Reserve: 500_000_000_000},
		},
	}
}

// Accounts encodes the fixture into the accounts a host would supply.
func (f Fixture) Accounts() (domain.AccountMap, error) {
	accounts := make(domain.AccountMap)

	stateKey, err := builder.HyloStatePDA(f.ProgramID)
	if err != nil {
		return nil, err
	}
	state, err := encodeAnchor(protocol.HyloState{
		StablecoinMint:         domain.HyUSD.Mint,
		LevercoinMint:          domain.XSOL.Mint,
		SolUsdPrice:            f.SolUsd,
		StablecoinMintFeeBps:   f.Fees.StablecoinMint,
		StablecoinRedeemFeeBps: f.Fees.StablecoinRedeem,
		LevercoinMintFeeBps:    f.Fees.LevercoinMint,
		LevercoinRedeemFeeBps:  f.Fees.LevercoinRedeem,
		SwapFeeBps:             f.Fees.Swap,
	})
	if err != nil {
		return nil, err
	}
	accounts[stateKey] = domain.Account{Owner: f.ProgramID, Data: state}

	for _, m := range []struct {
		token  domain.Token
		supply uint64
	}{{domain.HyUSD, f.StablecoinSupply}, {domain.XSOL, f.LevercoinSupply}} {
		data, err := encodeBin(token.Mint{
			Supply:        m.supply,
			Decimals:      m.token.Decimals(),
			IsInitialized: true,
		})
		if err != nil {
			return nil, err
		}
		accounts[m.token.Mint] = domain.Account{Owner: common.TokenProgramID, Data: data}
	}

	for mint, lst := range f.LSTs {
		headerKey, err := builder.LstHeaderPDA(f.ProgramID, mint)
		if err != nil {
			return nil, err
		}
		vaultKey, err := builder.LstVaultPDA(f.ProgramID, mint)
		if err != nil {
			return nil, err
		}
		if !lst.Vault.IsZero() {
			vaultKey = lst.Vault
		}
		header, err := encodeAnchor(protocol.LstHeader{Mint: mint, Vault: vaultKey, PriceInSol: lst.PriceInSol})
		if err != nil {
			return nil, err
		}
		vault, err := encodeBin(token.Account{
			Mint:   mint,
			Owner:  stateKey,
			Amount: lst.Reserve,
			State:  token.Initialized,
		})
		if err != nil {
			return nil, err
		}
		accounts[headerKey] = domain.Account{Owner: f.ProgramID, Data: header}
		accounts[vaultKey] = domain.Account{Owner: common.TokenProgramID, Data: vault}
	}
	return accounts, nil
}

func encodeAnchor(v accountmap.AnchorAccount) ([]byte, error) {
	var buf bytes.Buffer
	d := v.Discriminator()
	buf.Write(d[:])
	if err := bin.NewBorshEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeBin(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := bin.NewBinEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
