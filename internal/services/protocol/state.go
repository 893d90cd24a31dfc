// Package protocol holds a flat-fee protocol state hydrated from a host account snapshot.
package protocol

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/adapters/accountmap"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
	"github.com/hxuan190/hylo-quote-engine/internal/services/builder"
)

// ExpNAV is the exponent of the levercoin net asset value (USD per xSOL).
const ExpNAV int8 = -9

var (
	ErrInvalidState         = errors.New("invalid protocol state")
	ErrZeroAmount           = errors.New("amount must be greater than zero")
	ErrMathOverflow         = errors.New("math overflow")
	ErrInsufficientReserves = errors.New("insufficient LST reserves")
	ErrInsolvent            = errors.New("collateral below stablecoin supply")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

type Fees struct {
	StablecoinMint   uint16
	StablecoinRedeem uint16
	LevercoinMint    uint16
	LevercoinRedeem  uint16
	Swap             uint16
}

type LstState struct {
	Token domain.Token
	Vault solana.PublicKey
	// Price is SOL per LST.
	Price   fixed.UFix64
	Reserve fixed.UFix64
}

// State is an immutable snapshot of everything needed to price an operation.
type State struct {
	SolUsd           fixed.UFix64
	Fees             Fees
	StablecoinSupply fixed.UFix64
	LevercoinSupply  fixed.UFix64
	LSTs             map[solana.PublicKey]LstState
}

// Load hydrates a State from the account snapshot.
func Load(accounts domain.AccountMap, programID solana.PublicKey) (*State, error) {
	stateKey, err := builder.HyloStatePDA(programID)
	if err != nil {
		return nil, err
	}
	hylo, err := accountmap.GetAnchor[HyloState](accounts, stateKey)
	if err != nil {
		return nil, err
	}
	if !hylo.StablecoinMint.Equals(domain.HyUSD.Mint) || !hylo.LevercoinMint.Equals(domain.XSOL.Mint) {
		return nil, fmt.Errorf("%w: unexpected protocol mints", ErrInvalidState)
	}
	if hylo.SolUsdPrice == 0 {
		return nil, fmt.Errorf("%w: zero SOL/USD price", ErrInvalidState)
	}

	stableSupply, err := loadSupply(accounts, domain.HyUSD)
	if err != nil {
		return nil, err
	}
	leverSupply, err := loadSupply(accounts, domain.XSOL)
	if err != nil {
		return nil, err
	}

	s := &State{
		SolUsd: fixed.New(hylo.SolUsdPrice, fixed.ExpPrice),
		Fees: Fees{
			StablecoinMint:   hylo.StablecoinMintFeeBps,
			StablecoinRedeem: hylo.StablecoinRedeemFeeBps,
			LevercoinMint:    hylo.LevercoinMintFeeBps,
			LevercoinRedeem:  hylo.LevercoinRedeemFeeBps,
			Swap:             hylo.SwapFeeBps,
		},
		StablecoinSupply: stableSupply,
		LevercoinSupply:  leverSupply,
		LSTs:             make(map[solana.PublicKey]LstState, len(domain.LSTs)),
	}

	for _, lst := range domain.LSTs {
		ls, err := loadLST(accounts, programID, lst)
		if err != nil {
			return nil, err
		}
		s.LSTs[lst.Mint] = ls
	}
	return s, nil
}

func loadSupply(accounts domain.AccountMap, t domain.Token) (fixed.UFix64, error) {
	mint, err := accountmap.GetPacked[accountmap.Mint](accounts, t.Mint)
	if err != nil {
		return fixed.UFix64{}, err
	}
	if mint.Decimals != t.Decimals() {
		return fixed.UFix64{}, fmt.Errorf("%w: %s has %d decimals, want %d", ErrInvalidState, t.Symbol, mint.Decimals, t.Decimals())
	}
	return t.Amount(mint.Supply), nil
}

func loadLST(accounts domain.AccountMap, programID solana.PublicKey, lst domain.Token) (LstState, error) {
	headerKey, err := builder.LstHeaderPDA(programID, lst.Mint)
	if err != nil {
		return LstState{}, err
	}
	header, err := accountmap.GetAnchor[LstHeader](accounts, headerKey)
	if err != nil {
		return LstState{}, err
	}
	if !header.Mint.Equals(lst.Mint) {
		return LstState{}, fmt.Errorf("%w: %s header mint %s", ErrInvalidState, lst.Symbol, header.Mint)
	}
	if header.PriceInSol == 0 {
		return LstState{}, fmt.Errorf("%w: zero %s price", ErrInvalidState, lst.Symbol)
	}
	// AccountsToUpdate and the swap metas list the vault PDA; the header must agree.
	vaultKey, err := builder.LstVaultPDA(programID, lst.Mint)
	if err != nil {
		return LstState{}, err
	}
	if !header.Vault.Equals(vaultKey) {
		return LstState{}, fmt.Errorf("%w: %s header vault %s, want %s", ErrInvalidState, lst.Symbol, header.Vault, vaultKey)
	}

	vault, err := accountmap.GetPacked[accountmap.TokenAccount](accounts, vaultKey)
	if err != nil {
		return LstState{}, err
	}
	if !vault.Mint.Equals(lst.Mint) {
		return LstState{}, fmt.Errorf("%w: %s vault holds %s", ErrInvalidState, lst.Symbol, vault.Mint)
	}

	return LstState{
		Token:   lst,
		Vault:   vaultKey,
		Price:   fixed.New(header.PriceInSol, fixed.ExpLamports),
		Reserve: lst.Amount(vault.Amount),
	}, nil
}

// CollateralUSD values every LST reserve at its SOL price and the SOL/USD price.
func (s *State) CollateralUSD() (fixed.UFix64, error) {
	total := fixed.Zero(fixed.ExpUSD)
	for _, lst := range domain.LSTs {
		ls, ok := s.LSTs[lst.Mint]
		if !ok {
			continue
		}
		usd, err := s.lstToUSD(ls, ls.Reserve)
		if err != nil {
			return fixed.UFix64{}, err
		}
		if total, ok = total.CheckedAdd(usd); !ok {
			return fixed.UFix64{}, ErrMathOverflow
		}
	}
	return total, nil
}

// LevercoinNAV is (collateral - stablecoin supply) / levercoin supply, or 1 USD with no levercoin.
func (s *State) LevercoinNAV() (fixed.UFix64, error) {
	if s.LevercoinSupply.IsZero() {
		one, _ := fixed.New(1, fixed.ExpUnit).Convert(ExpNAV)
		return one, nil
	}
	collateral, err := s.CollateralUSD()
	if err != nil {
		return fixed.UFix64{}, err
	}
	equity, ok := collateral.CheckedSub(s.StablecoinSupply)
	if !ok {
		return fixed.UFix64{}, ErrInsolvent
	}
	nav, ok := fixed.Div(equity, s.LevercoinSupply, ExpNAV)
	if !ok {
		return fixed.UFix64{}, ErrMathOverflow
	}
	return nav, nil
}

func (s *State) lst(t domain.Token) (LstState, error) {
	ls, ok := s.LSTs[t.Mint]
	if !ok {
		return LstState{}, fmt.Errorf("%w: %s not loaded", ErrInvalidState, t.Symbol)
	}
	return ls, nil
}

func (s *State) lstToUSD(ls LstState, amount fixed.UFix64) (fixed.UFix64, error) {
	sol, ok := fixed.Mul(amount, ls.Price, fixed.ExpLamports)
	if !ok {
		return fixed.UFix64{}, ErrMathOverflow
	}
	usd, ok := fixed.Mul(sol, s.SolUsd, fixed.ExpUSD)
	if !ok {
		return fixed.UFix64{}, ErrMathOverflow
	}
	return usd, nil
}

func (s *State) usdToLST(ls LstState, usd fixed.UFix64) (fixed.UFix64, error) {
	sol, ok := fixed.Div(usd, s.SolUsd, fixed.ExpLamports)
	if !ok {
		return fixed.UFix64{}, ErrMathOverflow
	}
	amount, ok := fixed.Div(sol, ls.Price, ls.Token.Exp)
	if !ok {
		return fixed.UFix64{}, ErrMathOverflow
	}
	return amount, nil
}
