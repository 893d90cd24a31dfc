package domain

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type SwapMode uint8

const (
	SwapModeExactIn SwapMode = iota
	SwapModeExactOut
)

func (m SwapMode) String() string {
	switch m {
	case SwapModeExactIn:
		return "ExactIn"
	case SwapModeExactOut:
		return "ExactOut"
	default:
		return "UNKNOWN"
	}
}

func ParseSwapMode(s string) (SwapMode, error) {
	switch s {
	case "", "ExactIn":
		return SwapModeExactIn, nil
	case "ExactOut":
		return SwapModeExactOut, nil
	default:
		return 0, fmt.Errorf("invalid swap mode %q", s)
	}
}

type QuoteParams struct {
	Amount     uint64
	InputMint  solana.PublicKey
	OutputMint solana.PublicKey
	SwapMode   SwapMode
}

type SwapParams struct {
	SwapMode SwapMode

	InAmount  uint64
	OutAmount uint64

	SourceMint      solana.PublicKey
	DestinationMint solana.PublicKey

	SourceTokenAccount      solana.PublicKey
	DestinationTokenAccount solana.PublicKey
	TokenTransferAuthority  solana.PublicKey

	// MissingDynamicAccountsAsDefault asks the adapter to fill unresolved accounts with defaults.
	MissingDynamicAccountsAsDefault bool
}
