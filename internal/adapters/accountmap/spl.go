package accountmap

import (
	"github.com/gagliardetto/solana-go/programs/token"
)

const (
	MintLen         = 82
	TokenAccountLen = 165
)

// Mint is an SPL token mint in its packed layout.
type Mint struct {
	token.Mint
}

func (Mint) PackedLen() int { return MintLen }

func (m Mint) Initialized() bool { return m.IsInitialized }

// TokenAccount is an SPL token account in its packed layout.
type TokenAccount struct {
	token.Account
}

func (TokenAccount) PackedLen() int { return TokenAccountLen }

func (a TokenAccount) Initialized() bool { return a.State != token.Uninitialized }
