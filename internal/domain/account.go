package domain

import "github.com/gagliardetto/solana-go"

type Account struct {
	Lamports   uint64
	Owner      solana.PublicKey
	Data       []byte
	Executable bool
}

// AccountMap is the host-supplied account snapshot. It is only ever read.
type AccountMap map[solana.PublicKey]Account
