package protocol

import (
	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/adapters/accountmap"
)

var (
	hyloStateDiscriminator = accountmap.AccountDiscriminator("Hylo")
	lstHeaderDiscriminator = accountmap.AccountDiscriminator("LstHeader")
)

// HyloState is the exchange's global state account.
type HyloState struct {
	Admin          solana.PublicKey
	StablecoinMint solana.PublicKey
	LevercoinMint  solana.PublicKey

	// SolUsdPrice is USD per SOL at exponent -8.
	SolUsdPrice uint64

	StablecoinMintFeeBps   uint16
	StablecoinRedeemFeeBps uint16
	LevercoinMintFeeBps    uint16
	LevercoinRedeemFeeBps  uint16
	SwapFeeBps             uint16

	Bump uint8
}

func (HyloState) Discriminator() [accountmap.DiscriminatorSize]byte {
	return hyloStateDiscriminator
}

// LstHeader describes one accepted LST.
type LstHeader struct {
	Mint  solana.PublicKey
	Vault solana.PublicKey

	// PriceInSol is SOL per LST at exponent -9.
	PriceInSol uint64

	Bump uint8
}

func (LstHeader) Discriminator() [accountmap.DiscriminatorSize]byte {
	return lstHeaderDiscriminator
}
