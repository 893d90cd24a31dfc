package domain

import (
	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
	"github.com/shopspring/decimal"
)

// OperationOutput is the full result of a protocol operation. Each amount carries its own exponent.
type OperationOutput struct {
	InAmount  fixed.UFix64
	OutAmount fixed.UFix64
	FeeAmount fixed.UFix64
	// FeeBase is the amount the fee was taken from; it shares FeeAmount's exponent.
	FeeBase fixed.UFix64
	FeeMint solana.PublicKey
}

// Quote is the routing host's exact-in quote. Amounts are raw magnitudes.
type Quote struct {
	InAmount  uint64           `json:"inAmount,string"`
	OutAmount uint64           `json:"outAmount,string"`
	FeeAmount uint64           `json:"feeAmount,string"`
	FeeMint   solana.PublicKey `json:"feeMint"`
	FeePct    decimal.Decimal  `json:"feePct"`
}
