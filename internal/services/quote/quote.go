// Package quote turns protocol operation results into routing-host quotes.
package quote

import (
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
)

// TokenOperation computes the full output of a pair's operation at a given input.
type TokenOperation interface {
	Output(pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error)
}

// OperationToQuote copies the raw magnitudes and attaches the fee percentage.
func OperationToQuote(op domain.OperationOutput) (*domain.Quote, error) {
	feePct, err := FeePctDecimal(op.FeeAmount, op.FeeBase)
	if err != nil {
		return nil, err
	}
	return &domain.Quote{
		InAmount:  op.InAmount.Bits,
		OutAmount: op.OutAmount.Bits,
		FeeAmount: op.FeeAmount.Bits,
		FeeMint:   op.FeeMint,
		FeePct:    feePct,
	}, nil
}

// Quote computes an exact-in quote for pair, treating amount as the input token's magnitude.
func Quote(state TokenOperation, pair domain.Pair, amount uint64) (*domain.Quote, error) {
	op, err := state.Output(pair, pair.In.Amount(amount))
	if err != nil {
		return nil, err
	}
	return OperationToQuote(op)
}
