package protocol

import (
	"fmt"

	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
)

type operationFunc func(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error)

// operations maps each supported operation to its exchange-rate and fee logic.
var operations = map[domain.Operation]operationFunc{
	domain.OpMintStablecoin:    mintStablecoin,
	domain.OpRedeemStablecoin:  redeemStablecoin,
	domain.OpMintLevercoin:     mintLevercoin,
	domain.OpRedeemLevercoin:   redeemLevercoin,
	domain.OpSwapStableToLever: swapStableToLever,
	domain.OpSwapLeverToStable: swapLeverToStable,
}

// Output computes the full result of pair's operation for input in.
// in must carry the input token's exponent.
func (s *State) Output(pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	if in.Exp != pair.In.Exp {
		panic(fmt.Sprintf("protocol: %s input exponent %d, want %d", pair, in.Exp, pair.In.Exp))
	}
	if in.IsZero() {
		return domain.OperationOutput{}, ErrZeroAmount
	}
	fn, ok := operations[pair.Operation]
	if !ok {
		return domain.OperationOutput{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, pair.Operation)
	}
	return fn(s, pair, in)
}

// takeFee splits base into (fee, base - fee).
func takeFee(base fixed.UFix64, bps uint16) (fee, net fixed.UFix64, err error) {
	fee, ok := fixed.MulBps(base, bps)
	if !ok {
		return fixed.UFix64{}, fixed.UFix64{}, ErrMathOverflow
	}
	net, ok = base.CheckedSub(fee)
	if !ok {
		return fixed.UFix64{}, fixed.UFix64{}, ErrMathOverflow
	}
	return fee, net, nil
}

func mintStablecoin(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	ls, err := s.lst(pair.In)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	fee, net, err := takeFee(in, s.Fees.StablecoinMint)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	usd, err := s.lstToUSD(ls, net)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	out, ok := usd.Convert(pair.Out.Exp)
	if !ok {
		return domain.OperationOutput{}, ErrMathOverflow
	}
	return domain.OperationOutput{
		InAmount:  in,
		OutAmount: out,
		FeeAmount: fee,
		FeeBase:   in,
		FeeMint:   pair.In.Mint,
	}, nil
}

func redeemStablecoin(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	usd, ok := in.Convert(fixed.ExpUSD)
	if !ok {
		return domain.OperationOutput{}, ErrMathOverflow
	}
	return redeemToLST(s, pair, in, usd, s.Fees.StablecoinRedeem)
}

func mintLevercoin(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	ls, err := s.lst(pair.In)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	nav, err := s.LevercoinNAV()
	if err != nil {
		return domain.OperationOutput{}, err
	}
	fee, net, err := takeFee(in, s.Fees.LevercoinMint)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	usd, err := s.lstToUSD(ls, net)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	out, ok := fixed.Div(usd, nav, pair.Out.Exp)
	if !ok {
		return domain.OperationOutput{}, ErrMathOverflow
	}
	return domain.OperationOutput{
		InAmount:  in,
		OutAmount: out,
		FeeAmount: fee,
		FeeBase:   in,
		FeeMint:   pair.In.Mint,
	}, nil
}

func redeemLevercoin(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	nav, err := s.LevercoinNAV()
	if err != nil {
		return domain.OperationOutput{}, err
	}
	usd, ok := fixed.Mul(in, nav, fixed.ExpUSD)
	if !ok {
		return domain.OperationOutput{}, ErrMathOverflow
	}
	return redeemToLST(s, pair, in, usd, s.Fees.LevercoinRedeem)
}

// redeemToLST pays out usd worth of the output LST, taking the fee in that LST.
func redeemToLST(s *State, pair domain.Pair, in, usd fixed.UFix64, feeBps uint16) (domain.OperationOutput, error) {
	ls, err := s.lst(pair.Out)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	gross, err := s.usdToLST(ls, usd)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	fee, out, err := takeFee(gross, feeBps)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	if out.Cmp(ls.Reserve) > 0 {
		return domain.OperationOutput{}, fmt.Errorf("%w: %s out %s, reserve %s", ErrInsufficientReserves, ls.Token.Symbol, out, ls.Reserve)
	}
	return domain.OperationOutput{
		InAmount:  in,
		OutAmount: out,
		FeeAmount: fee,
		FeeBase:   gross,
		FeeMint:   pair.Out.Mint,
	}, nil
}

func swapStableToLever(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	nav, err := s.LevercoinNAV()
	if err != nil {
		return domain.OperationOutput{}, err
	}
	fee, net, err := takeFee(in, s.Fees.Swap)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	out, ok := fixed.Div(net, nav, pair.Out.Exp)
	if !ok {
		return domain.OperationOutput{}, ErrMathOverflow
	}
	return domain.OperationOutput{
		InAmount:  in,
		OutAmount: out,
		FeeAmount: fee,
		FeeBase:   in,
		FeeMint:   pair.In.Mint,
	}, nil
}

func swapLeverToStable(s *State, pair domain.Pair, in fixed.UFix64) (domain.OperationOutput, error) {
	nav, err := s.LevercoinNAV()
	if err != nil {
		return domain.OperationOutput{}, err
	}
	usd, ok := fixed.Mul(in, nav, pair.Out.Exp)
	if !ok {
		return domain.OperationOutput{}, ErrMathOverflow
	}
	fee, out, err := takeFee(usd, s.Fees.Swap)
	if err != nil {
		return domain.OperationOutput{}, err
	}
	return domain.OperationOutput{
		InAmount:  in,
		OutAmount: out,
		FeeAmount: fee,
		FeeBase:   usd,
		FeeMint:   pair.Out.Mint,
	}, nil
}
