package domain

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var ErrUnsupportedPair = errors.New("unsupported pair")

// Operation selects the exchange-rate and fee logic for a pair.
type Operation uint8

const (
	OpMintStablecoin Operation = iota
	OpRedeemStablecoin
	OpMintLevercoin
	OpRedeemLevercoin
	OpSwapStableToLever
	OpSwapLeverToStable
)

func (o Operation) String() string {
	switch o {
	case OpMintStablecoin:
		return "MintStablecoin"
	case OpRedeemStablecoin:
		return "RedeemStablecoin"
	case OpMintLevercoin:
		return "MintLevercoin"
	case OpRedeemLevercoin:
		return "RedeemLevercoin"
	case OpSwapStableToLever:
		return "SwapStableToLever"
	case OpSwapLeverToStable:
		return "SwapLeverToStable"
	default:
		return "UNKNOWN"
	}
}

// Pair is an ordered IN -> OUT token pair. Build it with NewPair so Operation is set.
type Pair struct {
	In        Token
	Out       Token
	Operation Operation
}

func (p Pair) String() string {
	return p.In.Symbol + "->" + p.Out.Symbol
}

func NewPair(inMint, outMint solana.PublicKey) (Pair, error) {
	in, ok := TokenByMint(inMint)
	if !ok {
		return Pair{}, fmt.Errorf("%w: unknown input mint %s", ErrUnsupportedPair, inMint)
	}
	out, ok := TokenByMint(outMint)
	if !ok {
		return Pair{}, fmt.Errorf("%w: unknown output mint %s", ErrUnsupportedPair, outMint)
	}

	op, ok := operationFor(in.Kind, out.Kind)
	if !ok {
		return Pair{}, fmt.Errorf("%w: %s->%s", ErrUnsupportedPair, in.Symbol, out.Symbol)
	}
	return Pair{In: in, Out: out, Operation: op}, nil
}

func operationFor(in, out TokenKind) (Operation, bool) {
	switch {
	case in == TokenKindLST && out == TokenKindStablecoin:
		return OpMintStablecoin, true
	case in == TokenKindStablecoin && out == TokenKindLST:
		return OpRedeemStablecoin, true
	case in == TokenKindLST && out == TokenKindLevercoin:
		return OpMintLevercoin, true
	case in == TokenKindLevercoin && out == TokenKindLST:
		return OpRedeemLevercoin, true
	case in == TokenKindStablecoin && out == TokenKindLevercoin:
		return OpSwapStableToLever, true
	case in == TokenKindLevercoin && out == TokenKindStablecoin:
		return OpSwapLeverToStable, true
	default:
		return 0, false
	}
}

// LST returns the LST side of the pair, if any.
func (p Pair) LST() (Token, bool) {
	switch {
	case p.In.Kind == TokenKindLST:
		return p.In, true
	case p.Out.Kind == TokenKindLST:
		return p.Out, true
	default:
		return Token{}, false
	}
}
