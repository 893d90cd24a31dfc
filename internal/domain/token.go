package domain

import (
	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/fixed"
)

type TokenKind uint8

const (
	TokenKindStablecoin TokenKind = iota
	TokenKindLevercoin
	TokenKindLST
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindStablecoin:
		return "Stablecoin"
	case TokenKindLevercoin:
		return "Levercoin"
	case TokenKindLST:
		return "LST"
	default:
		return "UNKNOWN"
	}
}

type Token struct {
	Symbol string           `json:"symbol"`
	Mint   solana.PublicKey `json:"mint"`
	Exp    int8             `json:"exp"`
	Kind   TokenKind        `json:"kind"`
}

// Decimals is the SPL mint decimals implied by Exp.
func (t Token) Decimals() uint8 {
	return uint8(-t.Exp)
}

func (t Token) Amount(bits uint64) fixed.UFix64 {
	return fixed.New(bits, t.Exp)
}

var (
	HyUSD   = Token{Symbol: "hyUSD", Mint: common.HyUSDMint, Exp: fixed.ExpUSD, Kind: TokenKindStablecoin}
	XSOL    = Token{Symbol: "xSOL", Mint: common.XSOLMint, Exp: fixed.ExpUSD, Kind: TokenKindLevercoin}
	JitoSOL = Token{Symbol: "JitoSOL", Mint: common.JitoSOLMint, Exp: fixed.ExpLamports, Kind: TokenKindLST}
	HyloSOL = Token{Symbol: "hyloSOL", Mint: common.HyloSOLMint, Exp: fixed.ExpLamports, Kind: TokenKindLST}
)

// Tokens lists every mint the protocol can quote.
var Tokens = []Token{HyUSD, XSOL, JitoSOL, HyloSOL}

// LSTs are the liquid staking tokens accepted as collateral.
var LSTs = []Token{JitoSOL, HyloSOL}

type TokenRegistry map[solana.PublicKey]Token

var registry = func() TokenRegistry {
	r := make(TokenRegistry, len(Tokens))
	for _, t := range Tokens {
		r[t.Mint] = t
	}
	return r
}()

func TokenByMint(mint solana.PublicKey) (Token, bool) {
	t, ok := registry[mint]
	return t, ok
}

// TokenBySymbol matches symbols case-sensitively, falling back to base58 mints.
func TokenBySymbol(s string) (Token, bool) {
	for _, t := range Tokens {
		if t.Symbol == s {
			return t, true
		}
	}
	mint, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return Token{}, false
	}
	return TokenByMint(mint)
}

// IsLST is true only for JitoSOL and hyloSOL.
func IsLST(mint solana.PublicKey) bool {
	t, ok := registry[mint]
	return ok && t.Kind == TokenKindLST
}
