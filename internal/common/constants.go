// Package common contains common constants and variables used across services
package common

import "github.com/gagliardetto/solana-go"

var (
	TokenProgramID  = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	ATAProgramID    = solana.MustPublicKeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	SystemProgramID = solana.SystemProgramID

	// HyloExchangeProgramID owns the protocol state and LST header accounts.
	HyloExchangeProgramID = solana.MustPublicKeyFromBase58("HYEXCHtHkBagdStcJCp3xbbb9B7sdMdWXFNj6mdsG4hn")

	HyUSDMint   = solana.MustPublicKeyFromBase58("5YMkXAYccHSGnHn9nob9xEvv6Pvka9DZWH7nTbotTu9E")
	XSOLMint    = solana.MustPublicKeyFromBase58("4sWNB8zGWHkh6UnmwiEtzNxL4XrN7uK9tosbESbJFfVs")
	JitoSOLMint = solana.MustPublicKeyFromBase58("J1toso1uCk3RLmjorhTtrVwY9HJ7X8V9yYac6Y7kGCPn")
	HyloSOLMint = solana.MustPublicKeyFromBase58("hy1oXYgrBW6PVcJ4s6s2FKavRdwgWTXdfE69AxT7kPT")
)

const (
	HyloStateSeed = "hylo"
	LstHeaderSeed = "lst_header"
	LstVaultSeed  = "lst_vault"

	// AMM label reported to routing hosts.
	HyloLabel = "Hylo"
)
