package builder

import (
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
)

type pdaCacheKey struct {
	programID solana.PublicKey
	seed      string
	mint      solana.PublicKey
}

var (
	pdaCache   = make(map[pdaCacheKey]solana.PublicKey)
	pdaCacheMu sync.RWMutex
)

func findCachedPDA(programID solana.PublicKey, seed string, mint *solana.PublicKey) (solana.PublicKey, error) {
	key := pdaCacheKey{programID: programID, seed: seed}
	seeds := [][]byte{[]byte(seed)}
	if mint != nil {
		key.mint = *mint
		seeds = append(seeds, mint.Bytes())
	}

	pdaCacheMu.RLock()
	if cached, ok := pdaCache[key]; ok {
		pdaCacheMu.RUnlock()
		return cached, nil
	}
	pdaCacheMu.RUnlock()

	pda, _, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive %s PDA: %w", seed, err)
	}

	pdaCacheMu.Lock()
	pdaCache[key] = pda
	pdaCacheMu.Unlock()

	return pda, nil
}

// HyloStatePDA is the protocol state account.
func HyloStatePDA(programID solana.PublicKey) (solana.PublicKey, error) {
	return findCachedPDA(programID, common.HyloStateSeed, nil)
}

// LstHeaderPDA holds the LST's price and vault.
func LstHeaderPDA(programID, lstMint solana.PublicKey) (solana.PublicKey, error) {
	return findCachedPDA(programID, common.LstHeaderSeed, &lstMint)
}

// LstVaultPDA is the token account holding the LST collateral.
func LstVaultPDA(programID, lstMint solana.PublicKey) (solana.PublicKey, error) {
	return findCachedPDA(programID, common.LstVaultSeed, &lstMint)
}
