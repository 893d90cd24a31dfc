package config

import (
	"fmt"

	"github.com/andrew-solarstorm/go-packages/common"
	"github.com/gagliardetto/solana-go"

	internalcommon "github.com/hxuan190/hylo-quote-engine/internal/common"
)

type QuoteConfig struct {
	ProgramID solana.PublicKey
}

func (q *QuoteConfig) Key() string {
	return QUOTE_CONFIG_KEY
}

func (q *QuoteConfig) Load() error {
	programID, err := solana.PublicKeyFromBase58(
		common.GetEnvOrDefault("HYLO_PROGRAM_ID", internalcommon.HyloExchangeProgramID.String()),
	)
	if err != nil {
		return fmt.Errorf("invalid HYLO_PROGRAM_ID: %w", err)
	}
	q.ProgramID = programID
	return q.Validate()
}

func (q *QuoteConfig) Validate() error {
	if q.ProgramID.IsZero() {
		return fmt.Errorf("invalid quote config: empty program id")
	}
	return nil
}
