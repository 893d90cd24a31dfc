package config

import (
	"errors"
	"time"

	"github.com/andrew-solarstorm/go-packages/common"
)

type RPCConfig struct {
	RPCUrl string
	// FetchTimeout bounds a single multi-account fetch.
	FetchTimeout time.Duration
}

func (r *RPCConfig) Key() string {
	return RPC_CONFIG_KEY
}

func (r *RPCConfig) Load() error {
	r.RPCUrl = common.GetEnvOrDefault("RPC_URL", "https://api.mainnet-beta.solana.com")
	r.FetchTimeout = time.Duration(common.GetEnvOrDefaultInt("RPC_FETCH_TIMEOUT_MS", 5000)) * time.Millisecond
	return r.Validate()
}

func (r *RPCConfig) Validate() error {
	if r.RPCUrl == "" || r.FetchTimeout <= 0 {
		return errors.New("invalid rpc config")
	}
	return nil
}
