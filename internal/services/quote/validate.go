package quote

import (
	"errors"

	"github.com/hxuan190/hylo-quote-engine/internal/domain"
)

var (
	ErrExactOutNotSupported        = errors.New("ExactOut not supported")
	ErrDynamicAccountsNotSupported = errors.New("Dynamic accounts replacement not supported")
	ErrMissingSwapParams           = errors.New("missing swap params")
)

// ValidateSwapParams rejects ExactOut swaps and default-filled dynamic accounts.
// On success the same pointer is returned. A nil params is rejected with ErrMissingSwapParams.
func ValidateSwapParams(params *domain.SwapParams) (*domain.SwapParams, error) {
	if params == nil {
		return nil, ErrMissingSwapParams
	}
	if params.SwapMode == domain.SwapModeExactOut {
		return nil, ErrExactOutNotSupported
	}
	if params.MissingDynamicAccountsAsDefault {
		return nil, ErrDynamicAccountsNotSupported
	}
	return params, nil
}
