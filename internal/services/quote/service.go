package quote

import (
	"context"
	"errors"
	"time"

	"github.com/gagliardetto/solana-go"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/config"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/metrics"
	"github.com/hxuan190/hylo-quote-engine/internal/services"
	"github.com/hxuan190/hylo-quote-engine/internal/services/builder"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol"
)

const QUOTE_SERVICE = "quote-service"

// Service is the adapter surface a routing host drives: it names the accounts it needs,
// quotes against a snapshot of them, and lists the accounts a swap instruction references.
// It keeps no per-request state and never caches account data.
type Service struct {
	container.BaseDIInstance
	logger    *services.ServiceLogger
	programID solana.PublicKey
}

// NewService builds a Service outside the container.
func NewService(programID solana.PublicKey) *Service {
	svc := &Service{programID: programID}
	svc.logger = services.NewServiceLogger(svc)
	return svc
}

func (svc *Service) ID() string {
	return QUOTE_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.logger = services.NewServiceLogger(svc)
	conf, ok := c.GetConfig(config.QUOTE_CONFIG_KEY).(*config.QuoteConfig)
	if !ok || conf == nil {
		return errors.New("invalid quote config")
	}
	svc.programID = conf.ProgramID
	return nil
}

func (svc *Service) Start() error {
	svc.logger.Info().Str("program", svc.programID.String()).Msg("[quoteService] ready")
	return nil
}

func (svc *Service) Stop() error {
	return nil
}

func (svc *Service) Label() string {
	return common.HyloLabel
}

func (svc *Service) ProgramID() solana.PublicKey {
	return svc.programID
}

// ReserveMints lists every mint the protocol can quote.
func (svc *Service) ReserveMints() []solana.PublicKey {
	mints := make([]solana.PublicKey, 0, len(domain.Tokens))
	for _, t := range domain.Tokens {
		mints = append(mints, t.Mint)
	}
	return mints
}

func (svc *Service) AccountsToUpdate() ([]solana.PublicKey, error) {
	return builder.AccountsToUpdate(svc.programID)
}

// Quote prices an exact-in swap against accounts.
func (svc *Service) Quote(ctx context.Context, params domain.QuoteParams, accounts domain.AccountMap) (q *domain.Quote, err error) {
	start := time.Now()
	operation := "unknown"
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.QuoteRequests.WithLabelValues(operation, status).Inc()
		metrics.QuoteDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.SwapMode == domain.SwapModeExactOut {
		return nil, ErrExactOutNotSupported
	}
	pair, err := domain.NewPair(params.InputMint, params.OutputMint)
	if err != nil {
		return nil, err
	}
	operation = pair.Operation.String()

	state, err := protocol.Load(accounts, svc.programID)
	if err != nil {
		svc.logger.Warn().Err(err).Str("pair", pair.String()).Msg("[quoteService] failed to load protocol state")
		return nil, err
	}
	q, err = Quote(state, pair, params.Amount)
	if err != nil {
		svc.logger.Debug().Err(err).Str("pair", pair.String()).Uint64("amount", params.Amount).Msg("[quoteService] quote failed")
		return nil, err
	}

	svc.logger.Debug().
		Str("pair", pair.String()).
		Uint64("in", q.InAmount).
		Uint64("out", q.OutAmount).
		Str("feePct", q.FeePct.String()).
		Msg("[quoteService] quoted")
	return q, nil
}

// SwapAccounts validates params and returns the account metas for the swap instruction.
func (svc *Service) SwapAccounts(params *domain.SwapParams) ([]*solana.AccountMeta, error) {
	params, err := ValidateSwapParams(params)
	if err != nil {
		metrics.SwapParamRejections.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}
	pair, err := domain.NewPair(params.SourceMint, params.DestinationMint)
	if err != nil {
		return nil, err
	}
	return builder.BuildSwapAccounts(svc.programID, pair, params)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrExactOutNotSupported):
		return "exact_out"
	case errors.Is(err, ErrDynamicAccountsNotSupported):
		return "dynamic_accounts"
	case errors.Is(err, ErrMissingSwapParams):
		return "missing_params"
	default:
		return "other"
	}
}
