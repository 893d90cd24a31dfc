package http

import (
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"

	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/http/httputil"
	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

// SwapHandler returns the account metas a host attaches to a Hylo swap instruction.
type SwapHandler struct {
	quoteSvc *quote.Service
}

func NewSwapHandler(quoteSvc *quote.Service) *SwapHandler {
	return &SwapHandler{quoteSvc: quoteSvc}
}

func (h *SwapHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.POST("/accounts", h.postSwapAccounts)
}

func (h *SwapHandler) Root() string {
	return "/swap"
}

type SwapAccountsRequest struct {
	SwapMode  string `json:"swapMode" enums:"ExactIn,ExactOut" example:"ExactIn"`
	InAmount  string `json:"inAmount" binding:"required" example:"1000000000"`
	OutAmount string `json:"outAmount" example:"179820000"`

	SourceMint              string `json:"sourceMint" binding:"required"`
	DestinationMint         string `json:"destinationMint" binding:"required"`
	SourceTokenAccount      string `json:"sourceTokenAccount" binding:"required"`
	DestinationTokenAccount string `json:"destinationTokenAccount" binding:"required"`
	TokenTransferAuthority  string `json:"tokenTransferAuthority" binding:"required"`

	// Hosts set this when they want placeholder accounts filled in; always rejected.
	MissingDynamicAccountsAsDefault bool `json:"missingDynamicAccountsAsDefault"`
}

type AccountMetaResponse struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

type SwapAccountsResponse struct {
	ProgramID string                `json:"programId"`
	Accounts  []AccountMetaResponse `json:"accounts"`
}

func parseSwapParams(req *SwapAccountsRequest) (*domain.SwapParams, error) {
	swapMode, err := domain.ParseSwapMode(req.SwapMode)
	if err != nil {
		return nil, err
	}
	inAmount, err := strconv.ParseUint(req.InAmount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid inAmount: %w", err)
	}
	var outAmount uint64
	if req.OutAmount != "" {
		if outAmount, err = strconv.ParseUint(req.OutAmount, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid outAmount: %w", err)
		}
	}

	params := &domain.SwapParams{
		SwapMode:                        swapMode,
		InAmount:                        inAmount,
		OutAmount:                       outAmount,
		MissingDynamicAccountsAsDefault: req.MissingDynamicAccountsAsDefault,
	}
	for _, f := range []struct {
		name  string
		value string
		dst   *solana.PublicKey
	}{
		{"sourceMint", req.SourceMint, &params.SourceMint},
		{"destinationMint", req.DestinationMint, &params.DestinationMint},
		{"sourceTokenAccount", req.SourceTokenAccount, &params.SourceTokenAccount},
		{"destinationTokenAccount", req.DestinationTokenAccount, &params.DestinationTokenAccount},
		{"tokenTransferAuthority", req.TokenTransferAuthority, &params.TokenTransferAuthority},
	} {
		if *f.dst, err = solana.PublicKeyFromBase58(f.value); err != nil {
			return nil, fmt.Errorf("invalid %s address", f.name)
		}
	}
	return params, nil
}

// @Summary Account metas for a Hylo swap instruction
// @Tags swap
// @Accept json
// @Produce json
// @Param request body SwapAccountsRequest true "Swap parameters"
// @Success 200 {object} SwapAccountsResponse
// @Failure 400 {object} httputil.Response "ExactOut, dynamic accounts or invalid addresses"
// @Router /api/v1/swap/accounts [post]
func (h *SwapHandler) postSwapAccounts(c *gin.Context) {
	var req SwapAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	params, err := parseSwapParams(&req)
	if err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	metas, err := h.quoteSvc.SwapAccounts(params)
	if err != nil {
		writeError(c, err)
		return
	}

	accounts := make([]AccountMetaResponse, 0, len(metas))
	for _, m := range metas {
		accounts = append(accounts, AccountMetaResponse{
			Pubkey:     m.PublicKey.String(),
			IsSigner:   m.IsSigner,
			IsWritable: m.IsWritable,
		})
	}
	httputil.Success(c, SwapAccountsResponse{
		ProgramID: h.quoteSvc.ProgramID().String(),
		Accounts:  accounts,
	})
}
