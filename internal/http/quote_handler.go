package http

import (
	"errors"
	gohttp "net/http"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/http/httputil"
	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

type QuoteHandler struct {
	quoteSvc *quote.Service
	accounts AccountSource
}

func NewQuoteHandler(quoteSvc *quote.Service, accounts AccountSource) *QuoteHandler {
	return &QuoteHandler{quoteSvc: quoteSvc, accounts: accounts}
}

func (h *QuoteHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("", h.getQuote)
	pub.POST("", h.postQuote)
	pub.GET("/accounts", h.getAccounts)
}

func (h *QuoteHandler) Root() string {
	return "/quote"
}

// QuoteRequest carries the quote parameters and the host's snapshot of the accounts to update.
type QuoteRequest struct {
	// Input token mint address (Solana base58 public key)
	InputMint string `json:"inputMint" binding:"required" example:"J1toso1uCk3RLmjorhTtrVwY9HJ7X8V9yYac6Y7kGCPn"`

	// Output token mint address (Solana base58 public key)
	OutputMint string `json:"outputMint" binding:"required" example:"5YMkXAYccHSGnHn9nob9xEvv6Pvka9DZWH7nTbotTu9E"`

	// Amount in the input token's smallest units
	Amount string `json:"amount" binding:"required" example:"1000000000"`

	// Only "ExactIn" (the default) is supported
	SwapMode string `json:"swapMode" enums:"ExactIn,ExactOut" example:"ExactIn"`

	// Accounts keyed by base58 address, data base64-encoded
	Accounts domain.Snapshot `json:"accounts" binding:"required"`
}

// LiveQuoteRequest quotes against accounts fetched from the configured RPC.
type LiveQuoteRequest struct {
	InputMint  string `form:"inputMint" binding:"required"`
	OutputMint string `form:"outputMint" binding:"required"`
	Amount     string `form:"amount" binding:"required"`
	SwapMode   string `form:"swapMode"`
}

// AccountsResponse lists the accounts a host must snapshot before quoting.
type AccountsResponse struct {
	ProgramID    string   `json:"programId"`
	Label        string   `json:"label"`
	Accounts     []string `json:"accounts"`
	ReserveMints []string `json:"reserveMints"`
}

func parseQuoteParams(inputMint, outputMint, amount, swapMode string) (domain.QuoteParams, error) {
	in, err := solana.PublicKeyFromBase58(inputMint)
	if err != nil {
		return domain.QuoteParams{}, errors.New("invalid inputMint address")
	}
	out, err := solana.PublicKeyFromBase58(outputMint)
	if err != nil {
		return domain.QuoteParams{}, errors.New("invalid outputMint address")
	}
	n, err := strconv.ParseUint(amount, 10, 64)
	if err != nil {
		return domain.QuoteParams{}, errors.New("invalid amount: must be an unsigned 64-bit integer")
	}
	mode, err := domain.ParseSwapMode(swapMode)
	if err != nil {
		return domain.QuoteParams{}, err
	}
	return domain.QuoteParams{Amount: n, InputMint: in, OutputMint: out, SwapMode: mode}, nil
}

func (h *QuoteHandler) parseQuoteRequest(c *gin.Context) (domain.QuoteParams, domain.AccountMap, bool) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid request body: "+err.Error())
		return domain.QuoteParams{}, nil, false
	}
	params, err := parseQuoteParams(req.InputMint, req.OutputMint, req.Amount, req.SwapMode)
	if err != nil {
		httputil.BadRequest(c, err.Error())
		return domain.QuoteParams{}, nil, false
	}
	accounts, err := req.Accounts.AccountMap()
	if err != nil {
		writeError(c, err)
		return domain.QuoteParams{}, nil, false
	}
	return params, accounts, true
}

// @Summary Quote against live chain state
// @Tags quote
// @Produce json
// @Param inputMint query string true "Input token mint"
// @Param outputMint query string true "Output token mint"
// @Param amount query string true "Amount in the input token's smallest units"
// @Success 200 {object} domain.Quote
// @Failure 503 {object} httputil.Response "Account fetch failed"
// @Router /api/v1/quote [get]
func (h *QuoteHandler) getQuote(c *gin.Context) {
	var req LiveQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}
	params, err := parseQuoteParams(req.InputMint, req.OutputMint, req.Amount, req.SwapMode)
	if err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}
	if h.accounts == nil {
		httputil.Error(c, gohttp.StatusServiceUnavailable, "no account source configured")
		return
	}

	keys, err := h.quoteSvc.AccountsToUpdate()
	if err != nil {
		httputil.InternalError(c, err.Error())
		return
	}
	accounts, err := h.accounts.Fetch(c.Request.Context(), keys)
	if err != nil {
		log.Warn().Err(err).Msg("[quoteHandler] failed to fetch accounts")
		httputil.Error(c, gohttp.StatusServiceUnavailable, "failed to fetch accounts: "+err.Error())
		return
	}

	q, err := h.quoteSvc.Quote(c.Request.Context(), params, accounts)
	if err != nil {
		writeError(c, err)
		return
	}
	httputil.Success(c, q)
}

// @Summary Quote a Hylo mint, redeem or swap
// @Tags quote
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote parameters and account snapshot"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} httputil.Response "Invalid parameters, unsupported pair or missing account"
// @Failure 422 {object} httputil.Response "Protocol state cannot serve the quote"
// @Router /api/v1/quote [post]
func (h *QuoteHandler) postQuote(c *gin.Context) {
	params, accounts, ok := h.parseQuoteRequest(c)
	if !ok {
		return
	}

	q, err := h.quoteSvc.Quote(c.Request.Context(), params, accounts)
	if err != nil {
		writeError(c, err)
		return
	}
	httputil.Success(c, q)
}

// @Summary Accounts to snapshot before quoting
// @Tags quote
// @Produce json
// @Success 200 {object} AccountsResponse
// @Router /api/v1/quote/accounts [get]
func (h *QuoteHandler) getAccounts(c *gin.Context) {
	keys, err := h.quoteSvc.AccountsToUpdate()
	if err != nil {
		httputil.InternalError(c, err.Error())
		return
	}

	accounts := make([]string, 0, len(keys))
	for _, k := range keys {
		accounts = append(accounts, k.String())
	}
	mints := h.quoteSvc.ReserveMints()
	reserveMints := make([]string, 0, len(mints))
	for _, m := range mints {
		reserveMints = append(reserveMints, m.String())
	}

	httputil.Success(c, AccountsResponse{
		ProgramID:    h.quoteSvc.ProgramID().String(),
		Label:        h.quoteSvc.Label(),
		Accounts:     accounts,
		ReserveMints: reserveMints,
	})
}
