package http

import (
	"context"
	"errors"
	"fmt"
	gohttp "net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/hylo-quote-engine/internal/adapters/accountmap"
	"github.com/hxuan190/hylo-quote-engine/internal/adapters/blockchain"
	"github.com/hxuan190/hylo-quote-engine/internal/common"
	"github.com/hxuan190/hylo-quote-engine/internal/config"
	"github.com/hxuan190/hylo-quote-engine/internal/domain"
	"github.com/hxuan190/hylo-quote-engine/internal/http/httputil"
	"github.com/hxuan190/hylo-quote-engine/internal/http/middlewares"
	"github.com/hxuan190/hylo-quote-engine/internal/services/builder"
	"github.com/hxuan190/hylo-quote-engine/internal/services/protocol"
	"github.com/hxuan190/hylo-quote-engine/internal/services/quote"
)

const (
	API_VERSION  = "v1"
	HTTP_SERVICE = "http-service"
)

// badRequestErrors are failures caused by the request itself rather than the protocol state.
var badRequestErrors = []error{
	domain.ErrUnsupportedPair,
	domain.ErrInvalidSnapshot,
	accountmap.ErrAccountNotFound,
	accountmap.ErrAccountDecode,
	quote.ErrExactOutNotSupported,
	quote.ErrDynamicAccountsNotSupported,
	quote.ErrMissingSwapParams,
	builder.ErrMissingSwapAccount,
	protocol.ErrZeroAmount,
}

func writeError(c *gin.Context, err error) {
	httputil.HTTPError(c, common.HTTPErrorFrom(err, badRequestErrors...))
}

// AccountSource loads live account snapshots. *blockchain.AccountFetcher satisfies it.
type AccountSource interface {
	Fetch(ctx context.Context, keys []solana.PublicKey) (domain.AccountMap, error)
}

type HTTPService struct {
	container.BaseDIInstance

	quoteSvc    *quote.Service
	accounts    AccountSource
	rateLimiter *middlewares.RateLimiter
	server      *gohttp.Server
	conf        *config.GeneralConfig

	handlers []httputil.IHttpHandler
}

// NewHTTPService builds the service outside the container.
func NewHTTPService(conf *config.GeneralConfig, quoteSvc *quote.Service, accounts AccountSource) *HTTPService {
	svc := &HTTPService{conf: conf, quoteSvc: quoteSvc, accounts: accounts}
	svc.init()
	return svc
}

func (svc *HTTPService) ID() string {
	return HTTP_SERVICE
}

func (svc *HTTPService) Configure(c container.IContainer) error {
	conf, ok := c.GetConfig(config.GENERAL_CONFIG_KEY).(*config.GeneralConfig)
	if !ok || conf == nil {
		return errors.New("invalid server config")
	}
	svc.conf = conf
	quoteSvc, fetcher, err := dependencies(
		c.Instance(quote.QUOTE_SERVICE),
		c.Instance(blockchain.ACCOUNT_FETCHER_SERVICE),
	)
	if err != nil {
		return err
	}
	svc.quoteSvc = quoteSvc
	svc.accounts = fetcher
	svc.init()
	return nil
}

// dependencies checks the container instances the HTTP service is wired to.
func dependencies(quoteInst, fetcherInst any) (*quote.Service, *blockchain.AccountFetcher, error) {
	quoteSvc, ok := quoteInst.(*quote.Service)
	if !ok || quoteSvc == nil {
		return nil, nil, fmt.Errorf("instance %s is missing or not a quote service", quote.QUOTE_SERVICE)
	}
	fetcher, ok := fetcherInst.(*blockchain.AccountFetcher)
	if !ok || fetcher == nil {
		return nil, nil, fmt.Errorf("instance %s is missing or not an account fetcher", blockchain.ACCOUNT_FETCHER_SERVICE)
	}
	return quoteSvc, fetcher, nil
}

func (svc *HTTPService) init() {
	svc.rateLimiter = middlewares.NewRateLimiter(svc.conf.RateLimitRPS, svc.conf.RateLimitBurst)
	svc.handlers = []httputil.IHttpHandler{
		NewQuoteHandler(svc.quoteSvc, svc.accounts),
		NewSwapHandler(svc.quoteSvc),
	}
}

// Router assembles the gin engine with middlewares and every handler mounted.
func (svc *HTTPService) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConf := cors.DefaultConfig()
	corsConf.AllowAllOrigins = true
	r.Use(cors.New(corsConf))

	r.Use(middlewares.MetricsMiddleware())
	r.Use(svc.rateLimiter.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(gohttp.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("api")
	pub := api.Group(API_VERSION)
	priv := api.Group(API_VERSION)
	admin := api.Group(API_VERSION + "/admin")

	svc.setupHandlers(pub, priv, admin)
	return r
}

func (svc *HTTPService) Start() error {
	if svc.conf.Env != config.DevEnv {
		gin.SetMode(gin.ReleaseMode)
	}

	svc.server = &gohttp.Server{
		Addr:              svc.conf.HTTPHost + ":" + svc.conf.HTTPPort,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("host", svc.conf.HTTPHost).Str("port", svc.conf.HTTPPort).Msg("http server started")

	if err := svc.server.ListenAndServe(); err != nil && !errors.Is(err, gohttp.ErrServerClosed) {
		return err
	}

	return nil
}

func (svc *HTTPService) Stop() error {
	if svc.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := svc.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to stop http server")
		return err
	}
	log.Info().Msg("http server stopped gracefully")
	return nil
}

func (svc *HTTPService) setupHandlers(
	rootPub *gin.RouterGroup,
	rootPriv *gin.RouterGroup,
	rootAdmin *gin.RouterGroup,
) {
	for _, h := range svc.handlers {
		pub := rootPub.Group(h.Root())
		priv := rootPriv.Group(h.Root())
		admin := rootAdmin.Group(h.Root())
		h.SetRoutes(pub, priv, admin)
	}
}
