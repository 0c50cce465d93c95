package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	"github.com/aussiebroadwan/pahiram/internal/auth/service"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/httpx"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/pahiram/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	cache    cache.Client
	gatherer prometheus.Gatherer

	// Rate limit profiles, defaulting to the httpx presets. Set before
	// ApplyRoutes.
	StrictLimit   httpx.RateLimitConfig
	ModerateLimit httpx.RateLimitConfig
	LenientLimit  httpx.RateLimitConfig

	LoginService   *service.LoginService
	TokenService   *service.TokenService
	SessionService *service.SessionService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	c cache.Client,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cache:        c,
		gatherer:     gatherer,
		logger:       logger,

		StrictLimit:   httpx.StrictLimit,
		ModerateLimit: httpx.ModerateLimit,
		LenientLimit:  httpx.LenientLimit,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pahiram Authentication Service API
//	@version		0.1.0
//	@description	Federated login against APCIS. A successful login issues a Pahiram session token that expires together with the APCIS token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/pahiram
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Pahiram session token. Format: "Bearer {id}|{secret}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// One bucket per IP and apc_id pair.
	login := &LoginHandler{LoginService: r.LoginService}
	r.Mux.Handle("POST /login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(r.StrictLimit, "apc_id"),
		),
	)

	authn := httpx.AuthnMiddleware(bearerAuthenticator{tokens: r.TokenService})
	logout := &LogoutHandler{SessionService: r.SessionService}

	r.Mux.Handle("DELETE /logout",
		httpx.Chain(http.HandlerFunc(logout.Logout),
			authn,
			httpx.RateLimitByUser(r.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /logout-all",
		httpx.Chain(http.HandlerFunc(logout.LogoutAll),
			authn,
			httpx.RateLimitByUser(r.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cache),
			httpx.RateLimitByIP(r.LenientLimit),
		),
	)

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	}
}
