package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/covercell/covercell/internal/auth/service"
	"github.com/covercell/covercell/internal/auth/store"
	"github.com/covercell/covercell/pkg/httpx"
	"github.com/covercell/covercell/pkg/jwtx"
	"github.com/covercell/covercell/pkg/slogx"

	_ "github.com/covercell/covercell/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	RegisterService *service.RegisterService
	LoginService    *service.LoginService
	UserService     *service.UserService
	QuoteService    *service.QuoteService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCatalog()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			CoverCell Portal API
//	@version		0.1.0
//	@description	Enrollment and session backend for the CoverCell device insurance portal.
//	@description
//	@description				Sessions are stateless HS256 JWTs valid for one hour.
//
//	@contact.name				CoverCell Team
//	@contact.url				https://github.com/covercell/covercell
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /signup - strict rate limit (account creation)
	signupHandler := &SignupHandler{RegisterService: r.RegisterService}
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{LoginService: r.LoginService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /me - requires a valid session
	meHandler := &MeHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCatalog() {
	r.Mux.Handle("GET /api/plans",
		httpx.Chain(&PlansHandler{},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	quoteHandler := &QuoteHandler{QuoteService: r.QuoteService}
	r.Mux.Handle("POST /api/quote",
		httpx.Chain(quoteHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
