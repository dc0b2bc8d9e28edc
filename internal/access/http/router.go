package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hearthstack/hearth/internal/access/service"
	"github.com/hearthstack/hearth/internal/access/store"
	"github.com/hearthstack/hearth/pkg/httpx"
	"github.com/hearthstack/hearth/pkg/jwtx"
	"github.com/hearthstack/hearth/pkg/slogx"

	_ "github.com/hearthstack/hearth/api/access" // Swagger docs
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

	store store.Store

	InviteService    *service.InviteService
	RolesService     *service.RolesService
	BootstrapService *service.BootstrapService
	Gate             *service.Gate
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

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerRoles()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Hearth Access Service API
//	@version		0.1.0
//	@description	Invite-gated access control: invite code issuance and redemption,
//	@description	account provisioning and admin role management. Authenticated
//	@description	endpoints expect EdDSA-signed bearer tokens from the identity
//	@description	provider; privilege is always resolved server-side per request.
//
//	@contact.name				Hearthstack Team
//	@contact.url				https://github.com/hearthstack/hearth
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	issueHandler := &InviteIssueHandler{InviteService: r.InviteService}
	redeemHandler := &InviteRedeemHandler{InviteService: r.InviteService}
	revokeHandler := &InviteRevokeHandler{InviteService: r.InviteService}
	listHandler := &InviteListHandler{InviteService: r.InviteService}

	// POST /invites - moderate rate limit by user (admin operation)
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(issueHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /invites/redeem - the only unauthenticated write. Strict rate
	// limit by IP + email form field to slow down code guessing.
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(redeemHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)

	// DELETE /invites/{id} - moderate rate limit by user (admin operation)
	r.Mux.Handle("DELETE /v1/invites/{id}",
		httpx.Chain(revokeHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /invites - lenient rate limit by user (admin read operation)
	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRoles() {
	rolesHandler := &RolesHandler{RolesService: r.RolesService}
	meHandler := &MeHandler{Gate: r.Gate}

	// POST /accounts/{id}/promote|demote - moderate rate limit by user
	r.Mux.Handle("POST /v1/accounts/{id}/promote",
		httpx.Chain(http.HandlerFunc(rolesHandler.HandlePromote),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/accounts/{id}/demote",
		httpx.Chain(http.HandlerFunc(rolesHandler.HandleDemote),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /accounts/{id}/role-changes - audit trail, admin read
	r.Mux.Handle("GET /v1/accounts/{id}/role-changes",
		httpx.Chain(http.HandlerFunc(rolesHandler.HandleHistory),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /me/role - lenient rate limit by user
	r.Mux.Handle("GET /v1/me/role",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	// POST /bootstrap - strict rate limit by IP (pre-auth endpoint)
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
