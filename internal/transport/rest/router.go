package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/akarpov/resilience-backend/internal/config"
	"github.com/akarpov/resilience-backend/internal/transport/middleware"
)

// tokenValidator resolves bearer tokens for the auth middleware.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Log            *slog.Logger
	DB             dbPinger
	Version        string
	TokenValidator tokenValidator
	RateLimiter    *middleware.RateLimiter
	CORS           config.CORSConfig
	RateLimit      int

	Auth       authService
	Catalog    catalogService
	Sessions   sessionService
	Entries    entryService
	Scores     scoringService
	Assessment exportAssessment
}

// NewRouter builds the HTTP routing table with the full middleware chain.
// Mutating assessment routes additionally require an authenticated assessor.
func NewRouter(deps RouterDeps) http.Handler {
	health := NewHealthHandler(deps.DB, deps.Version)
	authH := NewAuthHandler(deps.Auth, deps.Log)
	catalogH := NewCatalogHandler(deps.Catalog, deps.Log)
	sessionH := NewSessionHandler(deps.Sessions, deps.Log)
	entryH := NewEntryHandler(deps.Entries, deps.Log)
	scoreH := NewScoreHandler(deps.Scores, deps.Log)
	exportH := NewExportHandler(deps.Catalog, deps.Assessment, deps.Log)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	mux.HandleFunc("POST /api/v1/auth/login", authH.Login)

	mux.HandleFunc("GET /api/v1/catalog", catalogH.Tree)
	mux.HandleFunc("GET /api/v1/rating-scale", catalogH.RatingScale)

	mux.HandleFunc("GET /api/v1/sessions", sessionH.List)
	mux.HandleFunc("POST /api/v1/sessions", sessionH.Create)
	mux.HandleFunc("GET /api/v1/sessions/{id}", sessionH.Get)
	mux.Handle("POST /api/v1/sessions/combine", middleware.RequireAuth(http.HandlerFunc(sessionH.Combine)))

	mux.HandleFunc("GET /api/v1/sessions/{id}/entries", entryH.List)
	mux.Handle("PUT /api/v1/sessions/{id}/entries/{topicID}", middleware.RequireAuth(http.HandlerFunc(entryH.Upsert)))

	mux.HandleFunc("GET /api/v1/sessions/{id}/scores", scoreH.Scores)
	mux.HandleFunc("GET /api/v1/sessions/{id}/scores/themes", scoreH.Themes)
	mux.HandleFunc("GET /api/v1/sessions/{id}/scores/dimensions", scoreH.Dimensions)

	mux.HandleFunc("GET /api/v1/sessions/{id}/export", exportH.Export)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	}
	if deps.RateLimiter != nil && deps.RateLimit > 0 {
		mws = append(mws, deps.RateLimiter.Limit(deps.RateLimit))
	}
	mws = append(mws, middleware.Auth(deps.TokenValidator))

	return middleware.Chain(mws...)(mux)
}
