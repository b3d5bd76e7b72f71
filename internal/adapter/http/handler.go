package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"croevo-console/internal/config/configs"
	"croevo-console/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports storage readiness. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the inbound HTTP adapter for the newsletter console. Public
// routes cover subscription, sign in and invite claiming; everything under
// /api/v1/admin requires a principal holding the admin role.
type Handler struct {
	news     port.NewsletterUseCase
	access   port.AccessUseCase
	identity port.Identity
	db       Pinger
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	cfg configs.HTTP,
	news port.NewsletterUseCase,
	access port.AccessUseCase,
	identity port.Identity,
	db Pinger,
	logger *slog.Logger,
) *Handler {
	h := &Handler{news: news, access: access, identity: identity, db: db, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))
	if cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	}

	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/subscribers", h.handleSubscribe)
		r.Post("/auth/signup", h.handleSignUp)
		r.Post("/auth/signin", h.handleSignIn)
		r.With(h.requireAuth).Get("/me", h.handleMe)

		r.Get("/invites/{token}", h.handleResolveInvite)
		r.Post("/invites/{token}/claim", h.handleClaimInvite)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAuth, h.requireAdmin)

			r.Get("/subscribers", h.handleListSubscribers)
			r.Patch("/subscribers/{id}", h.handleSetSubscriberActive)
			r.Delete("/subscribers/{id}", h.handleDeleteSubscriber)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Put("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Get("/campaigns/{id}/preview", h.handlePreviewCampaign)
			r.Post("/campaigns/{id}/dispatch", h.handleDispatch)

			r.Get("/invites", h.handleListInvites)
			r.Post("/invites", h.handleCreateInvite)
			r.Delete("/invites/{id}", h.handleRevokeInvite)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", slog.Any("error", err))
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
