package dashboard

import (
	"net/http"

	"github.com/bissquit/store-rating/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the dashboard module.
type Handler struct {
	service *Service
}

// NewHandler creates a new dashboard handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterOwnerRoutes registers routes that require the OWNER role.
func (h *Handler) RegisterOwnerRoutes(r chi.Router) {
	r.Route("/dashboard/my-store", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Get("/raters", h.Raters)
	})
}

// RegisterAdminRoutes registers routes that require the ADMIN role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/dashboard/admin-stats", h.AdminStats)
}

// Summary handles GET /dashboard/my-store/summary (owner only).
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	identity, ok := httputil.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No token provided")
		return
	}

	summary, err := h.service.StoreSummary(r.Context(), identity.UserID)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrNoOwnedStore, Status: http.StatusNotFound},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, summary)
}

// Raters handles GET /dashboard/my-store/raters (owner only). An owner
// whose store has no ratings yet gets an empty array, not an error.
func (h *Handler) Raters(w http.ResponseWriter, r *http.Request) {
	identity, ok := httputil.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No token provided")
		return
	}

	raters, err := h.service.Raters(r.Context(), identity.UserID)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, raters)
}

// AdminStats handles GET /dashboard/admin-stats (admin only).
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AdminDashboard(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, stats)
}
