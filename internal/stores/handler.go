package stores

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/store-rating/internal/pkg/httputil"
	"github.com/bissquit/store-rating/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the stores module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new stores handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validate.New(),
	}
}

// RegisterRoutes registers routes available to any authenticated user.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stores", h.List)
}

// RegisterAdminRoutes registers routes that require the ADMIN role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/stores", h.Create)
	r.Get("/stores/admin-list", h.AdminList)
}

// CreateStoreRequest represents the store creation request body.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=400"`
	OwnerID *int64 `json:"owner_id" validate:"omitempty,gte=1"`
}

// Create handles POST /stores (admin only).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	req.Name = validate.NormalizeText(req.Name)
	req.Address = validate.NormalizeText(req.Address)
	req.Email = validate.NormalizeEmail(req.Email)

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	store, err := h.service.Create(r.Context(), CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrStoreNameExists, Status: http.StatusBadRequest},
			{Error: ErrOwnerNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Store added successfully",
		"store":   store,
	})
}

// List handles GET /stores for any authenticated user. The optional search
// query narrows results by store name or address.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := httputil.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No token provided")
		return
	}

	listing, err := h.service.ListForUser(r.Context(), identity.UserID, r.URL.Query().Get("search"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, listing)
}

// AdminList handles GET /stores/admin-list (admin only).
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	listing, err := h.service.AdminList(r.Context(), AdminFilter{
		Name:    q.Get("name"),
		Email:   q.Get("email"),
		Address: q.Get("address"),
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, listing)
}
