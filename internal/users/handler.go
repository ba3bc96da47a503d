package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bissquit/store-rating/internal/domain"
	"github.com/bissquit/store-rating/internal/pkg/httputil"
	"github.com/bissquit/store-rating/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the users module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new users handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validate.New(),
	}
}

// RegisterAdminRoutes registers routes that require the ADMIN role.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/users", h.List)
	r.Post("/users", h.Create)
	r.Get("/users/{id}", h.GetByID)
}

// CreateUserRequest represents the admin user creation request body.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16,password_complexity"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,oneof=NORMAL ADMIN OWNER"`
}

// Create handles POST /users (admin only). Unlike public signup, any role
// may be assigned.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
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

	user, err := h.service.Create(r.Context(), CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrEmailExists, Status: http.StatusBadRequest},
		})
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    user,
	})
}

// List handles GET /users (admin only). Filters are substring matches except
// role, which is exact; sortBy and order fall back to id ascending when
// absent or not whitelisted.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	listing, err := h.service.List(r.Context(), Filter{
		Name:    q.Get("name"),
		Email:   q.Get("email"),
		Address: q.Get("address"),
		Role:    q.Get("role"),
		SortBy:  q.Get("sortBy"),
		Order:   q.Get("order"),
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.JSON(w, http.StatusOK, listing)
}

// GetByID handles GET /users/{id} (admin only).
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httputil.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	detail, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrUserNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, detail)
}
