package identity

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/store-rating/internal/pkg/httputil"
	"github.com/bissquit/store-rating/internal/pkg/metrics"
	"github.com/bissquit/store-rating/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the identity module.
type Handler struct {
	service      *Service
	validator    *validator.Validate
	loginLimiter *httputil.IPRateLimiter
}

// NewHandler creates a new identity handler. loginLimiter damps credential
// brute forcing on the login endpoint.
func NewHandler(service *Service, loginLimiter *httputil.IPRateLimiter) *Handler {
	return &Handler{
		service:      service,
		validator:    validate.New(),
		loginLimiter: loginLimiter,
	}
}

// RegisterRoutes registers the public auth routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.With(httputil.RateLimitMiddleware(h.loginLimiter)).Post("/login", h.Login)
	})
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Put("/users/password", h.ChangePassword)
}

// SignupRequest represents the signup request body.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"max=400"`
	Password string `json:"password" validate:"required,min=8,max=16,password_complexity"`
}

// Signup handles POST /auth/signup. Self-registration always yields a
// NORMAL-role user.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
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

	user, err := h.service.Signup(r.Context(), SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrEmailExists, Status: http.StatusBadRequest},
		})
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	req.Email = validate.NormalizeEmail(req.Email)

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrInvalidEmail, Status: http.StatusBadRequest},
			{Error: ErrInvalidPassword, Status: http.StatusBadRequest},
		})
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	httputil.JSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

// ChangePasswordRequest represents the password change request body.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8,max=16,password_complexity"`
}

// ChangePassword handles PUT /users/password for the authenticated user.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := httputil.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	if err := h.service.ChangePassword(r.Context(), identity.UserID, req.NewPassword); err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrUserNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{
		"message": "Password updated successfully",
	})
}
