package ratings

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/store-rating/internal/pkg/httputil"
	"github.com/bissquit/store-rating/internal/pkg/metrics"
	"github.com/bissquit/store-rating/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the ratings module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new ratings handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validate.New(),
	}
}

// RegisterRoutes registers routes that require the NORMAL role.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ratings", h.Submit)
}

// SubmitRequest represents the rating submission request body.
type SubmitRequest struct {
	StoreID     int64 `json:"store_id" validate:"required,gte=1"`
	RatingValue int   `json:"rating_value" validate:"required,min=1,max=5"`
}

// Submit handles POST /ratings. A first rating for the store answers 201,
// overwriting an existing one answers 200.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := httputil.GetIdentity(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	rating, created, err := h.service.Submit(r.Context(), SubmitInput{
		UserID:  identity.UserID,
		StoreID: req.StoreID,
		Value:   req.RatingValue,
	})
	if err != nil {
		metrics.RatingsSubmitted.WithLabelValues("error").Inc()
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrStoreNotFound, Status: http.StatusNotFound},
		})
		return
	}

	if created {
		metrics.RatingsSubmitted.WithLabelValues("created").Inc()
		httputil.JSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Rating submitted successfully",
			"rating":  rating,
		})
		return
	}

	metrics.RatingsSubmitted.WithLabelValues("modified").Inc()
	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Rating modified successfully",
		"rating":  rating,
	})
}
