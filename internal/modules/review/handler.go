package review

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes review HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Post("/", h.submit)                        // POST  /api/v1/reviews
		r.Get("/product/{product_id}", h.forProduct) // GET   /api/v1/reviews/product/{product_id}
		r.Get("/queue", h.queue)                     // GET   /api/v1/reviews/queue?status=PENDING
		r.Patch("/{id}/moderate", h.moderate)        // PATCH /api/v1/reviews/{id}/moderate
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rv, err := h.service.SubmitReview(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "between 1 and 5") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, rv)
}

func (h *Handler) forProduct(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListProductReviews(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, reviews)
}

func (h *Handler) queue(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListModerationQueue(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown review status") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, reviews)
}

func (h *Handler) moderate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rv, err := h.service.Moderate(r.Context(), chi.URLParam(r, "id"), req.Approve)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		} else if strings.Contains(err.Error(), "already been moderated") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rv)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
