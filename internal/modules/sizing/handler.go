package sizing

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the size recommendation endpoint.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	// GET /api/v1/sizing/recommendation?height_cm=178&weight_kg=74
	r.Get("/api/v1/sizing/recommendation", h.recommend)
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseFloat(r.URL.Query().Get("height_cm"), 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "height_cm must be a number"})
		return
	}
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight_kg"), 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "weight_kg must be a number"})
		return
	}

	rec, err := Recommend(height, weight)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, rec)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
