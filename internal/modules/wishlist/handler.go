package wishlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes wishlist HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/wishlists/{customer_id}", func(r chi.Router) {
		r.Get("/", h.list)                       // GET    /api/v1/wishlists/{customer_id}
		r.Post("/", h.add)                       // POST   /api/v1/wishlists/{customer_id}
		r.Delete("/{product_id}", h.remove)      // DELETE /api/v1/wishlists/{customer_id}/{product_id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListEntries(r.Context(), chi.URLParam(r, "customer_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, entries)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	req.CustomerID = chi.URLParam(r, "customer_id")

	e, err := h.service.AddEntry(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, e)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveEntry(r.Context(), chi.URLParam(r, "customer_id"), chi.URLParam(r, "product_id"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "removed"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
