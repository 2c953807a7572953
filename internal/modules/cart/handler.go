package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler exposes cart HTTP endpoints.
type Handler struct{ manager *Manager }

func NewHandler(manager *Manager) *Handler { return &Handler{manager: manager} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/carts/{cart_id}", func(r chi.Router) {
		r.Get("/", h.getCart)                            // GET    /api/v1/carts/{cart_id}
		r.Post("/items", h.addItem)                      // POST   /api/v1/carts/{cart_id}/items
		r.Patch("/items/quantity", h.updateQuantity)     // PATCH  /api/v1/carts/{cart_id}/items/quantity
		r.Delete("/items/{item_id}", h.removeItem)       // DELETE /api/v1/carts/{cart_id}/items/{item_id}
		r.Delete("/", h.clearCart)                       // DELETE /api/v1/carts/{cart_id}
	})
}

// AddItemRequest is the payload for adding a line item.
type AddItemRequest struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Image         string          `json:"image,omitempty"`
	UnitPrice     float64         `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	StockHint     int             `json:"stock_hint"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	IsCustomOrder bool            `json:"is_custom_order"`
	Customization json.RawMessage `json:"customization,omitempty"`
}

// UpdateQuantityRequest addresses a slot by its identity tuple.
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	store := h.manager.Store(r.Context(), chi.URLParam(r, "cart_id"))
	respond(w, http.StatusOK, store.Snapshot())
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.ProductID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product_id is required"})
		return
	}

	store := h.manager.Store(r.Context(), chi.URLParam(r, "cart_id"))
	err := store.AddItem(r.Context(), LineItem{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Image:         req.Image,
		UnitPrice:     req.UnitPrice,
		Quantity:      req.Quantity,
		StockHint:     req.StockHint,
		Size:          req.Size,
		Color:         req.Color,
		IsCustomOrder: req.IsCustomOrder,
		Customization: req.Customization,
	})
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, store.Snapshot())
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	store := h.manager.Store(r.Context(), chi.URLParam(r, "cart_id"))
	key := ItemKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	if err := store.UpdateQuantity(r.Context(), key, req.Quantity); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrQuantityTooLow) {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, store.Snapshot())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}

	store := h.manager.Store(r.Context(), chi.URLParam(r, "cart_id"))
	store.RemoveItem(r.Context(), itemID)
	respond(w, http.StatusOK, store.Snapshot())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	store := h.manager.Store(r.Context(), chi.URLParam(r, "cart_id"))
	store.Clear(r.Context())
	respond(w, http.StatusOK, store.Snapshot())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
