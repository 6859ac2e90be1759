package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/karimnagy/shopify-chat-gateway/internal/core/ports"
	"github.com/karimnagy/shopify-chat-gateway/internal/core/service"
)

// Handler handles the HTTP surface: the two Shopify proxy endpoints and the
// chat endpoint.
type Handler struct {
	store     ports.Storefront
	assistant *service.Assistant
}

func NewHandler(store ports.Storefront, assistant *service.Assistant) *Handler {
	return &Handler{store: store, assistant: assistant}
}

// GetProducts proxies the upstream product list verbatim.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	raw, err := h.store.ProductsJSON(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "product fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// GetOrderByID looks the identifier up in one page of recent orders. A
// missing order is a 200 with an explanatory message, not an error.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	slog.InfoContext(r.Context(), "searching for order", "order_id", orderID)

	orders, err := h.store.RecentOrders(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "order fetch failed", "order_id", orderID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch order details")
		return
	}

	order, ok := service.FindOrder(orders, orderID)
	if !ok {
		writeJSON(w, http.StatusOK, MessageResponse{Message: service.NotFoundMessage(orderID)})
		return
	}
	writeJSON(w, http.StatusOK, service.Summarize(order))
}

// Chat answers one user message. The response is always 200: the assistant
// degrades to a fixed fallback reply on any internal failure.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{Reply: h.assistant.Reply(r.Context(), req.Message)})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
