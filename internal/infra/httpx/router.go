package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/karimnagy/shopify-chat-gateway/internal/infra/httpx/middlewares"
)

// NewRouter wires the HTTP surface. staticDir is served at the root so the
// embeddable widget script can be loaded from third-party pages, which is
// also why CORS is wide open.
func NewRouter(handler *Handler, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID)
	r.Use(middlewares.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", handler.Health)
	r.Get("/products", handler.GetProducts)
	r.Get("/orders/{orderId}", handler.GetOrderByID)
	r.Post("/chat", handler.Chat)

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}
	return r
}
