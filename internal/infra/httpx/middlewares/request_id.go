package middlewares

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/karimnagy/shopify-chat-gateway/internal/pkg/telemetry"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID assigns every request an id, honouring one supplied by the
// caller, and echoes it in the response so failures can be correlated with
// logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderXRequestID, id)

		ctx := telemetry.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
