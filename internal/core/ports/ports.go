package ports

import (
	"context"
	"encoding/json"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/domain/entity"
)

// Storefront is the upstream e-commerce admin API as seen by this service.
type Storefront interface {
	// ProductsJSON returns the upstream product-list response body untouched,
	// for the verbatim proxy endpoint.
	ProductsJSON(ctx context.Context) (json.RawMessage, error)
	// Products returns the decoded product list.
	Products(ctx context.Context) ([]entity.Product, error)
	// RecentOrders returns up to one page of the most recent orders of any
	// status, in upstream order.
	RecentOrders(ctx context.Context) ([]entity.Order, error)
}

// Completer generates a reply from a system instruction and one user turn.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
