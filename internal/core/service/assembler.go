package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/domain/entity"
	"github.com/karimnagy/shopify-chat-gateway/internal/core/ports"
)

const (
	productContextPrefix = "Available products: "
	noProductsFallback   = "No products available right now."
	defaultCurrency      = "EGP"

	orderContext = `The user is asking about their order or shipping status.
Ask politely for their order number (like #1001) first.
Once they provide it, the frontend will call /orders/:orderId to show details.
Do not make up data — just guide them clearly.`
)

// BuildContext assembles the context string handed to the completion call for
// the given intent. For the general intent it returns the empty string, which
// tells the caller to send the raw user message instead. A failed product
// fetch is returned to the caller, not swallowed here.
func BuildContext(ctx context.Context, intent Intent, store ports.Storefront) (string, error) {
	switch intent {
	case IntentProduct:
		products, err := store.Products(ctx)
		if err != nil {
			return "", err
		}
		return productContextPrefix + formatProductList(products), nil
	case IntentOrder:
		return orderContext, nil
	default:
		return "", nil
	}
}

func formatProductList(products []entity.Product) string {
	if len(products) == 0 {
		return noProductsFallback
	}
	fragments := make([]string, 0, len(products))
	for _, p := range products {
		fragments = append(fragments, formatProduct(p))
	}
	return strings.Join(fragments, ", ")
}

// formatProduct renders "<title> (Price: <price> <currency>)" from the first
// variant. A product with no variants contributes its bare title.
func formatProduct(p entity.Product) string {
	if len(p.Variants) == 0 {
		return p.Title
	}
	v := p.Variants[0]
	currency := v.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return fmt.Sprintf("%s (Price: %s %s)", p.Title, v.Price, currency)
}
