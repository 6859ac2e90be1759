// Package shopify implements the Storefront port against the Shopify Admin
// REST API.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/domain/entity"
	"github.com/karimnagy/shopify-chat-gateway/internal/core/ports"
)

const (
	apiVersion = "2023-10"

	ordersEndpoint   = "orders.json?status=any&limit=250"
	productsEndpoint = "products.json"
)

var _ ports.Storefront = (*Client)(nil)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(storeURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(storeURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ProductsJSON(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, productsEndpoint)
}

func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	raw, err := c.get(ctx, productsEndpoint)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Products []entity.Product `json:"products"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("shopify: decode products: %w", err)
	}
	return payload.Products, nil
}

func (c *Client) RecentOrders(ctx context.Context) ([]entity.Order, error) {
	raw, err := c.get(ctx, ordersEndpoint)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Orders []entity.Order `json:"orders"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("shopify: decode orders: %w", err)
	}
	return payload.Orders, nil
}

// get performs an authenticated GET against the versioned admin API and
// returns the raw response body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	url := fmt.Sprintf("%s/admin/api/%s/%s", c.baseURL, apiVersion, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopify: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("shopify: %s: read body: %w", endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("shopify: %s returned %d: %s", endpoint, resp.StatusCode, truncate(body, 512))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
