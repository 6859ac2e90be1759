package service

import (
	"context"
	"encoding/json"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/domain/entity"
	"github.com/karimnagy/shopify-chat-gateway/internal/core/ports"
)

var (
	_ ports.Storefront = (*stubStorefront)(nil)
	_ ports.Completer  = (*stubCompleter)(nil)
)

type stubStorefront struct {
	products    []entity.Product
	productsErr error
	orders      []entity.Order
	ordersErr   error
}

func (s *stubStorefront) ProductsJSON(ctx context.Context) (json.RawMessage, error) {
	if s.productsErr != nil {
		return nil, s.productsErr
	}
	return json.RawMessage(`{"products":[]}`), nil
}

func (s *stubStorefront) Products(ctx context.Context) ([]entity.Product, error) {
	return s.products, s.productsErr
}

func (s *stubStorefront) RecentOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orders, s.ordersErr
}

type stubCompleter struct {
	reply string
	err   error

	gotSystem string
	gotUser   string
}

func (c *stubCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	c.gotSystem = system
	c.gotUser = user
	return c.reply, c.err
}
