package service

import (
	"testing"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrder(t *testing.T) {
	orders := []entity.Order{
		{ID: 1, Name: "#1001"},
		{ID: 2, Name: "1002"},
		{ID: 3, Name: "#1003"},
	}

	t.Run("matches with prefix added", func(t *testing.T) {
		o, ok := FindOrder(orders, "1001")
		require.True(t, ok)
		assert.Equal(t, int64(1), o.ID)
	})

	t.Run("matches identifier verbatim", func(t *testing.T) {
		o, ok := FindOrder(orders, "1002")
		require.True(t, ok)
		assert.Equal(t, int64(2), o.ID)
	})

	t.Run("matches identifier carrying the prefix", func(t *testing.T) {
		o, ok := FindOrder(orders, "#1003")
		require.True(t, ok)
		assert.Equal(t, int64(3), o.ID)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := FindOrder(orders, "9999")
		assert.False(t, ok)
	})

	t.Run("empty order list", func(t *testing.T) {
		_, ok := FindOrder(nil, "1001")
		assert.False(t, ok)
	})

	t.Run("first match wins", func(t *testing.T) {
		dupes := []entity.Order{{ID: 10, Name: "#1001"}, {ID: 11, Name: "1001"}}
		o, ok := FindOrder(dupes, "1001")
		require.True(t, ok)
		assert.Equal(t, int64(10), o.ID)
	})
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "No order found with ID 1042", NotFoundMessage("1042"))
}

func TestSummarize(t *testing.T) {
	t.Run("full order", func(t *testing.T) {
		o := entity.Order{
			ID:                7,
			Name:              "#1001",
			Email:             "jane@example.com",
			TotalPrice:        "150.00",
			Currency:          "EGP",
			FinancialStatus:   "paid",
			FulfillmentStatus: "fulfilled",
			CreatedAt:         "2024-05-01T10:00:00Z",
			ShippingAddress: &entity.ShippingAddress{
				FirstName: "Jane", LastName: "Doe", Address1: "5 Nile St", City: "Cairo",
			},
			Fulfillments: []entity.Fulfillment{
				{TrackingURL: "https://t.example/42", TrackingNumber: "TRK42"},
			},
			LineItems: []entity.LineItem{{Title: "Shirt", Quantity: 2, Price: "75.00"}},
		}

		s := Summarize(o)
		assert.Equal(t, "150.00 EGP", s.TotalPrice)
		assert.Equal(t, "fulfilled", s.FulfillmentStatus)
		assert.Equal(t, "Jane Doe, 5 Nile St, Cairo", s.ShippingAddress)
		assert.Equal(t, "https://t.example/42", s.Tracking)
		assert.Equal(t, "TRK42", s.TrackingNumber)
		require.Len(t, s.LineItems, 1)
		assert.Equal(t, "75.00 EGP", s.LineItems[0].Price)
	})

	t.Run("fallbacks for absent optional fields", func(t *testing.T) {
		s := Summarize(entity.Order{Name: "#1002", TotalPrice: "10.00", Currency: "EGP"})
		assert.Equal(t, "Unfulfilled", s.FulfillmentStatus)
		assert.Equal(t, NoShippingAddress, s.ShippingAddress)
		assert.Equal(t, NoTrackingLink, s.Tracking)
		assert.Equal(t, NoTrackingNumber, s.TrackingNumber)
		assert.Empty(t, s.LineItems)
	})

	t.Run("fulfillment without tracking keeps fallbacks", func(t *testing.T) {
		s := Summarize(entity.Order{Fulfillments: []entity.Fulfillment{{}}})
		assert.Equal(t, NoTrackingLink, s.Tracking)
		assert.Equal(t, NoTrackingNumber, s.TrackingNumber)
	})
}
