package service

import (
	"fmt"

	"github.com/karimnagy/shopify-chat-gateway/internal/core/domain/entity"
)

// Fallback strings used by the order projection when optional upstream data
// is absent.
const (
	NoShippingAddress = "No shipping address found"
	NoTrackingLink    = "No tracking link yet"
	NoTrackingNumber  = "No tracking number yet"

	defaultFulfillmentStatus = "Unfulfilled"
)

// FindOrder scans orders in upstream order and returns the first one whose
// display name is exactly "#"+identifier or exactly identifier. The caller
// may pass the identifier with or without the "#" prefix.
//
// If several orders share a matching name the first one returned by upstream
// wins; upstream ordering is unspecified.
func FindOrder(orders []entity.Order, identifier string) (entity.Order, bool) {
	for _, o := range orders {
		if o.Name == "#"+identifier || o.Name == identifier {
			return o, true
		}
	}
	return entity.Order{}, false
}

// NotFoundMessage is the body of the successful-but-empty response for an
// identifier no order matches.
func NotFoundMessage(identifier string) string {
	return fmt.Sprintf("No order found with ID %s", identifier)
}

// Summarize projects a matched order into the normalized response shape,
// substituting fixed fallback strings for absent optional fields.
func Summarize(o entity.Order) entity.OrderSummary {
	s := entity.OrderSummary{
		ID:                o.ID,
		Name:              o.Name,
		Email:             o.Email,
		TotalPrice:        fmt.Sprintf("%s %s", o.TotalPrice, o.Currency),
		FinancialStatus:   o.FinancialStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		CreatedAt:         o.CreatedAt,
		ShippingAddress:   NoShippingAddress,
		Tracking:          NoTrackingLink,
		TrackingNumber:    NoTrackingNumber,
	}
	if s.FulfillmentStatus == "" {
		s.FulfillmentStatus = defaultFulfillmentStatus
	}
	if a := o.ShippingAddress; a != nil {
		s.ShippingAddress = fmt.Sprintf("%s %s, %s, %s", a.FirstName, a.LastName, a.Address1, a.City)
	}
	if len(o.Fulfillments) > 0 {
		f := o.Fulfillments[0]
		if f.TrackingURL != "" {
			s.Tracking = f.TrackingURL
		}
		if f.TrackingNumber != "" {
			s.TrackingNumber = f.TrackingNumber
		}
	}
	s.LineItems = make([]entity.LineItemSummary, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		s.LineItems = append(s.LineItems, entity.LineItemSummary{
			Title:    it.Title,
			Quantity: it.Quantity,
			Price:    fmt.Sprintf("%s %s", it.Price, o.Currency),
		})
	}
	return s
}
