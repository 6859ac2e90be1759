package entity

// Order is the subset of the Shopify Admin API order payload this service
// reads. Optional sections of the payload (shipping address, fulfillments)
// are modelled as a pointer and a slice so an absent field decodes to its
// zero value instead of failing.
type Order struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	TotalPrice        string           `json:"total_price"`
	Currency          string           `json:"currency"`
	FinancialStatus   string           `json:"financial_status"`
	FulfillmentStatus string           `json:"fulfillment_status"`
	CreatedAt         string           `json:"created_at"`
	ShippingAddress   *ShippingAddress `json:"shipping_address"`
	Fulfillments      []Fulfillment    `json:"fulfillments"`
	LineItems         []LineItem       `json:"line_items"`
}

type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
}

type Fulfillment struct {
	TrackingURL    string `json:"tracking_url"`
	TrackingNumber string `json:"tracking_number"`
}

type LineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderSummary is the normalized projection returned by GET /orders/{orderId}.
// String fields carry fixed fallback values when the upstream order lacks the
// corresponding data; amounts are rendered as "<amount> <currency>".
type OrderSummary struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	TotalPrice        string            `json:"total_price"`
	FinancialStatus   string            `json:"financial_status"`
	FulfillmentStatus string            `json:"fulfillment_status"`
	CreatedAt         string            `json:"created_at"`
	ShippingAddress   string            `json:"shipping_address"`
	Tracking          string            `json:"tracking"`
	TrackingNumber    string            `json:"tracking_number"`
	LineItems         []LineItemSummary `json:"line_items"`
}

type LineItemSummary struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}
