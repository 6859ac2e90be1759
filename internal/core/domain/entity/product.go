package entity

// Product mirrors the fields of the Shopify product payload used when
// assembling chat context. The full payload is proxied verbatim by
// GET /products and never decoded into this type.
type Product struct {
	Title    string    `json:"title"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	Price    string `json:"price"`
	Currency string `json:"currency"`
}
