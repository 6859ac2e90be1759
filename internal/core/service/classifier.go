package service

import "strings"

type Intent string

const (
	IntentProduct Intent = "product_inquiry"
	IntentOrder   Intent = "order_inquiry"
	IntentGeneral Intent = "general"
)

var (
	productKeywords = []string{"product", "price", "item", "catalog"}
	orderKeywords   = []string{"order", "track", "status", "shipping", "delivery"}
)

// Classify routes a free-text message to an intent by case-insensitive
// keyword matching. Product keywords take priority when both sets match.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	if containsAny(lower, productKeywords) {
		return IntentProduct
	}
	if containsAny(lower, orderKeywords) {
		return IntentOrder
	}
	return IntentGeneral
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
