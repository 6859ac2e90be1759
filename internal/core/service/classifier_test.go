package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"price question", "What's the price of this item?", IntentProduct},
		{"catalog question", "Show me your CATALOG", IntentProduct},
		{"tracking question", "Where is my order, tracking please", IntentOrder},
		{"delivery question", "when is the Delivery arriving", IntentOrder},
		{"greeting", "Hello there", IntentGeneral},
		{"empty message", "", IntentGeneral},
		{"product wins tie-break", "product order", IntentProduct},
		{"order keyword inside product question", "what is the price of my order", IntentProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}
