package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryRules(t *testing.T) {
	rules := DeliveryRules{
		FreeDeliveryThreshold:      decimal.NewFromInt(50),
		StandardDeliveryPercentage: decimal.NewFromInt(10),
	}

	tests := []struct {
		total     string
		wantCost  string
		wantDelta string
	}{
		{total: "0", wantCost: "0", wantDelta: "50"},
		{total: "12.99", wantCost: "1.3", wantDelta: "37.01"},
		{total: "49.99", wantCost: "5", wantDelta: "0.01"},
		{total: "50", wantCost: "0", wantDelta: "0"},
		{total: "120", wantCost: "0", wantDelta: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			assert.Equal(t, tt.wantCost, rules.Cost(total).String())
			assert.Equal(t, tt.wantDelta, rules.FreeDeliveryDelta(total).String())
		})
	}
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(-3))
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 5, ClampQuantity(5))
	assert.Equal(t, MaxQuantity, ClampQuantity(1000))
}
