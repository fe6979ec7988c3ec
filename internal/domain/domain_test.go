package domain

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestTimestampUnmarshal(t *testing.T) {
	ref := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input string
		want  Timestamp
	}{
		{"epoch millis", `1791972000000`, FromTime(ref)},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"iso string", `"2026-10-14T10:00:00.000Z"`, FromTime(ref)},
		{"numeric string", `"1791972000000"`, FromTime(ref)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			assert.Equal(t, tc.want, ts)
		})
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"hello"`), &ts))
}

func TestTimestampRoundTripInStruct(t *testing.T) {
	o := Order{ID: "1", OrderTime: 1791972000000}
	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"orderTime":1791972000000`)
	assert.NotContains(t, string(b), "servedTime")

	var legacy Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","orderTime":"2026-10-14T10:00:00Z","servedTime":null}`), &legacy))
	assert.Equal(t, Timestamp(1791972000000), legacy.OrderTime)
	assert.True(t, legacy.ServedTime.IsZero())
}

func TestTimestampTime(t *testing.T) {
	assert.True(t, Timestamp(0).Time().IsZero())
	assert.Equal(t, Timestamp(0), FromTime(time.Time{}))
	ref := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	assert.True(t, ref.Equal(FromTime(ref).Time()))
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusNew, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusServed, true},
		{OrderStatusNew, OrderStatusServed, false},
		{OrderStatusNew, OrderStatusCancelled, true},
		{OrderStatusReady, OrderStatusCancelled, true},
		{OrderStatusServed, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusNew, false},
		{OrderStatusPreparing, OrderStatusNew, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to))
			if tc.ok {
				assert.NoError(t, ValidateTransition(tc.from, tc.to))
			} else {
				assert.ErrorIs(t, ValidateTransition(tc.from, tc.to), ErrInvalidTransition)
			}
		})
	}
	assert.ErrorIs(t, ValidateTransition(OrderStatusNew, "eaten"), ErrInvalidStatus)
}

func TestOrderLineTotal(t *testing.T) {
	o := Order{Items: []OrderItem{{Quantity: 2, Price: 12.99}, {Quantity: 1, Price: 19.99}}}
	assert.InDelta(t, 45.97, o.LineTotal(), 1e-9)
}

func TestMenuItemEffectivePrice(t *testing.T) {
	special := 19.99
	m := MenuItem{Price: 24.99, SpecialPrice: &special}
	assert.Equal(t, 24.99, m.EffectivePrice())
	m.IsSpecial = true
	assert.Equal(t, 19.99, m.EffectivePrice())
}

func TestValidation(t *testing.T) {
	assert.NoError(t, ValidateAmount(10))
	assert.ErrorIs(t, ValidateAmount(0), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-1), ErrInvalidAmount)

	assert.NoError(t, ValidateWithdrawal(100, 100))
	assert.ErrorIs(t, ValidateWithdrawal(100.01, 100), ErrInsufficientFunds)

	assert.NoError(t, ValidateRating(1))
	assert.NoError(t, ValidateRating(5))
	assert.ErrorIs(t, ValidateRating(0), ErrRatingOutOfRange)
	assert.ErrorIs(t, ValidateRating(6), ErrRatingOutOfRange)

	neg := -1.0
	assert.ErrorIs(t, ValidateMenuItem(MenuItem{Price: -0.01}), ErrNegativePrice)
	assert.ErrorIs(t, ValidateMenuItem(MenuItem{Price: 1, SpecialPrice: &neg}), ErrNegativePrice)
	assert.NoError(t, ValidateMenuItem(MenuItem{Price: 0}))

	assert.ErrorIs(t, ValidateOrderItem(OrderItem{Quantity: 0}), ErrInvalidQuantity)
	assert.NoError(t, ValidateOrderItem(OrderItem{Quantity: 1, Price: 2}))
}

func TestNewReceipt(t *testing.T) {
	order := Order{
		ID:            "1",
		CustomerName:  "John Smith",
		Items:         []OrderItem{{ID: "1", Quantity: 2, Price: 12.99}, {ID: "2", Quantity: 1, Price: 19.99}},
		TotalAmount:   45.97,
		PaymentMethod: "Credit Card",
	}
	r := NewReceipt("r1", "RCP-001", order, DefaultTaxRate, 42)

	assert.Equal(t, "1", r.OrderID)
	assert.Equal(t, "John Smith", r.CustomerName)
	assert.Equal(t, 45.97, r.Subtotal)
	assert.Equal(t, 3.68, r.Tax)
	assert.Equal(t, 49.65, r.Total)
	assert.Equal(t, "RCP-001", r.ReceiptNumber)
	assert.Equal(t, Timestamp(42), r.Timestamp)

	r.Items[0].Quantity = 99
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestInventoryLowStock(t *testing.T) {
	assert.True(t, InventoryItem{CurrentStock: 5, MinStock: 15}.IsLowStock())
	assert.True(t, InventoryItem{CurrentStock: 15, MinStock: 15}.IsLowStock())
	assert.False(t, InventoryItem{CurrentStock: 25, MinStock: 10}.IsLowStock())
}
