package domain

import "math"

// DefaultTaxRate is applied when issuing receipts unless configured otherwise.
const DefaultTaxRate = 0.08

// Receipt is the customer-facing record of a paid order.
type Receipt struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"orderId"`
	CustomerName  string      `json:"customerName"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Timestamp     Timestamp   `json:"timestamp"`
	ReceiptNumber string      `json:"receiptNumber"`
}

// NewReceipt issues a receipt for order. The line items are copied so the
// receipt does not share backing storage with the order.
func NewReceipt(id, number string, order Order, taxRate float64, at Timestamp) Receipt {
	items := make([]OrderItem, len(order.Items))
	copy(items, order.Items)
	subtotal := roundCents(order.TotalAmount)
	tax := roundCents(subtotal * taxRate)
	return Receipt{
		ID:            id,
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         roundCents(subtotal + tax),
		PaymentMethod: order.PaymentMethod,
		Timestamp:     at,
		ReceiptNumber: number,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
