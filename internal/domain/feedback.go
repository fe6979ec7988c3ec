package domain

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a customer review with an optional manager response.
type Feedback struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	OrderID       string    `json:"orderId,omitempty"`
	Timestamp     Timestamp `json:"timestamp"`
	Response      string    `json:"response,omitempty"`
	ResponseTime  Timestamp `json:"responseTime,omitempty"`
}
