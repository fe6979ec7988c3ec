package domain

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in board order.
var OrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusCancelled,
}

var nextOrderStatus = map[OrderStatus]OrderStatus{
	OrderStatusNew:       OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusServed,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusServed || s == OrderStatusCancelled
}

// Next returns the following kitchen status, or false for terminal statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	n, ok := nextOrderStatus[s]
	return n, ok
}

// CanTransition reports whether an order may move from s to to.
// Orders advance one step at a time and may be cancelled until served.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	n, ok := s.Next()
	return ok && n == to
}

// Order is a customer order. TotalAmount is supplied by the caller and is
// not recomputed from Items on edit.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	Items           []OrderItem `json:"items"`
	Status          OrderStatus `json:"status"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
	TotalAmount     float64     `json:"totalAmount"`
	OrderTime       Timestamp   `json:"orderTime"`
	ServedTime      Timestamp   `json:"servedTime,omitempty"`
	TableNumber     string      `json:"tableNumber,omitempty"`
	PaymentMethod   string      `json:"paymentMethod"`
	IsDelivery      bool        `json:"isDelivery"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
}

// LineTotal sums price*quantity over the order lines.
func (o Order) LineTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// OrderItem is one line of an order. MenuItem is a copy of the menu entry
// taken when the order was placed.
type OrderItem struct {
	ID         string   `json:"id"`
	MenuItemID string   `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
	Quantity   int      `json:"quantity"`
	Notes      string   `json:"notes,omitempty"`
	Price      float64  `json:"price"`
}
