package app

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/pkg/common"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no items")
	ErrMissingName   = errors.New("customer name is required")
)

// PlaceOrder validates and records a new order, then queues the pending
// order notification. Id, order time and status are filled when empty.
func (a *Application) PlaceOrder(order domain.Order) (domain.Order, error) {
	if strings.TrimSpace(order.CustomerName) == "" {
		return domain.Order{}, ErrMissingName
	}
	if len(order.Items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}
	for i, item := range order.Items {
		if err := domain.ValidateOrderItem(item); err != nil {
			return domain.Order{}, errors.Wrapf(err, "item %d", i)
		}
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusNew
	} else if !order.Status.Valid() {
		return domain.Order{}, errors.Wrapf(domain.ErrInvalidStatus, "%q", order.Status)
	}

	a.opMu.Lock()
	defer a.opMu.Unlock()

	if order.ID == "" {
		order.ID = a.NewID()
	}
	if order.OrderTime.IsZero() {
		order.OrderTime = domain.FromTime(a.now())
	}
	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = a.NewID()
		}
	}
	order.Items = items
	if order.TotalAmount == 0 {
		order.TotalAmount = common.Round2(order.LineTotal())
	}

	s := a.store.Dispatch(store.AddOrder{Order: order})
	pending := 0
	for _, o := range s.Orders {
		if o.Status == domain.OrderStatusNew {
			pending++
		}
	}
	if pending > 0 {
		a.store.Dispatch(store.AddNotification{Message: fmt.Sprintf("%d new order(s)", pending)})
	}
	zap.L().Info("order placed",
		zap.String("namespace", "app"),
		zap.String("order_id", order.ID),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

// SetOrderStatus moves an order along the board. Served orders get their
// served time stamped by the store.
func (a *Application) SetOrderStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	order, ok := a.store.State().FindOrder(id)
	if !ok {
		return domain.Order{}, errors.Wrapf(ErrOrderNotFound, "id %s", id)
	}
	if err := domain.ValidateTransition(order.Status, status); err != nil {
		return domain.Order{}, err
	}
	order.Status = status
	updated, _ := a.store.Dispatch(store.UpdateOrder{Order: order}).FindOrder(id)
	return updated, nil
}

// Deposit adds funds to the wallet.
func (a *Application) Deposit(amount float64, method string) (domain.Transaction, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Transaction{}, err
	}
	a.opMu.Lock()
	defer a.opMu.Unlock()

	tx := a.walletTransaction(domain.TransactionDeposit, amount, method, "Funds added via %s")
	balance := a.store.State().WalletBalance
	a.store.Dispatch(
		store.AddTransaction{Transaction: tx},
		store.SetWalletBalance{Balance: balance + amount},
	)
	return tx, nil
}

// Withdraw takes funds out of the wallet; amount must not exceed the balance.
func (a *Application) Withdraw(amount float64, method string) (domain.Transaction, error) {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	balance := a.store.State().WalletBalance
	if err := domain.ValidateWithdrawal(amount, balance); err != nil {
		return domain.Transaction{}, err
	}
	tx := a.walletTransaction(domain.TransactionWithdrawal, amount, method, "Funds withdrawn via %s")
	a.store.Dispatch(
		store.AddTransaction{Transaction: tx},
		store.SetWalletBalance{Balance: balance - amount},
	)
	return tx, nil
}

func (a *Application) walletTransaction(typ domain.TransactionType, amount float64, method, format string) domain.Transaction {
	return domain.Transaction{
		ID:            a.NewID(),
		Type:          typ,
		Amount:        amount,
		Description:   fmt.Sprintf(format, method),
		Timestamp:     domain.FromTime(a.now()),
		PaymentMethod: method,
		Status:        domain.TransactionCompleted,
	}
}

// IssueReceipt records a receipt for an order using the configured tax rate.
func (a *Application) IssueReceipt(orderID string) (domain.Receipt, error) {
	a.opMu.Lock()
	defer a.opMu.Unlock()

	s := a.store.State()
	order, ok := s.FindOrder(orderID)
	if !ok {
		return domain.Receipt{}, errors.Wrapf(ErrOrderNotFound, "id %s", orderID)
	}
	numbers := make([]string, len(s.Receipts))
	for i, r := range s.Receipts {
		numbers[i] = r.ReceiptNumber
	}
	number := common.NextReceiptNumber(numbers)
	receipt := domain.NewReceipt(a.NewID(), number, order, a.taxRate(), domain.FromTime(a.now()))
	a.store.Dispatch(store.AddReceipt{Receipt: receipt})
	return receipt, nil
}

func (a *Application) taxRate() float64 {
	if a.appConfig == nil {
		return domain.DefaultTaxRate
	}
	return a.appConfig.Restaurant.TaxRate
}

// SubmitFeedback records a customer review.
func (a *Application) SubmitFeedback(fb domain.Feedback) (domain.Feedback, error) {
	if err := domain.ValidateRating(fb.Rating); err != nil {
		return domain.Feedback{}, err
	}
	if strings.TrimSpace(fb.CustomerName) == "" {
		return domain.Feedback{}, ErrMissingName
	}
	if fb.ID == "" {
		fb.ID = a.NewID()
	}
	if fb.Timestamp.IsZero() {
		fb.Timestamp = domain.FromTime(a.now())
	}
	a.store.Dispatch(store.AddFeedback{Feedback: fb})
	return fb, nil
}
