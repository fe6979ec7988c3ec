package store

import (
	"slices"

	"github.com/talkincode/restodesk/internal/domain"
)

// Apply returns the state that results from applying a to s. It never
// modifies s; collection changes allocate new slices. Unknown or nil
// actions return s unchanged, and replace-by-id actions leave the
// collection untouched when no entity has the id.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case SetUser:
		s.User = act.User
	case SetMenuItems:
		s.MenuItems = slices.Clone(act.Items)
	case AddMenuItem:
		s.MenuItems = appendCopy(s.MenuItems, act.Item)
	case UpdateMenuItem:
		s.MenuItems = replaceByID(s.MenuItems, act.Item, menuItemID)
	case DeleteMenuItem:
		s.MenuItems = removeByID(s.MenuItems, act.ID, menuItemID)
	case SetCategories:
		s.Categories = slices.Clone(act.Categories)
	case AddCategory:
		s.Categories = appendCopy(s.Categories, act.Category)
	case SetOrders:
		s.Orders = slices.Clone(act.Orders)
	case AddOrder:
		s.Orders = prependCopy(s.Orders, act.Order)
	case UpdateOrder:
		s.Orders = updateOrder(s.Orders, act)
	case SetTransactions:
		s.Transactions = slices.Clone(act.Transactions)
	case AddTransaction:
		s.Transactions = prependCopy(s.Transactions, act.Transaction)
	case SetReceipts:
		s.Receipts = slices.Clone(act.Receipts)
	case AddReceipt:
		s.Receipts = prependCopy(s.Receipts, act.Receipt)
	case SetInventory:
		s.Inventory = slices.Clone(act.Items)
	case UpdateInventory:
		s.Inventory = replaceByID(s.Inventory, act.Item, inventoryID)
	case SetFeedback:
		s.Feedback = slices.Clone(act.Feedback)
	case AddFeedback:
		s.Feedback = prependCopy(s.Feedback, act.Feedback)
	case SetWalletBalance:
		s.WalletBalance = act.Balance
	case SetLoading:
		s.IsLoading = act.Loading
	case AddNotification:
		s.Notifications = appendCopy(s.Notifications, act.Message)
	case ClearNotifications:
		s.Notifications = []string{}
	}
	return s
}

func updateOrder(orders []domain.Order, act UpdateOrder) []domain.Order {
	next := act.Order
	prev, ok := find(orders, next.ID, orderID)
	if !ok {
		return orders
	}
	if next.Status == domain.OrderStatusServed && next.ServedTime.IsZero() {
		if prev.Status == domain.OrderStatusServed && !prev.ServedTime.IsZero() {
			next.ServedTime = prev.ServedTime
		} else {
			next.ServedTime = act.At
		}
	}
	return replaceByID(orders, next, orderID)
}

func appendCopy[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}

func prependCopy[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}

func replaceByID[T any](items []T, v T, key func(T) string) []T {
	id := key(v)
	idx := slices.IndexFunc(items, func(item T) bool { return key(item) == id })
	if idx < 0 {
		return items
	}
	out := slices.Clone(items)
	for i := idx; i < len(out); i++ {
		if key(out[i]) == id {
			out[i] = v
		}
	}
	return out
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	if !slices.ContainsFunc(items, func(item T) bool { return key(item) == id }) {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
