package store

import "github.com/talkincode/restodesk/internal/domain"

// State is one immutable snapshot of the restaurant. Slices are shared
// between snapshots and must never be modified in place; change state by
// dispatching an action.
type State struct {
	User          *domain.User           `json:"user"`
	MenuItems     []domain.MenuItem      `json:"menuItems"`
	Categories    []domain.Category      `json:"categories"`
	Orders        []domain.Order         `json:"orders"`
	Transactions  []domain.Transaction   `json:"transactions"`
	Receipts      []domain.Receipt       `json:"receipts"`
	Inventory     []domain.InventoryItem `json:"inventory"`
	Feedback      []domain.Feedback      `json:"feedback"`
	WalletBalance float64                `json:"walletBalance"`
	IsLoading     bool                   `json:"isLoading"`
	Notifications []string               `json:"notifications"`
}

// FindOrder returns the order with id.
func (s State) FindOrder(id string) (domain.Order, bool) {
	return find(s.Orders, id, orderID)
}

// FindMenuItem returns the menu item with id.
func (s State) FindMenuItem(id string) (domain.MenuItem, bool) {
	return find(s.MenuItems, id, menuItemID)
}

// FindReceipt returns the receipt with id.
func (s State) FindReceipt(id string) (domain.Receipt, bool) {
	return find(s.Receipts, id, func(r domain.Receipt) string { return r.ID })
}

// FindInventoryItem returns the inventory item with id.
func (s State) FindInventoryItem(id string) (domain.InventoryItem, bool) {
	return find(s.Inventory, id, inventoryID)
}

func find[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func menuItemID(m domain.MenuItem) string       { return m.ID }
func orderID(o domain.Order) string             { return o.ID }
func inventoryID(i domain.InventoryItem) string { return i.ID }
