package store

import (
	"github.com/talkincode/restodesk/internal/domain"
)

// Kind is the stable key of an action.
type Kind string

const (
	KindSetUser            Kind = "SET_USER"
	KindSetMenuItems       Kind = "SET_MENU_ITEMS"
	KindAddMenuItem        Kind = "ADD_MENU_ITEM"
	KindUpdateMenuItem     Kind = "UPDATE_MENU_ITEM"
	KindDeleteMenuItem     Kind = "DELETE_MENU_ITEM"
	KindSetCategories      Kind = "SET_CATEGORIES"
	KindAddCategory        Kind = "ADD_CATEGORY"
	KindSetOrders          Kind = "SET_ORDERS"
	KindAddOrder           Kind = "ADD_ORDER"
	KindUpdateOrder        Kind = "UPDATE_ORDER"
	KindSetTransactions    Kind = "SET_TRANSACTIONS"
	KindAddTransaction     Kind = "ADD_TRANSACTION"
	KindSetReceipts        Kind = "SET_RECEIPTS"
	KindAddReceipt         Kind = "ADD_RECEIPT"
	KindSetInventory       Kind = "SET_INVENTORY"
	KindUpdateInventory    Kind = "UPDATE_INVENTORY"
	KindSetFeedback        Kind = "SET_FEEDBACK"
	KindAddFeedback        Kind = "ADD_FEEDBACK"
	KindSetWalletBalance   Kind = "SET_WALLET_BALANCE"
	KindSetLoading         Kind = "SET_LOADING"
	KindAddNotification    Kind = "ADD_NOTIFICATION"
	KindClearNotifications Kind = "CLEAR_NOTIFICATIONS"
)

// Action describes a requested state change. The set of actions is closed:
// only the types in this package implement it.
type Action interface {
	Kind() Kind
	action()
}

type SetUser struct{ User *domain.User }
type SetMenuItems struct{ Items []domain.MenuItem }
type AddMenuItem struct{ Item domain.MenuItem }
type UpdateMenuItem struct{ Item domain.MenuItem }
type DeleteMenuItem struct{ ID string }
type SetCategories struct{ Categories []domain.Category }
type AddCategory struct{ Category domain.Category }
type SetOrders struct{ Orders []domain.Order }
type AddOrder struct{ Order domain.Order }

// UpdateOrder replaces the order with the same id. When the replacement is
// served without a served time, At is recorded as the served time.
type UpdateOrder struct {
	Order domain.Order
	At    domain.Timestamp
}

type SetTransactions struct{ Transactions []domain.Transaction }
type AddTransaction struct{ Transaction domain.Transaction }
type SetReceipts struct{ Receipts []domain.Receipt }
type AddReceipt struct{ Receipt domain.Receipt }
type SetInventory struct{ Items []domain.InventoryItem }
type UpdateInventory struct{ Item domain.InventoryItem }
type SetFeedback struct{ Feedback []domain.Feedback }
type AddFeedback struct{ Feedback domain.Feedback }

// SetWalletBalance replaces the balance. The caller computes the new value;
// it is not reconciled against the transaction ledger.
type SetWalletBalance struct{ Balance float64 }

type SetLoading struct{ Loading bool }
type AddNotification struct{ Message string }
type ClearNotifications struct{}

func (SetUser) Kind() Kind            { return KindSetUser }
func (SetMenuItems) Kind() Kind       { return KindSetMenuItems }
func (AddMenuItem) Kind() Kind        { return KindAddMenuItem }
func (UpdateMenuItem) Kind() Kind     { return KindUpdateMenuItem }
func (DeleteMenuItem) Kind() Kind     { return KindDeleteMenuItem }
func (SetCategories) Kind() Kind      { return KindSetCategories }
func (AddCategory) Kind() Kind        { return KindAddCategory }
func (SetOrders) Kind() Kind          { return KindSetOrders }
func (AddOrder) Kind() Kind           { return KindAddOrder }
func (UpdateOrder) Kind() Kind        { return KindUpdateOrder }
func (SetTransactions) Kind() Kind    { return KindSetTransactions }
func (AddTransaction) Kind() Kind     { return KindAddTransaction }
func (SetReceipts) Kind() Kind        { return KindSetReceipts }
func (AddReceipt) Kind() Kind         { return KindAddReceipt }
func (SetInventory) Kind() Kind       { return KindSetInventory }
func (UpdateInventory) Kind() Kind    { return KindUpdateInventory }
func (SetFeedback) Kind() Kind        { return KindSetFeedback }
func (AddFeedback) Kind() Kind        { return KindAddFeedback }
func (SetWalletBalance) Kind() Kind   { return KindSetWalletBalance }
func (SetLoading) Kind() Kind         { return KindSetLoading }
func (AddNotification) Kind() Kind    { return KindAddNotification }
func (ClearNotifications) Kind() Kind { return KindClearNotifications }

func (SetUser) action()            {}
func (SetMenuItems) action()       {}
func (AddMenuItem) action()        {}
func (UpdateMenuItem) action()     {}
func (DeleteMenuItem) action()     {}
func (SetCategories) action()      {}
func (AddCategory) action()        {}
func (SetOrders) action()          {}
func (AddOrder) action()           {}
func (UpdateOrder) action()        {}
func (SetTransactions) action()    {}
func (AddTransaction) action()     {}
func (SetReceipts) action()        {}
func (AddReceipt) action()         {}
func (SetInventory) action()       {}
func (UpdateInventory) action()    {}
func (SetFeedback) action()        {}
func (AddFeedback) action()        {}
func (SetWalletBalance) action()   {}
func (SetLoading) action()         {}
func (AddNotification) action()    {}
func (ClearNotifications) action() {}

// Persisted reports whether a reduces into a field that is written to the
// durable slot. User, loading and notification changes are session-only.
func Persisted(a Action) bool {
	switch a.(type) {
	case SetUser, SetLoading, AddNotification, ClearNotifications, nil:
		return false
	}
	return true
}
