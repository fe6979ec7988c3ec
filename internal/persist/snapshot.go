package persist

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is the persisted subset of the store state. The user, loading
// flag and notifications are session-only and never written.
type Snapshot struct {
	MenuItems     []domain.MenuItem      `json:"menuItems"`
	Categories    []domain.Category      `json:"categories"`
	Orders        []domain.Order         `json:"orders"`
	Transactions  []domain.Transaction   `json:"transactions"`
	Receipts      []domain.Receipt       `json:"receipts"`
	Inventory     []domain.InventoryItem `json:"inventory"`
	Feedback      []domain.Feedback      `json:"feedback"`
	WalletBalance float64                `json:"walletBalance"`
}

// FromState extracts the persisted subset of s.
func FromState(s store.State) Snapshot {
	return Snapshot{
		MenuItems:     s.MenuItems,
		Categories:    s.Categories,
		Orders:        s.Orders,
		Transactions:  s.Transactions,
		Receipts:      s.Receipts,
		Inventory:     s.Inventory,
		Feedback:      s.Feedback,
		WalletBalance: s.WalletBalance,
	}.normalize()
}

// Actions returns the set actions that hydrate a store with the snapshot.
func (s Snapshot) Actions() []store.Action {
	s = s.normalize()
	return []store.Action{
		store.SetMenuItems{Items: s.MenuItems},
		store.SetCategories{Categories: s.Categories},
		store.SetOrders{Orders: s.Orders},
		store.SetTransactions{Transactions: s.Transactions},
		store.SetReceipts{Receipts: s.Receipts},
		store.SetInventory{Items: s.Inventory},
		store.SetFeedback{Feedback: s.Feedback},
		store.SetWalletBalance{Balance: s.WalletBalance},
	}
}

// Encode serializes the snapshot as a JSON object.
func Encode(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s.normalize())
	return data, errors.Wrap(err, "encode snapshot")
}

// Decode parses a stored snapshot one top-level field at a time. A missing,
// null or malformed field becomes an empty collection or zero without
// touching the other fields; unknown fields are ignored. Only data that is
// not a JSON object fails.
func Decode(data []byte) (Snapshot, error) {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Snapshot{}, errors.Wrap(err, "decode snapshot")
	}
	var s Snapshot
	decodeField(fields, "menuItems", &s.MenuItems)
	decodeField(fields, "categories", &s.Categories)
	decodeField(fields, "orders", &s.Orders)
	decodeField(fields, "transactions", &s.Transactions)
	decodeField(fields, "receipts", &s.Receipts)
	decodeField(fields, "inventory", &s.Inventory)
	decodeField(fields, "feedback", &s.Feedback)
	decodeField(fields, "walletBalance", &s.WalletBalance)
	return s.normalize(), nil
}

func decodeField[T any](fields map[string]jsoniter.RawMessage, name string, dst *T) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		zap.L().Warn("discarding malformed snapshot field",
			zap.String("namespace", "persist"),
			zap.String("field", name),
			zap.Error(err))
		return
	}
	*dst = v
}

func (s Snapshot) normalize() Snapshot {
	s.MenuItems = orEmpty(s.MenuItems)
	s.Categories = orEmpty(s.Categories)
	s.Orders = orEmpty(s.Orders)
	s.Transactions = orEmpty(s.Transactions)
	s.Receipts = orEmpty(s.Receipts)
	s.Inventory = orEmpty(s.Inventory)
	s.Feedback = orEmpty(s.Feedback)
	return s
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
