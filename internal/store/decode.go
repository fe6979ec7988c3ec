package store

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownAction is returned by DecodeAction for an unrecognized kind.
var ErrUnknownAction = errors.New("unknown action")

// Envelope is the wire form of an action.
type Envelope struct {
	Type    Kind                `json:"type"`
	Payload stdjson.RawMessage `json:"payload,omitempty"`
}

// DecodeAction builds the action described by env. Payload shapes follow
// the action: entities for add/update, arrays for set, an id string for
// delete, a number for the wallet balance and a bool for loading.
func DecodeAction(env Envelope) (Action, error) {
	switch env.Type {
	case KindSetUser:
		var v *domain.User
		return decode(env, &v, func() Action { return SetUser{User: v} })
	case KindSetMenuItems:
		var v []domain.MenuItem
		return decode(env, &v, func() Action { return SetMenuItems{Items: v} })
	case KindAddMenuItem:
		var v domain.MenuItem
		return decode(env, &v, func() Action { return AddMenuItem{Item: v} })
	case KindUpdateMenuItem:
		var v domain.MenuItem
		return decode(env, &v, func() Action { return UpdateMenuItem{Item: v} })
	case KindDeleteMenuItem:
		var v string
		return decode(env, &v, func() Action { return DeleteMenuItem{ID: v} })
	case KindSetCategories:
		var v []domain.Category
		return decode(env, &v, func() Action { return SetCategories{Categories: v} })
	case KindAddCategory:
		var v domain.Category
		return decode(env, &v, func() Action { return AddCategory{Category: v} })
	case KindSetOrders:
		var v []domain.Order
		return decode(env, &v, func() Action { return SetOrders{Orders: v} })
	case KindAddOrder:
		var v domain.Order
		return decode(env, &v, func() Action { return AddOrder{Order: v} })
	case KindUpdateOrder:
		var v domain.Order
		return decode(env, &v, func() Action { return UpdateOrder{Order: v} })
	case KindSetTransactions:
		var v []domain.Transaction
		return decode(env, &v, func() Action { return SetTransactions{Transactions: v} })
	case KindAddTransaction:
		var v domain.Transaction
		return decode(env, &v, func() Action { return AddTransaction{Transaction: v} })
	case KindSetReceipts:
		var v []domain.Receipt
		return decode(env, &v, func() Action { return SetReceipts{Receipts: v} })
	case KindAddReceipt:
		var v domain.Receipt
		return decode(env, &v, func() Action { return AddReceipt{Receipt: v} })
	case KindSetInventory:
		var v []domain.InventoryItem
		return decode(env, &v, func() Action { return SetInventory{Items: v} })
	case KindUpdateInventory:
		var v domain.InventoryItem
		return decode(env, &v, func() Action { return UpdateInventory{Item: v} })
	case KindSetFeedback:
		var v []domain.Feedback
		return decode(env, &v, func() Action { return SetFeedback{Feedback: v} })
	case KindAddFeedback:
		var v domain.Feedback
		return decode(env, &v, func() Action { return AddFeedback{Feedback: v} })
	case KindSetWalletBalance:
		var v float64
		return decode(env, &v, func() Action { return SetWalletBalance{Balance: v} })
	case KindSetLoading:
		var v bool
		return decode(env, &v, func() Action { return SetLoading{Loading: v} })
	case KindAddNotification:
		var v string
		return decode(env, &v, func() Action { return AddNotification{Message: v} })
	case KindClearNotifications:
		return ClearNotifications{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownAction, "%q", env.Type)
}

func decode(env Envelope, dst interface{}, build func() Action) (Action, error) {
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, dst); err != nil {
			return nil, errors.Wrapf(err, "decode %s payload", env.Type)
		}
	}
	return build(), nil
}
